package session

import (
	"RecipeHub/domain"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	CookieName = "recipehub_session"

	KeyLoggedIn = "logged_in"
	KeyUserID   = "user_id"
	KeyUsername = "username"
	KeyEmail    = "email"
	KeyAvatar   = "avatar"
	KeyRole     = "role"

	KeyFlashSuccess = "flash_success"
	KeyFlashError   = "flash_error"

	localsSession   = "session"
	localsDestroyed = "session_destroyed"
)

// NewStore builds the session store. A nil storage keeps sessions in memory.
// Sessions expire after idle of inactivity; every request that saves the
// session pushes the deadline forward.
func NewStore(storage fiber.Storage, idle time.Duration, secure bool) *session.Store {
	return session.New(session.Config{
		Expiration:     idle,
		Storage:        storage,
		KeyLookup:      "cookie:" + CookieName,
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: "Lax",
	})
}

// Middleware loads the session for every request and saves it once the
// handler chain returns.
func Middleware(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return err
		}
		c.Locals(localsSession, sess)

		handlerErr := c.Next()

		if destroyed, _ := c.Locals(localsDestroyed).(bool); destroyed {
			return handlerErr
		}
		if sess.Fresh() && len(sess.Keys()) == 0 {
			return handlerErr
		}
		if err := sess.Save(); err != nil && handlerErr == nil {
			return err
		}
		return handlerErr
	}
}

func From(c *fiber.Ctx) *session.Session {
	sess, _ := c.Locals(localsSession).(*session.Session)
	return sess
}

// Login writes the identity attributes of user into a regenerated session.
func Login(c *fiber.Ctx, user domain.SessionUser) error {
	sess := From(c)
	if sess == nil {
		return domain.ErrLoginRequired
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(KeyLoggedIn, true)
	sess.Set(KeyUserID, user.ID)
	SetDisplay(c, user)
	return nil
}

// SetDisplay refreshes the display attributes after a profile change.
func SetDisplay(c *fiber.Ctx, user domain.SessionUser) {
	sess := From(c)
	if sess == nil {
		return
	}
	sess.Set(KeyUsername, user.Username)
	sess.Set(KeyEmail, user.Email)
	sess.Set(KeyAvatar, user.AvatarURL)
	sess.Set(KeyRole, user.Role)
}

func Logout(c *fiber.Ctx) error {
	sess := From(c)
	if sess == nil {
		return nil
	}
	c.Locals(localsDestroyed, true)
	return sess.Destroy()
}

// CurrentUser returns the logged in user, if any.
func CurrentUser(c *fiber.Ctx) (domain.SessionUser, bool) {
	sess := From(c)
	if sess == nil {
		return domain.SessionUser{}, false
	}
	loggedIn, _ := sess.Get(KeyLoggedIn).(bool)
	id, _ := sess.Get(KeyUserID).(uint)
	if !loggedIn || id == 0 {
		return domain.SessionUser{}, false
	}
	username, _ := sess.Get(KeyUsername).(string)
	email, _ := sess.Get(KeyEmail).(string)
	avatar, _ := sess.Get(KeyAvatar).(string)
	role, _ := sess.Get(KeyRole).(string)
	return domain.SessionUser{
		ID:        id,
		Username:  username,
		Email:     email,
		AvatarURL: avatar,
		Role:      role,
	}, true
}

func FlashSuccess(c *fiber.Ctx, message string) {
	if sess := From(c); sess != nil {
		sess.Set(KeyFlashSuccess, message)
	}
}

func FlashError(c *fiber.Ctx, message string) {
	if sess := From(c); sess != nil {
		sess.Set(KeyFlashError, message)
	}
}

// PopFlash returns and clears the pending flash messages.
func PopFlash(c *fiber.Ctx) (success string, failure string) {
	sess := From(c)
	if sess == nil {
		return "", ""
	}
	success, _ = sess.Get(KeyFlashSuccess).(string)
	failure, _ = sess.Get(KeyFlashError).(string)
	sess.Delete(KeyFlashSuccess)
	sess.Delete(KeyFlashError)
	return success, failure
}
