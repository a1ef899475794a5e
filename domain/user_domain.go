package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister         = "registration successful, please check your email to verify your account"
	MessageSuccessLogin            = "welcome back"
	MessageSuccessLogout           = "you have been logged out"
	MessageSuccessVerifyEmail      = "email verified successfully"
	MessageSuccessSendVerification = "verification email sent"
	MessageSuccessForgotPassword   = "if the email is registered, a reset link has been sent"
	MessageSuccessResetPassword    = "password reset successfully, please log in"
	MessageSuccessChangePassword   = "password changed successfully"
	MessageSuccessUpdateProfile    = "profile updated successfully"
	MessageSuccessGetProfile       = "success get profile"
	MessageSuccessToggleFollow     = "follow state updated"
	MessageSuccessGetFollowers     = "success get followers"
	MessageSuccessGetFollowing     = "success get following"

	MessageFailedRegister         = "failed to register"
	MessageFailedLogin            = "failed to log in"
	MessageFailedVerifyEmail      = "failed to verify email"
	MessageFailedSendVerification = "failed to send verification email"
	MessageFailedForgotPassword   = "failed to process password reset request"
	MessageFailedResetPassword    = "failed to reset password"
	MessageFailedChangePassword   = "failed to change password"
	MessageFailedUpdateProfile    = "failed to update profile"
	MessageFailedGetProfile       = "failed to get profile"
	MessageFailedToggleFollow     = "failed to update follow state"
	MessageFailedGetFollowers     = "failed to get followers"

	ErrUserNotFound        = errors.New("user not found")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUserBanned          = errors.New("this account has been banned")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrWrongPassword       = errors.New("current password is incorrect")
	ErrAlreadyVerified     = errors.New("email already verified")
	ErrEmailNotVerified    = errors.New("please verify your email before logging in")
	ErrResetLinkUsed       = errors.New("reset link has already been used")
	ErrCannotFollowSelf    = errors.New("you cannot follow yourself")
	ErrInvalidTokenPurpose = errors.New("token was issued for another purpose")
)

type (
	RegisterRequest struct {
		Username        string `json:"username" form:"username" validate:"required,alphanum,min=3,max=50"`
		FullName        string `json:"full_name" form:"full_name" validate:"omitempty,max=100"`
		Email           string `json:"email" form:"email" validate:"required,email"`
		Password        string `json:"password" form:"password" validate:"required,min=8,max=72"`
		ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required"`
	}

	LoginRequest struct {
		Identifier string `json:"identifier" form:"identifier" validate:"required"`
		Password   string `json:"password" form:"password" validate:"required"`
	}

	ResendVerificationRequest struct {
		Email string `json:"email" form:"email" validate:"required,email"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" form:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token           string `json:"token" form:"token" validate:"required"`
		Password        string `json:"password" form:"password" validate:"required,min=8,max=72"`
		ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required"`
	}

	ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password" form:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" form:"new_password" validate:"required,min=8,max=72"`
	}

	UpdateProfileRequest struct {
		FullName string                `json:"full_name" form:"full_name" validate:"omitempty,max=100"`
		Bio      string                `json:"bio" form:"bio" validate:"omitempty,max=500"`
		Avatar   *multipart.FileHeader `json:"-" form:"avatar"`
	}

	ToggleFollowRequest struct {
		UserID uint `json:"user_id" form:"user_id" validate:"required"`
	}

	// SessionUser holds the identity attributes kept in the browser session.
	SessionUser struct {
		ID        uint   `json:"id"`
		Username  string `json:"username"`
		Email     string `json:"email"`
		AvatarURL string `json:"avatar_url"`
		Role      string `json:"role"`
	}

	UserSummary struct {
		ID        uint   `json:"id"`
		Username  string `json:"username"`
		FullName  string `json:"full_name"`
		AvatarURL string `json:"avatar_url,omitempty"`
		Role      string `json:"role"`
		Status    string `json:"status"`
	}

	ProfileResponse struct {
		User           UserSummary     `json:"user"`
		Bio            string          `json:"bio"`
		JoinedAt       time.Time       `json:"joined_at"`
		Recipes        []RecipeSummary `json:"recipes"`
		FollowerCount  int64           `json:"follower_count"`
		FollowingCount int64           `json:"following_count"`
		IsFollowing    bool            `json:"is_following"`
		IsOwner        bool            `json:"is_owner"`
	}

	ToggleFollowResponse struct {
		Following     bool  `json:"following"`
		FollowerCount int64 `json:"follower_count"`
	}
)

func (s SessionUser) IsAdmin() bool {
	return s.Role == RoleAdmin
}
