package user

import (
	"RecipeHub/domain"
	"RecipeHub/entities"
	"RecipeHub/internal/metrics"
	"RecipeHub/internal/utils/mailing"
	"RecipeHub/internal/utils/storage"
	"RecipeHub/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserSummary, error)
		VerifyEmail(ctx context.Context, token string) error
		ResendVerification(ctx context.Context, req domain.ResendVerificationRequest) error
		Login(ctx context.Context, req domain.LoginRequest) (domain.SessionUser, error)
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		ChangePassword(ctx context.Context, userID uint, req domain.ChangePasswordRequest) error

		GetProfile(ctx context.Context, profileID uint, viewer *domain.SessionUser) (domain.ProfileResponse, error)
		UpdateProfile(ctx context.Context, userID uint, req domain.UpdateProfileRequest) (domain.SessionUser, error)
		ToggleFollow(ctx context.Context, followerID uint, req domain.ToggleFollowRequest) (domain.ToggleFollowResponse, error)
		GetFollowers(ctx context.Context, userID uint, page, limit int) ([]domain.UserSummary, int64, error)
		GetFollowing(ctx context.Context, userID uint, page, limit int) ([]domain.UserSummary, int64, error)

		IsBanned(ctx context.Context, userID uint) (bool, error)
	}

	// RecipeLister supplies the recipe cards shown on a profile page.
	RecipeLister interface {
		GetUserRecipes(ctx context.Context, userID uint, includeHidden bool) ([]domain.RecipeSummary, error)
	}

	userService struct {
		userRepository UserRepository
		recipes        RecipeLister
		jwtService     jwt.JWTService
		mailer         mailing.Mailer
		s3             storage.AwsS3
		appURL         string
	}
)

func NewUserService(
	userRepository UserRepository,
	recipes RecipeLister,
	jwtService jwt.JWTService,
	mailer mailing.Mailer,
	s3 storage.AwsS3,
	appURL string,
) UserService {
	return &userService{
		userRepository: userRepository,
		recipes:        recipes,
		jwtService:     jwtService,
		mailer:         mailer,
		s3:             s3,
		appURL:         strings.TrimSuffix(appURL, "/"),
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserSummary, error) {
	if req.Password != req.ConfirmPassword {
		return domain.UserSummary{}, domain.ErrPasswordMismatch
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	usernameTaken, emailTaken, err := s.userRepository.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return domain.UserSummary{}, err
	}
	if usernameTaken {
		return domain.UserSummary{}, domain.ErrUsernameTaken
	}
	if emailTaken {
		return domain.UserSummary{}, domain.ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserSummary{}, err
	}

	user := entities.User{
		Username:     username,
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleUser,
		Status:       domain.UserStatusActive,
	}
	if err := s.userRepository.CreateUser(ctx, &user); err != nil {
		return domain.UserSummary{}, err
	}

	// the account is kept even if the mail cannot be delivered; the user can
	// ask for a new link
	if err := s.sendVerification(&user); err != nil {
		zap.L().Warn("send verification email failed",
			zap.Uint("user_id", user.ID),
			zap.Error(err))
	}

	return ToUserSummary(&user), nil
}

func (s *userService) sendVerification(user *entities.User) error {
	token, err := s.jwtService.GenerateLinkToken(user.ID, jwt.PurposeVerifyEmail, "", jwt.VerifyEmailTTL)
	if err != nil {
		return err
	}
	body, err := mailing.VerificationBody(user.DisplayName(), s.link("/Account/Verify", token))
	if err != nil {
		return err
	}
	return s.mailer.Send(user.Email, "Verify your RecipeHub account", body)
}

func (s *userService) link(path string, token string) string {
	return fmt.Sprintf("%s%s?token=%s", s.appURL, path, url.QueryEscape(token))
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateLinkToken(token, jwt.PurposeVerifyEmail)
	if err != nil {
		return err
	}
	userID, err := claims.UserID()
	if err != nil {
		return err
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return domain.ErrAlreadyVerified
	}

	return s.userRepository.UpdateUserFields(ctx, user.ID, map[string]any{"is_verified": true})
}

func (s *userService) ResendVerification(ctx context.Context, req domain.ResendVerificationRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return domain.ErrAlreadyVerified
	}
	return s.sendVerification(user)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.SessionUser, error) {
	user, err := s.userRepository.GetUserByIdentifier(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.SessionUser{}, domain.ErrInvalidCredentials
		}
		return domain.SessionUser{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return domain.SessionUser{}, domain.ErrInvalidCredentials
	}
	if user.Status == domain.UserStatusBanned {
		return domain.SessionUser{}, domain.ErrUserBanned
	}
	if !user.IsVerified {
		return domain.SessionUser{}, domain.ErrEmailNotVerified
	}

	return ToSessionUser(user), nil
}

// ForgotPassword never reveals whether the address is registered. Every
// failure past the lookup is logged and reported as success.
func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			zap.L().Error("forgot password lookup failed", zap.Error(err))
		}
		return nil
	}

	if err := s.sendResetLink(ctx, user); err != nil {
		zap.L().Error("send reset link failed", zap.Uint("user_id", user.ID), zap.Error(err))
	}
	return nil
}

func (s *userService) sendResetLink(ctx context.Context, user *entities.User) error {
	nonce := uuid.NewString()
	if err := s.userRepository.UpdateUserFields(ctx, user.ID, map[string]any{"reset_nonce": nonce}); err != nil {
		return err
	}

	token, err := s.jwtService.GenerateLinkToken(user.ID, jwt.PurposeResetPassword, nonce, jwt.ResetPasswordTTL)
	if err != nil {
		return err
	}
	body, err := mailing.ResetPasswordBody(user.DisplayName(), s.link("/Account/ResetPassword", token))
	if err != nil {
		return err
	}
	return s.mailer.Send(user.Email, "Reset your RecipeHub password", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	if req.Password != req.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}

	claims, err := s.jwtService.ValidateLinkToken(req.Token, jwt.PurposeResetPassword)
	if err != nil {
		return err
	}
	userID, err := claims.UserID()
	if err != nil {
		return err
	}
	if claims.Nonce == "" {
		return domain.ErrTokenInvalid
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	consumed, err := s.userRepository.ConsumeResetNonce(ctx, userID, claims.Nonce, string(hashedPassword))
	if err != nil {
		return err
	}
	if !consumed {
		return domain.ErrResetLinkUsed
	}
	return nil
}

func (s *userService) ChangePassword(ctx context.Context, userID uint, req domain.ChangePasswordRequest) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return domain.ErrWrongPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepository.UpdateUserFields(ctx, user.ID, map[string]any{
		"password_hash": string(hashedPassword),
		"reset_nonce":   "",
	})
}

func (s *userService) GetProfile(ctx context.Context, profileID uint, viewer *domain.SessionUser) (domain.ProfileResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, profileID)
	if err != nil {
		return domain.ProfileResponse{}, err
	}

	isOwner := viewer != nil && viewer.ID == user.ID
	includeHidden := isOwner || (viewer != nil && viewer.IsAdmin())

	recipes, err := s.recipes.GetUserRecipes(ctx, user.ID, includeHidden)
	if err != nil {
		return domain.ProfileResponse{}, err
	}

	followerCount, err := s.userRepository.CountFollowers(ctx, user.ID)
	if err != nil {
		return domain.ProfileResponse{}, err
	}
	followingCount, err := s.userRepository.CountFollowing(ctx, user.ID)
	if err != nil {
		return domain.ProfileResponse{}, err
	}

	isFollowing := false
	if viewer != nil && !isOwner {
		isFollowing, err = s.userRepository.IsFollowing(ctx, viewer.ID, user.ID)
		if err != nil {
			return domain.ProfileResponse{}, err
		}
	}

	return domain.ProfileResponse{
		User:           ToUserSummary(user),
		Bio:            user.Bio,
		JoinedAt:       user.CreatedAt,
		Recipes:        recipes,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
		IsFollowing:    isFollowing,
		IsOwner:        isOwner,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint, req domain.UpdateProfileRequest) (domain.SessionUser, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.SessionUser{}, err
	}

	fields := map[string]any{
		"full_name": strings.TrimSpace(req.FullName),
		"bio":       strings.TrimSpace(req.Bio),
	}

	var uploaded storage.UploadedObject
	if req.Avatar != nil {
		uploaded, err = s.s3.UploadFile(ctx, req.Avatar, "avatars", storage.AllowImage...)
		if err != nil {
			return domain.SessionUser{}, err
		}
		fields["avatar_url"] = uploaded.URL
	}

	if err := s.userRepository.UpdateUserFields(ctx, user.ID, fields); err != nil {
		if uploaded.Key != "" {
			s.deleteAvatar(ctx, uploaded.Key)
		}
		return domain.SessionUser{}, err
	}

	// the old avatar goes only once the row points at the new one
	if uploaded.Key != "" {
		if oldKey := s.s3.GetObjectKeyFromLink(user.AvatarURL); oldKey != "" && oldKey != uploaded.Key {
			s.deleteAvatar(ctx, oldKey)
		}
		user.AvatarURL = uploaded.URL
	}

	return ToSessionUser(user), nil
}

func (s *userService) deleteAvatar(ctx context.Context, key string) {
	if err := s.s3.DeleteFile(ctx, key); err != nil {
		zap.L().Warn("delete avatar failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *userService) ToggleFollow(ctx context.Context, followerID uint, req domain.ToggleFollowRequest) (domain.ToggleFollowResponse, error) {
	if followerID == req.UserID {
		return domain.ToggleFollowResponse{}, domain.ErrCannotFollowSelf
	}

	target, err := s.userRepository.GetUserByID(ctx, req.UserID)
	if err != nil {
		return domain.ToggleFollowResponse{}, err
	}

	following, err := s.userRepository.ToggleFollow(ctx, followerID, target.ID)
	if err != nil {
		return domain.ToggleFollowResponse{}, err
	}
	metrics.RecordToggle("follow", following)

	count, err := s.userRepository.CountFollowers(ctx, target.ID)
	if err != nil {
		return domain.ToggleFollowResponse{}, err
	}

	return domain.ToggleFollowResponse{
		Following:     following,
		FollowerCount: count,
	}, nil
}

func (s *userService) GetFollowers(ctx context.Context, userID uint, page, limit int) ([]domain.UserSummary, int64, error) {
	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		return nil, 0, err
	}
	users, count, err := s.userRepository.GetFollowers(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return toUserSummaries(users), count, nil
}

func (s *userService) GetFollowing(ctx context.Context, userID uint, page, limit int) ([]domain.UserSummary, int64, error) {
	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		return nil, 0, err
	}
	users, count, err := s.userRepository.GetFollowing(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return toUserSummaries(users), count, nil
}

func (s *userService) IsBanned(ctx context.Context, userID uint) (bool, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return true, nil
		}
		return false, err
	}
	return user.Status == domain.UserStatusBanned, nil
}

func ToSessionUser(user *entities.User) domain.SessionUser {
	return domain.SessionUser{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		Role:      user.Role,
	}
}

func ToUserSummary(user *entities.User) domain.UserSummary {
	return domain.UserSummary{
		ID:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		AvatarURL: user.AvatarURL,
		Role:      user.Role,
		Status:    user.Status,
	}
}

func toUserSummaries(users []*entities.User) []domain.UserSummary {
	res := make([]domain.UserSummary, 0, len(users))
	for _, u := range users {
		res = append(res, ToUserSummary(u))
	}
	return res
}
