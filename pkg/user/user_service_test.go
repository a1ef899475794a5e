package user

import (
	"RecipeHub/domain"
	"RecipeHub/entities"
	"RecipeHub/internal/utils/storage"
	storagemock "RecipeHub/internal/utils/storage/mock"
	"RecipeHub/pkg/jwt"
	"RecipeHub/pkg/user/mock"
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(to, subject, body string) error {
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return f.err
}

type fakeRecipeLister struct {
	includeHidden bool
	recipes       []domain.RecipeSummary
}

func (f *fakeRecipeLister) GetUserRecipes(_ context.Context, _ uint, includeHidden bool) ([]domain.RecipeSummary, error) {
	f.includeHidden = includeHidden
	return f.recipes, nil
}

const testSecret = "test-secret"

func newTestService(t *testing.T) (*mock.MockUserRepository, *fakeMailer, *fakeRecipeLister, UserService) {
	repo := mock.NewMockUserRepository(gomock.NewController(t))
	mailer := &fakeMailer{}
	lister := &fakeRecipeLister{}
	svc := NewUserService(repo, lister, jwt.NewJWTServiceWithSecret(testSecret), mailer, nil, "http://localhost:8080/")
	return repo, mailer, lister, svc
}

func newStorageService(t *testing.T) (*mock.MockUserRepository, *storagemock.MockAwsS3, UserService) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	s3 := storagemock.NewMockAwsS3(ctrl)
	svc := NewUserService(repo, &fakeRecipeLister{}, jwt.NewJWTServiceWithSecret(testSecret), &fakeMailer{}, s3, "http://localhost:8080/")
	return repo, s3, svc
}

func hashed(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegister(t *testing.T) {
	t.Run("password mismatch", func(t *testing.T) {
		_, _, _, svc := newTestService(t)
		_, err := svc.Register(context.Background(), domain.RegisterRequest{
			Username: "alice", Email: "alice@example.com", Password: "secret123", ConfirmPassword: "secret124",
		})
		assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
	})

	t.Run("username taken", func(t *testing.T) {
		repo, _, _, svc := newTestService(t)
		repo.EXPECT().
			ExistsByUsernameOrEmail(gomock.Any(), "alice", "alice@example.com").
			Return(true, false, nil)

		_, err := svc.Register(context.Background(), domain.RegisterRequest{
			Username: "alice", Email: "Alice@Example.com", Password: "secret123", ConfirmPassword: "secret123",
		})
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("success sends verification link", func(t *testing.T) {
		repo, mailer, _, svc := newTestService(t)
		repo.EXPECT().
			ExistsByUsernameOrEmail(gomock.Any(), "alice", "alice@example.com").
			Return(false, false, nil)
		repo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *entities.User) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
				assert.Equal(t, domain.RoleUser, u.Role)
				assert.False(t, u.IsVerified)
				u.ID = 7
				return nil
			})

		res, err := svc.Register(context.Background(), domain.RegisterRequest{
			Username: "alice", FullName: "Alice", Email: "alice@example.com", Password: "secret123", ConfirmPassword: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(7), res.ID)
		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "alice@example.com", mailer.sent[0].to)
		assert.Contains(t, mailer.sent[0].body, "http://localhost:8080/Account/Verify?token=")
	})

	t.Run("mail failure keeps the account", func(t *testing.T) {
		repo, mailer, _, svc := newTestService(t)
		mailer.err = errors.New("smtp down")
		repo.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, false, nil)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Register(context.Background(), domain.RegisterRequest{
			Username: "bob", Email: "bob@example.com", Password: "secret123", ConfirmPassword: "secret123",
		})
		assert.NoError(t, err)
	})
}

func TestVerifyEmail(t *testing.T) {
	repo, _, _, svc := newTestService(t)
	token, err := jwt.NewJWTServiceWithSecret(testSecret).GenerateLinkToken(7, jwt.PurposeVerifyEmail, "", jwt.VerifyEmailTTL)
	require.NoError(t, err)

	repo.EXPECT().GetUserByID(gomock.Any(), uint(7)).Return(&entities.User{ID: 7}, nil)
	repo.EXPECT().UpdateUserFields(gomock.Any(), uint(7), map[string]any{"is_verified": true}).Return(nil)

	assert.NoError(t, svc.VerifyEmail(context.Background(), token))
}

func TestVerifyEmailRejectsResetToken(t *testing.T) {
	_, _, _, svc := newTestService(t)
	token, err := jwt.NewJWTServiceWithSecret(testSecret).GenerateLinkToken(7, jwt.PurposeResetPassword, "n1", jwt.ResetPasswordTTL)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.VerifyEmail(context.Background(), token), domain.ErrInvalidTokenPurpose)
}

func TestLogin(t *testing.T) {
	active := &entities.User{
		ID: 3, Username: "alice", Email: "alice@example.com", Role: domain.RoleUser,
		Status: domain.UserStatusActive, IsVerified: true, PasswordHash: hashed(t, "secret123"),
	}

	tests := []struct {
		name     string
		user     *entities.User
		findErr  error
		password string
		wantErr  error
	}{
		{name: "unknown user", findErr: domain.ErrUserNotFound, password: "secret123", wantErr: domain.ErrInvalidCredentials},
		{name: "wrong password", user: active, password: "nope", wantErr: domain.ErrInvalidCredentials},
		{name: "banned", user: func() *entities.User { u := *active; u.Status = domain.UserStatusBanned; return &u }(), password: "secret123", wantErr: domain.ErrUserBanned},
		{name: "unverified", user: func() *entities.User { u := *active; u.IsVerified = false; return &u }(), password: "secret123", wantErr: domain.ErrEmailNotVerified},
		{name: "success", user: active, password: "secret123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, _, svc := newTestService(t)
			repo.EXPECT().GetUserByIdentifier(gomock.Any(), "alice").Return(tt.user, tt.findErr)

			got, err := svc.Login(context.Background(), domain.LoginRequest{Identifier: "alice", Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.SessionUser{ID: 3, Username: "alice", Email: "alice@example.com", Role: domain.RoleUser}, got)
		})
	}
}

func TestForgotPassword(t *testing.T) {
	t.Run("unknown email reports success", func(t *testing.T) {
		repo, mailer, _, svc := newTestService(t)
		repo.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").Return(nil, domain.ErrUserNotFound)

		assert.NoError(t, svc.ForgotPassword(context.Background(), domain.ForgotPasswordRequest{Email: "ghost@example.com"}))
		assert.Empty(t, mailer.sent)
	})

	t.Run("stores a nonce and mails the link", func(t *testing.T) {
		repo, mailer, _, svc := newTestService(t)
		repo.EXPECT().GetUserByEmail(gomock.Any(), "alice@example.com").Return(&entities.User{ID: 3, Email: "alice@example.com"}, nil)
		repo.EXPECT().
			UpdateUserFields(gomock.Any(), uint(3), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint, fields map[string]any) error {
				nonce, _ := fields["reset_nonce"].(string)
				assert.NotEmpty(t, nonce)
				return nil
			})

		require.NoError(t, svc.ForgotPassword(context.Background(), domain.ForgotPasswordRequest{Email: "alice@example.com"}))
		require.Len(t, mailer.sent, 1)
		assert.True(t, strings.Contains(mailer.sent[0].body, "/Account/ResetPassword?token="))
	})
}

// A registered and an unregistered address must be indistinguishable to the
// caller even when the mail server or the database fails.
func TestForgotPasswordHidesFailures(t *testing.T) {
	known := &entities.User{ID: 3, Email: "alice@example.com"}

	tests := []struct {
		name      string
		lookupErr error
		saveErr   error
		mailErr   error
	}{
		{name: "mailer down", mailErr: errors.New("smtp down")},
		{name: "nonce not saved", saveErr: errors.New("db down")},
		{name: "lookup failed", lookupErr: errors.New("db down")},
		{name: "unknown address", lookupErr: domain.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mailer, _, svc := newTestService(t)
			mailer.err = tt.mailErr
			if tt.lookupErr != nil {
				repo.EXPECT().GetUserByEmail(gomock.Any(), known.Email).Return(nil, tt.lookupErr)
			} else {
				repo.EXPECT().GetUserByEmail(gomock.Any(), known.Email).Return(known, nil)
				repo.EXPECT().UpdateUserFields(gomock.Any(), uint(3), gomock.Any()).Return(tt.saveErr)
			}

			err := svc.ForgotPassword(context.Background(), domain.ForgotPasswordRequest{Email: known.Email})
			assert.NoError(t, err)
			if tt.saveErr != nil || tt.lookupErr != nil {
				assert.Empty(t, mailer.sent)
			}
		})
	}
}

func TestResendVerification(t *testing.T) {
	tests := []struct {
		name     string
		user     *entities.User
		lookup   error
		wantErr  error
		wantMail bool
	}{
		{name: "unknown address", lookup: domain.ErrUserNotFound, wantErr: domain.ErrUserNotFound},
		{name: "already verified", user: &entities.User{ID: 3, Email: "alice@example.com", IsVerified: true}, wantErr: domain.ErrAlreadyVerified},
		{name: "mails a fresh link", user: &entities.User{ID: 3, Email: "alice@example.com"}, wantMail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mailer, _, svc := newTestService(t)
			repo.EXPECT().GetUserByEmail(gomock.Any(), "alice@example.com").Return(tt.user, tt.lookup)

			err := svc.ResendVerification(context.Background(), domain.ResendVerificationRequest{Email: "alice@example.com"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			if !tt.wantMail {
				assert.Empty(t, mailer.sent)
				return
			}
			require.Len(t, mailer.sent, 1)
			assert.Equal(t, "alice@example.com", mailer.sent[0].to)
			assert.Contains(t, mailer.sent[0].body, "/Account/Verify?token=")
		})
	}
}

func TestResetPassword(t *testing.T) {
	tokens := jwt.NewJWTServiceWithSecret(testSecret)
	token, err := tokens.GenerateLinkToken(3, jwt.PurposeResetPassword, "n1", jwt.ResetPasswordTTL)
	require.NoError(t, err)

	t.Run("first use", func(t *testing.T) {
		repo, _, _, svc := newTestService(t)
		repo.EXPECT().ConsumeResetNonce(gomock.Any(), uint(3), "n1", gomock.Any()).Return(true, nil)

		err := svc.ResetPassword(context.Background(), domain.ResetPasswordRequest{Token: token, Password: "newsecret1", ConfirmPassword: "newsecret1"})
		assert.NoError(t, err)
	})

	t.Run("second use", func(t *testing.T) {
		repo, _, _, svc := newTestService(t)
		repo.EXPECT().ConsumeResetNonce(gomock.Any(), uint(3), "n1", gomock.Any()).Return(false, nil)

		err := svc.ResetPassword(context.Background(), domain.ResetPasswordRequest{Token: token, Password: "newsecret1", ConfirmPassword: "newsecret1"})
		assert.ErrorIs(t, err, domain.ErrResetLinkUsed)
	})

	t.Run("token without nonce", func(t *testing.T) {
		_, _, _, svc := newTestService(t)
		bare, err := tokens.GenerateLinkToken(3, jwt.PurposeResetPassword, "", jwt.ResetPasswordTTL)
		require.NoError(t, err)

		err = svc.ResetPassword(context.Background(), domain.ResetPasswordRequest{Token: bare, Password: "newsecret1", ConfirmPassword: "newsecret1"})
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}

func TestChangePassword(t *testing.T) {
	repo, _, _, svc := newTestService(t)
	repo.EXPECT().GetUserByID(gomock.Any(), uint(3)).Return(&entities.User{ID: 3, PasswordHash: hashed(t, "secret123")}, nil).Times(2)
	repo.EXPECT().UpdateUserFields(gomock.Any(), uint(3), gomock.Any()).Return(nil)

	err := svc.ChangePassword(context.Background(), 3, domain.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "newsecret1"})
	assert.ErrorIs(t, err, domain.ErrWrongPassword)

	err = svc.ChangePassword(context.Background(), 3, domain.ChangePasswordRequest{CurrentPassword: "secret123", NewPassword: "newsecret1"})
	assert.NoError(t, err)
}

func TestToggleFollow(t *testing.T) {
	t.Run("self follow", func(t *testing.T) {
		_, _, _, svc := newTestService(t)
		_, err := svc.ToggleFollow(context.Background(), 3, domain.ToggleFollowRequest{UserID: 3})
		assert.ErrorIs(t, err, domain.ErrCannotFollowSelf)
	})

	t.Run("unknown target", func(t *testing.T) {
		repo, _, _, svc := newTestService(t)
		repo.EXPECT().GetUserByID(gomock.Any(), uint(9)).Return(nil, domain.ErrUserNotFound)

		_, err := svc.ToggleFollow(context.Background(), 3, domain.ToggleFollowRequest{UserID: 9})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("follow then unfollow", func(t *testing.T) {
		repo, _, _, svc := newTestService(t)
		repo.EXPECT().GetUserByID(gomock.Any(), uint(4)).Return(&entities.User{ID: 4}, nil).Times(2)
		gomock.InOrder(
			repo.EXPECT().ToggleFollow(gomock.Any(), uint(3), uint(4)).Return(true, nil),
			repo.EXPECT().CountFollowers(gomock.Any(), uint(4)).Return(int64(1), nil),
			repo.EXPECT().ToggleFollow(gomock.Any(), uint(3), uint(4)).Return(false, nil),
			repo.EXPECT().CountFollowers(gomock.Any(), uint(4)).Return(int64(0), nil),
		)

		first, err := svc.ToggleFollow(context.Background(), 3, domain.ToggleFollowRequest{UserID: 4})
		require.NoError(t, err)
		assert.Equal(t, domain.ToggleFollowResponse{Following: true, FollowerCount: 1}, first)

		second, err := svc.ToggleFollow(context.Background(), 3, domain.ToggleFollowRequest{UserID: 4})
		require.NoError(t, err)
		assert.Equal(t, domain.ToggleFollowResponse{Following: false, FollowerCount: 0}, second)
	})
}

func TestGetProfile(t *testing.T) {
	owner := &entities.User{ID: 4, Username: "chef", Bio: "hello"}

	t.Run("visitor sees public recipes", func(t *testing.T) {
		repo, _, lister, svc := newTestService(t)
		repo.EXPECT().GetUserByID(gomock.Any(), uint(4)).Return(owner, nil)
		repo.EXPECT().CountFollowers(gomock.Any(), uint(4)).Return(int64(2), nil)
		repo.EXPECT().CountFollowing(gomock.Any(), uint(4)).Return(int64(5), nil)
		repo.EXPECT().IsFollowing(gomock.Any(), uint(3), uint(4)).Return(true, nil)

		viewer := &domain.SessionUser{ID: 3, Role: domain.RoleUser}
		got, err := svc.GetProfile(context.Background(), 4, viewer)
		require.NoError(t, err)
		assert.False(t, lister.includeHidden)
		assert.True(t, got.IsFollowing)
		assert.False(t, got.IsOwner)
		assert.Equal(t, int64(2), got.FollowerCount)
		assert.Equal(t, int64(5), got.FollowingCount)
	})

	t.Run("owner sees hidden recipes", func(t *testing.T) {
		repo, _, lister, svc := newTestService(t)
		repo.EXPECT().GetUserByID(gomock.Any(), uint(4)).Return(owner, nil)
		repo.EXPECT().CountFollowers(gomock.Any(), uint(4)).Return(int64(0), nil)
		repo.EXPECT().CountFollowing(gomock.Any(), uint(4)).Return(int64(0), nil)

		got, err := svc.GetProfile(context.Background(), 4, &domain.SessionUser{ID: 4})
		require.NoError(t, err)
		assert.True(t, lister.includeHidden)
		assert.True(t, got.IsOwner)
	})
}

func TestIsBanned(t *testing.T) {
	repo, _, _, svc := newTestService(t)
	repo.EXPECT().GetUserByID(gomock.Any(), uint(3)).Return(&entities.User{ID: 3, Status: domain.UserStatusBanned}, nil)
	repo.EXPECT().GetUserByID(gomock.Any(), uint(4)).Return(&entities.User{ID: 4, Status: domain.UserStatusActive}, nil)

	banned, err := svc.IsBanned(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, banned)

	banned, err = svc.IsBanned(context.Background(), 4)
	require.NoError(t, err)
	assert.False(t, banned)
}

func TestUpdateProfile(t *testing.T) {
	avatar := &multipart.FileHeader{Filename: "me.png"}
	uploaded := storage.UploadedObject{Key: "avatars/new.png", URL: "https://cdn/avatars/new.png", Kind: domain.MediaKindImage}
	dbDown := errors.New("db down")

	tests := []struct {
		name       string
		avatar     *multipart.FileHeader
		uploadErr  error
		saveErr    error
		wantErr    error
		wantAvatar string
		deleted    []string
	}{
		{name: "text only", wantAvatar: "https://cdn/avatars/old.png"},
		{name: "new avatar replaces the old one", avatar: avatar, wantAvatar: uploaded.URL, deleted: []string{"avatars/old.png"}},
		{name: "rejected upload keeps the old avatar", avatar: avatar, uploadErr: domain.ErrUnsupportedMedia, wantErr: domain.ErrUnsupportedMedia},
		{name: "failed save removes the new upload", avatar: avatar, saveErr: dbDown, wantErr: dbDown, deleted: []string{"avatars/new.png"}},
		{name: "failed save without avatar", saveErr: dbDown, wantErr: dbDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, s3, svc := newStorageService(t)
			repo.EXPECT().
				GetUserByID(gomock.Any(), uint(3)).
				Return(&entities.User{ID: 3, Username: "alice", AvatarURL: "https://cdn/avatars/old.png"}, nil)

			if tt.avatar != nil {
				if tt.uploadErr != nil {
					s3.EXPECT().UploadFile(gomock.Any(), tt.avatar, "avatars", gomock.Any()).Return(storage.UploadedObject{}, tt.uploadErr)
				} else {
					s3.EXPECT().UploadFile(gomock.Any(), tt.avatar, "avatars", gomock.Any()).Return(uploaded, nil)
				}
			}
			if tt.uploadErr == nil {
				repo.EXPECT().
					UpdateUserFields(gomock.Any(), uint(3), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uint, fields map[string]any) error {
						assert.Equal(t, "Alice A.", fields["full_name"])
						if tt.avatar != nil {
							assert.Equal(t, uploaded.URL, fields["avatar_url"])
						} else {
							assert.NotContains(t, fields, "avatar_url")
						}
						return tt.saveErr
					})
			}
			if tt.avatar != nil && tt.uploadErr == nil && tt.saveErr == nil {
				s3.EXPECT().GetObjectKeyFromLink("https://cdn/avatars/old.png").Return("avatars/old.png")
			}

			var deleted []string
			s3.EXPECT().
				DeleteFile(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, key string) error {
					deleted = append(deleted, key)
					return nil
				}).
				AnyTimes()

			got, err := svc.UpdateProfile(context.Background(), 3, domain.UpdateProfileRequest{
				FullName: "  Alice A. ",
				Avatar:   tt.avatar,
			})
			assert.Equal(t, tt.deleted, deleted)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAvatar, got.AvatarURL)
			assert.Equal(t, uint(3), got.ID)
		})
	}
}

func TestFollowLists(t *testing.T) {
	people := []*entities.User{{ID: 5, Username: "bob"}, {ID: 6, Username: "carol"}}

	tests := []struct {
		name   string
		expect func(repo *mock.MockUserRepository) *gomock.Call
		list   func(svc UserService) ([]domain.UserSummary, int64, error)
	}{
		{
			name: "followers",
			expect: func(repo *mock.MockUserRepository) *gomock.Call {
				return repo.EXPECT().GetFollowers(gomock.Any(), uint(4), 2, 10)
			},
			list: func(svc UserService) ([]domain.UserSummary, int64, error) {
				return svc.GetFollowers(context.Background(), 4, 2, 10)
			},
		},
		{
			name: "following",
			expect: func(repo *mock.MockUserRepository) *gomock.Call {
				return repo.EXPECT().GetFollowing(gomock.Any(), uint(4), 2, 10)
			},
			list: func(svc UserService) ([]domain.UserSummary, int64, error) {
				return svc.GetFollowing(context.Background(), 4, 2, 10)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, _, svc := newTestService(t)
			repo.EXPECT().GetUserByID(gomock.Any(), uint(4)).Return(&entities.User{ID: 4}, nil)
			tt.expect(repo).Return(people, int64(12), nil)

			users, total, err := tt.list(svc)
			require.NoError(t, err)
			assert.Equal(t, int64(12), total)
			require.Len(t, users, 2)
			assert.Equal(t, "bob", users[0].Username)
		})

		t.Run(tt.name+" of unknown user", func(t *testing.T) {
			repo, _, _, svc := newTestService(t)
			repo.EXPECT().GetUserByID(gomock.Any(), uint(4)).Return(nil, domain.ErrUserNotFound)

			_, _, err := tt.list(svc)
			assert.ErrorIs(t, err, domain.ErrUserNotFound)
		})
	}
}
