package user

import (
	"RecipeHub/domain"
	"RecipeHub/entities"
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id uint) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByIdentifier(ctx context.Context, identifier string) (*entities.User, error)
		ExistsByUsernameOrEmail(ctx context.Context, username, email string) (usernameTaken bool, emailTaken bool, err error)
		UpdateUserFields(ctx context.Context, id uint, fields map[string]any) error
		ConsumeResetNonce(ctx context.Context, id uint, nonce string, passwordHash string) (bool, error)

		ToggleFollow(ctx context.Context, followerID, followedID uint) (bool, error)
		IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error)
		CountFollowers(ctx context.Context, userID uint) (int64, error)
		CountFollowing(ctx context.Context, userID uint) (int64, error)
		GetFollowers(ctx context.Context, userID uint, page, limit int) ([]*entities.User, int64, error)
		GetFollowing(ctx context.Context, userID uint, page, limit int) ([]*entities.User, int64, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) first(ctx context.Context, query string, args ...any) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where(query, args...).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.first(ctx, "LOWER(email) = ?", strings.ToLower(email))
}

func (r *userRepository) GetUserByIdentifier(ctx context.Context, identifier string) (*entities.User, error) {
	ident := strings.ToLower(strings.TrimSpace(identifier))
	return r.first(ctx, "LOWER(username) = ? OR LOWER(email) = ?", ident, ident)
}

func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, bool, error) {
	var usernameCount, emailCount int64
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("LOWER(username) = ?", strings.ToLower(username)).
		Count(&usernameCount).Error; err != nil {
		return false, false, err
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Count(&emailCount).Error; err != nil {
		return false, false, err
	}
	return usernameCount > 0, emailCount > 0, nil
}

func (r *userRepository) UpdateUserFields(ctx context.Context, id uint, fields map[string]any) error {
	result := r.db.WithContext(ctx).Model(&entities.User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ConsumeResetNonce swaps the password only while the stored nonce still
// matches, so each reset link works once.
func (r *userRepository) ConsumeResetNonce(ctx context.Context, id uint, nonce string, passwordHash string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ? AND reset_nonce = ? AND reset_nonce <> ''", id, nonce).
		Updates(map[string]any{
			"password_hash": passwordHash,
			"reset_nonce":   "",
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// ToggleFollow flips the follow edge and reports whether it now exists.
func (r *userRepository) ToggleFollow(ctx context.Context, followerID, followedID uint) (bool, error) {
	following := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("follower_id = ? AND followed_id = ?", followerID, followedID).Delete(&entities.Follow{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}

		follow := entities.Follow{
			FollowerID: followerID,
			FollowedID: followedID,
			CreatedAt:  time.Now(),
		}
		if err := tx.Create(&follow).Error; err != nil {
			return err
		}
		following = true
		return nil
	})
	return following, err
}

func (r *userRepository) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Follow{}).Where("followed_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *userRepository) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *userRepository) followList(ctx context.Context, joinOn, whereCol string, userID uint, page, limit int) ([]*entities.User, int64, error) {
	var users []*entities.User
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Joins("JOIN follows ON users.id = follows."+joinOn).
		Where("follows."+whereCol+" = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Joins("JOIN follows ON users.id = follows."+joinOn).
		Where("follows."+whereCol+" = ?", userID).
		Offset(offset).
		Limit(limit).
		Order("follows.created_at desc").
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

func (r *userRepository) GetFollowers(ctx context.Context, userID uint, page, limit int) ([]*entities.User, int64, error) {
	return r.followList(ctx, "follower_id", "followed_id", userID, page, limit)
}

func (r *userRepository) GetFollowing(ctx context.Context, userID uint, page, limit int) ([]*entities.User, int64, error) {
	return r.followList(ctx, "followed_id", "follower_id", userID, page, limit)
}
