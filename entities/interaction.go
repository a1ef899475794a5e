package entities

import "time"

type Comment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"index;not null" json:"user_id"`
	RecipeID uint   `gorm:"index;not null" json:"recipe_id"`
	Content  string `gorm:"type:text;not null" json:"content"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_like_user_recipe;not null" json:"user_id"`
	RecipeID  uint      `gorm:"uniqueIndex:idx_like_user_recipe;index;not null" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
}

// Notebook is a recipe saved by a user.
type Notebook struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_notebook_user_recipe;not null" json:"user_id"`
	RecipeID  uint      `gorm:"uniqueIndex:idx_notebook_user_recipe;not null" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"uniqueIndex:idx_follow_pair;not null" json:"follower_id"`
	FollowedID uint      `gorm:"uniqueIndex:idx_follow_pair;index;not null" json:"followed_id"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`
}
