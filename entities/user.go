package entities

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	FullName     string `gorm:"type:varchar(100)" json:"full_name"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	Bio          string `gorm:"type:text" json:"bio,omitempty"`
	Role         string `gorm:"type:varchar(20);default:user" json:"role"`     // user, admin
	Status       string `gorm:"type:varchar(20);default:active" json:"status"` // active, banned
	IsVerified   bool   `json:"is_verified"`
	ResetNonce   string `json:"-"`

	Recipes []*Recipe `gorm:"foreignKey:UserID"`
	Timestamp
}

// DisplayName prefers the full name and falls back to the username.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}
