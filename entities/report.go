package entities

type Report struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ReporterID uint   `gorm:"index;not null" json:"reporter_id"`
	RecipeID   uint   `gorm:"index;not null" json:"recipe_id"`
	Reason     string `gorm:"type:text" json:"reason"`
	Status     string `gorm:"type:varchar(20);default:'in progress'" json:"status"` // in progress, resolved, rejected

	Reporter *User `gorm:"foreignKey:ReporterID"`
	Timestamp
}

type UserReport struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	ReporterID     uint   `gorm:"index;not null" json:"reporter_id"`
	ReportedUserID uint   `gorm:"index;not null" json:"reported_user_id"`
	Reason         string `gorm:"type:text" json:"reason"`
	Status         string `gorm:"type:varchar(20);default:'in progress'" json:"status"`

	Reporter     *User `gorm:"foreignKey:ReporterID"`
	ReportedUser *User `gorm:"foreignKey:ReportedUserID"`
	Timestamp
}
