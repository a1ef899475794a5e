package entities

type Media struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	URL  string `gorm:"not null" json:"url"`
	Kind string `gorm:"type:varchar(10)" json:"kind"` // image, video
	Timestamp
}

type StepMedia struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	StepID   uint `gorm:"index;not null" json:"step_id"`
	MediaID  uint `gorm:"not null" json:"media_id"`
	Position int  `json:"position"`

	Media *Media `gorm:"foreignKey:MediaID"`
}
