package entities

type Recipe struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	UserID          uint   `gorm:"index;not null" json:"user_id"`
	Name            string `gorm:"type:varchar(200);not null" json:"name"`
	Description     string `gorm:"type:text" json:"description"`
	ThumbnailURL    string `json:"thumbnail_url,omitempty"`
	Difficulty      string `gorm:"type:varchar(20)" json:"difficulty"` // easy, medium, hard
	CookTimeMinutes int    `json:"cook_time_minutes"`
	Servings        int    `json:"servings"`
	Status          string `gorm:"type:varchar(20);default:active;index" json:"status"` // active, pending, banned, deleted

	User        *User               `gorm:"foreignKey:UserID"`
	Steps       []*RecipeStep       `gorm:"foreignKey:RecipeID"`
	Ingredients []*RecipeIngredient `gorm:"foreignKey:RecipeID"`
	Types       []*RecipeType       `gorm:"many2many:recipe_type_links;joinForeignKey:RecipeID;joinReferences:RecipeTypeID"`
	Timestamp
}

type RecipeStep struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RecipeID uint   `gorm:"index;not null" json:"recipe_id"`
	Position int    `json:"position"`
	Content  string `gorm:"type:text" json:"content"`

	Media []*StepMedia `gorm:"foreignKey:StepID"`
	Timestamp
}

// RecipeIngredient is one free text ingredient line of a recipe. IngredientID
// links the line to the master catalog when it could be resolved.
type RecipeIngredient struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RecipeID     uint   `gorm:"index;not null" json:"recipe_id"`
	IngredientID *uint  `gorm:"index" json:"ingredient_id,omitempty"`
	Position     int    `json:"position"`
	Text         string `gorm:"type:varchar(255)" json:"text"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
	Timestamp
}

type Ingredient struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Timestamp
}

type RecipeType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Timestamp
}

type RecipeTypeLink struct {
	RecipeID     uint `gorm:"primaryKey" json:"recipe_id"`
	RecipeTypeID uint `gorm:"primaryKey" json:"recipe_type_id"`
}
