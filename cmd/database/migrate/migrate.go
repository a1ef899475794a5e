package migration

import (
	"RecipeHub/domain"
	"RecipeHub/entities"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultCategories are created on first start so the recipe form has
// something to offer.
var DefaultCategories = []string{"Breakfast", "Lunch", "Dinner", "Dessert", "Snack", "Drink"}

func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&entities.Recipe{}, "Types", &entities.RecipeTypeLink{}); err != nil {
		return fmt.Errorf("setup recipe type links: %w", err)
	}

	models := []any{
		&entities.User{},
		&entities.Recipe{},
		&entities.RecipeStep{},
		&entities.Ingredient{},
		&entities.RecipeIngredient{},
		&entities.RecipeType{},
		&entities.RecipeTypeLink{},
		&entities.Media{},
		&entities.StepMedia{},
		&entities.Comment{},
		&entities.Like{},
		&entities.Notebook{},
		&entities.Follow{},
		&entities.Report{},
		&entities.UserReport{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrate %T: %w", model, err)
		}
	}

	zap.L().Info("database migration complete")
	return nil
}

// Seed inserts the default categories, leaving existing rows alone, and
// promotes the account registered under adminEmail to administrator.
func Seed(db *gorm.DB, adminEmail string) error {
	categories := make([]entities.RecipeType, 0, len(DefaultCategories))
	for _, name := range DefaultCategories {
		categories = append(categories, entities.RecipeType{Name: name})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&categories).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	if strings.TrimSpace(adminEmail) == "" {
		zap.L().Warn("ADMIN_EMAIL not set, no administrator promoted")
		return nil
	}
	tx := promoteAdmin(db, adminEmail)
	if tx.Error != nil {
		return fmt.Errorf("promote admin: %w", tx.Error)
	}
	if tx.RowsAffected > 0 {
		zap.L().Info("administrator promoted", zap.String("email", adminEmail))
	}
	return nil
}

// promoteAdmin gives the admin role to the user registered under email.
// Nothing happens until that user has signed up.
func promoteAdmin(db *gorm.DB, email string) *gorm.DB {
	return db.Model(&entities.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Where("role <> ?", domain.RoleAdmin).
		Update("role", domain.RoleAdmin)
}
