package moderation

import (
	"RecipeHub/domain"
	"RecipeHub/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	// RecipeAction describes one transactional recipe moderation write: the
	// new recipe status, what happens to the recipe's pending reports, and an
	// optional report to record alongside.
	RecipeAction struct {
		RecipeID uint
		Status   string

		// PendingReportsTo moves pending reports to this status when set.
		PendingReportsTo string
		// OnlyReporterID limits PendingReportsTo to one reporter when non-zero.
		OnlyReporterID uint

		Report *entities.Report
	}

	ModerationRepository interface {
		GetRecipe(ctx context.Context, recipeID uint) (*entities.Recipe, error)
		GetRecipesByIDs(ctx context.Context, recipeIDs []uint) (map[uint]*entities.Recipe, error)
		GetUser(ctx context.Context, userID uint) (*entities.User, error)

		HasPendingReport(ctx context.Context, reporterID, recipeID uint) (bool, error)
		CreateReport(ctx context.Context, report *entities.Report) error
		GetReports(ctx context.Context) ([]*entities.Report, error)
		GetReportsByRecipe(ctx context.Context, recipeID uint) ([]*entities.Report, error)
		UpdateReportStatus(ctx context.Context, reportID uint, status string) error

		HasPendingUserReport(ctx context.Context, reporterID, userID uint) (bool, error)
		CreateUserReport(ctx context.Context, report *entities.UserReport) error
		GetUserReports(ctx context.Context) ([]*entities.UserReport, error)
		UpdateUserReportStatus(ctx context.Context, reportID uint, status string) error

		ApplyRecipeAction(ctx context.Context, action RecipeAction) error
		UpdateUserStatus(ctx context.Context, userID uint, status string) error
		ListUsers(ctx context.Context, page, limit int) ([]*entities.User, int64, error)
		GetDashboardStats(ctx context.Context) (domain.DashboardStats, error)
	}

	moderationRepository struct {
		db *gorm.DB
	}
)

func NewModerationRepository(db *gorm.DB) ModerationRepository {
	return &moderationRepository{db: db}
}

func (r *moderationRepository) GetRecipe(ctx context.Context, recipeID uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", recipeID).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *moderationRepository) GetRecipesByIDs(ctx context.Context, recipeIDs []uint) (map[uint]*entities.Recipe, error) {
	res := make(map[uint]*entities.Recipe, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return res, nil
	}

	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id IN ?", recipeIDs).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	for _, recipe := range recipes {
		res[recipe.ID] = recipe
	}
	return res, nil
}

func (r *moderationRepository) GetUser(ctx context.Context, userID uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *moderationRepository) HasPendingReport(ctx context.Context, reporterID, recipeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Report{}).
		Where("reporter_id = ? AND recipe_id = ? AND status = ?", reporterID, recipeID, domain.ReportStatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *moderationRepository) CreateReport(ctx context.Context, report *entities.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *moderationRepository) GetReports(ctx context.Context) ([]*entities.Report, error) {
	var reports []*entities.Report
	if err := r.db.WithContext(ctx).Order("id asc").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *moderationRepository) GetReportsByRecipe(ctx context.Context, recipeID uint) ([]*entities.Report, error) {
	var reports []*entities.Report
	if err := r.db.WithContext(ctx).
		Preload("Reporter").
		Where("recipe_id = ?", recipeID).
		Order("created_at desc").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *moderationRepository) updateStatus(ctx context.Context, model any, id uint, status string) error {
	result := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

func (r *moderationRepository) UpdateReportStatus(ctx context.Context, reportID uint, status string) error {
	return r.updateStatus(ctx, &entities.Report{}, reportID, status)
}

func (r *moderationRepository) HasPendingUserReport(ctx context.Context, reporterID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.UserReport{}).
		Where("reporter_id = ? AND reported_user_id = ? AND status = ?", reporterID, userID, domain.ReportStatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *moderationRepository) CreateUserReport(ctx context.Context, report *entities.UserReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *moderationRepository) GetUserReports(ctx context.Context) ([]*entities.UserReport, error) {
	var reports []*entities.UserReport
	if err := r.db.WithContext(ctx).
		Preload("Reporter").
		Preload("ReportedUser").
		Order("created_at desc").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *moderationRepository) UpdateUserReportStatus(ctx context.Context, reportID uint, status string) error {
	return r.updateStatus(ctx, &entities.UserReport{}, reportID, status)
}

// ApplyRecipeAction writes the recipe status, its report updates and the
// optional new report in one transaction.
func (r *moderationRepository) ApplyRecipeAction(ctx context.Context, action RecipeAction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.Recipe{}).Where("id = ?", action.RecipeID).Update("status", action.Status)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrRecipeNotFound
		}

		if action.PendingReportsTo != "" {
			query := tx.Model(&entities.Report{}).
				Where("recipe_id = ? AND status = ?", action.RecipeID, domain.ReportStatusPending)
			if action.OnlyReporterID != 0 {
				query = query.Where("reporter_id = ?", action.OnlyReporterID)
			}
			if err := query.Update("status", action.PendingReportsTo).Error; err != nil {
				return err
			}
		}

		if action.Report != nil {
			if err := tx.Create(action.Report).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *moderationRepository) UpdateUserStatus(ctx context.Context, userID uint, status string) error {
	result := r.db.WithContext(ctx).Model(&entities.User{}).Where("id = ?", userID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *moderationRepository) ListUsers(ctx context.Context, page, limit int) ([]*entities.User, int64, error) {
	var (
		users []*entities.User
		total int64
	)
	if err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.WithContext(ctx).
		Order("id asc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *moderationRepository) GetDashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	stats := domain.DashboardStats{RecipesByStatus: make(map[string]int64)}
	db := r.db.WithContext(ctx)

	if err := db.Model(&entities.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&entities.User{}).Where("status = ?", domain.UserStatusBanned).Count(&stats.BannedUsers).Error; err != nil {
		return stats, err
	}

	var rows []struct {
		Status string
		Total  int64
	}
	if err := db.Model(&entities.Recipe{}).Select("status, COUNT(*) AS total").Group("status").Scan(&rows).Error; err != nil {
		return stats, err
	}
	for _, row := range rows {
		stats.RecipesByStatus[row.Status] = row.Total
	}

	if err := db.Model(&entities.Report{}).Where("status = ?", domain.ReportStatusPending).Count(&stats.PendingReports).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&entities.UserReport{}).Where("status = ?", domain.ReportStatusPending).Count(&stats.PendingUserReports).Error; err != nil {
		return stats, err
	}
	return stats, nil
}
