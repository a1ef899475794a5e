package moderation

import (
	"RecipeHub/domain"
	"RecipeHub/entities"
	"RecipeHub/internal/metrics"
	"RecipeHub/pkg/user"
	"context"
	"strings"
)

type (
	ModerationService interface {
		ReportRecipe(ctx context.Context, reporterID uint, req domain.ReportRecipeRequest) error
		ReportUser(ctx context.Context, reporterID uint, req domain.ReportUserRequest) error

		GetWorklist(ctx context.Context, admin domain.SessionUser) ([]domain.WorklistEntry, error)
		GetRecipeReports(ctx context.Context, recipeID uint) ([]domain.ReportDetail, error)
		ResolveReport(ctx context.Context, reportID uint) error
		RejectReport(ctx context.Context, reportID uint) error

		ApproveRecipe(ctx context.Context, admin domain.SessionUser, recipeID uint) error
		BanRecipe(ctx context.Context, admin domain.SessionUser, recipeID uint) error
		UnbanRecipe(ctx context.Context, admin domain.SessionUser, recipeID uint) error
		FlagRecipe(ctx context.Context, admin domain.SessionUser, recipeID uint) error
		UnflagRecipe(ctx context.Context, admin domain.SessionUser, recipeID uint) error

		GetUserReports(ctx context.Context) ([]domain.ReportDetail, error)
		ResolveUserReport(ctx context.Context, reportID uint) error
		RejectUserReport(ctx context.Context, reportID uint) error

		ListUsers(ctx context.Context, page, limit int) ([]domain.UserSummary, domain.Pagination, error)
		BanUser(ctx context.Context, userID uint) error
		UnbanUser(ctx context.Context, userID uint) error

		GetDashboard(ctx context.Context) (domain.DashboardStats, error)
	}

	moderationService struct {
		moderationRepository ModerationRepository
	}
)

func NewModerationService(moderationRepository ModerationRepository) ModerationService {
	return &moderationService{
		moderationRepository: moderationRepository,
	}
}

func (s *moderationService) ReportRecipe(ctx context.Context, reporterID uint, req domain.ReportRecipeRequest) error {
	recipe, err := s.moderationRepository.GetRecipe(ctx, req.RecipeID)
	if err != nil {
		return err
	}
	if recipe.Status == domain.RecipeStatusDeleted {
		return domain.ErrRecipeNotFound
	}

	pending, err := s.moderationRepository.HasPendingReport(ctx, reporterID, req.RecipeID)
	if err != nil {
		return err
	}
	if pending {
		return domain.ErrDuplicateReport
	}

	report := entities.Report{
		ReporterID: reporterID,
		RecipeID:   req.RecipeID,
		Reason:     strings.TrimSpace(req.Reason),
		Status:     domain.ReportStatusPending,
	}
	if err := s.moderationRepository.CreateReport(ctx, &report); err != nil {
		return err
	}
	metrics.ReportsFiled.WithLabelValues("recipe").Inc()
	return nil
}

func (s *moderationService) ReportUser(ctx context.Context, reporterID uint, req domain.ReportUserRequest) error {
	if reporterID == req.UserID {
		return domain.ErrCannotReportSelf
	}
	if _, err := s.moderationRepository.GetUser(ctx, req.UserID); err != nil {
		return err
	}

	pending, err := s.moderationRepository.HasPendingUserReport(ctx, reporterID, req.UserID)
	if err != nil {
		return err
	}
	if pending {
		return domain.ErrDuplicateReport
	}

	report := entities.UserReport{
		ReporterID:     reporterID,
		ReportedUserID: req.UserID,
		Reason:         strings.TrimSpace(req.Reason),
		Status:         domain.ReportStatusPending,
	}
	if err := s.moderationRepository.CreateUserReport(ctx, &report); err != nil {
		return err
	}
	metrics.ReportsFiled.WithLabelValues("user").Inc()
	return nil
}

func (s *moderationService) GetWorklist(ctx context.Context, admin domain.SessionUser) ([]domain.WorklistEntry, error) {
	reports, err := s.moderationRepository.GetReports(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool)
	ids := make([]uint, 0)
	for _, r := range reports {
		if !seen[r.RecipeID] {
			seen[r.RecipeID] = true
			ids = append(ids, r.RecipeID)
		}
	}
	recipes, err := s.moderationRepository.GetRecipesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return BuildWorklist(reports, recipes, admin.ID), nil
}

func (s *moderationService) GetRecipeReports(ctx context.Context, recipeID uint) ([]domain.ReportDetail, error) {
	recipe, err := s.moderationRepository.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	reports, err := s.moderationRepository.GetReportsByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	details := make([]domain.ReportDetail, 0, len(reports))
	for _, r := range reports {
		detail := domain.ReportDetail{
			ID:         r.ID,
			TargetID:   r.RecipeID,
			TargetName: recipe.Name,
			ReporterID: r.ReporterID,
			Reason:     r.Reason,
			Status:     r.Status,
			CreatedAt:  r.CreatedAt,
		}
		if r.Reporter != nil {
			detail.ReporterName = r.Reporter.DisplayName()
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *moderationService) setReportStatus(ctx context.Context, action string, reportID uint, status string) error {
	err := ValidateReportStatus(status)
	if err == nil {
		err = s.moderationRepository.UpdateReportStatus(ctx, reportID, status)
	}
	metrics.RecordModeration(action, err)
	return err
}

func (s *moderationService) ResolveReport(ctx context.Context, reportID uint) error {
	return s.setReportStatus(ctx, "resolve_report", reportID, domain.ReportStatusResolved)
}

func (s *moderationService) RejectReport(ctx context.Context, reportID uint) error {
	return s.setReportStatus(ctx, "reject_report", reportID, domain.ReportStatusRejected)
}

// applyRecipe loads the recipe, checks that action applies to its current
// status and writes the transition together with its report side effects.
func (s *moderationService) applyRecipe(ctx context.Context, admin domain.SessionUser, action string, recipeID uint) (err error) {
	defer func() { metrics.RecordModeration(action, err) }()

	if !admin.IsAdmin() {
		return domain.ErrAdminRequired
	}

	recipe, err := s.moderationRepository.GetRecipe(ctx, recipeID)
	if err != nil {
		return err
	}
	next, err := NextRecipeStatus(action, recipe.Status)
	if err != nil {
		return err
	}

	write := RecipeAction{RecipeID: recipeID, Status: next}
	switch action {
	case ActionApprove:
		write.PendingReportsTo = domain.ReportStatusRejected
	case ActionBan:
		write.PendingReportsTo = domain.ReportStatusResolved
	case ActionFlag:
		write.Report = &entities.Report{
			ReporterID: admin.ID,
			RecipeID:   recipeID,
			Reason:     domain.AdminFlagReason,
			Status:     domain.ReportStatusPending,
		}
	case ActionUnflag:
		write.PendingReportsTo = domain.ReportStatusResolved
		write.OnlyReporterID = admin.ID
	}

	return s.moderationRepository.ApplyRecipeAction(ctx, write)
}

func (s *moderationService) ApproveRecipe(ctx context.Context, admin domain.SessionUser, recipeID uint) error {
	return s.applyRecipe(ctx, admin, ActionApprove, recipeID)
}

func (s *moderationService) BanRecipe(ctx context.Context, admin domain.SessionUser, recipeID uint) error {
	return s.applyRecipe(ctx, admin, ActionBan, recipeID)
}

func (s *moderationService) UnbanRecipe(ctx context.Context, admin domain.SessionUser, recipeID uint) error {
	return s.applyRecipe(ctx, admin, ActionUnban, recipeID)
}

func (s *moderationService) FlagRecipe(ctx context.Context, admin domain.SessionUser, recipeID uint) error {
	return s.applyRecipe(ctx, admin, ActionFlag, recipeID)
}

func (s *moderationService) UnflagRecipe(ctx context.Context, admin domain.SessionUser, recipeID uint) error {
	return s.applyRecipe(ctx, admin, ActionUnflag, recipeID)
}

func (s *moderationService) GetUserReports(ctx context.Context) ([]domain.ReportDetail, error) {
	reports, err := s.moderationRepository.GetUserReports(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]domain.ReportDetail, 0, len(reports))
	for _, r := range reports {
		detail := domain.ReportDetail{
			ID:         r.ID,
			TargetID:   r.ReportedUserID,
			ReporterID: r.ReporterID,
			Reason:     r.Reason,
			Status:     r.Status,
			CreatedAt:  r.CreatedAt,
		}
		if r.Reporter != nil {
			detail.ReporterName = r.Reporter.DisplayName()
		}
		if r.ReportedUser != nil {
			detail.TargetName = r.ReportedUser.DisplayName()
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *moderationService) setUserReportStatus(ctx context.Context, action string, reportID uint, status string) error {
	err := ValidateReportStatus(status)
	if err == nil {
		err = s.moderationRepository.UpdateUserReportStatus(ctx, reportID, status)
	}
	metrics.RecordModeration(action, err)
	return err
}

func (s *moderationService) ResolveUserReport(ctx context.Context, reportID uint) error {
	return s.setUserReportStatus(ctx, "resolve_user_report", reportID, domain.ReportStatusResolved)
}

func (s *moderationService) RejectUserReport(ctx context.Context, reportID uint) error {
	return s.setUserReportStatus(ctx, "reject_user_report", reportID, domain.ReportStatusRejected)
}

func (s *moderationService) ListUsers(ctx context.Context, page, limit int) ([]domain.UserSummary, domain.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	users, total, err := s.moderationRepository.ListUsers(ctx, page, limit)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	summaries := make([]domain.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, user.ToUserSummary(u))
	}
	return summaries, domain.NewPagination(page, limit, total), nil
}

func (s *moderationService) setUserStatus(ctx context.Context, action string, userID uint, status string) (err error) {
	defer func() { metrics.RecordModeration(action, err) }()

	target, err := s.moderationRepository.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if status == domain.UserStatusBanned && target.Role == domain.RoleAdmin {
		return domain.ErrCannotBanAdministrator
	}
	return s.moderationRepository.UpdateUserStatus(ctx, userID, status)
}

func (s *moderationService) BanUser(ctx context.Context, userID uint) error {
	return s.setUserStatus(ctx, "ban_user", userID, domain.UserStatusBanned)
}

func (s *moderationService) UnbanUser(ctx context.Context, userID uint) error {
	return s.setUserStatus(ctx, "unban_user", userID, domain.UserStatusActive)
}

func (s *moderationService) GetDashboard(ctx context.Context) (domain.DashboardStats, error) {
	return s.moderationRepository.GetDashboardStats(ctx)
}
