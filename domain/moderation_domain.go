package domain

import (
	"errors"
	"time"
)

const (
	ReportStatusPending  = "in progress"
	ReportStatusResolved = "resolved"
	ReportStatusRejected = "rejected"

	DisplayStatusBanned   = "Banned"
	DisplayStatusApproved = "Approved"
	DisplayStatusPending  = "Pending"
	DisplayStatusDeleted  = "Deleted"

	AdminFlagReason = "Flagged by administrator"
)

var (
	MessageSuccessReport           = "thank you, the report has been submitted"
	MessageSuccessGetWorklist      = "success get moderation worklist"
	MessageSuccessModerationAction = "moderation action applied"
	MessageSuccessGetReports       = "success get reports"
	MessageSuccessGetUsers         = "success get users"
	MessageSuccessGetDashboard     = "success get dashboard"

	MessageFailedReport           = "failed to submit report"
	MessageFailedGetWorklist      = "failed to get moderation worklist"
	MessageFailedModerationAction = "failed to apply moderation action"
	MessageFailedGetReports       = "failed to get reports"
	MessageFailedGetUsers         = "failed to get users"
	MessageFailedGetDashboard     = "failed to get dashboard"

	ErrReportNotFound         = errors.New("report not found")
	ErrDuplicateReport        = errors.New("you already have a pending report for this target")
	ErrCannotReportSelf       = errors.New("you cannot report yourself")
	ErrInvalidReportStatus    = errors.New("invalid report status transition")
	ErrInvalidRecipeStatus    = errors.New("invalid recipe status transition")
	ErrCannotBanAdministrator = errors.New("administrators cannot be banned")
)

type (
	ReportRecipeRequest struct {
		RecipeID uint   `json:"recipe_id" form:"recipe_id" validate:"required"`
		Reason   string `json:"reason" form:"reason" validate:"required,max=1000"`
	}

	ReportUserRequest struct {
		UserID uint   `json:"user_id" form:"user_id" validate:"required"`
		Reason string `json:"reason" form:"reason" validate:"required,max=1000"`
	}

	// WorklistEntry summarises every report filed against one recipe.
	WorklistEntry struct {
		RecipeID         uint      `json:"recipe_id"`
		RecipeName       string    `json:"recipe_name"`
		ThumbnailURL     string    `json:"thumbnail_url,omitempty"`
		AuthorID         uint      `json:"author_id"`
		AuthorName       string    `json:"author_name"`
		RawStatus        string    `json:"raw_status"`
		DisplayStatus    string    `json:"display_status"`
		TotalCount       int       `json:"total_count"`
		PendingCount     int       `json:"pending_count"`
		AdminReportCount int       `json:"admin_report_count"`
		UserReportCount  int       `json:"user_report_count"`
		IsFlaggedByAdmin bool      `json:"is_flagged_by_admin"`
		LatestReportAt   time.Time `json:"latest_report_at"`
	}

	ReportDetail struct {
		ID           uint      `json:"id"`
		TargetID     uint      `json:"target_id"`
		TargetName   string    `json:"target_name"`
		ReporterID   uint      `json:"reporter_id"`
		ReporterName string    `json:"reporter_name"`
		Reason       string    `json:"reason"`
		Status       string    `json:"status"`
		CreatedAt    time.Time `json:"created_at"`
	}

	DashboardStats struct {
		TotalUsers         int64            `json:"total_users"`
		BannedUsers        int64            `json:"banned_users"`
		RecipesByStatus    map[string]int64 `json:"recipes_by_status"`
		PendingReports     int64            `json:"pending_reports"`
		PendingUserReports int64            `json:"pending_user_reports"`
	}
)
