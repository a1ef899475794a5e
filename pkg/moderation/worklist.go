package moderation

import (
	"RecipeHub/domain"
	"RecipeHub/entities"
	"sort"
)

// Recipe moderation actions.
const (
	ActionApprove = "approve"
	ActionBan     = "ban"
	ActionUnban   = "unban"
	ActionFlag    = "flag"
	ActionUnflag  = "unflag"
)

var displayStatus = map[string]string{
	domain.RecipeStatusBanned:  domain.DisplayStatusBanned,
	domain.RecipeStatusActive:  domain.DisplayStatusApproved,
	domain.RecipeStatusPending: domain.DisplayStatusPending,
	domain.RecipeStatusDeleted: domain.DisplayStatusDeleted,
}

// DisplayStatus maps a raw recipe status to the label shown to admins.
// Unknown values display as Approved.
func DisplayStatus(raw string) string {
	if label, ok := displayStatus[raw]; ok {
		return label
	}
	return domain.DisplayStatusApproved
}

// recipeTransitions lists the statuses each action may start from and the
// status it leads to.
var recipeTransitions = map[string]struct {
	from []string
	to   string
}{
	ActionApprove: {from: []string{domain.RecipeStatusActive, domain.RecipeStatusPending, domain.RecipeStatusBanned}, to: domain.RecipeStatusActive},
	ActionBan:     {from: []string{domain.RecipeStatusActive, domain.RecipeStatusPending, domain.RecipeStatusBanned}, to: domain.RecipeStatusBanned},
	ActionUnban:   {from: []string{domain.RecipeStatusBanned}, to: domain.RecipeStatusActive},
	ActionFlag:    {from: []string{domain.RecipeStatusActive}, to: domain.RecipeStatusBanned},
	ActionUnflag:  {from: []string{domain.RecipeStatusBanned}, to: domain.RecipeStatusActive},
}

// NextRecipeStatus returns the status a recipe moves to when action is
// applied to it, or ErrInvalidRecipeStatus when the action does not apply.
func NextRecipeStatus(action, current string) (string, error) {
	t, ok := recipeTransitions[action]
	if !ok {
		return "", domain.ErrInvalidRecipeStatus
	}
	for _, from := range t.from {
		if from == current {
			return t.to, nil
		}
	}
	return "", domain.ErrInvalidRecipeStatus
}

// ValidateReportStatus checks a report status update. Reports only move to
// a terminal status; an admin may switch between the two terminal ones.
func ValidateReportStatus(to string) error {
	switch to {
	case domain.ReportStatusResolved, domain.ReportStatusRejected:
		return nil
	default:
		return domain.ErrInvalidReportStatus
	}
}

// BuildWorklist groups reports by recipe. recipes supplies the name, status
// and author of each reported recipe; a report whose recipe is missing still
// gets an entry. Pending reports are attributed to adminID or to ordinary
// users. Entries are ordered by pending count, then latest report, then
// recipe id.
func BuildWorklist(reports []*entities.Report, recipes map[uint]*entities.Recipe, adminID uint) []domain.WorklistEntry {
	index := make(map[uint]int)
	entries := make([]domain.WorklistEntry, 0)

	for _, report := range reports {
		i, ok := index[report.RecipeID]
		if !ok {
			entry := domain.WorklistEntry{RecipeID: report.RecipeID}
			if recipe, found := recipes[report.RecipeID]; found {
				entry.RecipeName = recipe.Name
				entry.ThumbnailURL = recipe.ThumbnailURL
				entry.AuthorID = recipe.UserID
				entry.RawStatus = recipe.Status
				if recipe.User != nil {
					entry.AuthorName = recipe.User.DisplayName()
				}
			}
			entry.DisplayStatus = DisplayStatus(entry.RawStatus)
			entries = append(entries, entry)
			i = len(entries) - 1
			index[report.RecipeID] = i
		}

		entry := &entries[i]
		entry.TotalCount++
		if report.CreatedAt.After(entry.LatestReportAt) {
			entry.LatestReportAt = report.CreatedAt
		}
		if report.Status != domain.ReportStatusPending {
			continue
		}
		entry.PendingCount++
		if report.ReporterID == adminID {
			entry.AdminReportCount++
		} else {
			entry.UserReportCount++
		}
	}

	for i := range entries {
		entries[i].IsFlaggedByAdmin = entries[i].AdminReportCount > 0
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.PendingCount != b.PendingCount {
			return a.PendingCount > b.PendingCount
		}
		if !a.LatestReportAt.Equal(b.LatestReportAt) {
			return a.LatestReportAt.After(b.LatestReportAt)
		}
		return a.RecipeID < b.RecipeID
	})
	return entries
}
