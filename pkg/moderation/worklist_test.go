package moderation

import (
	"RecipeHub/domain"
	"RecipeHub/entities"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminID = 1

func report(id, reporter, recipe uint, status string, at time.Time) *entities.Report {
	return &entities.Report{
		ID:         id,
		ReporterID: reporter,
		RecipeID:   recipe,
		Status:     status,
		Timestamp:  entities.Timestamp{CreatedAt: at},
	}
}

func TestBuildWorklistCounts(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	reports := []*entities.Report{
		report(1, adminID, 7, domain.ReportStatusPending, now),
		report(2, 42, 7, domain.ReportStatusPending, now.Add(time.Minute)),
		report(3, 43, 7, domain.ReportStatusResolved, now.Add(-time.Hour)),
	}
	recipes := map[uint]*entities.Recipe{
		7: {ID: 7, UserID: 9, Name: "Ramen", Status: domain.RecipeStatusActive, User: &entities.User{Username: "kenji"}},
	}

	got := BuildWorklist(reports, recipes, adminID)
	require.Len(t, got, 1)

	entry := got[0]
	assert.Equal(t, uint(7), entry.RecipeID)
	assert.Equal(t, 2, entry.PendingCount)
	assert.Equal(t, 3, entry.TotalCount)
	assert.Equal(t, 1, entry.AdminReportCount)
	assert.Equal(t, 1, entry.UserReportCount)
	assert.True(t, entry.IsFlaggedByAdmin)
	assert.Equal(t, "Ramen", entry.RecipeName)
	assert.Equal(t, "kenji", entry.AuthorName)
	assert.Equal(t, domain.DisplayStatusApproved, entry.DisplayStatus)
	assert.Equal(t, now.Add(time.Minute), entry.LatestReportAt)
}

func TestBuildWorklistPendingMatchesStatusCount(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	statuses := []string{domain.ReportStatusPending, domain.ReportStatusResolved, domain.ReportStatusRejected}

	var reports []*entities.Report
	want := map[uint][2]int{} // recipe -> pending, total
	for i := 0; i < 30; i++ {
		recipeID := uint(i%4 + 1)
		status := statuses[i%len(statuses)]
		reports = append(reports, report(uint(i+1), uint(100+i), recipeID, status, now.Add(time.Duration(i)*time.Minute)))

		counts := want[recipeID]
		if status == domain.ReportStatusPending {
			counts[0]++
		}
		counts[1]++
		want[recipeID] = counts
	}

	got := BuildWorklist(reports, nil, adminID)
	require.Len(t, got, len(want))
	for _, entry := range got {
		assert.Equal(t, want[entry.RecipeID][0], entry.PendingCount, "recipe %d", entry.RecipeID)
		assert.Equal(t, want[entry.RecipeID][1], entry.TotalCount, "recipe %d", entry.RecipeID)
		assert.False(t, entry.IsFlaggedByAdmin)
	}
}

func TestBuildWorklistOrder(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	reports := []*entities.Report{
		report(1, 50, 3, domain.ReportStatusResolved, now.Add(time.Hour)),
		report(2, 51, 2, domain.ReportStatusPending, now),
		report(3, 52, 1, domain.ReportStatusPending, now),
		report(4, 53, 4, domain.ReportStatusPending, now.Add(time.Hour)),
		report(5, 54, 4, domain.ReportStatusPending, now),
	}

	got := BuildWorklist(reports, nil, adminID)
	order := make([]uint, 0, len(got))
	for _, e := range got {
		order = append(order, e.RecipeID)
	}
	assert.Equal(t, []uint{4, 1, 2, 3}, order)
}

func TestDisplayStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{domain.RecipeStatusBanned, domain.DisplayStatusBanned},
		{domain.RecipeStatusActive, domain.DisplayStatusApproved},
		{domain.RecipeStatusPending, domain.DisplayStatusPending},
		{domain.RecipeStatusDeleted, domain.DisplayStatusDeleted},
		{"archived", domain.DisplayStatusApproved},
		{"", domain.DisplayStatusApproved},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayStatus(tt.raw))
		})
	}
}

func TestNextRecipeStatus(t *testing.T) {
	tests := []struct {
		name    string
		action  string
		current string
		want    string
		wantErr error
	}{
		{"flag active", ActionFlag, domain.RecipeStatusActive, domain.RecipeStatusBanned, nil},
		{"flag banned", ActionFlag, domain.RecipeStatusBanned, "", domain.ErrInvalidRecipeStatus},
		{"unflag banned", ActionUnflag, domain.RecipeStatusBanned, domain.RecipeStatusActive, nil},
		{"unflag active", ActionUnflag, domain.RecipeStatusActive, "", domain.ErrInvalidRecipeStatus},
		{"approve pending", ActionApprove, domain.RecipeStatusPending, domain.RecipeStatusActive, nil},
		{"ban pending", ActionBan, domain.RecipeStatusPending, domain.RecipeStatusBanned, nil},
		{"ban deleted", ActionBan, domain.RecipeStatusDeleted, "", domain.ErrInvalidRecipeStatus},
		{"unban active", ActionUnban, domain.RecipeStatusActive, "", domain.ErrInvalidRecipeStatus},
		{"unknown action", "archive", domain.RecipeStatusActive, "", domain.ErrInvalidRecipeStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextRecipeStatus(tt.action, tt.current)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateReportStatus(t *testing.T) {
	assert.NoError(t, ValidateReportStatus(domain.ReportStatusResolved))
	assert.NoError(t, ValidateReportStatus(domain.ReportStatusRejected))
	assert.ErrorIs(t, ValidateReportStatus(domain.ReportStatusPending), domain.ErrInvalidReportStatus)
}
