package views

import (
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedPages(t *testing.T) {
	pages := []string{
		"layouts/main.html",
		"partials/recipe_card.html",
		"partials/pager.html",
		"home/index.html",
		"account/login.html",
		"account/register.html",
		"account/forgot_password.html",
		"account/reset_password.html",
		"user/profile.html",
		"user/edit.html",
		"user/follows.html",
		"recipe/detail.html",
		"recipe/form.html",
		"recipe/notebook.html",
		"recipe/search.html",
		"admin/index.html",
		"admin/moderation.html",
		"admin/reports.html",
		"admin/user_reports.html",
		"admin/users.html",
		"errors/error.html",
	}
	for _, page := range pages {
		_, err := fs.Stat(FS, page)
		require.NoError(t, err, page)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "5 Mar 2024", FormatDate(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)))
}

func TestInitial(t *testing.T) {
	assert.Equal(t, "?", Initial("  "))
	assert.Equal(t, "M", Initial("mario"))
	assert.Equal(t, "É", Initial("élodie"))
}

func TestHasID(t *testing.T) {
	assert.True(t, HasID([]uint{1, 4}, 4))
	assert.False(t, HasID(nil, 4))
}
