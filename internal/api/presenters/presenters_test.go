package presenters

import (
	"RecipeHub/domain"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedirectBack(t *testing.T) {
	app := fiber.New()
	app.Get("/back", func(c *fiber.Ctx) error {
		return c.SendString(RedirectBack(c, "/fallback"))
	})

	tests := []struct {
		name    string
		referer string
		want    string
	}{
		{name: "same host", referer: "http://example.com/Recipe/Detail/4", want: "/Recipe/Detail/4"},
		{name: "same host with query", referer: "http://example.com/Admin/Reports?page=2", want: "/Admin/Reports?page=2"},
		{name: "missing", want: "/fallback"},
		{name: "other host", referer: "http://evil.test/Recipe/Detail/4", want: "/fallback"},
		{name: "host prefix", referer: "http://example.com.evil.test/x", want: "/fallback"},
		{name: "protocol relative", referer: "http://example.com//evil.test/x", want: "/fallback"},
		{name: "backslash", referer: `http://example.com/\evil.test/x`, want: "/fallback"},
		{name: "bare host", referer: "http://example.com", want: "/fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/back", nil)
			if tt.referer != "" {
				req.Header.Set(fiber.HeaderReferer, tt.referer)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(body))
		})
	}
}

func TestIsLocalPath(t *testing.T) {
	assert.True(t, isLocalPath("/"))
	assert.True(t, isLocalPath("/User/Profile/3"))
	assert.False(t, isLocalPath(""))
	assert.False(t, isLocalPath("User/Profile/3"))
	assert.False(t, isLocalPath("//evil.test"))
	assert.False(t, isLocalPath(`/\evil.test`))
	assert.False(t, isLocalPath("/\t/evil.test"))
}

func TestErrorText(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
	}
	verr := validator.New().Struct(form{})
	require.Error(t, verr)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "domain", err: domain.ErrCannotFollowSelf, want: domain.ErrCannotFollowSelf.Error()},
		{name: "wrapped domain", err: fmt.Errorf("create recipe: %w", domain.ErrNoSteps), want: domain.ErrNoSteps.Error()},
		{name: "validation", err: verr, want: "Email is required"},
		{name: "fiber", err: fiber.ErrNotFound, want: "Not Found"},
		{name: "infrastructure", err: errors.New("dial tcp 10.0.0.5:5432: connection refused"), want: domain.MessageUnexpectedError},
		{name: "nil", err: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorText(tt.err))
		})
	}
}

func TestErrorResponseHidesInternalErrors(t *testing.T) {
	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, errors.New("pq: password authentication failed"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "pq:")
	assert.Contains(t, string(body), domain.MessageUnexpectedError)
}
