package domain

import (
	"errors"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	UserStatusActive = "active"
	UserStatusBanned = "banned"
)

var (
	MesaageUserNotAllowed       = "user not allowed"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageLoginRequired        = "please log in to continue"
	MessageAdminRequired        = "administrator access required"
	MessageNotFound             = "the requested page could not be found"
	MessageUnexpectedError      = "something went wrong, please try again"

	ErrParseID        = errors.New("failed to parse id")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrLoginRequired  = errors.New("login required")
	ErrAdminRequired  = errors.New("admin role required")
)

// publicErrors are the errors whose text may be shown to users.
var publicErrors = []error{
	ErrParseID,
	ErrUserNotAllowed,
	ErrTokenNotFound,
	ErrTokenExpired,
	ErrTokenInvalid,
	ErrLoginRequired,
	ErrAdminRequired,
	ErrCommentNotFound,
	ErrCommentEmpty,
	ErrReportNotFound,
	ErrDuplicateReport,
	ErrCannotReportSelf,
	ErrInvalidReportStatus,
	ErrInvalidRecipeStatus,
	ErrCannotBanAdministrator,
	ErrRecipeNotFound,
	ErrUnauthorizedRecipeAccess,
	ErrNoIngredients,
	ErrNoSteps,
	ErrUnknownCategory,
	ErrUnsupportedMedia,
	ErrMediaTooLarge,
	ErrCatalogEntryExists,
	ErrCatalogNameRequired,
	ErrInvalidSortKey,
	ErrUserNotFound,
	ErrEmailAlreadyExists,
	ErrUsernameTaken,
	ErrInvalidCredentials,
	ErrUserBanned,
	ErrPasswordMismatch,
	ErrWrongPassword,
	ErrAlreadyVerified,
	ErrEmailNotVerified,
	ErrResetLinkUsed,
	ErrCannotFollowSelf,
	ErrInvalidTokenPurpose,
}

// PublicMessage returns the text of the first user facing error in err's
// chain. Wrapping context is dropped.
func PublicMessage(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	for _, pe := range publicErrors {
		if errors.Is(err, pe) {
			return pe.Error(), true
		}
	}
	return "", false
}

// Pagination mirrors the page/limit query parameters accepted by list pages.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
	}
}
