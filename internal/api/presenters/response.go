package presenters

import (
	"RecipeHub/domain"
	"RecipeHub/internal/utils"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		res.Error = ErrorText(err)
	}
	return c.Status(statusCode).JSON(res)
}

// ErrorText is the sentence users see for err. Only domain, validation and
// fiber errors are shown as they are; anything else is logged and replaced
// by a generic message.
func ErrorText(err error) string {
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return utils.ValidationMessage(verrs)
	}
	if msg, ok := domain.PublicMessage(err); ok {
		return msg
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Message
	}
	zap.L().Error("internal error", zap.Error(err))
	return domain.MessageUnexpectedError
}
