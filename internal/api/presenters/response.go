package presenters

import (
	"FoodTracker-Backend/domain"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

var errorCodes = []struct {
	err  error
	code string
}{
	{domain.ErrNoImage, domain.CodeNoImage},
	{domain.ErrInvalidImageFormat, domain.CodeInvalidFileType},
	{domain.ErrImageTooLarge, domain.CodeFileTooLarge},
	{domain.ErrInvalidFoodItems, domain.CodeInvalidFoodItems},
	{domain.ErrGeminiNotConfigured, domain.CodeAnalysisFailed},
	{domain.ErrGeminiProcessingFailed, domain.CodeAnalysisFailed},
	{domain.ErrGeminiUnauthorized, domain.CodeAnalysisFailed},
	{domain.ErrGeminiRateLimited, domain.CodeAnalysisFailed},
	{domain.ErrGeminiBadRequest, domain.CodeAnalysisFailed},
	{domain.ErrTokenNotFound, domain.CodeUnauthorized},
	{domain.ErrTokenExpired, domain.CodeUnauthorized},
	{domain.ErrTokenInvalid, domain.CodeUnauthorized},
	{domain.ErrUnauthorizedAccess, domain.CodeUnauthorized},
	{domain.ErrMealNotFound, domain.CodeNotFound},
	{domain.ErrAnalysisNotFound, domain.CodeNotFound},
}

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// KeyedResponse writes payload as the whole body. The mobile client endpoints use it
// for their flat {success, ...} shapes.
func KeyedResponse(c *fiber.Ctx, status int, payload any) error {
	return c.Status(status).JSON(payload)
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	res := Response{
		Success: false,
		Message: message,
		Code:    ErrorCode(status, err),
	}
	if err != nil {
		res.Error = err.Error()
		if status >= fiber.StatusInternalServerError {
			res.Error = publicError(err)
		}
	}
	return c.Status(status).JSON(res)
}

// publicError hides upstream detail from 5xx bodies: known errors are reported by their
// sentinel text only, anything else as a generic internal error.
func publicError(err error) string {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.err.Error()
		}
	}
	return domain.MessageInternalError
}

// ErrorCode maps an error to the client-facing code, falling back to one derived from
// the HTTP status.
func ErrorCode(status int, err error) string {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return domain.CodeInvalidRequest
	}

	switch status {
	case fiber.StatusBadRequest:
		return domain.CodeInvalidRequest
	case fiber.StatusUnauthorized, fiber.StatusForbidden:
		return domain.CodeUnauthorized
	case fiber.StatusNotFound:
		return domain.CodeNotFound
	case fiber.StatusRequestEntityTooLarge:
		return domain.CodeFileTooLarge
	default:
		return domain.CodeUnknownError
	}
}

// ErrorHandler renders errors that escape the handlers, including fiber's own 404 and
// 413 errors, as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := domain.MessageInternalError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		switch status {
		case fiber.StatusNotFound:
			message = domain.MessageRouteNotFound
		case fiber.StatusRequestEntityTooLarge:
			message = domain.MessageFileTooLarge
			status = fiber.StatusBadRequest
			err = domain.ErrImageTooLarge
		default:
			message = fiberErr.Message
		}
	}

	if status >= fiber.StatusInternalServerError {
		log.Errorf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}
	return ErrorResponse(c, status, message, err)
}
