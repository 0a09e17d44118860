package utils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse sends a standard error response
func ErrorResponse(c *fiber.Ctx, message string, status int) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// NotFoundResponse sends a 404 for a missing entity
func NotFoundResponse(c *fiber.Ctx, entity string) error {
	return ErrorResponse(c, fmt.Sprintf("%s not found", entity), fiber.StatusNotFound)
}

// StatusForError maps a data layer error to an HTTP status. Misses are 404,
// constraint and validation failures are 400, everything else is 500.
func StatusForError(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrInvalidData):
		return fiber.StatusBadRequest
	case errors.As(err, &validationErrs):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// DataErrorResponse sends the response for a failed data layer call. A miss
// is reported as "<entity> not found" rather than the raw error text.
func DataErrorResponse(c *fiber.Ctx, err error, entity string) error {
	status := StatusForError(err)
	if status == fiber.StatusNotFound {
		return NotFoundResponse(c, entity)
	}
	if status == fiber.StatusInternalServerError {
		return ErrorResponse(c, "internal server error", status)
	}
	return ErrorResponse(c, err.Error(), status)
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Error string `json:"error"`
}
