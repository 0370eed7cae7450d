package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/uushop/shopping-list-go/internal/types"
)

// CommandError sends a response whose body carries only a uuAppErrorMap with
// a single entry under the given diagnostic code
func CommandError(c *fiber.Ctx, status int, code, message string, details ...string) error {
	errorMap := types.NewErrorMap()
	errorMap[code] = types.AppError{
		Message:  message,
		Details:  details,
		Severity: types.SeverityError,
	}
	return c.Status(status).JSON(fiber.Map{
		"uuAppErrorMap": errorMap,
	})
}

// InvalidDtoIn sends the 400 "<command>/invalidDtoIn" response with the
// per-field validation messages
func InvalidDtoIn(c *fiber.Ctx, command string, details []string) error {
	return CommandError(c, fiber.StatusBadRequest, command+"/invalidDtoIn", "DtoIn is not valid.", details...)
}

// ErrorResponseStruct documents the error body shape for swagger
type ErrorResponseStruct struct {
	UUAppErrorMap map[string]types.AppError `json:"uuAppErrorMap"`
}
