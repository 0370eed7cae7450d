package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/uushop/shopping-list-go/internal/utils"
	"github.com/uushop/shopping-list-go/internal/validation"
)

// bindBody parses the JSON request body into dtoIn and runs its schema.
// Unknown body fields are ignored. Returns ok=false with the invalidDtoIn
// response already written when the input is rejected.
func bindBody(c *fiber.Ctx, command string, dtoIn interface{}) (bool, error) {
	if err := c.BodyParser(dtoIn); err != nil {
		return false, utils.InvalidDtoIn(c, command, []string{"request body is not valid JSON"})
	}
	if details := validation.Check(dtoIn); len(details) > 0 {
		return false, utils.InvalidDtoIn(c, command, details)
	}
	return true, nil
}

// bindQuery is bindBody for query-string inputs of GET commands
func bindQuery(c *fiber.Ctx, command string, dtoIn interface{}) (bool, error) {
	if err := c.QueryParser(dtoIn); err != nil {
		return false, utils.InvalidDtoIn(c, command, []string{"query parameters are not valid"})
	}
	if details := validation.Check(dtoIn); len(details) > 0 {
		return false, utils.InvalidDtoIn(c, command, details)
	}
	return true, nil
}

// internalError logs the unexpected failure and responds 500 without leaking
// internals to the caller
func internalError(c *fiber.Ctx, command string, err error) error {
	log.Printf("%s: unexpected error: %v", command, err)
	return utils.CommandError(c, fiber.StatusInternalServerError,
		"system/internalError", "Unexpected error.")
}
