package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"hirepilot/internal/apperr"
	"hirepilot/internal/models"
)

var validate = validator.New()

// respondError maps any error onto the closed error-code set and its HTTP
// status. The full chain is logged; the response carries only code and
// message.
func respondError(c *fiber.Ctx, err error) error {
	appErr := apperr.From(err)

	log.Printf("❌ %s %s failed: %v", c.Method(), c.Path(), err)

	return c.Status(appErr.HTTPStatus()).JSON(models.ErrorResponse{
		Error: appErr.Message,
		Code:  string(appErr.Code),
	})
}
