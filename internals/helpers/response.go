package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Response body untuk entity = JSON apa adanya (tanpa envelope),
// error selalu {"message": "..."}, mengikuti kontrak API frontend.

func JsonOK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func JsonCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// JsonDeleted: 204, body kosong.
func JsonDeleted(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"message": message,
	})
}

// ValidationMessage meratakan validator.ValidationErrors jadi satu pesan
// yang bisa dibaca manusia ("school_name is required; role must be one of ...").
func ValidationMessage(err error) string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid input"
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "oneof":
			parts = append(parts, fe.Field()+" must be one of: "+fe.Param())
		case "email":
			parts = append(parts, fe.Field()+" must be a valid email")
		case "gte":
			parts = append(parts, fe.Field()+" must be >= "+fe.Param())
		case "lte":
			parts = append(parts, fe.Field()+" must be <= "+fe.Param())
		default:
			parts = append(parts, fe.Field()+" is invalid ("+fe.Tag()+")")
		}
	}
	return strings.Join(parts, "; ")
}
