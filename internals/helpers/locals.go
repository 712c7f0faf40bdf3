package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"eaglesfitness_backend/internals/constants"
)

// GetUserID reads the authenticated user id stored by the auth middleware.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals("user_id").(string)
	if !ok || v == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user id")
	}
	return id, nil
}

// GetRole reads the role claim stored by the auth middleware.
func GetRole(c *fiber.Ctx) string {
	v, _ := c.Locals("role").(string)
	return v
}

func IsAdmin(c *fiber.Ctx) bool  { return GetRole(c) == constants.RoleAdmin }
func IsMember(c *fiber.Ctx) bool { return GetRole(c) == constants.RoleMember }
