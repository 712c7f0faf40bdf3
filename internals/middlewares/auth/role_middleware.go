package auth

import (
	"github.com/gofiber/fiber/v2"

	"eaglesfitness_backend/internals/constants"
)

// RequireRole gates a route tree on the role claim set by AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Access denied")
		}
		return c.Next()
	}
}

func IsAdmin() fiber.Handler {
	return RequireRole(constants.RoleAdmin)
}

func IsMemberOrAdmin() fiber.Handler {
	return RequireRole(constants.RoleMember, constants.RoleAdmin)
}
