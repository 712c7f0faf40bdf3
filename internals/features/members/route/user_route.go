// file: internals/features/members/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	memberController "eaglesfitness_backend/internals/features/members/controller"
)

// UserMemberRoutes exposes the member's own profile.
func UserMemberRoutes(user fiber.Router, db *gorm.DB) {
	ctl := memberController.NewMemberController(db)

	user.Get("/profile", ctl.MyProfile)
}
