// file: internals/features/members/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	memberController "eaglesfitness_backend/internals/features/members/controller"
)

// AdminMemberRoutes mounts member administration under the admin group.
func AdminMemberRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := memberController.NewMemberController(db)

	members := admin.Group("/members")
	members.Post("/", ctl.Create)
	members.Get("/", ctl.List)
	members.Get("/pending", ctl.ListPending)
	members.Get("/export/csv", ctl.ExportCSV)
	members.Patch("/:id", ctl.Patch)
	members.Post("/:id/approve", ctl.Approve)
	members.Post("/:id/reject", ctl.Reject)
	members.Delete("/:id", ctl.Delete)
}
