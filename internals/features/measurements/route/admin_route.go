// file: internals/features/measurements/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	measurementController "eaglesfitness_backend/internals/features/measurements/controller"
)

func AdminMeasurementRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := measurementController.NewMeasurementController(db)

	measurements := admin.Group("/measurements")
	measurements.Post("/", ctl.Create)
	measurements.Get("/member/:member_id", ctl.ListByMember)
}
