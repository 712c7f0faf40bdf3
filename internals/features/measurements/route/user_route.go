// file: internals/features/measurements/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	measurementController "eaglesfitness_backend/internals/features/measurements/controller"
)

func UserMeasurementRoutes(user fiber.Router, db *gorm.DB) {
	ctl := measurementController.NewMeasurementController(db)

	user.Get("/measurements", ctl.MyMeasurements)
}
