package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "eaglesfitness_backend/internals/features/attendance/controller"
)

func AdminAttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attendanceController.NewAttendanceController(db)
	att := r.Group("/attendance")
	{
		att.Post("/", ctl.Mark)
		att.Get("/", ctl.ListByDate)
	}
}
