package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "eaglesfitness_backend/internals/features/attendance/controller"
)

func UserAttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attendanceController.NewAttendanceController(db)
	r.Get("/attendance", ctl.MyAttendance)
}
