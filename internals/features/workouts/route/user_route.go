// file: internals/features/workouts/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	workoutController "eaglesfitness_backend/internals/features/workouts/controller"
)

func UserWorkoutRoutes(user fiber.Router, db *gorm.DB) {
	exCtl := workoutController.NewExerciseController(db)
	schCtl := workoutController.NewScheduleController(db)

	user.Get("/exercises", exCtl.List)
	user.Get("/schedules", schCtl.MySchedules)
}
