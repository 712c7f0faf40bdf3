// file: internals/features/workouts/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	workoutController "eaglesfitness_backend/internals/features/workouts/controller"
)

func AdminWorkoutRoutes(admin fiber.Router, db *gorm.DB) {
	exCtl := workoutController.NewExerciseController(db)
	schCtl := workoutController.NewScheduleController(db)

	exercises := admin.Group("/exercises")
	exercises.Post("/", exCtl.Create)
	exercises.Get("/", exCtl.List)
	exercises.Delete("/:id", exCtl.Delete)

	schedules := admin.Group("/schedules")
	schedules.Post("/", schCtl.Create)
	schedules.Get("/member/:member_id", schCtl.ListByMember)
}
