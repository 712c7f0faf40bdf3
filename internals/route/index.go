// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "eaglesfitness_backend/internals/features/attendance/route"
	measurementRoute "eaglesfitness_backend/internals/features/measurements/route"
	memberRoute "eaglesfitness_backend/internals/features/members/route"
	notificationRoute "eaglesfitness_backend/internals/features/notifications/route"
	paymentRoute "eaglesfitness_backend/internals/features/payments/route"
	authRoute "eaglesfitness_backend/internals/features/users/auth/route"
	workoutRoute "eaglesfitness_backend/internals/features/workouts/route"
	authMiddleware "eaglesfitness_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature vertical onto the app.
//
//	/api/auth  — register/login, public
//	/api/a     — admin surface (front desk + trainers)
//	/api/u     — logged-in member surface
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	authRoute.AuthRoutes(app, db)

	api := app.Group("/api")

	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.IsAdmin(),
	)
	memberRoute.AdminMemberRoutes(admin, db)
	paymentRoute.AdminPaymentRoutes(admin, db)
	attendanceRoute.AdminAttendanceRoutes(admin, db)
	measurementRoute.AdminMeasurementRoutes(admin, db)
	workoutRoute.AdminWorkoutRoutes(admin, db)
	notificationRoute.AdminNotificationRoutes(admin, db)

	user := api.Group("/u",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.IsMemberOrAdmin(),
	)
	memberRoute.UserMemberRoutes(user, db)
	paymentRoute.UserPaymentRoutes(user, db)
	attendanceRoute.UserAttendanceRoutes(user, db)
	measurementRoute.UserMeasurementRoutes(user, db)
	workoutRoute.UserWorkoutRoutes(user, db)
	notificationRoute.UserNotificationRoutes(user, db)
}
