// file: internals/features/notifications/route/notification_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationController "eaglesfitness_backend/internals/features/notifications/controller"
)

// AdminNotificationRoutes: publish and retract announcements.
func AdminNotificationRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := notificationController.NewNotificationController(db)

	notifications := admin.Group("/notifications")
	notifications.Post("/", ctl.Create)
	notifications.Get("/", ctl.List)
	notifications.Delete("/:id", ctl.Delete)
}

// UserNotificationRoutes: every authenticated member polls the same feed.
func UserNotificationRoutes(user fiber.Router, db *gorm.DB) {
	ctl := notificationController.NewNotificationController(db)

	user.Get("/notifications", ctl.List)
}
