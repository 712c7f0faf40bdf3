package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "eaglesfitness_backend/internals/features/payments/controller"
)

func AdminPaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewPaymentController(db)
	payments := r.Group("/payments")
	{
		payments.Post("/", ctl.Create)
		payments.Get("/", ctl.List)
		payments.Get("/export/csv", ctl.ExportCSV)
	}
}
