package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "eaglesfitness_backend/internals/features/payments/controller"
)

func UserPaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewPaymentController(db)
	r.Get("/payments", ctl.MyPayments)
}
