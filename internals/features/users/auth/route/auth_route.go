package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "eaglesfitness_backend/internals/features/users/auth/controller"
	authMw "eaglesfitness_backend/internals/middlewares/auth"
	middlewares "eaglesfitness_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	{
		auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
		auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)

		auth.Post("/logout", authMw.AuthMiddleware(db), ctl.Logout)
		auth.Get("/me", authMw.AuthMiddleware(db), ctl.Me)
		auth.Post("/change-password", authMw.AuthMiddleware(db), ctl.ChangePassword)
	}
}
