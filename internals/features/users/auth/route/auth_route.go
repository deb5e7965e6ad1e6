package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "sekolahku_backend/internals/features/users/auth/controller"
	"sekolahku_backend/internals/middlewares"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

// AuthRoutes mounts login on the public group and the session endpoints
// behind token verification.
func AuthRoutes(public fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := public.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)

	session := auth.Group("", authMw.AuthMiddleware(db))
	session.Post("/logout", ctl.Logout)
	session.Get("/me", ctl.Me)
	session.Put("/change-password", ctl.ChangePassword)
}
