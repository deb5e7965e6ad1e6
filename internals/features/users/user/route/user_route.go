package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "sekolahku_backend/internals/features/users/user/controller"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)

	users := r.Group("/users")
	users.Get("/", authMw.StaffOnly(), ctl.GetAll)
	users.Get("/:id", authMw.StaffOnly(), ctl.GetByID)
	users.Post("/", authMw.StaffOnly(), ctl.Create)
	users.Put("/:id", authMw.StaffOnly(), ctl.Update)
	users.Delete("/:id", authMw.AdminOnly(), ctl.Delete)
}
