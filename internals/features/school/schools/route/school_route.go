package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolController "sekolahku_backend/internals/features/school/schools/controller"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

// SchoolRoutes mounts school CRUD. Reads open to any school member;
// all writes are platform-admin operations.
func SchoolRoutes(r fiber.Router, db *gorm.DB) {
	ctl := schoolController.NewSchoolController(db)

	schools := r.Group("/schools")
	schools.Get("/", authMw.StudentOnly(), ctl.GetAll)
	schools.Get("/:id", authMw.StudentOnly(), ctl.GetByID)
	schools.Post("/", authMw.AdminOnly(), ctl.Create)
	schools.Put("/:id", authMw.AdminOnly(), ctl.Update)
	schools.Delete("/:id", authMw.AdminOnly(), ctl.Delete)
}
