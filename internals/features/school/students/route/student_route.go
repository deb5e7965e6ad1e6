package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "sekolahku_backend/internals/features/school/students/controller"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentController.NewStudentController(db)

	students := r.Group("/students")
	students.Get("/", authMw.StudentOnly(), ctl.GetAll)
	students.Get("/:id", authMw.StudentOnly(), ctl.GetByID)
	students.Post("/", authMw.PrincipalOnly(), ctl.Create)
	students.Post("/import", authMw.PrincipalOnly(), ctl.Import)
	students.Put("/:id", authMw.PrincipalOnly(), ctl.Update)
	students.Delete("/:id", authMw.PrincipalOnly(), ctl.Delete)
}
