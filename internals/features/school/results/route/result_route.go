package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resultController "sekolahku_backend/internals/features/school/results/controller"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

func ResultRoutes(r fiber.Router, db *gorm.DB) {
	ctl := resultController.NewResultController(db)

	results := r.Group("/results")
	results.Get("/", authMw.StudentOnly(), ctl.GetAll)
	results.Get("/:id", authMw.StudentOnly(), ctl.GetByID)
	results.Post("/", authMw.TeacherOnly(), ctl.Create)
	results.Put("/:id", authMw.TeacherOnly(), ctl.Update)
	results.Delete("/:id", authMw.PrincipalOnly(), ctl.Delete)
}
