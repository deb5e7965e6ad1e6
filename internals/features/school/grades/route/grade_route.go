package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradeController "sekolahku_backend/internals/features/school/grades/controller"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

func GradeRoutes(r fiber.Router, db *gorm.DB) {
	ctl := gradeController.NewGradeController(db)

	grades := r.Group("/grades")
	grades.Get("/", authMw.StudentOnly(), ctl.GetAll)
	grades.Get("/:id", authMw.StudentOnly(), ctl.GetByID)
	grades.Post("/", authMw.TeacherOnly(), ctl.Create)
	grades.Put("/:id", authMw.TeacherOnly(), ctl.Update)
	grades.Delete("/:id", authMw.TeacherOnly(), ctl.Delete)
}
