package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	examController "sekolahku_backend/internals/features/school/exams/controller"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

func ExamRoutes(r fiber.Router, db *gorm.DB) {
	ctl := examController.NewExamController(db)

	exams := r.Group("/exams")
	exams.Get("/", authMw.StudentOnly(), ctl.GetAll)
	exams.Get("/:id", authMw.StudentOnly(), ctl.GetByID)
	exams.Post("/", authMw.TeacherOnly(), ctl.Create)
	exams.Put("/:id", authMw.TeacherOnly(), ctl.Update)
	exams.Delete("/:id", authMw.TeacherOnly(), ctl.Delete)
}
