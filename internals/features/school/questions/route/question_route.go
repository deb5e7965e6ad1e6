package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionController "sekolahku_backend/internals/features/school/questions/controller"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

func QuestionRoutes(r fiber.Router, db *gorm.DB) {
	ctl := questionController.NewQuestionController(db)

	questions := r.Group("/questions")
	questions.Get("/", authMw.StudentOnly(), ctl.GetAll)
	questions.Get("/:id", authMw.StudentOnly(), ctl.GetByID)
	questions.Post("/", authMw.TeacherOnly(), ctl.Create)
	questions.Put("/:id", authMw.TeacherOnly(), ctl.Update)
	questions.Delete("/:id", authMw.TeacherOnly(), ctl.Delete)
}
