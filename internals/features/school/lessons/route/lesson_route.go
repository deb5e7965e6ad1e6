package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lessonController "sekolahku_backend/internals/features/school/lessons/controller"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

func LessonRoutes(r fiber.Router, db *gorm.DB) {
	ctl := lessonController.NewLessonController(db)

	lessons := r.Group("/lessons")
	lessons.Get("/", authMw.StudentOnly(), ctl.GetAll)
	lessons.Get("/:id", authMw.StudentOnly(), ctl.GetByID)
	lessons.Post("/", authMw.TeacherOnly(), ctl.Create)
	lessons.Put("/:id", authMw.TeacherOnly(), ctl.Update)
	lessons.Delete("/:id", authMw.TeacherOnly(), ctl.Delete)

	// students mark their own completion
	lessons.Post("/:id/complete", authMw.StudentOnly(), ctl.MarkComplete)
}
