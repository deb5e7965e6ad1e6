package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherController "sekolahku_backend/internals/features/school/teachers/controller"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

func TeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctl := teacherController.NewTeacherController(db)

	teachers := r.Group("/teachers")
	teachers.Get("/", authMw.StudentOnly(), ctl.GetAll)
	// fixed path before the :id wildcard
	teachers.Get("/report", authMw.TeacherOnly(), ctl.Report)
	teachers.Get("/:id", authMw.StudentOnly(), ctl.GetByID)
	teachers.Post("/", authMw.StaffOnly(), ctl.Create)
	teachers.Put("/:id", authMw.StaffOnly(), ctl.Update)
	teachers.Delete("/:id", authMw.AdminOnly(), ctl.Delete)
}
