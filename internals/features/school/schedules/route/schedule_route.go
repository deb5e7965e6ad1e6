package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleController "sekolahku_backend/internals/features/school/schedules/controller"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

func ScheduleRoutes(r fiber.Router, db *gorm.DB) {
	ctl := scheduleController.NewScheduleController(db)

	schedules := r.Group("/schedules")
	schedules.Get("/", authMw.StudentOnly(), ctl.GetAll)
	schedules.Get("/:id", authMw.StudentOnly(), ctl.GetByID)
	schedules.Post("/", authMw.TeacherOnly(), ctl.Create)
	schedules.Put("/:id", authMw.TeacherOnly(), ctl.Update)
	schedules.Delete("/:id", authMw.PrincipalOnly(), ctl.Delete)
}
