package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "sekolahku_backend/internals/features/school/attendance/controller"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attendanceController.NewAttendanceController(db)

	attendance := r.Group("/attendance")
	attendance.Get("/", authMw.TeacherOnly(), ctl.GetAll)
	// fixed path before the :id wildcard
	attendance.Get("/students", authMw.TeacherOnly(), ctl.Roster)
	attendance.Get("/:id", authMw.TeacherOnly(), ctl.GetByID)
	attendance.Post("/save", authMw.TeacherOnly(), ctl.Save)
	attendance.Delete("/:id", authMw.TeacherOnly(), ctl.Delete)
}
