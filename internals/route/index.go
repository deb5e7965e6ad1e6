package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "sekolahku_backend/internals/features/school/attendance/route"
	examRoute "sekolahku_backend/internals/features/school/exams/route"
	gradeRoute "sekolahku_backend/internals/features/school/grades/route"
	lessonRoute "sekolahku_backend/internals/features/school/lessons/route"
	moduleRoute "sekolahku_backend/internals/features/school/modules/route"
	questionRoute "sekolahku_backend/internals/features/school/questions/route"
	resultRoute "sekolahku_backend/internals/features/school/results/route"
	scheduleRoute "sekolahku_backend/internals/features/school/schedules/route"
	schoolRoute "sekolahku_backend/internals/features/school/schools/route"
	studentRoute "sekolahku_backend/internals/features/school/students/route"
	teacherRoute "sekolahku_backend/internals/features/school/teachers/route"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	userRoute "sekolahku_backend/internals/features/users/user/route"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every feature router. Everything under /api/u requires
// a verified token; role policies are attached per route inside each
// feature's route file.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	authRoute.AuthRoutes(api, db)

	protected := api.Group("/u", authMw.AuthMiddleware(db))
	schoolRoute.SchoolRoutes(protected, db)
	gradeRoute.GradeRoutes(protected, db)
	moduleRoute.ModuleRoutes(protected, db)
	lessonRoute.LessonRoutes(protected, db)
	examRoute.ExamRoutes(protected, db)
	questionRoute.QuestionRoutes(protected, db)
	resultRoute.ResultRoutes(protected, db)
	scheduleRoute.ScheduleRoutes(protected, db)
	attendanceRoute.AttendanceRoutes(protected, db)
	studentRoute.StudentRoutes(protected, db)
	teacherRoute.TeacherRoutes(protected, db)
	userRoute.UserRoutes(protected, db)
}
