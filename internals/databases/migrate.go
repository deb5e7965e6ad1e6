package database

import (
	"log"

	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	examModel "sekolahku_backend/internals/features/school/exams/model"
	gradeModel "sekolahku_backend/internals/features/school/grades/model"
	lessonModel "sekolahku_backend/internals/features/school/lessons/model"
	moduleModel "sekolahku_backend/internals/features/school/modules/model"
	questionModel "sekolahku_backend/internals/features/school/questions/model"
	resultModel "sekolahku_backend/internals/features/school/results/model"
	scheduleModel "sekolahku_backend/internals/features/school/schedules/model"
	schoolModel "sekolahku_backend/internals/features/school/schools/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
	authModel "sekolahku_backend/internals/features/users/auth/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

// MigrateAll runs AutoMigrate in dependency order so foreign keys resolve.
func MigrateAll() {
	log.Println("📦 Running migrations...")
	err := DB.AutoMigrate(
		&schoolModel.SchoolModel{},
		&userModel.UserModel{},
		&authModel.TokenBlacklistModel{},
		&gradeModel.GradeModel{},
		&teacherModel.TeacherModel{},
		&studentModel.StudentModel{},
		&moduleModel.ModuleModel{},
		&lessonModel.LessonModel{},
		&lessonModel.LessonCompletionModel{},
		&examModel.ExamModel{},
		&questionModel.QuestionModel{},
		&resultModel.ResultModel{},
		&scheduleModel.ScheduleModel{},
		&attendanceModel.AttendanceModel{},
	)
	if err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Migrations complete.")
}
