package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	lessonModel "sekolahku_backend/internals/features/school/lessons/model"
	scheduleModel "sekolahku_backend/internals/features/school/schedules/model"
	"sekolahku_backend/internals/features/school/teachers/dto"
	"sekolahku_backend/internals/features/school/teachers/model"
	authService "sekolahku_backend/internals/features/users/auth/service"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type TeacherService struct {
	DB *gorm.DB
}

func NewTeacherService(db *gorm.DB) *TeacherService {
	return &TeacherService{DB: db}
}

// CreateWithUser inserts the teacher and its user account atomically.
func (s *TeacherService) CreateWithUser(ctx context.Context, p helperAuth.Principal, req *dto.TeacherCreateRequest) (*model.TeacherModel, error) {
	teacher := req.ToModel()

	if p.IsSuperAdmin() {
		if teacher.SchoolID == uuid.Nil && p.HasSchool() {
			teacher.SchoolID = p.SchoolID
		}
	} else {
		if !p.HasSchool() {
			return nil, fiber.NewError(fiber.StatusForbidden, "No school in token")
		}
		teacher.SchoolID = p.SchoolID
	}

	password := req.Password
	if password == "" {
		password = req.EmployeeID
	}
	hashed, err := authService.HashPassword(password)
	if err != nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		schoolID := teacher.SchoolID
		account := userModel.UserModel{
			UserName: req.EmployeeID,
			FullName: req.FullName,
			Email:    strings.ToLower(strings.TrimSpace(req.Email)),
			Password: hashed,
			Role:     constants.RoleTeacher,
			SchoolID: &schoolID,
			IsActive: true,
		}
		if err := tx.Create(&account).Error; err != nil {
			return err
		}
		teacher.UserID = &account.ID
		return tx.Create(teacher).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Employee ID or email already in use")
		}
		return nil, err
	}
	return teacher, nil
}

// Report summarizes the caller's own lessons and schedules. A principal
// without a teacher identity is rejected outright — never matched against
// an empty ID.
func (s *TeacherService) Report(ctx context.Context, p helperAuth.Principal) (*dto.TeacherReport, error) {
	if !p.HasTeacher() {
		return nil, fiber.NewError(fiber.StatusForbidden, "No teacher identity in token")
	}

	var teacher model.TeacherModel
	if err := s.DB.WithContext(ctx).First(&teacher, "id = ?", p.TeacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Teacher not found")
		}
		return nil, err
	}

	report := &dto.TeacherReport{TeacherID: teacher.ID, FullName: teacher.FullName}
	if err := s.DB.WithContext(ctx).
		Model(&lessonModel.LessonModel{}).
		Where("created_by_teacher_id = ?", teacher.ID).
		Count(&report.LessonCount).Error; err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).
		Model(&scheduleModel.ScheduleModel{}).
		Where("teacher_id = ?", teacher.ID).
		Count(&report.ScheduleCount).Error; err != nil {
		return nil, err
	}
	return report, nil
}
