package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/lessons/model"
	helper "sekolahku_backend/internals/helpers"
)

// CompletionService marks lessons complete for students. Marking is
// idempotent: a repeat call for the same (student, lesson) pair is a
// silent no-op.
type CompletionService struct {
	DB *gorm.DB
}

func NewCompletionService(db *gorm.DB) *CompletionService {
	return &CompletionService{DB: db}
}

// MarkComplete returns (created, err). created is false when the pair
// already existed.
func (s *CompletionService) MarkComplete(ctx context.Context, lessonID, studentID uuid.UUID) (bool, error) {
	var existing model.LessonCompletionModel
	err := s.DB.WithContext(ctx).
		Where("lesson_id = ? AND student_id = ?", lessonID, studentID).
		First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	row := model.LessonCompletionModel{LessonID: lessonID, StudentID: studentID}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		// lost a race with an identical mark: still a no-op, not an error
		if helper.IsUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *CompletionService) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.LessonCompletionModel, error) {
	var rows []model.LessonCompletionModel
	err := s.DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		Find(&rows).Error
	return rows, err
}
