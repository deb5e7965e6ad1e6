package model

import (
	"time"

	"github.com/google/uuid"
)

// LessonCompletionModel records that a student finished a lesson. The
// (lesson_id, student_id) unique index makes mark-as-complete idempotent
// even under concurrent calls.
type LessonCompletionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LessonID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_lesson_completions_lesson_student" json:"lesson_id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_lesson_completions_lesson_student" json:"student_id"`

	Lesson *LessonModel `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE" json:"lesson,omitempty"`

	CompletedAt time.Time `gorm:"autoCreateTime" json:"completed_at"`
}

func (LessonCompletionModel) TableName() string {
	return "lesson_completions"
}
