package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	examModel "sekolahku_backend/internals/features/school/exams/model"
)

// QuestionModel has no school_id column of its own: its tenant is the
// exam it belongs to. Deleting an exam deletes its questions.
type QuestionModel struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ExamID uuid.UUID `gorm:"type:uuid;not null;index" json:"exam_id"`

	QuestionText string `gorm:"type:text;not null" json:"question_text"`
	// answer options as [{"key":"a","text":"..."}, ...]
	Options       datatypes.JSON `gorm:"type:jsonb" json:"options"`
	CorrectOption string         `gorm:"size:10" json:"correct_option"`
	Marks         int            `gorm:"not null;default:1" json:"marks"`

	Exam *examModel.ExamModel `gorm:"foreignKey:ExamID;constraint:OnDelete:CASCADE" json:"exam,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (QuestionModel) TableName() string {
	return "questions"
}
