package model

import (
	"time"

	"github.com/google/uuid"

	examModel "sekolahku_backend/internals/features/school/exams/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
)

type ResultModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SchoolID uuid.UUID `gorm:"type:uuid;not null;index" json:"school_id"`

	ExamID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_results_exam_student" json:"exam_id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_results_exam_student" json:"student_id"`
	Score     int       `gorm:"not null;default:0" json:"score"`
	Remark    string    `gorm:"size:255" json:"remark"`

	Exam    *examModel.ExamModel       `gorm:"foreignKey:ExamID;constraint:OnDelete:RESTRICT" json:"exam,omitempty"`
	Student *studentModel.StudentModel `gorm:"foreignKey:StudentID;constraint:OnDelete:RESTRICT" json:"student,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ResultModel) TableName() string {
	return "results"
}
