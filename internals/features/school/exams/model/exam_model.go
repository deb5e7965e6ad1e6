package model

import (
	"time"

	"github.com/google/uuid"

	gradeModel "sekolahku_backend/internals/features/school/grades/model"
	moduleModel "sekolahku_backend/internals/features/school/modules/model"
)

type ExamModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SchoolID uuid.UUID `gorm:"type:uuid;not null;index" json:"school_id"`

	Title    string     `gorm:"size:150;not null" json:"title"`
	ExamDate *time.Time `json:"exam_date,omitempty"`
	MaxScore int        `gorm:"not null;default:100" json:"max_score"`

	ModuleID *uuid.UUID               `gorm:"type:uuid;index" json:"module_id,omitempty"`
	Module   *moduleModel.ModuleModel `gorm:"foreignKey:ModuleID;constraint:OnDelete:SET NULL" json:"module,omitempty"`

	GradeID *uuid.UUID             `gorm:"type:uuid;index" json:"grade_id,omitempty"`
	Grade   *gradeModel.GradeModel `gorm:"foreignKey:GradeID;constraint:OnDelete:SET NULL" json:"grade,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ExamModel) TableName() string {
	return "exams"
}
