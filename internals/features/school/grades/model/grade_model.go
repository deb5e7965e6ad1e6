package model

import (
	"time"

	"github.com/google/uuid"

	schoolModel "sekolahku_backend/internals/features/school/schools/model"
)

type GradeModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SchoolID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_grades_school_level_section_year" json:"school_id"`

	GradeLevel   int    `gorm:"not null;uniqueIndex:uq_grades_school_level_section_year" json:"grade_level"`
	Section      string `gorm:"size:10;not null;uniqueIndex:uq_grades_school_level_section_year" json:"section"`
	AcademicYear string `gorm:"size:20;not null;uniqueIndex:uq_grades_school_level_section_year" json:"academic_year"`

	School *schoolModel.SchoolModel `gorm:"foreignKey:SchoolID;constraint:OnDelete:RESTRICT" json:"school,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (GradeModel) TableName() string {
	return "grades"
}
