package model

import (
	"time"

	"github.com/google/uuid"

	gradeModel "sekolahku_backend/internals/features/school/grades/model"
)

type ModuleModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SchoolID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_modules_school_grade_name" json:"school_id"`
	GradeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_modules_school_grade_name" json:"grade_id"`

	ModuleName  string `gorm:"size:100;not null;uniqueIndex:uq_modules_school_grade_name" json:"module_name"`
	Description string `gorm:"type:text" json:"description"`

	Grade *gradeModel.GradeModel `gorm:"foreignKey:GradeID;constraint:OnDelete:RESTRICT" json:"grade,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ModuleModel) TableName() string {
	return "modules"
}
