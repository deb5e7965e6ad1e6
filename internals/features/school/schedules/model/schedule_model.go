package model

import (
	"time"

	"github.com/google/uuid"

	gradeModel "sekolahku_backend/internals/features/school/grades/model"
	moduleModel "sekolahku_backend/internals/features/school/modules/model"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
)

type ScheduleModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SchoolID uuid.UUID `gorm:"type:uuid;not null;index" json:"school_id"`

	GradeID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"grade_id"`
	ModuleID uuid.UUID  `gorm:"type:uuid;not null;index" json:"module_id"`
	TeacherID *uuid.UUID `gorm:"type:uuid;index" json:"teacher_id,omitempty"`

	// 1 = Monday ... 7 = Sunday
	DayOfWeek int    `gorm:"not null" json:"day_of_week"`
	StartTime string `gorm:"size:5;not null" json:"start_time"` // "07:30"
	EndTime   string `gorm:"size:5;not null" json:"end_time"`
	Room      string `gorm:"size:50" json:"room"`

	Grade   *gradeModel.GradeModel     `gorm:"foreignKey:GradeID;constraint:OnDelete:RESTRICT" json:"grade,omitempty"`
	Module  *moduleModel.ModuleModel   `gorm:"foreignKey:ModuleID;constraint:OnDelete:RESTRICT" json:"module,omitempty"`
	Teacher *teacherModel.TeacherModel `gorm:"foreignKey:TeacherID;constraint:OnDelete:SET NULL" json:"teacher,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}
