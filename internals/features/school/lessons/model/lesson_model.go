package model

import (
	"time"

	"github.com/google/uuid"

	moduleModel "sekolahku_backend/internals/features/school/modules/model"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
)

type LessonModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SchoolID uuid.UUID `gorm:"type:uuid;not null;index" json:"school_id"`
	ModuleID uuid.UUID `gorm:"type:uuid;not null;index" json:"module_id"`

	Title    string `gorm:"size:150;not null" json:"title"`
	Content  string `gorm:"type:text" json:"content"`
	VideoURL string `gorm:"size:255" json:"video_url"`
	Ordinal  int    `gorm:"not null;default:0" json:"ordinal"`

	// defaults to the creating principal's teacher identity; privileged
	// roles may reassign it later
	CreatedByTeacherID *uuid.UUID                 `gorm:"type:uuid;index" json:"created_by_teacher_id,omitempty"`
	CreatedByTeacher   *teacherModel.TeacherModel `gorm:"foreignKey:CreatedByTeacherID;constraint:OnDelete:SET NULL" json:"created_by_teacher,omitempty"`

	// deleting a module deletes its lessons
	Module *moduleModel.ModuleModel `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE" json:"module,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LessonModel) TableName() string {
	return "lessons"
}
