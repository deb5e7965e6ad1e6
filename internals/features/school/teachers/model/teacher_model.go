package model

import (
	"time"

	"github.com/google/uuid"

	userModel "sekolahku_backend/internals/features/users/user/model"
)

type TeacherModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SchoolID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_teachers_school_employee" json:"school_id"`

	EmployeeID string `gorm:"size:30;not null;uniqueIndex:uq_teachers_school_employee" json:"employee_id"`
	FullName   string `gorm:"size:100;not null" json:"full_name"`
	Gender     string `gorm:"size:10" json:"gender"`
	Phone      string `gorm:"size:20" json:"phone"`
	Specialty  string `gorm:"size:100" json:"specialty"`

	// the login account created together with the teacher row
	UserID *uuid.UUID           `gorm:"type:uuid;index" json:"user_id,omitempty"`
	User   *userModel.UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
