package model

import (
	"time"

	"github.com/google/uuid"

	gradeModel "sekolahku_backend/internals/features/school/grades/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
)

const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusLate    = "late"
	AttendanceStatusExcused = "excused"
)

// AttendanceModel is upserted by natural key (student_id, date) at the
// service level. There is intentionally no unique index on that pair:
// an empty-id save always inserts, so a double save for the same
// student/date produces two rows (known gap).
type AttendanceModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SchoolID uuid.UUID `gorm:"type:uuid;not null;index" json:"school_id"`

	StudentID uuid.UUID  `gorm:"type:uuid;not null;index" json:"student_id"`
	GradeID   *uuid.UUID `gorm:"type:uuid;index" json:"grade_id,omitempty"`
	Date      time.Time  `gorm:"type:date;not null;index" json:"date"`
	Status    string     `gorm:"size:10;not null" json:"status"`
	Note      string     `gorm:"size:255" json:"note"`

	Student *studentModel.StudentModel `gorm:"foreignKey:StudentID;constraint:OnDelete:RESTRICT" json:"student,omitempty"`
	Grade   *gradeModel.GradeModel     `gorm:"foreignKey:GradeID;constraint:OnDelete:SET NULL" json:"grade,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}

func IsValidAttendanceStatus(s string) bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate, AttendanceStatusExcused:
		return true
	}
	return false
}
