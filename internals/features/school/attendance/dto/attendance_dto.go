package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/attendance/model"
)

// AttendanceSaveItem carries one mark in a batch save. An empty ID means
// insert, a set ID means update that row.
type AttendanceSaveItem struct {
	ID        *uuid.UUID `json:"id"`
	StudentID uuid.UUID  `json:"student_id" validate:"required"`
	GradeID   *uuid.UUID `json:"grade_id"`
	Date      string     `json:"date" validate:"required"` // 2006-01-02
	Status    string     `json:"status" validate:"required"`
	Note      string     `json:"note" validate:"max=255"`
}

type AttendanceSaveRequest struct {
	Items []AttendanceSaveItem `json:"items" validate:"required,min=1,dive"`
}

// AttendanceSaveResult reports one item's outcome. Saves are best-effort:
// a failing item does not abort the rest of the batch.
type AttendanceSaveResult struct {
	StudentID uuid.UUID  `json:"student_id"`
	ID        *uuid.UUID `json:"id,omitempty"`
	Saved     bool       `json:"saved"`
	Error     string     `json:"error,omitempty"`
}

type AttendanceResponse struct {
	ID          uuid.UUID  `json:"id"`
	SchoolID    uuid.UUID  `json:"school_id"`
	StudentID   uuid.UUID  `json:"student_id"`
	GradeID     *uuid.UUID `json:"grade_id,omitempty"`
	Date        string     `json:"date"`
	Status      string     `json:"status"`
	Note        string     `json:"note"`
	StudentName string     `json:"student_name,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromModel(m *model.AttendanceModel) AttendanceResponse {
	resp := AttendanceResponse{
		ID:        m.ID,
		SchoolID:  m.SchoolID,
		StudentID: m.StudentID,
		GradeID:   m.GradeID,
		Date:      m.Date.Format("2006-01-02"),
		Status:    m.Status,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
	}
	if m.Student != nil {
		resp.StudentName = m.Student.FullName
	}
	return resp
}

func FromModels(ms []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

// RosterEntry is one student of the grade merged with that day's mark,
// if any. Unmarked students come back with a nil attendance.
type RosterEntry struct {
	StudentID   uuid.UUID           `json:"student_id"`
	StudentCode string              `json:"student_code"`
	FullName    string              `json:"full_name"`
	Attendance  *AttendanceResponse `json:"attendance"`
}
