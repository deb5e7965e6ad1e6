package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/schedules/model"
)

type ScheduleCreateRequest struct {
	SchoolID  *uuid.UUID `json:"school_id"` // honored for superadmin only
	GradeID   uuid.UUID  `json:"grade_id" validate:"required"`
	ModuleID  uuid.UUID  `json:"module_id" validate:"required"`
	TeacherID *uuid.UUID `json:"teacher_id"`
	DayOfWeek int        `json:"day_of_week" validate:"required,min=1,max=7"`
	StartTime string     `json:"start_time" validate:"required,len=5"`
	EndTime   string     `json:"end_time" validate:"required,len=5"`
	Room      string     `json:"room" validate:"max=50"`
}

func (r *ScheduleCreateRequest) ToModel() *model.ScheduleModel {
	m := &model.ScheduleModel{
		GradeID:   r.GradeID,
		ModuleID:  r.ModuleID,
		TeacherID: r.TeacherID,
		DayOfWeek: r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Room:      r.Room,
	}
	if r.SchoolID != nil {
		m.SchoolID = *r.SchoolID
	}
	return m
}

type ScheduleUpdateRequest struct {
	SchoolID  *uuid.UUID `json:"school_id"`
	GradeID   *uuid.UUID `json:"grade_id"`
	ModuleID  *uuid.UUID `json:"module_id"`
	TeacherID *uuid.UUID `json:"teacher_id"`
	DayOfWeek *int       `json:"day_of_week" validate:"omitempty,min=1,max=7"`
	StartTime *string    `json:"start_time" validate:"omitempty,len=5"`
	EndTime   *string    `json:"end_time" validate:"omitempty,len=5"`
	Room      *string    `json:"room" validate:"omitempty,max=50"`
}

func (r *ScheduleUpdateRequest) ApplyTo(m *model.ScheduleModel) {
	if r.SchoolID != nil {
		m.SchoolID = *r.SchoolID
	}
	if r.GradeID != nil {
		m.GradeID = *r.GradeID
	}
	if r.ModuleID != nil {
		m.ModuleID = *r.ModuleID
	}
	if r.TeacherID != nil {
		m.TeacherID = r.TeacherID
	}
	if r.DayOfWeek != nil {
		m.DayOfWeek = *r.DayOfWeek
	}
	if r.StartTime != nil {
		m.StartTime = *r.StartTime
	}
	if r.EndTime != nil {
		m.EndTime = *r.EndTime
	}
	if r.Room != nil {
		m.Room = *r.Room
	}
}

type ScheduleResponse struct {
	ID          uuid.UUID  `json:"id"`
	SchoolID    uuid.UUID  `json:"school_id"`
	GradeID     uuid.UUID  `json:"grade_id"`
	ModuleID    uuid.UUID  `json:"module_id"`
	TeacherID   *uuid.UUID `json:"teacher_id,omitempty"`
	DayOfWeek   int        `json:"day_of_week"`
	StartTime   string     `json:"start_time"`
	EndTime     string     `json:"end_time"`
	Room        string     `json:"room"`
	ModuleName  string     `json:"module_name,omitempty"`
	TeacherName string     `json:"teacher_name,omitempty"`
	GradeLevel  int        `json:"grade_level,omitempty"`
	Section     string     `json:"section,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromModel(m *model.ScheduleModel) ScheduleResponse {
	resp := ScheduleResponse{
		ID:        m.ID,
		SchoolID:  m.SchoolID,
		GradeID:   m.GradeID,
		ModuleID:  m.ModuleID,
		TeacherID: m.TeacherID,
		DayOfWeek: m.DayOfWeek,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Room:      m.Room,
		CreatedAt: m.CreatedAt,
	}
	if m.Module != nil {
		resp.ModuleName = m.Module.ModuleName
	}
	if m.Teacher != nil {
		resp.TeacherName = m.Teacher.FullName
	}
	if m.Grade != nil {
		resp.GradeLevel = m.Grade.GradeLevel
		resp.Section = m.Grade.Section
	}
	return resp
}

func FromModels(ms []model.ScheduleModel) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
