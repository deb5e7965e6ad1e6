package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/lessons/model"
)

type LessonCreateRequest struct {
	SchoolID *uuid.UUID `json:"school_id"` // honored for superadmin only
	ModuleID uuid.UUID  `json:"module_id" validate:"required"`
	Title    string     `json:"title" validate:"required,max=150"`
	Content  string     `json:"content"`
	VideoURL string     `json:"video_url" validate:"omitempty,url"`
	Ordinal  int        `json:"ordinal" validate:"min=0"`

	// optional; defaults to the caller's own teacher identity
	CreatedByTeacherID *uuid.UUID `json:"created_by_teacher_id"`
}

func (r *LessonCreateRequest) ToModel() *model.LessonModel {
	m := &model.LessonModel{
		ModuleID:           r.ModuleID,
		Title:              r.Title,
		Content:            r.Content,
		VideoURL:           r.VideoURL,
		Ordinal:            r.Ordinal,
		CreatedByTeacherID: r.CreatedByTeacherID,
	}
	if r.SchoolID != nil {
		m.SchoolID = *r.SchoolID
	}
	return m
}

type LessonUpdateRequest struct {
	SchoolID           *uuid.UUID `json:"school_id"`
	ModuleID           *uuid.UUID `json:"module_id"`
	Title              *string    `json:"title" validate:"omitempty,max=150"`
	Content            *string    `json:"content"`
	VideoURL           *string    `json:"video_url" validate:"omitempty,url"`
	Ordinal            *int       `json:"ordinal" validate:"omitempty,min=0"`
	CreatedByTeacherID *uuid.UUID `json:"created_by_teacher_id"`
}

func (r *LessonUpdateRequest) ApplyTo(m *model.LessonModel) {
	if r.SchoolID != nil {
		m.SchoolID = *r.SchoolID
	}
	if r.ModuleID != nil {
		m.ModuleID = *r.ModuleID
	}
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Content != nil {
		m.Content = *r.Content
	}
	if r.VideoURL != nil {
		m.VideoURL = *r.VideoURL
	}
	if r.Ordinal != nil {
		m.Ordinal = *r.Ordinal
	}
	if r.CreatedByTeacherID != nil {
		m.CreatedByTeacherID = r.CreatedByTeacherID
	}
}

type LessonResponse struct {
	ID                 uuid.UUID  `json:"id"`
	SchoolID           uuid.UUID  `json:"school_id"`
	ModuleID           uuid.UUID  `json:"module_id"`
	Title              string     `json:"title"`
	Content            string     `json:"content"`
	VideoURL           string     `json:"video_url"`
	Ordinal            int        `json:"ordinal"`
	CreatedByTeacherID *uuid.UUID `json:"created_by_teacher_id,omitempty"`
	ModuleName         string     `json:"module_name,omitempty"`
	TeacherName        string     `json:"teacher_name,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func FromModel(m *model.LessonModel) LessonResponse {
	resp := LessonResponse{
		ID:                 m.ID,
		SchoolID:           m.SchoolID,
		ModuleID:           m.ModuleID,
		Title:              m.Title,
		Content:            m.Content,
		VideoURL:           m.VideoURL,
		Ordinal:            m.Ordinal,
		CreatedByTeacherID: m.CreatedByTeacherID,
		CreatedAt:          m.CreatedAt,
	}
	if m.Module != nil {
		resp.ModuleName = m.Module.ModuleName
	}
	if m.CreatedByTeacher != nil {
		resp.TeacherName = m.CreatedByTeacher.FullName
	}
	return resp
}

func FromModels(ms []model.LessonModel) []LessonResponse {
	out := make([]LessonResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
