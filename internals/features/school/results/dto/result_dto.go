package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/results/model"
)

type ResultCreateRequest struct {
	SchoolID  *uuid.UUID `json:"school_id"` // honored for superadmin only
	ExamID    uuid.UUID  `json:"exam_id" validate:"required"`
	StudentID uuid.UUID  `json:"student_id" validate:"required"`
	Score     int        `json:"score" validate:"min=0"`
	Remark    string     `json:"remark" validate:"max=255"`
}

func (r *ResultCreateRequest) ToModel() *model.ResultModel {
	m := &model.ResultModel{
		ExamID:    r.ExamID,
		StudentID: r.StudentID,
		Score:     r.Score,
		Remark:    r.Remark,
	}
	if r.SchoolID != nil {
		m.SchoolID = *r.SchoolID
	}
	return m
}

type ResultUpdateRequest struct {
	SchoolID *uuid.UUID `json:"school_id"`
	Score    *int       `json:"score" validate:"omitempty,min=0"`
	Remark   *string    `json:"remark" validate:"omitempty,max=255"`
}

func (r *ResultUpdateRequest) ApplyTo(m *model.ResultModel) {
	if r.SchoolID != nil {
		m.SchoolID = *r.SchoolID
	}
	if r.Score != nil {
		m.Score = *r.Score
	}
	if r.Remark != nil {
		m.Remark = *r.Remark
	}
}

type ResultResponse struct {
	ID          uuid.UUID `json:"id"`
	SchoolID    uuid.UUID `json:"school_id"`
	ExamID      uuid.UUID `json:"exam_id"`
	StudentID   uuid.UUID `json:"student_id"`
	Score       int       `json:"score"`
	Remark      string    `json:"remark"`
	ExamTitle   string    `json:"exam_title,omitempty"`
	StudentName string    `json:"student_name,omitempty"`
	// score as a share of the exam's max, 0..100
	Percentage float64   `json:"percentage"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromModel(m *model.ResultModel) ResultResponse {
	resp := ResultResponse{
		ID:        m.ID,
		SchoolID:  m.SchoolID,
		ExamID:    m.ExamID,
		StudentID: m.StudentID,
		Score:     m.Score,
		Remark:    m.Remark,
		CreatedAt: m.CreatedAt,
	}
	if m.Exam != nil {
		resp.ExamTitle = m.Exam.Title
		if m.Exam.MaxScore > 0 {
			resp.Percentage = float64(m.Score) / float64(m.Exam.MaxScore) * 100
		}
	}
	if m.Student != nil {
		resp.StudentName = m.Student.FullName
	}
	return resp
}

func FromModels(ms []model.ResultModel) []ResultResponse {
	out := make([]ResultResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
