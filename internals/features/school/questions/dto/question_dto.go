package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"sekolahku_backend/internals/features/school/questions/model"
)

type QuestionCreateRequest struct {
	ExamID        uuid.UUID      `json:"exam_id" validate:"required"`
	QuestionText  string         `json:"question_text" validate:"required"`
	Options       datatypes.JSON `json:"options"`
	CorrectOption string         `json:"correct_option" validate:"max=10"`
	Marks         int            `json:"marks" validate:"min=1"`
}

func (r *QuestionCreateRequest) ToModel() *model.QuestionModel {
	m := &model.QuestionModel{
		ExamID:        r.ExamID,
		QuestionText:  r.QuestionText,
		Options:       r.Options,
		CorrectOption: r.CorrectOption,
		Marks:         r.Marks,
	}
	if m.Marks == 0 {
		m.Marks = 1
	}
	return m
}

type QuestionUpdateRequest struct {
	QuestionText  *string         `json:"question_text"`
	Options       *datatypes.JSON `json:"options"`
	CorrectOption *string         `json:"correct_option" validate:"omitempty,max=10"`
	Marks         *int            `json:"marks" validate:"omitempty,min=1"`
}

func (r *QuestionUpdateRequest) ApplyTo(m *model.QuestionModel) {
	if r.QuestionText != nil {
		m.QuestionText = *r.QuestionText
	}
	if r.Options != nil {
		m.Options = *r.Options
	}
	if r.CorrectOption != nil {
		m.CorrectOption = *r.CorrectOption
	}
	if r.Marks != nil {
		m.Marks = *r.Marks
	}
}

type QuestionResponse struct {
	ID            uuid.UUID      `json:"id"`
	ExamID        uuid.UUID      `json:"exam_id"`
	QuestionText  string         `json:"question_text"`
	Options       datatypes.JSON `json:"options"`
	CorrectOption string         `json:"correct_option"`
	Marks         int            `json:"marks"`
	ExamTitle     string         `json:"exam_title,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

func FromModel(m *model.QuestionModel) QuestionResponse {
	resp := QuestionResponse{
		ID:            m.ID,
		ExamID:        m.ExamID,
		QuestionText:  m.QuestionText,
		Options:       m.Options,
		CorrectOption: m.CorrectOption,
		Marks:         m.Marks,
		CreatedAt:     m.CreatedAt,
	}
	if m.Exam != nil {
		resp.ExamTitle = m.Exam.Title
	}
	return resp
}

func FromModels(ms []model.QuestionModel) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
