package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	examModel "sekolahku_backend/internals/features/school/exams/model"
	"sekolahku_backend/internals/features/school/results/model"
)

func TestFromModelComputesPercentage(t *testing.T) {
	m := &model.ResultModel{
		ID:    uuid.New(),
		Score: 45,
		Exam:  &examModel.ExamModel{Title: "Midterm", MaxScore: 60},
	}
	resp := FromModel(m)
	assert.Equal(t, "Midterm", resp.ExamTitle)
	assert.InDelta(t, 75.0, resp.Percentage, 0.001)
}

func TestFromModelPercentageWithoutExam(t *testing.T) {
	resp := FromModel(&model.ResultModel{ID: uuid.New(), Score: 45})
	assert.Zero(t, resp.Percentage, "no preloaded exam, no percentage")

	resp = FromModel(&model.ResultModel{
		ID:    uuid.New(),
		Score: 45,
		Exam:  &examModel.ExamModel{MaxScore: 0},
	})
	assert.Zero(t, resp.Percentage, "zero max score must not divide")
}
