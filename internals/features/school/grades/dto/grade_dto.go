// file: internals/features/school/grades/dto/grade_dto.go
package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/grades/model"
)

type CreateGradeRequest struct {
	GradeStudentID uuid.UUID `json:"grade_student_id" validate:"required"`
	GradeCourseID  uuid.UUID `json:"grade_course_id" validate:"required"`

	GradeAssignmentTitle string `json:"grade_assignment_title" validate:"required,max=150"`

	GradeScore    *float64 `json:"grade_score" validate:"required,gte=0"`
	GradeMaxScore *float64 `json:"grade_max_score" validate:"required,gt=0"`

	GradeFeedback *string    `json:"grade_feedback,omitempty"`
	GradeGradedBy *uuid.UUID `json:"grade_graded_by,omitempty"`
}

func (r CreateGradeRequest) ToModel() *model.GradeModel {
	m := &model.GradeModel{
		GradeStudentID:       r.GradeStudentID,
		GradeCourseID:        r.GradeCourseID,
		GradeAssignmentTitle: r.GradeAssignmentTitle,
		GradeFeedback:        r.GradeFeedback,
		GradeGradedBy:        r.GradeGradedBy,
	}
	if r.GradeScore != nil {
		m.GradeScore = *r.GradeScore
	}
	if r.GradeMaxScore != nil {
		m.GradeMaxScore = *r.GradeMaxScore
	}
	return m
}

type UpdateGradeRequest struct {
	GradeAssignmentTitle *string    `json:"grade_assignment_title,omitempty" validate:"omitempty,max=150"`
	GradeScore           *float64   `json:"grade_score,omitempty" validate:"omitempty,gte=0"`
	GradeMaxScore        *float64   `json:"grade_max_score,omitempty" validate:"omitempty,gt=0"`
	GradeFeedback        *string    `json:"grade_feedback,omitempty"`
	GradeGradedBy        *uuid.UUID `json:"grade_graded_by,omitempty"`
}

func (r UpdateGradeRequest) Apply(m *model.GradeModel) {
	if r.GradeAssignmentTitle != nil {
		m.GradeAssignmentTitle = *r.GradeAssignmentTitle
	}
	if r.GradeScore != nil {
		m.GradeScore = *r.GradeScore
	}
	if r.GradeMaxScore != nil {
		m.GradeMaxScore = *r.GradeMaxScore
	}
	if r.GradeFeedback != nil {
		m.GradeFeedback = r.GradeFeedback
	}
	if r.GradeGradedBy != nil {
		m.GradeGradedBy = r.GradeGradedBy
	}
}
