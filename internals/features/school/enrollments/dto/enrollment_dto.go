// file: internals/features/school/enrollments/dto/enrollment_dto.go
package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/enrollments/model"
)

type CreateEnrollmentRequest struct {
	EnrollmentCourseID  uuid.UUID `json:"enrollment_course_id" validate:"required"`
	EnrollmentStudentID uuid.UUID `json:"enrollment_student_id" validate:"required"`
	EnrollmentProgress  int       `json:"enrollment_progress,omitempty" validate:"gte=0,lte=100"`
}

func (r CreateEnrollmentRequest) ToModel() *model.EnrollmentModel {
	return &model.EnrollmentModel{
		EnrollmentCourseID:  r.EnrollmentCourseID,
		EnrollmentStudentID: r.EnrollmentStudentID,
		EnrollmentProgress:  r.EnrollmentProgress,
	}
}

type UpdateEnrollmentRequest struct {
	EnrollmentProgress *int `json:"enrollment_progress,omitempty" validate:"omitempty,gte=0,lte=100"`
}

func (r UpdateEnrollmentRequest) Apply(m *model.EnrollmentModel) {
	if r.EnrollmentProgress != nil {
		m.EnrollmentProgress = *r.EnrollmentProgress
	}
}
