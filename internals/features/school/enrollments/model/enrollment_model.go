// file: internals/features/school/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enrollment model (Course ↔ Student)
========================= */

type EnrollmentModel struct {
	EnrollmentID uuid.UUID `gorm:"type:uuid;primaryKey;column:enrollment_id" json:"enrollment_id"`

	EnrollmentCourseID  uuid.UUID `gorm:"type:uuid;not null;index;column:enrollment_course_id" json:"enrollment_course_id"`
	EnrollmentStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:enrollment_student_id" json:"enrollment_student_id"`

	// 0–100, dijaga di path create/update.
	EnrollmentProgress int `gorm:"not null;column:enrollment_progress" json:"enrollment_progress"`

	EnrollmentEnrolledAt time.Time `gorm:"column:enrollment_enrolled_at;autoCreateTime" json:"enrollment_enrolled_at"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

func (m *EnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.EnrollmentID == uuid.Nil {
		m.EnrollmentID = uuid.New()
	}
	return nil
}
