// file: internals/features/school/grades/model/grade_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Grade model
========================= */

type GradeModel struct {
	GradeID uuid.UUID `gorm:"type:uuid;primaryKey;column:grade_id" json:"grade_id"`

	GradeStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:grade_student_id" json:"grade_student_id"`
	GradeCourseID  uuid.UUID `gorm:"type:uuid;not null;index;column:grade_course_id" json:"grade_course_id"`

	GradeAssignmentTitle string `gorm:"type:varchar(150);not null;column:grade_assignment_title" json:"grade_assignment_title"`

	// score ≤ max_score dijaga di path create/update.
	GradeScore    float64 `gorm:"type:numeric(5,2);not null;column:grade_score" json:"grade_score"`
	GradeMaxScore float64 `gorm:"type:numeric(5,2);not null;column:grade_max_score" json:"grade_max_score"`

	GradeFeedback *string    `gorm:"type:text;column:grade_feedback" json:"grade_feedback,omitempty"`
	GradeGradedBy *uuid.UUID `gorm:"type:uuid;column:grade_graded_by" json:"grade_graded_by,omitempty"`

	GradeGradedAt time.Time `gorm:"column:grade_graded_at;autoCreateTime" json:"grade_graded_at"`
}

func (GradeModel) TableName() string { return "grades" }

func (m *GradeModel) BeforeCreate(tx *gorm.DB) error {
	if m.GradeID == uuid.Nil {
		m.GradeID = uuid.New()
	}
	return nil
}
