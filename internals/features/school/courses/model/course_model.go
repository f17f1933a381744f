// file: internals/features/school/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Enums (mapped as string)
========================= */

type CourseStatus string

const (
	CourseStatusDraft     CourseStatus = "draft"
	CourseStatusPublished CourseStatus = "published"
	CourseStatusArchived  CourseStatus = "archived"
)

// courseStatusTransitions: draft → published/archived,
// published → archived, archived terminal.
var courseStatusTransitions = map[CourseStatus][]CourseStatus{
	CourseStatusDraft:     {CourseStatusPublished, CourseStatusArchived},
	CourseStatusPublished: {CourseStatusArchived},
	CourseStatusArchived:  {},
}

// CanTransition melaporkan apakah perpindahan status diizinkan.
// Status yang sama selalu boleh (no-op).
func (s CourseStatus) CanTransition(to CourseStatus) bool {
	if s == to {
		return true
	}
	for _, allowed := range courseStatusTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

/* =========================
   Typed syllabus document
========================= */

// CourseSyllabus: struktur kurikulum (biasanya hasil AI generation).
type CourseSyllabus struct {
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Objectives   []string           `json:"objectives"`
	Outline      []string           `json:"outline"`
	TotalLessons int                `json:"total_lessons"`
	Assessments  []CourseAssessment `json:"assessments"`
	Resources    []string           `json:"resources"`
}

type CourseAssessment struct {
	Type   string  `json:"type"`
	Title  string  `json:"title"`
	Weight float64 `json:"weight"`
}

/* =========================
   Course model
========================= */

type CourseModel struct {
	CourseID uuid.UUID `gorm:"type:uuid;primaryKey;column:course_id" json:"course_id"`

	// Tenant & pengajar
	CourseSchoolID  uuid.UUID  `gorm:"type:uuid;not null;index;column:course_school_id" json:"course_school_id"`
	CourseTeacherID *uuid.UUID `gorm:"type:uuid;column:course_teacher_id" json:"course_teacher_id,omitempty"`

	CourseTitle       string  `gorm:"type:varchar(150);not null;column:course_title" json:"course_title"`
	CourseDescription *string `gorm:"type:text;column:course_description" json:"course_description,omitempty"`
	CourseSubject     string  `gorm:"type:varchar(60);not null;column:course_subject" json:"course_subject"`
	CourseGrade       *string `gorm:"type:varchar(30);column:course_grade" json:"course_grade,omitempty"`
	CourseThumbnail   *string `gorm:"type:text;column:course_thumbnail" json:"course_thumbnail,omitempty"`

	CourseStatus CourseStatus `gorm:"type:varchar(12);not null;column:course_status" json:"course_status"`

	CourseSyllabus     *datatypes.JSONType[CourseSyllabus] `gorm:"type:jsonb;column:course_syllabus" json:"course_syllabus,omitempty"`
	CourseTotalLessons int                                 `gorm:"not null;column:course_total_lessons" json:"course_total_lessons"`

	CourseCreatedAt time.Time `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
}

func (CourseModel) TableName() string { return "courses" }

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	if m.CourseStatus == "" {
		m.CourseStatus = CourseStatusDraft
	}
	return nil
}
