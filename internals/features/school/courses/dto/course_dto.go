// file: internals/features/school/courses/dto/course_dto.go
package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/school/courses/model"
)

/* =========================================================
   REQUEST DTOs: Course
========================================================= */

type CreateCourseRequest struct {
	CourseSchoolID  uuid.UUID  `json:"course_school_id" validate:"required"`
	CourseTeacherID *uuid.UUID `json:"course_teacher_id,omitempty"`

	CourseTitle       string  `json:"course_title" validate:"required,min=1,max=150"`
	CourseDescription *string `json:"course_description,omitempty"`
	CourseSubject     string  `json:"course_subject" validate:"required,max=60"`
	CourseGrade       *string `json:"course_grade,omitempty" validate:"omitempty,max=30"`
	CourseThumbnail   *string `json:"course_thumbnail,omitempty"`

	CourseStatus model.CourseStatus `json:"course_status,omitempty" validate:"omitempty,oneof=draft published archived"`

	CourseSyllabus     *model.CourseSyllabus `json:"course_syllabus,omitempty"`
	CourseTotalLessons int                   `json:"course_total_lessons,omitempty" validate:"omitempty,gte=0"`
}

func (r CreateCourseRequest) ToModel() *model.CourseModel {
	m := &model.CourseModel{
		CourseSchoolID:     r.CourseSchoolID,
		CourseTeacherID:    r.CourseTeacherID,
		CourseTitle:        r.CourseTitle,
		CourseDescription:  r.CourseDescription,
		CourseSubject:      r.CourseSubject,
		CourseGrade:        r.CourseGrade,
		CourseThumbnail:    r.CourseThumbnail,
		CourseStatus:       r.CourseStatus,
		CourseTotalLessons: r.CourseTotalLessons,
	}
	if r.CourseSyllabus != nil {
		doc := datatypes.NewJSONType(*r.CourseSyllabus)
		m.CourseSyllabus = &doc
	}
	return m
}

type UpdateCourseRequest struct {
	CourseTeacherID *uuid.UUID `json:"course_teacher_id,omitempty"`

	CourseTitle       *string `json:"course_title,omitempty" validate:"omitempty,min=1,max=150"`
	CourseDescription *string `json:"course_description,omitempty"`
	CourseSubject     *string `json:"course_subject,omitempty" validate:"omitempty,max=60"`
	CourseGrade       *string `json:"course_grade,omitempty" validate:"omitempty,max=30"`
	CourseThumbnail   *string `json:"course_thumbnail,omitempty"`

	// Transisi dicek repository terhadap status tersimpan.
	CourseStatus *model.CourseStatus `json:"course_status,omitempty" validate:"omitempty,oneof=draft published archived"`

	CourseSyllabus     *model.CourseSyllabus `json:"course_syllabus,omitempty"`
	CourseTotalLessons *int                  `json:"course_total_lessons,omitempty" validate:"omitempty,gte=0"`
}

func (r UpdateCourseRequest) Apply(m *model.CourseModel) {
	if r.CourseTeacherID != nil {
		m.CourseTeacherID = r.CourseTeacherID
	}
	if r.CourseTitle != nil {
		m.CourseTitle = *r.CourseTitle
	}
	if r.CourseDescription != nil {
		m.CourseDescription = r.CourseDescription
	}
	if r.CourseSubject != nil {
		m.CourseSubject = *r.CourseSubject
	}
	if r.CourseGrade != nil {
		m.CourseGrade = r.CourseGrade
	}
	if r.CourseThumbnail != nil {
		m.CourseThumbnail = r.CourseThumbnail
	}
	if r.CourseStatus != nil {
		m.CourseStatus = *r.CourseStatus
	}
	if r.CourseSyllabus != nil {
		doc := datatypes.NewJSONType(*r.CourseSyllabus)
		m.CourseSyllabus = &doc
	}
	if r.CourseTotalLessons != nil {
		m.CourseTotalLessons = *r.CourseTotalLessons
	}
}
