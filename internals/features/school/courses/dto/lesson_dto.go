// file: internals/features/school/courses/dto/lesson_dto.go
package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/school/courses/model"
)

/* =========================================================
   REQUEST DTOs: Lesson
========================================================= */

type CreateLessonRequest struct {
	LessonCourseID uuid.UUID `json:"lesson_course_id" validate:"required"`

	LessonTitle       string  `json:"lesson_title" validate:"required,min=1,max=150"`
	LessonDescription *string `json:"lesson_description,omitempty"`
	LessonContent     *string `json:"lesson_content,omitempty"`

	LessonOrderIndex int       `json:"lesson_order_index" validate:"gte=0"`
	LessonDuration   *int      `json:"lesson_duration,omitempty" validate:"omitempty,gt=0"`
	LessonResources  *[]string `json:"lesson_resources,omitempty"`
}

func (r CreateLessonRequest) ToModel() *model.LessonModel {
	m := &model.LessonModel{
		LessonCourseID:    r.LessonCourseID,
		LessonTitle:       r.LessonTitle,
		LessonDescription: r.LessonDescription,
		LessonContent:     r.LessonContent,
		LessonOrderIndex:  r.LessonOrderIndex,
		LessonDuration:    r.LessonDuration,
	}
	if r.LessonResources != nil {
		doc := datatypes.NewJSONType(*r.LessonResources)
		m.LessonResources = &doc
	}
	return m
}

type UpdateLessonRequest struct {
	LessonTitle       *string   `json:"lesson_title,omitempty" validate:"omitempty,min=1,max=150"`
	LessonDescription *string   `json:"lesson_description,omitempty"`
	LessonContent     *string   `json:"lesson_content,omitempty"`
	LessonOrderIndex  *int      `json:"lesson_order_index,omitempty" validate:"omitempty,gte=0"`
	LessonDuration    *int      `json:"lesson_duration,omitempty" validate:"omitempty,gt=0"`
	LessonResources   *[]string `json:"lesson_resources,omitempty"`
}

func (r UpdateLessonRequest) Apply(m *model.LessonModel) {
	if r.LessonTitle != nil {
		m.LessonTitle = *r.LessonTitle
	}
	if r.LessonDescription != nil {
		m.LessonDescription = r.LessonDescription
	}
	if r.LessonContent != nil {
		m.LessonContent = r.LessonContent
	}
	if r.LessonOrderIndex != nil {
		m.LessonOrderIndex = *r.LessonOrderIndex
	}
	if r.LessonDuration != nil {
		m.LessonDuration = r.LessonDuration
	}
	if r.LessonResources != nil {
		doc := datatypes.NewJSONType(*r.LessonResources)
		m.LessonResources = &doc
	}
}
