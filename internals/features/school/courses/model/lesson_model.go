// file: internals/features/school/courses/model/lesson_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Lesson model
========================= */

type LessonModel struct {
	LessonID uuid.UUID `gorm:"type:uuid;primaryKey;column:lesson_id" json:"lesson_id"`

	// Ikut terhapus saat course dihapus (hard delete).
	LessonCourseID uuid.UUID `gorm:"type:uuid;not null;index;column:lesson_course_id" json:"lesson_course_id"`

	LessonTitle       string  `gorm:"type:varchar(150);not null;column:lesson_title" json:"lesson_title"`
	LessonDescription *string `gorm:"type:text;column:lesson_description" json:"lesson_description,omitempty"`
	LessonContent     *string `gorm:"type:text;column:lesson_content" json:"lesson_content,omitempty"`

	// Dipakai untuk display ordering, tidak unik.
	LessonOrderIndex int `gorm:"not null;column:lesson_order_index" json:"lesson_order_index"`

	// Durasi dalam menit.
	LessonDuration *int `gorm:"column:lesson_duration" json:"lesson_duration,omitempty"`

	// Link, file, dsb.
	LessonResources *datatypes.JSONType[[]string] `gorm:"type:jsonb;column:lesson_resources" json:"lesson_resources,omitempty"`

	LessonCreatedAt time.Time `gorm:"column:lesson_created_at;autoCreateTime" json:"lesson_created_at"`
	LessonUpdatedAt time.Time `gorm:"column:lesson_updated_at;autoUpdateTime" json:"lesson_updated_at"`
}

func (LessonModel) TableName() string { return "lessons" }

func (m *LessonModel) BeforeCreate(tx *gorm.DB) error {
	if m.LessonID == uuid.Nil {
		m.LessonID = uuid.New()
	}
	return nil
}
