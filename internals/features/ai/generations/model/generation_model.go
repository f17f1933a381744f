// file: internals/features/ai/generations/model/generation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Generated course document
========================= */

type GeneratedAssessment struct {
	Type   string  `json:"type"`
	Title  string  `json:"title"`
	Weight float64 `json:"weight"`
}

// GeneratedCourse: dokumen hasil generate, disimpan apa adanya sebagai JSONB.
// Bentuknya sama dengan CourseSyllabus supaya hasil generate bisa langsung
// dipakai sebagai course_syllabus.
type GeneratedCourse struct {
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Objectives   []string              `json:"objectives"`
	Outline      []string              `json:"outline"`
	TotalLessons int                   `json:"total_lessons"`
	Assessments  []GeneratedAssessment `json:"assessments"`
	Resources    []string              `json:"resources"`
}

/* =========================
   Generation history model
========================= */

type AiGenerationModel struct {
	AiGenerationID uuid.UUID `gorm:"type:uuid;primaryKey;column:ai_generation_id" json:"ai_generation_id"`

	AiGenerationSchoolID uuid.UUID  `gorm:"type:uuid;not null;index;column:ai_generation_school_id" json:"ai_generation_school_id"`
	AiGenerationUserID   *uuid.UUID `gorm:"type:uuid;column:ai_generation_user_id" json:"ai_generation_user_id,omitempty"`

	AiGenerationTopic    string  `gorm:"type:varchar(150);not null;column:ai_generation_topic" json:"ai_generation_topic"`
	AiGenerationGrade    string  `gorm:"type:varchar(50);not null;column:ai_generation_grade" json:"ai_generation_grade"`
	AiGenerationSubject  string  `gorm:"type:varchar(100);not null;column:ai_generation_subject" json:"ai_generation_subject"`
	AiGenerationDuration *string `gorm:"type:varchar(50);column:ai_generation_duration" json:"ai_generation_duration,omitempty"`

	// Ringkasan permintaan yang dikirim ke model, selalu terisi.
	AiGenerationPrompt string `gorm:"type:text;not null;column:ai_generation_prompt" json:"ai_generation_prompt"`

	AiGenerationResult *datatypes.JSONType[GeneratedCourse] `gorm:"type:jsonb;column:ai_generation_result" json:"ai_generation_result,omitempty"`

	AiGenerationCreatedAt time.Time `gorm:"column:ai_generation_created_at;autoCreateTime" json:"ai_generation_created_at"`
}

func (AiGenerationModel) TableName() string { return "ai_course_generations" }

func (m *AiGenerationModel) BeforeCreate(tx *gorm.DB) error {
	if m.AiGenerationID == uuid.Nil {
		m.AiGenerationID = uuid.New()
	}
	return nil
}
