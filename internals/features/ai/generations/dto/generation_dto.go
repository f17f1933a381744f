// file: internals/features/ai/generations/dto/generation_dto.go
package dto

import (
	"github.com/google/uuid"
)

// GenerateCourseRequest: body untuk POST /ai/generate-course.
// school_id dan user_id boleh datang dari body atau dari klaim JWT.
type GenerateCourseRequest struct {
	Topic           string `json:"topic" validate:"required,max=150"`
	Grade           string `json:"grade" validate:"required,max=50"`
	Subject         string `json:"subject" validate:"required,max=100"`
	Duration        string `json:"duration,omitempty" validate:"omitempty,max=50"`
	AdditionalNotes string `json:"additional_notes,omitempty" validate:"omitempty,max=2000"`

	SchoolID *uuid.UUID `json:"school_id,omitempty"`
	UserID   *uuid.UUID `json:"user_id,omitempty"`
}
