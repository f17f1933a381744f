// file: internals/features/ai/generations/repository/generation_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/ai/generations/model"
)

type AiGenerationRepository interface {
	ListBySchool(ctx context.Context, schoolID uuid.UUID) ([]model.AiGenerationModel, error)
	Create(ctx context.Context, m *model.AiGenerationModel) error
}

type aiGenerationRepository struct {
	db *gorm.DB
}

func NewAiGenerationRepository(db *gorm.DB) AiGenerationRepository {
	return &aiGenerationRepository{db: db}
}

// ListBySchool: riwayat generate terbaru dulu.
func (r *aiGenerationRepository) ListBySchool(ctx context.Context, schoolID uuid.UUID) ([]model.AiGenerationModel, error) {
	out := make([]model.AiGenerationModel, 0)
	err := r.db.WithContext(ctx).
		Where("ai_generation_school_id = ?", schoolID).
		Order("ai_generation_created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *aiGenerationRepository) Create(ctx context.Context, m *model.AiGenerationModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}
