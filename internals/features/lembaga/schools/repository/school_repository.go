// file: internals/features/lembaga/schools/repository/school_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/lembaga/schools/dto"
	"schoolku_backend/internals/features/lembaga/schools/model"
)

// SchoolRepository: satu operasi = satu read/write independen ke store.
// "Not found" dikembalikan sebagai (nil, nil), bukan error.
type SchoolRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.SchoolModel, error)
	Create(ctx context.Context, m *model.SchoolModel) error
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateSchoolRequest) (*model.SchoolModel, error)
}

type schoolRepository struct {
	db *gorm.DB
}

func NewSchoolRepository(db *gorm.DB) SchoolRepository {
	return &schoolRepository{db: db}
}

func (r *schoolRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.SchoolModel, error) {
	var m model.SchoolModel
	err := r.db.WithContext(ctx).First(&m, "school_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *schoolRepository) Create(ctx context.Context, m *model.SchoolModel) error {
	// duplicate school_domain dibiarkan naik sebagai store error (unique index)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *schoolRepository) Update(ctx context.Context, id uuid.UUID, req dto.UpdateSchoolRequest) (*model.SchoolModel, error) {
	var m model.SchoolModel
	err := r.db.WithContext(ctx).First(&m, "school_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	req.Apply(&m)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
