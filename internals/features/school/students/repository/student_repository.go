// file: internals/features/school/students/repository/student_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/students/dto"
	"schoolku_backend/internals/features/school/students/model"
)

type StudentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.StudentModel, error)
	ListBySchool(ctx context.Context, schoolID uuid.UUID) ([]model.StudentModel, error)
	Create(ctx context.Context, m *model.StudentModel) error
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateStudentRequest) (*model.StudentModel, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.StudentModel, error) {
	var m model.StudentModel
	err := r.db.WithContext(ctx).First(&m, "student_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *studentRepository) ListBySchool(ctx context.Context, schoolID uuid.UUID) ([]model.StudentModel, error) {
	out := make([]model.StudentModel, 0)
	err := r.db.WithContext(ctx).
		Where("student_school_id = ?", schoolID).
		Find(&out).Error
	return out, err
}

func (r *studentRepository) Create(ctx context.Context, m *model.StudentModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *studentRepository) Update(ctx context.Context, id uuid.UUID, req dto.UpdateStudentRequest) (*model.StudentModel, error) {
	var m model.StudentModel
	err := r.db.WithContext(ctx).First(&m, "student_id = ?", id).Error
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
