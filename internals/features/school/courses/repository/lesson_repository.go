// file: internals/features/school/courses/repository/lesson_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/courses/dto"
	"schoolku_backend/internals/features/school/courses/model"
)

type LessonRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.LessonModel, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.LessonModel, error)
	Create(ctx context.Context, m *model.LessonModel) error
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateLessonRequest) (*model.LessonModel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type lessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &lessonRepository{db: db}
}

func (r *lessonRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.LessonModel, error) {
	var m model.LessonModel
	err := r.db.WithContext(ctx).First(&m, "lesson_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByCourse: ascending display order.
func (r *lessonRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.LessonModel, error) {
	out := make([]model.LessonModel, 0)
	err := r.db.WithContext(ctx).
		Where("lesson_course_id = ?", courseID).
		Order("lesson_order_index ASC").
		Find(&out).Error
	return out, err
}

func (r *lessonRepository) Create(ctx context.Context, m *model.LessonModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *lessonRepository) Update(ctx context.Context, id uuid.UUID, req dto.UpdateLessonRequest) (*model.LessonModel, error) {
	var m model.LessonModel
	err := r.db.WithContext(ctx).First(&m, "lesson_id = ?", id).Error
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

func (r *lessonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LessonModel{}, "lesson_id = ?", id).Error
}
