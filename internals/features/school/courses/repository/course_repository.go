// file: internals/features/school/courses/repository/course_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/courses/dto"
	"schoolku_backend/internals/features/school/courses/model"
)

type CourseRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.CourseModel, error)
	ListBySchool(ctx context.Context, schoolID uuid.UUID) ([]model.CourseModel, error)
	Create(ctx context.Context, m *model.CourseModel) error
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCourseRequest) (*model.CourseModel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.CourseModel, error) {
	var m model.CourseModel
	err := r.db.WithContext(ctx).First(&m, "course_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListBySchool: newest-first by created_at.
func (r *courseRepository) ListBySchool(ctx context.Context, schoolID uuid.UUID) ([]model.CourseModel, error) {
	out := make([]model.CourseModel, 0)
	err := r.db.WithContext(ctx).
		Where("course_school_id = ?", schoolID).
		Order("course_created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *courseRepository) Create(ctx context.Context, m *model.CourseModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *courseRepository) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCourseRequest) (*model.CourseModel, error) {
	var m model.CourseModel
	err := r.db.WithContext(ctx).First(&m, "course_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if req.CourseStatus != nil && !m.CourseStatus.CanTransition(*req.CourseStatus) {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"invalid course_status transition: "+string(m.CourseStatus)+" → "+string(*req.CourseStatus))
	}

	req.Apply(&m)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Delete: hard delete; lessons milik course ikut dibersihkan.
func (r *courseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("lesson_course_id = ?", id).
		Delete(&model.LessonModel{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&model.CourseModel{}, "course_id = ?", id).Error
}
