// file: internals/features/school/enrollments/repository/enrollment_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/enrollments/dto"
	"schoolku_backend/internals/features/school/enrollments/model"
)

type EnrollmentRepository interface {
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.EnrollmentModel, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.EnrollmentModel, error)
	Create(ctx context.Context, m *model.EnrollmentModel) error
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateEnrollmentRequest) (*model.EnrollmentModel, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.EnrollmentModel, error) {
	out := make([]model.EnrollmentModel, 0)
	err := r.db.WithContext(ctx).
		Where("enrollment_course_id = ?", courseID).
		Find(&out).Error
	return out, err
}

func (r *enrollmentRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.EnrollmentModel, error) {
	out := make([]model.EnrollmentModel, 0)
	err := r.db.WithContext(ctx).
		Where("enrollment_student_id = ?", studentID).
		Find(&out).Error
	return out, err
}

func (r *enrollmentRepository) Create(ctx context.Context, m *model.EnrollmentModel) error {
	if m.EnrollmentProgress < 0 || m.EnrollmentProgress > 100 {
		return fiber.NewError(fiber.StatusBadRequest, "enrollment_progress must be between 0 and 100")
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *enrollmentRepository) Update(ctx context.Context, id uuid.UUID, req dto.UpdateEnrollmentRequest) (*model.EnrollmentModel, error) {
	var m model.EnrollmentModel
	err := r.db.WithContext(ctx).First(&m, "enrollment_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	req.Apply(&m)
	if m.EnrollmentProgress < 0 || m.EnrollmentProgress > 100 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "enrollment_progress must be between 0 and 100")
	}
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
