// file: internals/features/school/grades/repository/grade_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/grades/dto"
	"schoolku_backend/internals/features/school/grades/model"
)

type GradeRepository interface {
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.GradeModel, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.GradeModel, error)
	Create(ctx context.Context, m *model.GradeModel) error
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateGradeRequest) (*model.GradeModel, error)
}

type gradeRepository struct {
	db *gorm.DB
}

func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &gradeRepository{db: db}
}

// ListByStudent: newest-first by graded_at.
func (r *gradeRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.GradeModel, error) {
	out := make([]model.GradeModel, 0)
	err := r.db.WithContext(ctx).
		Where("grade_student_id = ?", studentID).
		Order("grade_graded_at DESC").
		Find(&out).Error
	return out, err
}

func (r *gradeRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.GradeModel, error) {
	out := make([]model.GradeModel, 0)
	err := r.db.WithContext(ctx).
		Where("grade_course_id = ?", courseID).
		Order("grade_graded_at DESC").
		Find(&out).Error
	return out, err
}

func checkScoreBounds(m *model.GradeModel) error {
	if m.GradeScore > m.GradeMaxScore {
		return fiber.NewError(fiber.StatusBadRequest, "grade_score must not exceed grade_max_score")
	}
	return nil
}

func (r *gradeRepository) Create(ctx context.Context, m *model.GradeModel) error {
	if err := checkScoreBounds(m); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *gradeRepository) Update(ctx context.Context, id uuid.UUID, req dto.UpdateGradeRequest) (*model.GradeModel, error) {
	var m model.GradeModel
	err := r.db.WithContext(ctx).First(&m, "grade_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	req.Apply(&m)
	if err := checkScoreBounds(&m); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
