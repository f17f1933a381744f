// file: internals/features/finance/payments/repository/payment_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/payments/dto"
	"schoolku_backend/internals/features/finance/payments/model"
)

type PaymentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.PaymentModel, error)
	ListBySchool(ctx context.Context, schoolID uuid.UUID) ([]model.PaymentModel, error)
	Create(ctx context.Context, m *model.PaymentModel) error
	Update(ctx context.Context, id uuid.UUID, req dto.UpdatePaymentRequest) (*model.PaymentModel, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.PaymentModel, error) {
	var m model.PaymentModel
	err := r.db.WithContext(ctx).First(&m, "payment_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListBySchool: newest-first.
func (r *paymentRepository) ListBySchool(ctx context.Context, schoolID uuid.UUID) ([]model.PaymentModel, error) {
	out := make([]model.PaymentModel, 0)
	err := r.db.WithContext(ctx).
		Where("payment_school_id = ?", schoolID).
		Order("payment_created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *paymentRepository) Create(ctx context.Context, m *model.PaymentModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *paymentRepository) Update(ctx context.Context, id uuid.UUID, req dto.UpdatePaymentRequest) (*model.PaymentModel, error) {
	var m model.PaymentModel
	err := r.db.WithContext(ctx).First(&m, "payment_id = ?", id).Error
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
