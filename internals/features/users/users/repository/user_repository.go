// file: internals/features/users/users/repository/user_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/users/users/dto"
	"schoolku_backend/internals/features/users/users/model"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error)
	GetByUsername(ctx context.Context, username string) (*model.UserModel, error)
	ListBySchool(ctx context.Context, schoolID uuid.UUID) ([]model.UserModel, error)
	Create(ctx context.Context, m *model.UserModel) error
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*model.UserModel, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	var m model.UserModel
	err := r.db.WithContext(ctx).First(&m, "user_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.UserModel, error) {
	var m model.UserModel
	err := r.db.WithContext(ctx).First(&m, "user_username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *userRepository) ListBySchool(ctx context.Context, schoolID uuid.UUID) ([]model.UserModel, error) {
	out := make([]model.UserModel, 0)
	err := r.db.WithContext(ctx).
		Where("user_school_id = ?", schoolID).
		Find(&out).Error
	return out, err
}

func (r *userRepository) Create(ctx context.Context, m *model.UserModel) error {
	// password (kalau ada) tidak pernah disimpan plaintext
	if m.UserPassword != nil && *m.UserPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*m.UserPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		hashed := string(hash)
		m.UserPassword = &hashed
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *userRepository) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*model.UserModel, error) {
	var m model.UserModel
	err := r.db.WithContext(ctx).First(&m, "user_id = ?", id).Error
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
