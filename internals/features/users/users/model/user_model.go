// file: internals/features/users/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enums (mapped as string)
========================= */

type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleTeacher UserRole = "teacher"
	UserRoleParent  UserRole = "parent"
	UserRoleStudent UserRole = "student"
)

/* =========================
   User model
========================= */

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`

	// Tenant
	UserSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:user_school_id" json:"user_school_id"`

	UserUsername string `gorm:"type:varchar(50);not null;column:user_username" json:"user_username"`
	UserEmail    string `gorm:"type:varchar(120);not null;column:user_email" json:"user_email"`

	// Nullable: login belum diimplementasikan; bila diisi, di-hash bcrypt
	// di path create dan tidak pernah diserialisasikan keluar.
	UserPassword *string `gorm:"type:text;column:user_password" json:"-"`

	UserFirstName string  `gorm:"type:varchar(60);not null;column:user_first_name" json:"user_first_name"`
	UserLastName  string  `gorm:"type:varchar(60);not null;column:user_last_name" json:"user_last_name"`
	UserRole      UserRole `gorm:"type:varchar(10);not null;column:user_role" json:"user_role"`
	UserAvatar    *string `gorm:"type:text;column:user_avatar" json:"user_avatar,omitempty"`
	UserPhone     *string `gorm:"type:varchar(30);column:user_phone" json:"user_phone,omitempty"`

	UserIsActive bool `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
