// file: internals/features/users/users/dto/user_dto.go
package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/users/users/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type CreateUserRequest struct {
	UserSchoolID uuid.UUID `json:"user_school_id" validate:"required"`

	UserUsername string  `json:"user_username" validate:"required,min=1,max=50"`
	UserEmail    string  `json:"user_email" validate:"required,email"`
	UserPassword *string `json:"user_password,omitempty" validate:"omitempty,min=8"`

	UserFirstName string         `json:"user_first_name" validate:"required,max=60"`
	UserLastName  string         `json:"user_last_name" validate:"required,max=60"`
	UserRole      model.UserRole `json:"user_role" validate:"required,oneof=admin teacher parent student"`
	UserAvatar    *string        `json:"user_avatar,omitempty"`
	UserPhone     *string        `json:"user_phone,omitempty"`

	UserIsActive *bool `json:"user_is_active,omitempty"`
}

func (r CreateUserRequest) ToModel() *model.UserModel {
	active := true
	if r.UserIsActive != nil {
		active = *r.UserIsActive
	}
	return &model.UserModel{
		UserSchoolID:  r.UserSchoolID,
		UserUsername:  r.UserUsername,
		UserEmail:     r.UserEmail,
		UserPassword:  r.UserPassword, // di-hash di repository sebelum insert
		UserFirstName: r.UserFirstName,
		UserLastName:  r.UserLastName,
		UserRole:      r.UserRole,
		UserAvatar:    r.UserAvatar,
		UserPhone:     r.UserPhone,
		UserIsActive:  active,
	}
}

type UpdateUserRequest struct {
	UserUsername  *string         `json:"user_username,omitempty" validate:"omitempty,min=1,max=50"`
	UserEmail     *string         `json:"user_email,omitempty" validate:"omitempty,email"`
	UserFirstName *string         `json:"user_first_name,omitempty" validate:"omitempty,max=60"`
	UserLastName  *string         `json:"user_last_name,omitempty" validate:"omitempty,max=60"`
	UserRole      *model.UserRole `json:"user_role,omitempty" validate:"omitempty,oneof=admin teacher parent student"`
	UserAvatar    *string         `json:"user_avatar,omitempty"`
	UserPhone     *string         `json:"user_phone,omitempty"`
	UserIsActive  *bool           `json:"user_is_active,omitempty"`
}

func (r UpdateUserRequest) Apply(m *model.UserModel) {
	if r.UserUsername != nil {
		m.UserUsername = *r.UserUsername
	}
	if r.UserEmail != nil {
		m.UserEmail = *r.UserEmail
	}
	if r.UserFirstName != nil {
		m.UserFirstName = *r.UserFirstName
	}
	if r.UserLastName != nil {
		m.UserLastName = *r.UserLastName
	}
	if r.UserRole != nil {
		m.UserRole = *r.UserRole
	}
	if r.UserAvatar != nil {
		m.UserAvatar = r.UserAvatar
	}
	if r.UserPhone != nil {
		m.UserPhone = r.UserPhone
	}
	if r.UserIsActive != nil {
		m.UserIsActive = *r.UserIsActive
	}
}
