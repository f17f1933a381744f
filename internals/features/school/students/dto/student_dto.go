// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/students/model"
)

type CreateStudentRequest struct {
	StudentSchoolID uuid.UUID `json:"student_school_id" validate:"required"`

	StudentFirstName   string     `json:"student_first_name" validate:"required,max=60"`
	StudentLastName    string     `json:"student_last_name" validate:"required,max=60"`
	StudentDateOfBirth *time.Time `json:"student_date_of_birth,omitempty"`
	StudentGender      *string    `json:"student_gender,omitempty" validate:"omitempty,max=10"`

	StudentCode    *string `json:"student_code,omitempty" validate:"omitempty,max=40"`
	StudentGrade   *string `json:"student_grade,omitempty" validate:"omitempty,max=30"`
	StudentSection *string `json:"student_section,omitempty" validate:"omitempty,max=30"`

	StudentEmail   *string `json:"student_email,omitempty" validate:"omitempty,email"`
	StudentPhone   *string `json:"student_phone,omitempty"`
	StudentAddress *string `json:"student_address,omitempty"`
	StudentAvatar  *string `json:"student_avatar,omitempty"`

	StudentParentName  *string `json:"student_parent_name,omitempty"`
	StudentParentPhone *string `json:"student_parent_phone,omitempty"`
	StudentParentEmail *string `json:"student_parent_email,omitempty" validate:"omitempty,email"`

	StudentStatus model.StudentStatus `json:"student_status,omitempty" validate:"omitempty,oneof=active inactive graduated"`
}

func (r CreateStudentRequest) ToModel() *model.StudentModel {
	return &model.StudentModel{
		StudentSchoolID:    r.StudentSchoolID,
		StudentFirstName:   r.StudentFirstName,
		StudentLastName:    r.StudentLastName,
		StudentDateOfBirth: r.StudentDateOfBirth,
		StudentGender:      r.StudentGender,
		StudentCode:        r.StudentCode,
		StudentGrade:       r.StudentGrade,
		StudentSection:     r.StudentSection,
		StudentEmail:       r.StudentEmail,
		StudentPhone:       r.StudentPhone,
		StudentAddress:     r.StudentAddress,
		StudentAvatar:      r.StudentAvatar,
		StudentParentName:  r.StudentParentName,
		StudentParentPhone: r.StudentParentPhone,
		StudentParentEmail: r.StudentParentEmail,
		StudentStatus:      r.StudentStatus,
	}
}

type UpdateStudentRequest struct {
	StudentFirstName   *string    `json:"student_first_name,omitempty" validate:"omitempty,max=60"`
	StudentLastName    *string    `json:"student_last_name,omitempty" validate:"omitempty,max=60"`
	StudentDateOfBirth *time.Time `json:"student_date_of_birth,omitempty"`
	StudentGender      *string    `json:"student_gender,omitempty" validate:"omitempty,max=10"`

	StudentCode    *string `json:"student_code,omitempty" validate:"omitempty,max=40"`
	StudentGrade   *string `json:"student_grade,omitempty" validate:"omitempty,max=30"`
	StudentSection *string `json:"student_section,omitempty" validate:"omitempty,max=30"`

	StudentEmail   *string `json:"student_email,omitempty" validate:"omitempty,email"`
	StudentPhone   *string `json:"student_phone,omitempty"`
	StudentAddress *string `json:"student_address,omitempty"`
	StudentAvatar  *string `json:"student_avatar,omitempty"`

	StudentParentName  *string `json:"student_parent_name,omitempty"`
	StudentParentPhone *string `json:"student_parent_phone,omitempty"`
	StudentParentEmail *string `json:"student_parent_email,omitempty" validate:"omitempty,email"`

	StudentStatus *model.StudentStatus `json:"student_status,omitempty" validate:"omitempty,oneof=active inactive graduated"`
}

func (r UpdateStudentRequest) Apply(m *model.StudentModel) {
	if r.StudentFirstName != nil {
		m.StudentFirstName = *r.StudentFirstName
	}
	if r.StudentLastName != nil {
		m.StudentLastName = *r.StudentLastName
	}
	if r.StudentDateOfBirth != nil {
		m.StudentDateOfBirth = r.StudentDateOfBirth
	}
	if r.StudentGender != nil {
		m.StudentGender = r.StudentGender
	}
	if r.StudentCode != nil {
		m.StudentCode = r.StudentCode
	}
	if r.StudentGrade != nil {
		m.StudentGrade = r.StudentGrade
	}
	if r.StudentSection != nil {
		m.StudentSection = r.StudentSection
	}
	if r.StudentEmail != nil {
		m.StudentEmail = r.StudentEmail
	}
	if r.StudentPhone != nil {
		m.StudentPhone = r.StudentPhone
	}
	if r.StudentAddress != nil {
		m.StudentAddress = r.StudentAddress
	}
	if r.StudentAvatar != nil {
		m.StudentAvatar = r.StudentAvatar
	}
	if r.StudentParentName != nil {
		m.StudentParentName = r.StudentParentName
	}
	if r.StudentParentPhone != nil {
		m.StudentParentPhone = r.StudentParentPhone
	}
	if r.StudentParentEmail != nil {
		m.StudentParentEmail = r.StudentParentEmail
	}
	if r.StudentStatus != nil {
		m.StudentStatus = *r.StudentStatus
	}
}
