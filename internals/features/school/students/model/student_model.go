// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusInactive  StudentStatus = "inactive"
	StudentStatusGraduated StudentStatus = "graduated"
)

/* =========================
   Student model
========================= */

type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;primaryKey;column:student_id" json:"student_id"`

	StudentSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:student_school_id" json:"student_school_id"`

	StudentFirstName   string     `gorm:"type:varchar(60);not null;column:student_first_name" json:"student_first_name"`
	StudentLastName    string     `gorm:"type:varchar(60);not null;column:student_last_name" json:"student_last_name"`
	StudentDateOfBirth *time.Time `gorm:"column:student_date_of_birth" json:"student_date_of_birth,omitempty"`
	StudentGender      *string    `gorm:"type:varchar(10);column:student_gender" json:"student_gender,omitempty"`

	// Nomor induk internal sekolah.
	StudentCode *string `gorm:"type:varchar(40);column:student_code" json:"student_code,omitempty"`

	StudentGrade   *string `gorm:"type:varchar(30);column:student_grade" json:"student_grade,omitempty"`
	StudentSection *string `gorm:"type:varchar(30);column:student_section" json:"student_section,omitempty"`

	StudentEmail   *string `gorm:"type:varchar(120);column:student_email" json:"student_email,omitempty"`
	StudentPhone   *string `gorm:"type:varchar(30);column:student_phone" json:"student_phone,omitempty"`
	StudentAddress *string `gorm:"type:text;column:student_address" json:"student_address,omitempty"`
	StudentAvatar  *string `gorm:"type:text;column:student_avatar" json:"student_avatar,omitempty"`

	StudentParentName  *string `gorm:"type:varchar(120);column:student_parent_name" json:"student_parent_name,omitempty"`
	StudentParentPhone *string `gorm:"type:varchar(30);column:student_parent_phone" json:"student_parent_phone,omitempty"`
	StudentParentEmail *string `gorm:"type:varchar(120);column:student_parent_email" json:"student_parent_email,omitempty"`

	StudentStatus StudentStatus `gorm:"type:varchar(12);not null;column:student_status" json:"student_status"`

	StudentEnrollmentDate time.Time `gorm:"column:student_enrollment_date;autoCreateTime" json:"student_enrollment_date"`
	StudentCreatedAt      time.Time `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	if m.StudentStatus == "" {
		m.StudentStatus = StudentStatusActive
	}
	return nil
}
