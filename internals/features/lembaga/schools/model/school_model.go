// file: internals/features/lembaga/schools/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   School model (tenant root)
========================= */

type SchoolModel struct {
	// PK
	SchoolID uuid.UUID `gorm:"type:uuid;primaryKey;column:school_id" json:"school_id"`

	// Identitas
	SchoolName   string  `gorm:"type:varchar(100);not null;column:school_name" json:"school_name"`
	SchoolDomain *string `gorm:"type:varchar(50);uniqueIndex;column:school_domain" json:"school_domain,omitempty"`
	SchoolLogo   *string `gorm:"type:text;column:school_logo" json:"school_logo,omitempty"`

	// Branding
	SchoolPrimaryColor   string `gorm:"type:varchar(16);not null;default:'#217BF0';column:school_primary_color" json:"school_primary_color"`
	SchoolSecondaryColor string `gorm:"type:varchar(16);not null;default:'#F0F4F8';column:school_secondary_color" json:"school_secondary_color"`

	// en, am (Amharic), om (Afaan Oromo)
	SchoolLanguage string `gorm:"type:varchar(8);not null;default:'en';column:school_language" json:"school_language"`

	// Kontak
	SchoolAddress *string `gorm:"type:text;column:school_address" json:"school_address,omitempty"`
	SchoolPhone   *string `gorm:"type:varchar(30);column:school_phone" json:"school_phone,omitempty"`
	SchoolEmail   *string `gorm:"type:varchar(120);column:school_email" json:"school_email,omitempty"`

	// Billing
	SchoolGatewayCustomerID  *string `gorm:"type:text;column:school_gateway_customer_id" json:"school_gateway_customer_id,omitempty"`
	SchoolSubscriptionStatus string  `gorm:"type:varchar(20);not null;default:'trial';column:school_subscription_status" json:"school_subscription_status"`

	SchoolCreatedAt time.Time `gorm:"column:school_created_at;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt time.Time `gorm:"column:school_updated_at;autoUpdateTime" json:"school_updated_at"`
}

func (SchoolModel) TableName() string { return "schools" }

// BeforeCreate mengisi PK dan default di sisi aplikasi supaya konsisten
// di semua store (tidak bergantung RETURNING / DDL default).
func (m *SchoolModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolID == uuid.Nil {
		m.SchoolID = uuid.New()
	}
	if m.SchoolPrimaryColor == "" {
		m.SchoolPrimaryColor = "#217BF0"
	}
	if m.SchoolSecondaryColor == "" {
		m.SchoolSecondaryColor = "#F0F4F8"
	}
	if m.SchoolLanguage == "" {
		m.SchoolLanguage = "en"
	}
	if m.SchoolSubscriptionStatus == "" {
		m.SchoolSubscriptionStatus = "trial"
	}
	return nil
}
