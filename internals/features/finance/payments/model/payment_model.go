// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"type:uuid;primaryKey;column:payment_id" json:"payment_id"`

	PaymentSchoolID  uuid.UUID  `gorm:"type:uuid;not null;index;column:payment_school_id" json:"payment_school_id"`
	PaymentStudentID *uuid.UUID `gorm:"type:uuid;index;column:payment_student_id" json:"payment_student_id,omitempty"`

	PaymentAmount   float64 `gorm:"type:numeric(12,2);not null;column:payment_amount" json:"payment_amount"`
	PaymentCurrency string  `gorm:"type:varchar(8);not null;column:payment_currency" json:"payment_currency"`

	PaymentDescription *string `gorm:"type:text;column:payment_description" json:"payment_description,omitempty"`

	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;column:payment_status" json:"payment_status"`

	// ID intent di penyedia pembayaran (kalau sudah dibuat).
	PaymentExternalIntentID *string `gorm:"type:varchar(120);column:payment_external_intent_id" json:"payment_external_intent_id,omitempty"`

	PaymentPaidAt *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
}

func (PaymentModel) TableName() string { return "payments" }

func (m *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentID == uuid.Nil {
		m.PaymentID = uuid.New()
	}
	if m.PaymentCurrency == "" {
		m.PaymentCurrency = "ETB"
	}
	if m.PaymentStatus == "" {
		m.PaymentStatus = PaymentStatusPending
	}
	return nil
}
