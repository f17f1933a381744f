// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/finance/payments/model"
)

type CreatePaymentRequest struct {
	PaymentSchoolID  uuid.UUID  `json:"payment_school_id" validate:"required"`
	PaymentStudentID *uuid.UUID `json:"payment_student_id,omitempty"`

	PaymentAmount   *float64 `json:"payment_amount" validate:"required,gt=0"`
	PaymentCurrency string   `json:"payment_currency,omitempty" validate:"omitempty,max=8"`

	PaymentDescription *string `json:"payment_description,omitempty"`

	PaymentStatus model.PaymentStatus `json:"payment_status,omitempty" validate:"omitempty,oneof=pending completed failed refunded"`

	PaymentExternalIntentID *string `json:"payment_external_intent_id,omitempty"`
}

func (r CreatePaymentRequest) ToModel() *model.PaymentModel {
	m := &model.PaymentModel{
		PaymentSchoolID:         r.PaymentSchoolID,
		PaymentStudentID:        r.PaymentStudentID,
		PaymentCurrency:         r.PaymentCurrency,
		PaymentDescription:      r.PaymentDescription,
		PaymentStatus:           r.PaymentStatus,
		PaymentExternalIntentID: r.PaymentExternalIntentID,
	}
	if r.PaymentAmount != nil {
		m.PaymentAmount = *r.PaymentAmount
	}
	return m
}

type UpdatePaymentRequest struct {
	PaymentAmount      *float64             `json:"payment_amount,omitempty" validate:"omitempty,gt=0"`
	PaymentCurrency    *string              `json:"payment_currency,omitempty" validate:"omitempty,max=8"`
	PaymentDescription *string              `json:"payment_description,omitempty"`
	PaymentStatus      *model.PaymentStatus `json:"payment_status,omitempty" validate:"omitempty,oneof=pending completed failed refunded"`

	PaymentExternalIntentID *string    `json:"payment_external_intent_id,omitempty"`
	PaymentPaidAt           *time.Time `json:"payment_paid_at,omitempty"`
}

func (r UpdatePaymentRequest) Apply(m *model.PaymentModel) {
	if r.PaymentAmount != nil {
		m.PaymentAmount = *r.PaymentAmount
	}
	if r.PaymentCurrency != nil {
		m.PaymentCurrency = *r.PaymentCurrency
	}
	if r.PaymentDescription != nil {
		m.PaymentDescription = r.PaymentDescription
	}
	if r.PaymentStatus != nil {
		m.PaymentStatus = *r.PaymentStatus
	}
	if r.PaymentExternalIntentID != nil {
		m.PaymentExternalIntentID = r.PaymentExternalIntentID
	}
	if r.PaymentPaidAt != nil {
		m.PaymentPaidAt = r.PaymentPaidAt
	}
}

// CreatePaymentIntentRequest: body untuk POST /create-payment-intent.
// Amount dalam satuan mayor (mis. 50.00), dikonversi ke minor unit oleh gateway.
type CreatePaymentIntentRequest struct {
	Amount *float64 `json:"amount" validate:"required,gt=0"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}
