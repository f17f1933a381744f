// file: internals/features/lembaga/schools/dto/school_dto.go
package dto

import (
	"schoolku_backend/internals/features/lembaga/schools/model"
)

/* =========================================================
   REQUEST DTOs (JSON tags = nama kolom DB, snake_case)
========================================================= */

// CreateSchoolRequest: insertable shape, tanpa field server-generated
// (school_id, timestamps).
type CreateSchoolRequest struct {
	SchoolName   string  `json:"school_name" validate:"required,min=1,max=100"`
	SchoolDomain *string `json:"school_domain,omitempty" validate:"omitempty,max=50"`
	SchoolLogo   *string `json:"school_logo,omitempty"`

	SchoolPrimaryColor   string `json:"school_primary_color,omitempty"`
	SchoolSecondaryColor string `json:"school_secondary_color,omitempty"`
	SchoolLanguage       string `json:"school_language,omitempty" validate:"omitempty,oneof=en am om"`

	SchoolAddress *string `json:"school_address,omitempty"`
	SchoolPhone   *string `json:"school_phone,omitempty"`
	SchoolEmail   *string `json:"school_email,omitempty" validate:"omitempty,email"`

	SchoolGatewayCustomerID  *string `json:"school_gateway_customer_id,omitempty"`
	SchoolSubscriptionStatus string  `json:"school_subscription_status,omitempty" validate:"omitempty,oneof=trial active past_due canceled"`
}

func (r CreateSchoolRequest) ToModel() *model.SchoolModel {
	return &model.SchoolModel{
		SchoolName:               r.SchoolName,
		SchoolDomain:             r.SchoolDomain,
		SchoolLogo:               r.SchoolLogo,
		SchoolPrimaryColor:       r.SchoolPrimaryColor,
		SchoolSecondaryColor:     r.SchoolSecondaryColor,
		SchoolLanguage:           r.SchoolLanguage,
		SchoolAddress:            r.SchoolAddress,
		SchoolPhone:              r.SchoolPhone,
		SchoolEmail:              r.SchoolEmail,
		SchoolGatewayCustomerID:  r.SchoolGatewayCustomerID,
		SchoolSubscriptionStatus: r.SchoolSubscriptionStatus,
	}
}

// UpdateSchoolRequest: partial-update shape, semua field opsional,
// hanya yang non-nil yang di-apply.
type UpdateSchoolRequest struct {
	SchoolName   *string `json:"school_name,omitempty" validate:"omitempty,min=1,max=100"`
	SchoolDomain *string `json:"school_domain,omitempty" validate:"omitempty,max=50"`
	SchoolLogo   *string `json:"school_logo,omitempty"`

	SchoolPrimaryColor   *string `json:"school_primary_color,omitempty"`
	SchoolSecondaryColor *string `json:"school_secondary_color,omitempty"`
	SchoolLanguage       *string `json:"school_language,omitempty" validate:"omitempty,oneof=en am om"`

	SchoolAddress *string `json:"school_address,omitempty"`
	SchoolPhone   *string `json:"school_phone,omitempty"`
	SchoolEmail   *string `json:"school_email,omitempty" validate:"omitempty,email"`

	SchoolGatewayCustomerID  *string `json:"school_gateway_customer_id,omitempty"`
	SchoolSubscriptionStatus *string `json:"school_subscription_status,omitempty" validate:"omitempty,oneof=trial active past_due canceled"`
}

func (r UpdateSchoolRequest) Apply(m *model.SchoolModel) {
	if r.SchoolName != nil {
		m.SchoolName = *r.SchoolName
	}
	if r.SchoolDomain != nil {
		m.SchoolDomain = r.SchoolDomain
	}
	if r.SchoolLogo != nil {
		m.SchoolLogo = r.SchoolLogo
	}
	if r.SchoolPrimaryColor != nil {
		m.SchoolPrimaryColor = *r.SchoolPrimaryColor
	}
	if r.SchoolSecondaryColor != nil {
		m.SchoolSecondaryColor = *r.SchoolSecondaryColor
	}
	if r.SchoolLanguage != nil {
		m.SchoolLanguage = *r.SchoolLanguage
	}
	if r.SchoolAddress != nil {
		m.SchoolAddress = r.SchoolAddress
	}
	if r.SchoolPhone != nil {
		m.SchoolPhone = r.SchoolPhone
	}
	if r.SchoolEmail != nil {
		m.SchoolEmail = r.SchoolEmail
	}
	if r.SchoolGatewayCustomerID != nil {
		m.SchoolGatewayCustomerID = r.SchoolGatewayCustomerID
	}
	if r.SchoolSubscriptionStatus != nil {
		m.SchoolSubscriptionStatus = *r.SchoolSubscriptionStatus
	}
}
