// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/features/finance/payments/dto"
	"schoolku_backend/internals/features/finance/payments/repository"
	"schoolku_backend/internals/features/finance/payments/service"
	helper "schoolku_backend/internals/helpers"
)

type PaymentController struct {
	Repo     repository.PaymentRepository
	Gateway  service.PaymentGateway // nil kalau gateway belum dikonfigurasi
	Validate *validator.Validate
}

func NewPaymentController(repo repository.PaymentRepository, gateway service.PaymentGateway) *PaymentController {
	return &PaymentController{Repo: repo, Gateway: gateway, Validate: validator.New()}
}

// GET /api/schools/:school_id/payments
func (ctl *PaymentController) ListPaymentsBySchool(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	payments, err := ctl.Repo.ListBySchool(c.Context(), schoolID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, payments)
}

// GET /api/payments/:id
func (ctl *PaymentController) GetPayment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	payment, err := ctl.Repo.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if payment == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Payment not found")
	}
	return helper.JsonOK(c, payment)
}

// POST /api/payments
func (ctl *PaymentController) CreatePayment(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, helper.ValidationMessage(err))
	}
	m := req.ToModel()
	if err := ctl.Repo.Create(c.Context(), m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, m)
}

// PATCH /api/payments/:id
func (ctl *PaymentController) UpdatePayment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, helper.ValidationMessage(err))
	}
	payment, err := ctl.Repo.Update(c.Context(), id, req)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if payment == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Payment not found")
	}
	return helper.JsonOK(c, payment)
}

// POST /api/create-payment-intent
// Validasi body dicek dulu sebelum nyentuh gateway.
func (ctl *PaymentController) CreatePaymentIntent(c *fiber.Ctx) error {
	if ctl.Gateway == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Payment processing is not configured")
	}
	var req dto.CreatePaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, helper.ValidationMessage(err))
	}
	secret, err := ctl.Gateway.CreatePaymentIntent(*req.Amount)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating payment intent: "+err.Error())
	}
	return helper.JsonOK(c, dto.PaymentIntentResponse{ClientSecret: secret})
}
