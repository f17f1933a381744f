// file: internals/features/finance/payments/controller/payment_controller_test.go
package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/finance/payments/dto"
	"schoolku_backend/internals/features/finance/payments/model"
)

/* =========================
   Fakes
========================= */

type fakePaymentRepo struct {
	payments map[uuid.UUID]*model.PaymentModel
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[uuid.UUID]*model.PaymentModel{}}
}

func (f *fakePaymentRepo) GetByID(_ context.Context, id uuid.UUID) (*model.PaymentModel, error) {
	return f.payments[id], nil
}

func (f *fakePaymentRepo) ListBySchool(_ context.Context, schoolID uuid.UUID) ([]model.PaymentModel, error) {
	out := make([]model.PaymentModel, 0)
	for _, p := range f.payments {
		if p.PaymentSchoolID == schoolID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) Create(_ context.Context, m *model.PaymentModel) error {
	if m.PaymentID == uuid.Nil {
		m.PaymentID = uuid.New()
	}
	f.payments[m.PaymentID] = m
	return nil
}

func (f *fakePaymentRepo) Update(_ context.Context, id uuid.UUID, req dto.UpdatePaymentRequest) (*model.PaymentModel, error) {
	m, ok := f.payments[id]
	if !ok {
		return nil, nil
	}
	req.Apply(m)
	return m, nil
}

type fakeGateway struct {
	gotAmount float64
	calls     int
	token     string
	err       error
}

func (f *fakeGateway) CreatePaymentIntent(amount float64) (string, error) {
	f.calls++
	f.gotAmount = amount
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func newPaymentApp(ctl *PaymentController) *fiber.App {
	app := fiber.New()
	app.Get("/api/schools/:school_id/payments", ctl.ListPaymentsBySchool)
	app.Post("/api/payments", ctl.CreatePayment)
	app.Post("/api/create-payment-intent", ctl.CreatePaymentIntent)
	app.Get("/api/payments/:id", ctl.GetPayment)
	app.Patch("/api/payments/:id", ctl.UpdatePayment)
	return app
}

func readBody(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&out))
	return out
}

/* =========================
   Tests
========================= */

func TestCreatePaymentIntent_UnconfiguredGateway(t *testing.T) {
	ctl := NewPaymentController(newFakePaymentRepo(), nil)
	app := newPaymentApp(ctl)

	req := httptest.NewRequest("POST", "/api/create-payment-intent", strings.NewReader(`{"amount":50}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	require.Equal(t, "Payment processing is not configured", readBody(t, resp.Body)["message"])
}

func TestCreatePaymentIntent_MissingAmount(t *testing.T) {
	gw := &fakeGateway{token: "tok_abc"}
	ctl := NewPaymentController(newFakePaymentRepo(), gw)
	app := newPaymentApp(ctl)

	req := httptest.NewRequest("POST", "/api/create-payment-intent", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Zero(t, gw.calls)
}

func TestCreatePaymentIntent_ReturnsClientSecret(t *testing.T) {
	gw := &fakeGateway{token: "tok_abc"}
	ctl := NewPaymentController(newFakePaymentRepo(), gw)
	app := newPaymentApp(ctl)

	req := httptest.NewRequest("POST", "/api/create-payment-intent", strings.NewReader(`{"amount":50.00}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "tok_abc", readBody(t, resp.Body)["client_secret"])
	require.Equal(t, 50.0, gw.gotAmount)
}

func TestCreatePaymentIntent_GatewayError(t *testing.T) {
	gw := &fakeGateway{err: errors.New("snap unreachable")}
	ctl := NewPaymentController(newFakePaymentRepo(), gw)
	app := newPaymentApp(ctl)

	req := httptest.NewRequest("POST", "/api/create-payment-intent", strings.NewReader(`{"amount":50}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	require.Contains(t, readBody(t, resp.Body)["message"], "Error creating payment intent")
}

func TestGetPayment_NotFound(t *testing.T) {
	ctl := NewPaymentController(newFakePaymentRepo(), nil)
	app := newPaymentApp(ctl)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/payments/"+uuid.NewString(), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.Equal(t, "Payment not found", readBody(t, resp.Body)["message"])
}

func TestCreatePayment_MissingFields(t *testing.T) {
	ctl := NewPaymentController(newFakePaymentRepo(), nil)
	app := newPaymentApp(ctl)

	req := httptest.NewRequest("POST", "/api/payments", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Contains(t, readBody(t, resp.Body)["message"], "is required")
}

func TestCreatePayment_Created(t *testing.T) {
	repo := newFakePaymentRepo()
	ctl := NewPaymentController(repo, nil)
	app := newPaymentApp(ctl)

	body := `{"payment_school_id":"` + uuid.NewString() + `","payment_amount":120.5}`
	req := httptest.NewRequest("POST", "/api/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Len(t, repo.payments, 1)

	got := readBody(t, resp.Body)
	require.Equal(t, 120.5, got["payment_amount"])
}

func TestListPaymentsBySchool_EmptyArray(t *testing.T) {
	ctl := NewPaymentController(newFakePaymentRepo(), nil)
	app := newPaymentApp(ctl)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/schools/"+uuid.NewString()+"/payments", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "[]", strings.TrimSpace(string(raw)))
}
