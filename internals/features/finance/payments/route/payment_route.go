// file: internals/features/finance/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "schoolku_backend/internals/features/finance/payments/controller"
	paymentRepository "schoolku_backend/internals/features/finance/payments/repository"
	paymentService "schoolku_backend/internals/features/finance/payments/service"
)

func PaymentRoutes(api fiber.Router, db *gorm.DB, gateway paymentService.PaymentGateway) {
	ctl := paymentController.NewPaymentController(paymentRepository.NewPaymentRepository(db), gateway)

	api.Get("/schools/:school_id/payments", ctl.ListPaymentsBySchool)
	api.Post("/payments", ctl.CreatePayment)
	api.Post("/create-payment-intent", ctl.CreatePaymentIntent)
	api.Get("/payments/:id", ctl.GetPayment)
	api.Patch("/payments/:id", ctl.UpdatePayment)
}
