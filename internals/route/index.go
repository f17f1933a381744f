// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	generationRoute "schoolku_backend/internals/features/ai/generations/route"
	generationService "schoolku_backend/internals/features/ai/generations/service"
	paymentRoute "schoolku_backend/internals/features/finance/payments/route"
	paymentService "schoolku_backend/internals/features/finance/payments/service"
	schoolRoute "schoolku_backend/internals/features/lembaga/schools/route"
	attendanceRoute "schoolku_backend/internals/features/school/attendance/route"
	courseRoute "schoolku_backend/internals/features/school/courses/route"
	enrollmentRoute "schoolku_backend/internals/features/school/enrollments/route"
	gradeRoute "schoolku_backend/internals/features/school/grades/route"
	studentRoute "schoolku_backend/internals/features/school/students/route"
	userRoute "schoolku_backend/internals/features/users/users/route"
)

// SetupRoutes mendaftarkan seluruh endpoint REST di bawah /api.
// Gateway & generator boleh nil (fitur terkait jawab 503).
func SetupRoutes(app *fiber.App, db *gorm.DB, gateway paymentService.PaymentGateway, gen generationService.CourseGenerator) {
	api := app.Group("/api")

	schoolRoute.SchoolRoutes(api, db)
	userRoute.UserRoutes(api, db)
	courseRoute.CourseRoutes(api, db)
	studentRoute.StudentRoutes(api, db)
	enrollmentRoute.EnrollmentRoutes(api, db)
	attendanceRoute.AttendanceRoutes(api, db)
	gradeRoute.GradeRoutes(api, db)
	paymentRoute.PaymentRoutes(api, db, gateway)
	generationRoute.AiGenerationRoutes(api, db, gen)
}
