// file: internals/features/school/enrollments/route/enrollment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "schoolku_backend/internals/features/school/enrollments/controller"
	enrollmentRepository "schoolku_backend/internals/features/school/enrollments/repository"
)

func EnrollmentRoutes(api fiber.Router, db *gorm.DB) {
	ctl := enrollmentController.NewEnrollmentController(enrollmentRepository.NewEnrollmentRepository(db))

	api.Get("/courses/:course_id/enrollments", ctl.ListEnrollmentsByCourse)
	api.Get("/students/:student_id/enrollments", ctl.ListEnrollmentsByStudent)

	enrollments := api.Group("/enrollments")
	{
		enrollments.Post("/", ctl.CreateEnrollment)
		enrollments.Patch("/:id", ctl.UpdateEnrollment)
	}
}
