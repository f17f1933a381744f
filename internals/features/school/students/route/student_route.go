// file: internals/features/school/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "schoolku_backend/internals/features/school/students/controller"
	studentRepository "schoolku_backend/internals/features/school/students/repository"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctl := studentController.NewStudentController(studentRepository.NewStudentRepository(db))

	api.Get("/schools/:school_id/students", ctl.ListStudentsBySchool)

	students := api.Group("/students")
	{
		students.Post("/", ctl.CreateStudent)
		students.Get("/:id", ctl.GetStudent)
		students.Patch("/:id", ctl.UpdateStudent)
	}
}
