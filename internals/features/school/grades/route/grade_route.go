// file: internals/features/school/grades/route/grade_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradeController "schoolku_backend/internals/features/school/grades/controller"
	gradeRepository "schoolku_backend/internals/features/school/grades/repository"
)

func GradeRoutes(api fiber.Router, db *gorm.DB) {
	ctl := gradeController.NewGradeController(gradeRepository.NewGradeRepository(db))

	api.Get("/students/:student_id/grades", ctl.ListGradesByStudent)
	api.Get("/courses/:course_id/grades", ctl.ListGradesByCourse)
	api.Post("/grades", ctl.CreateGrade)
	api.Patch("/grades/:id", ctl.UpdateGrade)
}
