// file: internals/features/school/courses/route/course_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "schoolku_backend/internals/features/school/courses/controller"
	courseRepository "schoolku_backend/internals/features/school/courses/repository"
)

func CourseRoutes(api fiber.Router, db *gorm.DB) {
	courseCtl := courseController.NewCourseController(courseRepository.NewCourseRepository(db))
	lessonCtl := courseController.NewLessonController(courseRepository.NewLessonRepository(db))

	api.Get("/schools/:school_id/courses", courseCtl.ListCoursesBySchool)

	courses := api.Group("/courses")
	{
		courses.Post("/", courseCtl.CreateCourse)
		courses.Get("/:id", courseCtl.GetCourse)
		courses.Patch("/:id", courseCtl.UpdateCourse)
		courses.Delete("/:id", courseCtl.DeleteCourse)
		courses.Get("/:course_id/lessons", lessonCtl.ListLessonsByCourse)
	}

	lessons := api.Group("/lessons")
	{
		lessons.Post("/", lessonCtl.CreateLesson)
		lessons.Patch("/:id", lessonCtl.UpdateLesson)
		lessons.Delete("/:id", lessonCtl.DeleteLesson)
	}
}
