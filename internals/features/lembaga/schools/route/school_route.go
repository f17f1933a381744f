// file: internals/features/lembaga/schools/route/school_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolController "schoolku_backend/internals/features/lembaga/schools/controller"
	schoolRepository "schoolku_backend/internals/features/lembaga/schools/repository"
)

// SchoolRoutes, mount: SchoolRoutes(app.Group("/api"), db)
func SchoolRoutes(api fiber.Router, db *gorm.DB) {
	ctl := schoolController.NewSchoolController(schoolRepository.NewSchoolRepository(db))

	schools := api.Group("/schools")
	{
		schools.Post("/", ctl.CreateSchool)
		schools.Get("/:id", ctl.GetSchool)
		schools.Patch("/:id", ctl.UpdateSchool)
	}
}
