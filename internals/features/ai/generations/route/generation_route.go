// file: internals/features/ai/generations/route/generation_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	generationController "schoolku_backend/internals/features/ai/generations/controller"
	generationRepository "schoolku_backend/internals/features/ai/generations/repository"
	generationService "schoolku_backend/internals/features/ai/generations/service"
)

func AiGenerationRoutes(api fiber.Router, db *gorm.DB, gen generationService.CourseGenerator) {
	ctl := generationController.NewAiGenerationController(generationRepository.NewAiGenerationRepository(db), gen)

	api.Get("/schools/:school_id/ai-generations", ctl.ListGenerationsBySchool)
	api.Post("/ai/generate-course", ctl.GenerateCourse)
}
