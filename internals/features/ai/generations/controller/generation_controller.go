// file: internals/features/ai/generations/controller/generation_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/ai/generations/dto"
	"schoolku_backend/internals/features/ai/generations/model"
	"schoolku_backend/internals/features/ai/generations/repository"
	"schoolku_backend/internals/features/ai/generations/service"
	helper "schoolku_backend/internals/helpers"
	authSchool "schoolku_backend/internals/middlewares/auth_school"
)

type AiGenerationController struct {
	Repo      repository.AiGenerationRepository
	Generator service.CourseGenerator // nil kalau API key belum diset
	Validate  *validator.Validate
}

func NewAiGenerationController(repo repository.AiGenerationRepository, gen service.CourseGenerator) *AiGenerationController {
	return &AiGenerationController{Repo: repo, Generator: gen, Validate: validator.New()}
}

// GET /api/schools/:school_id/ai-generations
func (ctl *AiGenerationController) ListGenerationsBySchool(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	items, err := ctl.Repo.ListBySchool(c.Context(), schoolID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, items)
}

// POST /api/ai/generate-course
// Klaim JWT (kalau ada) menang atas school_id/user_id dari body.
func (ctl *AiGenerationController) GenerateCourse(c *fiber.Ctx) error {
	if ctl.Generator == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "AI course generation is not configured")
	}
	var req dto.GenerateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, helper.ValidationMessage(err))
	}

	genReq := service.CourseRequest{
		Topic:           req.Topic,
		Grade:           req.Grade,
		Subject:         req.Subject,
		Duration:        req.Duration,
		AdditionalNotes: req.AdditionalNotes,
	}
	course, err := ctl.Generator.GenerateCourse(c.Context(), genReq)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error generating course: "+err.Error())
	}

	// Simpan riwayat best-effort: gagal nulis history tidak menggagalkan response.
	if schoolID := ctl.resolveSchoolID(c, req); schoolID != uuid.Nil {
		doc := datatypes.NewJSONType(*course)
		hist := &model.AiGenerationModel{
			AiGenerationSchoolID: schoolID,
			AiGenerationUserID:   ctl.resolveUserID(c, req),
			AiGenerationTopic:    req.Topic,
			AiGenerationGrade:    req.Grade,
			AiGenerationSubject:  req.Subject,
			AiGenerationPrompt:   service.BuildUserPrompt(genReq),
			AiGenerationResult:   &doc,
		}
		if req.Duration != "" {
			d := req.Duration
			hist.AiGenerationDuration = &d
		}
		if err := ctl.Repo.Create(c.Context(), hist); err != nil {
			log.Printf("[WARN] failed to save ai generation history: %v", err)
		}
	}

	return helper.JsonOK(c, course)
}

func (ctl *AiGenerationController) resolveSchoolID(c *fiber.Ctx, req dto.GenerateCourseRequest) uuid.UUID {
	if raw, ok := c.Locals(authSchool.LocalsSchoolID).(string); ok && raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			return id
		}
	}
	if req.SchoolID != nil {
		return *req.SchoolID
	}
	return uuid.Nil
}

func (ctl *AiGenerationController) resolveUserID(c *fiber.Ctx, req dto.GenerateCourseRequest) *uuid.UUID {
	if raw, ok := c.Locals(authSchool.LocalsUserID).(string); ok && raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			return &id
		}
	}
	return req.UserID
}
