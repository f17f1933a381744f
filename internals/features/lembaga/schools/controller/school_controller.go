// file: internals/features/lembaga/schools/controller/school_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/features/lembaga/schools/dto"
	"schoolku_backend/internals/features/lembaga/schools/repository"
	helper "schoolku_backend/internals/helpers"
)

type SchoolController struct {
	Repo     repository.SchoolRepository
	Validate *validator.Validate
}

func NewSchoolController(repo repository.SchoolRepository) *SchoolController {
	return &SchoolController{Repo: repo, Validate: validator.New()}
}

// GET /api/schools/:id
func (ctl *SchoolController) GetSchool(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	m, err := ctl.Repo.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "School not found")
	}
	return helper.JsonOK(c, m)
}

// POST /api/schools
func (ctl *SchoolController) CreateSchool(c *fiber.Ctx) error {
	var req dto.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, helper.ValidationMessage(err))
	}
	m := req.ToModel()
	if err := ctl.Repo.Create(c.Context(), m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonCreated(c, m)
}

// PATCH /api/schools/:id
func (ctl *SchoolController) UpdateSchool(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.UpdateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, helper.ValidationMessage(err))
	}
	m, err := ctl.Repo.Update(c.Context(), id, req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "School not found")
	}
	return helper.JsonOK(c, m)
}
