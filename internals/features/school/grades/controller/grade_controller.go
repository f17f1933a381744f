// file: internals/features/school/grades/controller/grade_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/features/school/grades/dto"
	"schoolku_backend/internals/features/school/grades/repository"
	helper "schoolku_backend/internals/helpers"
)

type GradeController struct {
	Repo     repository.GradeRepository
	Validate *validator.Validate
}

func NewGradeController(repo repository.GradeRepository) *GradeController {
	return &GradeController{Repo: repo, Validate: validator.New()}
}

// GET /api/students/:student_id/grades
func (ctl *GradeController) ListGradesByStudent(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDParam(c, "student_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	grades, err := ctl.Repo.ListByStudent(c.Context(), studentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, grades)
}

// GET /api/courses/:course_id/grades
func (ctl *GradeController) ListGradesByCourse(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "course_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	grades, err := ctl.Repo.ListByCourse(c.Context(), courseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, grades)
}

// POST /api/grades
func (ctl *GradeController) CreateGrade(c *fiber.Ctx) error {
	var req dto.CreateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, helper.ValidationMessage(err))
	}
	m := req.ToModel()
	if err := ctl.Repo.Create(c.Context(), m); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, m)
}

// PATCH /api/grades/:id
func (ctl *GradeController) UpdateGrade(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.UpdateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, helper.ValidationMessage(err))
	}
	grade, err := ctl.Repo.Update(c.Context(), id, req)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if grade == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Grade not found")
	}
	return helper.JsonOK(c, grade)
}
