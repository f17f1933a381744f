// file: internals/features/school/courses/controller/course_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/features/school/courses/dto"
	"schoolku_backend/internals/features/school/courses/repository"
	helper "schoolku_backend/internals/helpers"
)

type CourseController struct {
	Repo     repository.CourseRepository
	Validate *validator.Validate
}

func NewCourseController(repo repository.CourseRepository) *CourseController {
	return &CourseController{Repo: repo, Validate: validator.New()}
}

// GET /api/schools/:school_id/courses
func (ctl *CourseController) ListCoursesBySchool(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	courses, err := ctl.Repo.ListBySchool(c.Context(), schoolID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, courses)
}

// GET /api/courses/:id
func (ctl *CourseController) GetCourse(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	m, err := ctl.Repo.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.JsonOK(c, m)
}

// POST /api/courses
func (ctl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
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

// PATCH /api/courses/:id
func (ctl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, helper.ValidationMessage(err))
	}
	m, err := ctl.Repo.Update(c.Context(), id, req)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.JsonOK(c, m)
}

// DELETE /api/courses/:id
func (ctl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Repo.Delete(c.Context(), id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c)
}
