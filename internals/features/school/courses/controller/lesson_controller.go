// file: internals/features/school/courses/controller/lesson_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/features/school/courses/dto"
	"schoolku_backend/internals/features/school/courses/repository"
	helper "schoolku_backend/internals/helpers"
)

type LessonController struct {
	Repo     repository.LessonRepository
	Validate *validator.Validate
}

func NewLessonController(repo repository.LessonRepository) *LessonController {
	return &LessonController{Repo: repo, Validate: validator.New()}
}

// GET /api/courses/:course_id/lessons
func (ctl *LessonController) ListLessonsByCourse(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "course_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	lessons, err := ctl.Repo.ListByCourse(c.Context(), courseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, lessons)
}

// POST /api/lessons
func (ctl *LessonController) CreateLesson(c *fiber.Ctx) error {
	var req dto.CreateLessonRequest
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

// PATCH /api/lessons/:id
func (ctl *LessonController) UpdateLesson(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.UpdateLessonRequest
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
		return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
	}
	return helper.JsonOK(c, m)
}

// DELETE /api/lessons/:id
func (ctl *LessonController) DeleteLesson(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Repo.Delete(c.Context(), id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c)
}
