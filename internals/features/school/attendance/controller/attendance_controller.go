// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/features/school/attendance/dto"
	"schoolku_backend/internals/features/school/attendance/repository"
	helper "schoolku_backend/internals/helpers"
)

type AttendanceController struct {
	Repo     repository.AttendanceRepository
	Validate *validator.Validate
}

func NewAttendanceController(repo repository.AttendanceRepository) *AttendanceController {
	return &AttendanceController{Repo: repo, Validate: validator.New()}
}

// GET /api/students/:student_id/attendance
func (ctl *AttendanceController) ListAttendanceByStudent(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDParam(c, "student_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	records, err := ctl.Repo.ListByStudent(c.Context(), studentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, records)
}

// GET /api/schools/:school_id/attendance?date=YYYY-MM-DD
// Query `date` wajib ada dan valid (400 kalau tidak).
func (ctl *AttendanceController) ListAttendanceBySchoolAndDate(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	date, err := helper.ParseDateQuery(c.Query("date"))
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	records, err := ctl.Repo.ListBySchoolAndDate(c.Context(), schoolID, date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, records)
}

// POST /api/attendance
func (ctl *AttendanceController) CreateAttendance(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRequest
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
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonCreated(c, m)
}
