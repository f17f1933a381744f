// file: internals/features/school/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "schoolku_backend/internals/features/school/attendance/controller"
	attendanceRepository "schoolku_backend/internals/features/school/attendance/repository"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctl := attendanceController.NewAttendanceController(attendanceRepository.NewAttendanceRepository(db))

	api.Get("/students/:student_id/attendance", ctl.ListAttendanceByStudent)
	api.Get("/schools/:school_id/attendance", ctl.ListAttendanceBySchoolAndDate)
	api.Post("/attendance", ctl.CreateAttendance)
}
