// file: internals/features/school/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/attendance/model"
	helper "schoolku_backend/internals/helpers"
)

type CreateAttendanceRequest struct {
	AttendanceSchoolID  uuid.UUID  `json:"attendance_school_id" validate:"required"`
	AttendanceStudentID uuid.UUID  `json:"attendance_student_id" validate:"required"`
	AttendanceCourseID  *uuid.UUID `json:"attendance_course_id,omitempty"`

	AttendanceDate   time.Time              `json:"attendance_date" validate:"required"`
	AttendanceStatus model.AttendanceStatus `json:"attendance_status" validate:"required,oneof=present absent late excused"`
	AttendanceNotes  *string                `json:"attendance_notes,omitempty"`

	AttendanceMarkedBy *uuid.UUID `json:"attendance_marked_by,omitempty"`
}

func (r CreateAttendanceRequest) ToModel() *model.AttendanceModel {
	return &model.AttendanceModel{
		AttendanceSchoolID:  r.AttendanceSchoolID,
		AttendanceStudentID: r.AttendanceStudentID,
		AttendanceCourseID:  r.AttendanceCourseID,
		AttendanceDate:      helper.NormalizeDate(r.AttendanceDate),
		AttendanceStatus:    r.AttendanceStatus,
		AttendanceNotes:     r.AttendanceNotes,
		AttendanceMarkedBy:  r.AttendanceMarkedBy,
	}
}
