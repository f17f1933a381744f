// file: internals/features/school/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
	AttendanceStatusExcused AttendanceStatus = "excused"
)

/* =========================
   Attendance model
========================= */

type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceSchoolID  uuid.UUID  `gorm:"type:uuid;not null;index;column:attendance_school_id" json:"attendance_school_id"`
	AttendanceStudentID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_student_course_date;column:attendance_student_id" json:"attendance_student_id"`
	AttendanceCourseID  *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_attendance_student_course_date;column:attendance_course_id" json:"attendance_course_id,omitempty"`

	// Disimpan ternormalisasi ke tengah malam UTC (satu record per hari).
	AttendanceDate time.Time `gorm:"not null;uniqueIndex:uq_attendance_student_course_date;column:attendance_date" json:"attendance_date"`

	AttendanceStatus AttendanceStatus `gorm:"type:varchar(10);not null;column:attendance_status" json:"attendance_status"`
	AttendanceNotes  *string          `gorm:"type:text;column:attendance_notes" json:"attendance_notes,omitempty"`

	AttendanceMarkedBy *uuid.UUID `gorm:"type:uuid;column:attendance_marked_by" json:"attendance_marked_by,omitempty"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
}

func (AttendanceModel) TableName() string { return "attendance" }

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	return nil
}
