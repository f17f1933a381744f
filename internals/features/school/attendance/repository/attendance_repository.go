// file: internals/features/school/attendance/repository/attendance_repository.go
package repository

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/attendance/model"
	helper "schoolku_backend/internals/helpers"
)

type AttendanceRepository interface {
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.AttendanceModel, error)
	ListBySchoolAndDate(ctx context.Context, schoolID uuid.UUID, date time.Time) ([]model.AttendanceModel, error)
	Create(ctx context.Context, m *model.AttendanceModel) error
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// ListByStudent: tanggal terbaru dulu.
func (r *attendanceRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.AttendanceModel, error) {
	out := make([]model.AttendanceModel, 0)
	err := r.db.WithContext(ctx).
		Where("attendance_student_id = ?", studentID).
		Order("attendance_date DESC").
		Find(&out).Error
	return out, err
}

func (r *attendanceRepository) ListBySchoolAndDate(ctx context.Context, schoolID uuid.UUID, date time.Time) ([]model.AttendanceModel, error) {
	out := make([]model.AttendanceModel, 0)
	err := r.db.WithContext(ctx).
		Where("attendance_school_id = ? AND attendance_date = ?", schoolID, helper.NormalizeDate(date)).
		Find(&out).Error
	return out, err
}

// Create menjaga satu record per (student, course, date). Duplikat hari yang
// sama ditolak sebagai validation error, bukan constraint error mentah.
func (r *attendanceRepository) Create(ctx context.Context, m *model.AttendanceModel) error {
	m.AttendanceDate = helper.NormalizeDate(m.AttendanceDate)

	q := r.db.WithContext(ctx).Model(&model.AttendanceModel{}).
		Where("attendance_student_id = ? AND attendance_date = ?", m.AttendanceStudentID, m.AttendanceDate)
	if m.AttendanceCourseID != nil {
		q = q.Where("attendance_course_id = ?", *m.AttendanceCourseID)
	} else {
		q = q.Where("attendance_course_id IS NULL")
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return fiber.NewError(fiber.StatusBadRequest,
			"attendance already recorded for this student, course and date")
	}

	return r.db.WithContext(ctx).Create(m).Error
}
