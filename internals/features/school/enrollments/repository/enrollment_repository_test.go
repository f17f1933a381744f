// file: internals/features/school/enrollments/repository/enrollment_repository_test.go
package repository

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolku_backend/internals/features/school/enrollments/dto"
	"schoolku_backend/internals/features/school/enrollments/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.EnrollmentModel{}))
	return db
}

func intp(v int) *int { return &v }

func TestEnrollmentCreate_RejectsProgressOutOfRange(t *testing.T) {
	repo := NewEnrollmentRepository(newTestDB(t))

	err := repo.Create(context.Background(), &model.EnrollmentModel{
		EnrollmentCourseID:  uuid.New(),
		EnrollmentStudentID: uuid.New(),
		EnrollmentProgress:  101,
	})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestEnrollmentUpdate_ProgressBounds(t *testing.T) {
	repo := NewEnrollmentRepository(newTestDB(t))
	ctx := context.Background()

	m := &model.EnrollmentModel{
		EnrollmentCourseID:  uuid.New(),
		EnrollmentStudentID: uuid.New(),
		EnrollmentProgress:  0,
	}
	require.NoError(t, repo.Create(ctx, m))

	got, err := repo.Update(ctx, m.EnrollmentID, dto.UpdateEnrollmentRequest{EnrollmentProgress: intp(100)})
	require.NoError(t, err)
	require.Equal(t, 100, got.EnrollmentProgress)

	_, err = repo.Update(ctx, m.EnrollmentID, dto.UpdateEnrollmentRequest{EnrollmentProgress: intp(-1)})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestEnrollmentUpdate_NotFoundReturnsNil(t *testing.T) {
	repo := NewEnrollmentRepository(newTestDB(t))

	got, err := repo.Update(context.Background(), uuid.New(), dto.UpdateEnrollmentRequest{EnrollmentProgress: intp(10)})
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestEnrollmentLists(t *testing.T) {
	repo := NewEnrollmentRepository(newTestDB(t))
	ctx := context.Background()

	courseID := uuid.New()
	studentID := uuid.New()

	require.NoError(t, repo.Create(ctx, &model.EnrollmentModel{
		EnrollmentCourseID:  courseID,
		EnrollmentStudentID: studentID,
	}))
	require.NoError(t, repo.Create(ctx, &model.EnrollmentModel{
		EnrollmentCourseID:  courseID,
		EnrollmentStudentID: uuid.New(),
	}))
	require.NoError(t, repo.Create(ctx, &model.EnrollmentModel{
		EnrollmentCourseID:  uuid.New(),
		EnrollmentStudentID: studentID,
	}))

	byCourse, err := repo.ListByCourse(ctx, courseID)
	require.NoError(t, err)
	require.Len(t, byCourse, 2)

	byStudent, err := repo.ListByStudent(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, byStudent, 2)

	empty, err := repo.ListByCourse(ctx, uuid.New())
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)
}
