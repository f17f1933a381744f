// file: internals/features/school/grades/repository/grade_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolku_backend/internals/features/school/grades/dto"
	"schoolku_backend/internals/features/school/grades/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.GradeModel{}))
	return db
}

func f64(v float64) *float64 { return &v }

func TestGradeCreate_RejectsScoreAboveMax(t *testing.T) {
	repo := NewGradeRepository(newTestDB(t))

	err := repo.Create(context.Background(), &model.GradeModel{
		GradeStudentID:       uuid.New(),
		GradeCourseID:        uuid.New(),
		GradeAssignmentTitle: "Quiz 1",
		GradeScore:           95,
		GradeMaxScore:        90,
	})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestGradeCreate_AllowsFullScore(t *testing.T) {
	repo := NewGradeRepository(newTestDB(t))

	m := &model.GradeModel{
		GradeStudentID:       uuid.New(),
		GradeCourseID:        uuid.New(),
		GradeAssignmentTitle: "Final Exam",
		GradeScore:           100,
		GradeMaxScore:        100,
	}
	require.NoError(t, repo.Create(context.Background(), m))
	require.NotEqual(t, uuid.Nil, m.GradeID)
}

func TestGradeUpdate_RejectsScoreAboveMax(t *testing.T) {
	db := newTestDB(t)
	repo := NewGradeRepository(db)
	ctx := context.Background()

	m := &model.GradeModel{
		GradeStudentID:       uuid.New(),
		GradeCourseID:        uuid.New(),
		GradeAssignmentTitle: "Homework 3",
		GradeScore:           40,
		GradeMaxScore:        50,
	}
	require.NoError(t, repo.Create(ctx, m))

	_, err := repo.Update(ctx, m.GradeID, dto.UpdateGradeRequest{GradeScore: f64(60)})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, fiber.StatusBadRequest, fe.Code)

	// Score lama tidak berubah.
	got, err := repo.Update(ctx, m.GradeID, dto.UpdateGradeRequest{})
	require.NoError(t, err)
	require.Equal(t, 40.0, got.GradeScore)
}

func TestGradeUpdate_NotFoundReturnsNil(t *testing.T) {
	repo := NewGradeRepository(newTestDB(t))

	got, err := repo.Update(context.Background(), uuid.New(), dto.UpdateGradeRequest{GradeScore: f64(10)})
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestGradeListByStudent_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewGradeRepository(db)
	ctx := context.Background()

	studentID := uuid.New()
	courseID := uuid.New()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, title := range []string{"Quiz 1", "Quiz 2", "Quiz 3"} {
		require.NoError(t, repo.Create(ctx, &model.GradeModel{
			GradeStudentID:       studentID,
			GradeCourseID:        courseID,
			GradeAssignmentTitle: title,
			GradeScore:           float64(70 + i),
			GradeMaxScore:        100,
			GradeGradedAt:        base.Add(time.Duration(i) * time.Hour),
		}))
	}
	// Grade milik murid lain tidak ikut.
	require.NoError(t, repo.Create(ctx, &model.GradeModel{
		GradeStudentID:       uuid.New(),
		GradeCourseID:        courseID,
		GradeAssignmentTitle: "Other",
		GradeScore:           50,
		GradeMaxScore:        100,
	}))

	got, err := repo.ListByStudent(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "Quiz 3", got[0].GradeAssignmentTitle)
	require.Equal(t, "Quiz 1", got[2].GradeAssignmentTitle)
}

func TestGradeListByCourse_EmptyIsNotNil(t *testing.T) {
	repo := NewGradeRepository(newTestDB(t))

	got, err := repo.ListByCourse(context.Background(), uuid.New())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}
