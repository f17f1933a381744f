// file: internals/features/school/students/repository/student_repository_test.go
package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolku_backend/internals/features/school/students/dto"
	"schoolku_backend/internals/features/school/students/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.StudentModel{}))
	return db
}

func TestStudentCreate_DefaultsToActive(t *testing.T) {
	repo := NewStudentRepository(newTestDB(t))

	m := &model.StudentModel{
		StudentSchoolID:  uuid.New(),
		StudentFirstName: "Hana",
		StudentLastName:  "Tesfaye",
	}
	require.NoError(t, repo.Create(context.Background(), m))
	require.NotEqual(t, uuid.Nil, m.StudentID)
	require.Equal(t, model.StudentStatusActive, m.StudentStatus)
}

func TestStudentUpdate_StatusChange(t *testing.T) {
	repo := NewStudentRepository(newTestDB(t))
	ctx := context.Background()

	m := &model.StudentModel{
		StudentSchoolID:  uuid.New(),
		StudentFirstName: "Hana",
		StudentLastName:  "Tesfaye",
	}
	require.NoError(t, repo.Create(ctx, m))

	graduated := model.StudentStatusGraduated
	got, err := repo.Update(ctx, m.StudentID, dto.UpdateStudentRequest{StudentStatus: &graduated})
	require.NoError(t, err)
	require.Equal(t, model.StudentStatusGraduated, got.StudentStatus)
	require.Equal(t, "Hana", got.StudentFirstName)
}

func TestStudentGetByID_NotFoundReturnsNil(t *testing.T) {
	repo := NewStudentRepository(newTestDB(t))

	got, err := repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestStudentListBySchool_ScopedToTenant(t *testing.T) {
	repo := NewStudentRepository(newTestDB(t))
	ctx := context.Background()
	schoolID := uuid.New()

	for _, name := range []string{"Hana", "Dawit"} {
		require.NoError(t, repo.Create(ctx, &model.StudentModel{
			StudentSchoolID:  schoolID,
			StudentFirstName: name,
			StudentLastName:  "Tesfaye",
		}))
	}
	require.NoError(t, repo.Create(ctx, &model.StudentModel{
		StudentSchoolID:  uuid.New(),
		StudentFirstName: "Other",
		StudentLastName:  "School",
	}))

	got, err := repo.ListBySchool(ctx, schoolID)
	require.NoError(t, err)
	require.Len(t, got, 2)
}
