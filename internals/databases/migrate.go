// file: internals/databases/migrate.go
package database

import (
	"log"

	"gorm.io/gorm"

	generationModel "schoolku_backend/internals/features/ai/generations/model"
	paymentModel "schoolku_backend/internals/features/finance/payments/model"
	schoolModel "schoolku_backend/internals/features/lembaga/schools/model"
	attendanceModel "schoolku_backend/internals/features/school/attendance/model"
	courseModel "schoolku_backend/internals/features/school/courses/model"
	enrollmentModel "schoolku_backend/internals/features/school/enrollments/model"
	gradeModel "schoolku_backend/internals/features/school/grades/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
	userModel "schoolku_backend/internals/features/users/users/model"
)

// AutoMigrate menjalankan migrasi skema untuk semua model fitur.
func AutoMigrate(db *gorm.DB) {
	log.Println("🚀 Menjalankan AutoMigrate...")
	if err := db.AutoMigrate(
		&schoolModel.SchoolModel{},
		&userModel.UserModel{},
		&courseModel.CourseModel{},
		&courseModel.LessonModel{},
		&studentModel.StudentModel{},
		&enrollmentModel.EnrollmentModel{},
		&attendanceModel.AttendanceModel{},
		&gradeModel.GradeModel{},
		&paymentModel.PaymentModel{},
		&generationModel.AiGenerationModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai")
}
