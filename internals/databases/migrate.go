package database

import (
	"os"

	log "github.com/sirupsen/logrus"

	attendanceModel "eaglesfitness_backend/internals/features/attendance/model"
	measurementModel "eaglesfitness_backend/internals/features/measurements/model"
	memberModel "eaglesfitness_backend/internals/features/members/model"
	notificationModel "eaglesfitness_backend/internals/features/notifications/model"
	paymentModel "eaglesfitness_backend/internals/features/payments/model"
	authModel "eaglesfitness_backend/internals/features/users/auth/model"
	workoutModel "eaglesfitness_backend/internals/features/workouts/model"
)

// MigrateModels runs gorm AutoMigrate over every table. Opt-in via
// DB_AUTO_MIGRATE=true; production schemas are managed out of band.
func MigrateModels() {
	if os.Getenv("DB_AUTO_MIGRATE") != "true" {
		return
	}
	log.Info("🛠  running auto-migration...")

	if err := DB.AutoMigrate(
		&authModel.UserModel{},
		&authModel.RoleClaim{},
		&authModel.TokenBlacklist{},
		&memberModel.Member{},
		&paymentModel.Payment{},
		&attendanceModel.Attendance{},
		&measurementModel.Measurement{},
		&notificationModel.Notification{},
		&workoutModel.Exercise{},
		&workoutModel.Schedule{},
		&workoutModel.ScheduleDay{},
		&workoutModel.ScheduleDayExercise{},
	); err != nil {
		log.Fatalf("❌ auto-migration failed: %v", err)
	}
	log.Info("✅ auto-migration done.")
}
