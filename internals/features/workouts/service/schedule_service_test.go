package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "eaglesfitness_backend/internals/features/workouts/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Exercise{},
		&model.Schedule{},
		&model.ScheduleDay{},
		&model.ScheduleDayExercise{},
	))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func seedExercise(t *testing.T, db *gorm.DB, name string) model.Exercise {
	t.Helper()
	ex := model.Exercise{Name: name, TargetGroup: "Chest"}
	require.NoError(t, db.Create(&ex).Error)
	return ex
}

func intPtr(n int) *int { return &n }

func TestSaveSchedule_FullTree(t *testing.T) {
	db := setupDB(t)
	memberID := uuid.New()
	bench := seedExercise(t, db, "Bench Press")
	fly := seedExercise(t, db, "Dumbbell Fly")
	pushup := seedExercise(t, db, "Push Up")

	days := []DayInput{
		{
			DayNumber: 1,
			Entries: []EntryInput{
				{ExerciseID: &bench.ExID, Sets: 4, Reps: "8-10"},
			},
		},
		{
			DayNumber: 2,
			Entries: []EntryInput{
				{ExerciseID: &fly.ExID, Sets: 3, Reps: "12", GroupNumber: intPtr(1)},
				{ExerciseID: &pushup.ExID, Sets: 3, Reps: "15", GroupNumber: intPtr(1)},
			},
		},
	}

	sch, err := SaveSchedule(db, memberID, "Upper Body Split", days)
	require.NoError(t, err)
	assert.Equal(t, 2, sch.Days)
	assert.Equal(t, memberID, sch.MemberID)

	var loaded model.Schedule
	require.NoError(t, db.
		Preload("ScheduleDays", func(db *gorm.DB) *gorm.DB { return db.Order("day_number ASC") }).
		Preload("ScheduleDays.Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("entry_order ASC") }).
		First(&loaded, "id = ?", sch.ID).Error)

	require.Len(t, loaded.ScheduleDays, 2)

	day1 := loaded.ScheduleDays[0]
	require.Len(t, day1.Exercises, 1)
	assert.Equal(t, bench.ExID, day1.Exercises[0].ExerciseID)
	assert.Nil(t, day1.Exercises[0].GroupNumber)

	day2 := loaded.ScheduleDays[1]
	require.Len(t, day2.Exercises, 2)
	// entry order preserved inside the circuit
	assert.Equal(t, fly.ExID, day2.Exercises[0].ExerciseID)
	assert.Equal(t, pushup.ExID, day2.Exercises[1].ExerciseID)
	require.NotNil(t, day2.Exercises[0].GroupNumber)
	require.NotNil(t, day2.Exercises[1].GroupNumber)
	assert.Equal(t, *day2.Exercises[0].GroupNumber, *day2.Exercises[1].GroupNumber)
}

func TestSaveSchedule_SkipsBlankRows(t *testing.T) {
	db := setupDB(t)
	bench := seedExercise(t, db, "Bench Press")

	days := []DayInput{
		{
			DayNumber: 1,
			Entries: []EntryInput{
				{ExerciseID: nil, Sets: 3, Reps: "10"}, // blank editor row
				{ExerciseID: &bench.ExID, Sets: 4, Reps: "8"},
				{ExerciseID: nil},
			},
		},
	}

	sch, err := SaveSchedule(db, uuid.New(), "Push Day", days)
	require.NoError(t, err)

	var entries []model.ScheduleDayExercise
	require.NoError(t, db.
		Joins("JOIN schedule_days ON schedule_days.id = schedule_day_exercises.schedule_day_id").
		Where("schedule_days.schedule_id = ?", sch.ID).
		Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, bench.ExID, entries[0].ExerciseID)
	assert.Equal(t, 0, entries[0].Order)
}

func TestSaveSchedule_NoDays(t *testing.T) {
	db := setupDB(t)
	_, err := SaveSchedule(db, uuid.New(), "Empty", nil)
	require.ErrorIs(t, err, ErrNoDays)

	var count int64
	require.NoError(t, db.Model(&model.Schedule{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSaveSchedule_RejectsBadDayNumbers(t *testing.T) {
	db := setupDB(t)
	bench := seedExercise(t, db, "Bench Press")
	squat := seedExercise(t, db, "Squat")

	cases := []struct {
		name string
		days []DayInput
	}{
		{
			name: "duplicate numbers",
			days: []DayInput{
				{DayNumber: 5, Entries: []EntryInput{{ExerciseID: &bench.ExID, Sets: 3, Reps: "10"}}},
				{DayNumber: 5, Entries: []EntryInput{{ExerciseID: &squat.ExID, Sets: 3, Reps: "8"}}},
			},
		},
		{
			name: "gap",
			days: []DayInput{
				{DayNumber: 1},
				{DayNumber: 3},
			},
		},
		{
			name: "not starting at one",
			days: []DayInput{
				{DayNumber: 2},
			},
		},
		{
			name: "zero",
			days: []DayInput{
				{DayNumber: 0},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := SaveSchedule(db, uuid.New(), "Broken", tc.days)
			require.ErrorIs(t, err, ErrDayNumbersInvalid)
		})
	}

	// nothing persisted by any rejected draft
	var schedules, dayRows, entries int64
	require.NoError(t, db.Model(&model.Schedule{}).Count(&schedules).Error)
	require.NoError(t, db.Model(&model.ScheduleDay{}).Count(&dayRows).Error)
	require.NoError(t, db.Model(&model.ScheduleDayExercise{}).Count(&entries).Error)
	assert.Zero(t, schedules)
	assert.Zero(t, dayRows)
	assert.Zero(t, entries)
}

func TestSaveSchedule_RollbackOnFailure(t *testing.T) {
	db := setupDB(t)
	bench := seedExercise(t, db, "Bench Press")

	// break the entries insert so the composer fails mid-transaction
	require.NoError(t, db.Migrator().DropTable(&model.ScheduleDayExercise{}))

	days := []DayInput{
		{DayNumber: 1, Entries: []EntryInput{{ExerciseID: &bench.ExID, Sets: 3, Reps: "10"}}},
		{DayNumber: 2},
	}

	_, err := SaveSchedule(db, uuid.New(), "Broken", days)
	require.ErrorIs(t, err, ErrScheduleSaveFailed)

	// the header and day writes that preceded the failure rolled back too
	var schedules, dayRows int64
	require.NoError(t, db.Model(&model.Schedule{}).Count(&schedules).Error)
	require.NoError(t, db.Model(&model.ScheduleDay{}).Count(&dayRows).Error)
	assert.Zero(t, schedules)
	assert.Zero(t, dayRows)
}
