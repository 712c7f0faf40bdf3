// file: internals/features/workouts/service/schedule_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "eaglesfitness_backend/internals/features/workouts/model"
)

var (
	ErrNoDays             = errors.New("schedule needs at least one day")
	ErrDayNumbersInvalid  = errors.New("day numbers must run 1..N without gaps or duplicates")
	ErrScheduleSaveFailed = errors.New("failed to save schedule")
)

// DayInput is one training day of a schedule draft. Entries with a nil
// exercise reference are blank editor rows and are skipped on save.
type DayInput struct {
	DayNumber int
	Note      *string
	Entries   []EntryInput
}

type EntryInput struct {
	ExerciseID  *uuid.UUID
	Sets        int
	Reps        string
	GroupNumber *int
}

// SaveSchedule writes the schedule header, its days, and the day entries in
// one transaction. Either the whole tree becomes visible or nothing does.
func SaveSchedule(db *gorm.DB, memberID uuid.UUID, title string, days []DayInput) (*model.Schedule, error) {
	if len(days) == 0 {
		return nil, ErrNoDays
	}
	// day numbers must form exactly {1..N}: duplicates would collapse two
	// days' entries onto one row, gaps would desync the stored day count
	seen := make(map[int]struct{}, len(days))
	for _, d := range days {
		if d.DayNumber < 1 || d.DayNumber > len(days) {
			return nil, ErrDayNumbersInvalid
		}
		if _, dup := seen[d.DayNumber]; dup {
			return nil, ErrDayNumbersInvalid
		}
		seen[d.DayNumber] = struct{}{}
	}

	schedule := &model.Schedule{
		MemberID: memberID,
		Title:    title,
		Days:     len(days),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(schedule).Error; err != nil {
			return err
		}

		dayRows := make([]model.ScheduleDay, len(days))
		for i, d := range days {
			dayRows[i] = model.ScheduleDay{
				ScheduleID: schedule.ID,
				DayNumber:  d.DayNumber,
				Note:       d.Note,
			}
		}
		if err := tx.Create(&dayRows).Error; err != nil {
			return err
		}

		dayIDByNumber := make(map[int]uuid.UUID, len(dayRows))
		for _, d := range dayRows {
			dayIDByNumber[d.DayNumber] = d.ID
		}

		var entries []model.ScheduleDayExercise
		for _, d := range days {
			order := 0
			for _, e := range d.Entries {
				if e.ExerciseID == nil {
					continue
				}
				entries = append(entries, model.ScheduleDayExercise{
					ScheduleDayID: dayIDByNumber[d.DayNumber],
					ExerciseID:    *e.ExerciseID,
					Sets:          e.Sets,
					Reps:          e.Reps,
					GroupNumber:   e.GroupNumber,
					Order:         order,
				})
				order++
			}
		}
		if len(entries) > 0 {
			if err := tx.Create(&entries).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, ErrScheduleSaveFailed
	}

	return schedule, nil
}
