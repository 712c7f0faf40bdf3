// file: internals/features/workouts/dto/workout_dto.go
package dto

import (
	"github.com/google/uuid"

	service "eaglesfitness_backend/internals/features/workouts/service"
)

/* ========== Exercises ========== */

type CreateExerciseRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=150"`
	TargetGroup string `json:"target_group" validate:"required,min=2,max=100"`
}

/* ========== Schedule composer ========== */

type ScheduleEntryRequest struct {
	ExerciseID  *string `json:"exercise_id" validate:"omitempty,uuid"`
	Sets        int     `json:"sets" validate:"omitempty,gte=0"`
	Reps        string  `json:"reps" validate:"omitempty,max=50"`
	GroupNumber *int    `json:"group_number" validate:"omitempty,gte=1"`
}

type ScheduleDayRequest struct {
	DayNumber int                    `json:"day_number" validate:"required,gte=1"`
	Note      *string                `json:"note"`
	Entries   []ScheduleEntryRequest `json:"entries" validate:"dive"`
}

type CreateScheduleRequest struct {
	MemberID string               `json:"member_id" validate:"required,uuid"`
	Title    string               `json:"title" validate:"required,min=2,max=150"`
	Days     []ScheduleDayRequest `json:"days" validate:"required,min=1,dive"`
}

// ToDayInputs converts the request body into composer input. Blank rows keep
// a nil exercise reference and are dropped by the composer.
func (r *CreateScheduleRequest) ToDayInputs() ([]service.DayInput, error) {
	days := make([]service.DayInput, 0, len(r.Days))
	for _, d := range r.Days {
		entries := make([]service.EntryInput, 0, len(d.Entries))
		for _, e := range d.Entries {
			var exID *uuid.UUID
			if e.ExerciseID != nil && *e.ExerciseID != "" {
				id, err := uuid.Parse(*e.ExerciseID)
				if err != nil {
					return nil, err
				}
				exID = &id
			}
			entries = append(entries, service.EntryInput{
				ExerciseID:  exID,
				Sets:        e.Sets,
				Reps:        e.Reps,
				GroupNumber: e.GroupNumber,
			})
		}
		days = append(days, service.DayInput{
			DayNumber: d.DayNumber,
			Note:      d.Note,
			Entries:   entries,
		})
	}
	return days, nil
}
