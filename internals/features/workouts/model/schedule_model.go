// file: internals/features/workouts/model/schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Schedule tree
   schedules → schedule_days → schedule_day_exercises
   ========================= */

type Schedule struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	MemberID uuid.UUID `json:"member_id" gorm:"type:uuid;not null;index"`
	Title    string    `json:"title" gorm:"size:150;not null"`
	Days     int       `json:"days" gorm:"not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	ScheduleDays []ScheduleDay `json:"schedule_days,omitempty" gorm:"foreignKey:ScheduleID"`
}

func (Schedule) TableName() string { return "schedules" }

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type ScheduleDay struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ScheduleID uuid.UUID `json:"schedule_id" gorm:"type:uuid;not null;index"`
	DayNumber  int       `json:"day_number" gorm:"not null"`
	Note       *string   `json:"note,omitempty" gorm:"type:text"`

	Exercises []ScheduleDayExercise `json:"exercises,omitempty" gorm:"foreignKey:ScheduleDayID"`
}

func (ScheduleDay) TableName() string { return "schedule_days" }

func (d *ScheduleDay) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

type ScheduleDayExercise struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ScheduleDayID uuid.UUID `json:"schedule_day_id" gorm:"type:uuid;not null;index"`
	ExerciseID    uuid.UUID `json:"exercise_id" gorm:"type:uuid;not null"`

	Sets int    `json:"sets" gorm:"not null"`
	Reps string `json:"reps" gorm:"size:50;not null"` // free text, e.g. "12" or "8-10"

	// nil group_number = individual exercise; rows sharing a number form a circuit
	GroupNumber *int `json:"group_number,omitempty"`
	Order       int  `json:"order" gorm:"column:entry_order;not null"`

	Exercise *Exercise `json:"exercise,omitempty" gorm:"foreignKey:ExerciseID;references:ExID"`
}

func (ScheduleDayExercise) TableName() string { return "schedule_day_exercises" }

func (e *ScheduleDayExercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
