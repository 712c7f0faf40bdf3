// file: internals/features/workouts/model/exercise_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exercise is a catalog entry trainers pick from when composing schedules.
type Exercise struct {
	ExID        uuid.UUID `json:"ex_id" gorm:"column:ex_id;type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"size:150;not null"`
	TargetGroup string    `json:"target_group" gorm:"size:100;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Exercise) TableName() string { return "exercises" }

func (e *Exercise) BeforeCreate(tx *gorm.DB) error {
	if e.ExID == uuid.Nil {
		e.ExID = uuid.New()
	}
	return nil
}
