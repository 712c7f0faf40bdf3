// file: internals/features/measurements/model/measurement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Measurement is an append-only body measurement snapshot. All tape fields
// are optional; the trainer fills in whatever was taken that day.
type Measurement struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	MemberID uuid.UUID `json:"member_id" gorm:"type:uuid;not null;index"`

	MeasuredAt time.Time `json:"measured_at" gorm:"type:date;not null"`

	WeightKg     *float64 `json:"weight_kg,omitempty" gorm:"type:numeric(6,2)"`
	Height       *float64 `json:"height,omitempty" gorm:"type:numeric(6,2)"`
	ChestIn      *float64 `json:"chest_in,omitempty" gorm:"type:numeric(6,2)"`
	BellyIn      *float64 `json:"belly_in,omitempty" gorm:"type:numeric(6,2)"`
	LegIn        *float64 `json:"leg_in,omitempty" gorm:"type:numeric(6,2)"`
	CalfIn       *float64 `json:"calf_in,omitempty" gorm:"type:numeric(6,2)"`
	ArmRelaxedIn *float64 `json:"arm_relaxed_in,omitempty" gorm:"type:numeric(6,2)"`
	ArmFlexedIn  *float64 `json:"arm_flexed_in,omitempty" gorm:"type:numeric(6,2)"`
	ForearmIn    *float64 `json:"forearm_in,omitempty" gorm:"type:numeric(6,2)"`

	Abnormalities *string `json:"abnormalities,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Measurement) TableName() string { return "measurements" }

func (m *Measurement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
