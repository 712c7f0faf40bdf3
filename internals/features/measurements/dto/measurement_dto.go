// file: internals/features/measurements/dto/measurement_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "eaglesfitness_backend/internals/features/measurements/model"
)

type CreateMeasurementRequest struct {
	MemberID   string `json:"member_id" validate:"required,uuid"`
	MeasuredAt string `json:"measured_at" validate:"omitempty,datetime=2006-01-02"`

	WeightKg     *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
	Height       *float64 `json:"height" validate:"omitempty,gt=0"`
	ChestIn      *float64 `json:"chest_in" validate:"omitempty,gt=0"`
	BellyIn      *float64 `json:"belly_in" validate:"omitempty,gt=0"`
	LegIn        *float64 `json:"leg_in" validate:"omitempty,gt=0"`
	CalfIn       *float64 `json:"calf_in" validate:"omitempty,gt=0"`
	ArmRelaxedIn *float64 `json:"arm_relaxed_in" validate:"omitempty,gt=0"`
	ArmFlexedIn  *float64 `json:"arm_flexed_in" validate:"omitempty,gt=0"`
	ForearmIn    *float64 `json:"forearm_in" validate:"omitempty,gt=0"`

	Abnormalities *string `json:"abnormalities"`
}

// ToModel assumes the request already passed validation. MeasuredAt defaults
// to today when omitted.
func (r *CreateMeasurementRequest) ToModel(now time.Time) (*model.Measurement, error) {
	memberID, err := uuid.Parse(r.MemberID)
	if err != nil {
		return nil, err
	}

	measuredAt := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if r.MeasuredAt != "" {
		measuredAt, err = time.ParseInLocation("2006-01-02", r.MeasuredAt, time.UTC)
		if err != nil {
			return nil, err
		}
	}

	return &model.Measurement{
		MemberID:      memberID,
		MeasuredAt:    measuredAt,
		WeightKg:      r.WeightKg,
		Height:        r.Height,
		ChestIn:       r.ChestIn,
		BellyIn:       r.BellyIn,
		LegIn:         r.LegIn,
		CalfIn:        r.CalfIn,
		ArmRelaxedIn:  r.ArmRelaxedIn,
		ArmFlexedIn:   r.ArmFlexedIn,
		ForearmIn:     r.ForearmIn,
		Abnormalities: r.Abnormalities,
	}, nil
}
