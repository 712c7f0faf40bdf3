// file: internals/features/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "eaglesfitness_backend/internals/features/payments/model"
	service "eaglesfitness_backend/internals/features/payments/service"
)

/* =========================================================
   REQUEST: Create
   ========================================================= */

type CreatePaymentRequest struct {
	PaymentMemberID uuid.UUID `json:"payment_member_id" validate:"required"`
	PaymentAmount   float64   `json:"payment_amount"    validate:"required,gt=0"`

	// "YYYY-MM-DD"
	PaymentPaidAt string `json:"payment_paid_at" validate:"required,datetime=2006-01-02"`

	PaymentType           string `json:"payment_type"            validate:"required,oneof=daily monthly package"`
	PaymentDurationMonths int    `json:"payment_duration_months" validate:"omitempty,min=0"`

	PaymentMethod string `json:"payment_method"`
}

// ToModel computes the billing period and builds the row to insert.
func (r *CreatePaymentRequest) ToModel() (*model.Payment, error) {
	paidAt, err := time.Parse("2006-01-02", r.PaymentPaidAt)
	if err != nil {
		return nil, err
	}

	period, err := service.ComputePeriod(r.PaymentType, paidAt, r.PaymentDurationMonths)
	if err != nil {
		return nil, err
	}

	method := r.PaymentMethod
	if method == "" {
		method = "Cash"
	}

	return &model.Payment{
		PaymentMemberID:       r.PaymentMemberID,
		PaymentAmount:         r.PaymentAmount,
		PaymentPaidAt:         service.DateOnly(paidAt),
		PaymentPeriodStart:    period.Start,
		PaymentPeriodEnd:      period.End,
		PaymentType:           r.PaymentType,
		PaymentDurationMonths: service.NormalizeDuration(r.PaymentType, r.PaymentDurationMonths),
		PaymentMethod:         method,
		PaymentStatus:         "PAID",
	}, nil
}

/* =========================================================
   RESPONSE
   ========================================================= */

type PaymentResponse struct {
	PaymentID             uuid.UUID `json:"payment_id"`
	PaymentMemberID       uuid.UUID `json:"payment_member_id"`
	MemberCode            int       `json:"member_code,omitempty"`
	MemberName            string    `json:"member_name,omitempty"`
	PaymentAmount         float64   `json:"payment_amount"`
	PaymentPaidAt         string    `json:"payment_paid_at"`
	PaymentPeriodStart    string    `json:"payment_period_start"`
	PaymentPeriodEnd      string    `json:"payment_period_end"`
	PaymentType           string    `json:"payment_type"`
	PaymentDurationMonths int       `json:"payment_duration_months"`
	PaymentMethod         string    `json:"payment_method"`
	PaymentStatus         string    `json:"payment_status"`
	PaymentCreatedAt      time.Time `json:"payment_created_at"`
}

func FromModelPayment(p *model.Payment, memberCode int, memberName string) PaymentResponse {
	return PaymentResponse{
		PaymentID:             p.PaymentID,
		PaymentMemberID:       p.PaymentMemberID,
		MemberCode:            memberCode,
		MemberName:            memberName,
		PaymentAmount:         p.PaymentAmount,
		PaymentPaidAt:         p.PaymentPaidAt.Format("2006-01-02"),
		PaymentPeriodStart:    p.PaymentPeriodStart.Format("2006-01-02"),
		PaymentPeriodEnd:      p.PaymentPeriodEnd.Format("2006-01-02"),
		PaymentType:           p.PaymentType,
		PaymentDurationMonths: p.PaymentDurationMonths,
		PaymentMethod:         p.PaymentMethod,
		PaymentStatus:         p.PaymentStatus,
		PaymentCreatedAt:      p.PaymentCreatedAt,
	}
}
