package dto

import (
	"time"

	"github.com/google/uuid"
)

type MarkAttendanceRequest struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
	// "YYYY-MM-DD"; defaults to today when empty
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type AttendanceResponse struct {
	ID         uuid.UUID `json:"id"`
	MemberID   uuid.UUID `json:"member_id"`
	MemberCode int       `json:"member_code,omitempty"`
	MemberName string    `json:"member_name,omitempty"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
