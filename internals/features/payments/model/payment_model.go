// file: internals/features/payments/model/payment_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Snapshot helper structs
   ========================= */

// PaymentMemberSnapshotPayload freezes who the payment was taken from,
// so receipts survive later member edits.
type PaymentMemberSnapshotPayload struct {
	ID         uuid.UUID `json:"id"`
	MemberCode int       `json:"member_code,omitempty"`
	Name       string    `json:"name,omitempty"`
}

/* =========================
   Model: payments
   ========================= */

// Payment is immutable once written: there are no update or delete
// endpoints, all aggregation happens on read.
type Payment struct {
	PaymentID uuid.UUID `json:"payment_id" gorm:"column:payment_id;type:uuid;primaryKey"`

	PaymentMemberID uuid.UUID `json:"payment_member_id" gorm:"column:payment_member_id;type:uuid;not null;index;constraint:OnDelete:RESTRICT"`

	// currency-agnostic magnitude
	PaymentAmount float64 `json:"payment_amount" gorm:"column:payment_amount;type:numeric(12,2);not null"`

	// calendar dates, never instants
	PaymentPaidAt      time.Time `json:"payment_paid_at"       gorm:"column:payment_paid_at;type:date;not null;index"`
	PaymentPeriodStart time.Time `json:"payment_period_start"  gorm:"column:payment_period_start;type:date;not null"`
	PaymentPeriodEnd   time.Time `json:"payment_period_end"    gorm:"column:payment_period_end;type:date;not null;index"`

	// daily | monthly | package
	PaymentType           string `json:"payment_type"            gorm:"column:payment_type;type:varchar(10);not null"`
	PaymentDurationMonths int    `json:"payment_duration_months" gorm:"column:payment_duration_months;not null;default:0"`

	PaymentMethod string `json:"payment_method" gorm:"column:payment_method;type:varchar(60);not null;default:'Cash'"`
	PaymentStatus string `json:"payment_status" gorm:"column:payment_status;type:varchar(10);not null;default:'PAID'"`

	// snapshot (JSONB, nullable)
	PaymentMemberSnapshot datatypes.JSON `json:"payment_member_snapshot,omitempty" gorm:"column:payment_member_snapshot;type:jsonb"`

	PaymentCreatedAt time.Time `json:"payment_created_at" gorm:"column:payment_created_at;type:timestamptz;not null;default:now();autoCreateTime"`
}

func (Payment) TableName() string { return "payments" }

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.PaymentID == uuid.Nil {
		p.PaymentID = uuid.New()
	}
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopePaid(db *gorm.DB) *gorm.DB {
	return db.Where("payment_status = ?", "PAID")
}

func ScopeByMember(memberID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("payment_member_id = ?", memberID)
	}
}

// ScopePaidBetween filters on paid_at, bounds inclusive.
func ScopePaidBetween(from, to time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("payment_paid_at BETWEEN ? AND ?", from, to)
	}
}

/* =========================
   Snapshot setter (JSONB)
   ========================= */

func (p *Payment) SetPaymentMemberSnapshot(v PaymentMemberSnapshotPayload) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	p.PaymentMemberSnapshot = datatypes.JSON(b)
	return nil
}
