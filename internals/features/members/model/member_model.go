// file: internals/features/members/model/member_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Status lifecycle
   ========================= */

const (
	MemberStatusPending         = "pending"
	MemberStatusApproved        = "approved"
	MemberStatusRejected        = "rejected"
	MemberStatusApprovedNoCreds = "approved_no_credentials"
)

// ApprovedStatuses are the states in which a member can be marked present,
// invoiced, measured, or scheduled.
var ApprovedStatuses = []string{MemberStatusApproved, MemberStatusApprovedNoCreds}

type Member struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`

	// optional auth link; members added at the front desk have no credentials
	UserID *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid;index"`

	// external member code printed on the gym card
	MemberCode int `json:"member_code" gorm:"column:member_code;not null;uniqueIndex"`

	FirstName string `json:"first_name" gorm:"size:100;not null"`
	LastName  string `json:"last_name"  gorm:"size:100;not null"`
	Email     *string `json:"email,omitempty" gorm:"size:255"`
	Phone     *string `json:"phone,omitempty" gorm:"size:30"`

	Job             *string    `json:"job,omitempty" gorm:"size:100"`
	Birthday        *time.Time `json:"birthday,omitempty" gorm:"type:date"`
	Address         *string    `json:"address,omitempty" gorm:"type:text"`
	RelativeContact *string    `json:"relative_contact,omitempty" gorm:"size:100"`
	PriorConditions *string    `json:"prior_conditions,omitempty" gorm:"type:text"`

	CoachingRequired string  `json:"coaching_required" gorm:"size:10;not null;default:'No'"`
	Target           *string `json:"target,omitempty" gorm:"type:text"`

	MembershipStart *time.Time `json:"membership_start,omitempty" gorm:"type:date"`
	MembershipEnd   *time.Time `json:"membership_end,omitempty" gorm:"type:date"`

	Status string `json:"status" gorm:"size:40;not null;default:'pending';index"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Member) TableName() string { return "members" }

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *Member) FullName() string { return m.FirstName + " " + m.LastName }

func (m *Member) IsApproved() bool {
	return m.Status == MemberStatusApproved || m.Status == MemberStatusApprovedNoCreds
}

/* =========================
   Scopes
   ========================= */

func ScopeApproved(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", ApprovedStatuses)
}

func ScopePending(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", MemberStatusPending)
}
