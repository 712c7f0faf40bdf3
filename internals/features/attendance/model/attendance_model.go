// file: internals/features/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const StatusPresent = "Present"

// Attendance: one row per (member, date). The composite unique index is the
// authoritative invariant; the pre-insert check in the service is only the
// fast-feedback path.
type Attendance struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`

	MemberID uuid.UUID `json:"member_id" gorm:"type:uuid;not null;uniqueIndex:uq_attendance_member_date"`
	Date     time.Time `json:"date"      gorm:"type:date;not null;uniqueIndex:uq_attendance_member_date"`

	Status string `json:"status" gorm:"size:20;not null;default:'Present'"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Attendance) TableName() string { return "attendance" }

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
