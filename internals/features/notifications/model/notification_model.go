// file: internals/features/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification is a broadcast announcement visible to every member.
type Notification struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title   string    `json:"title" gorm:"size:150;not null"`
	Message string    `json:"message" gorm:"type:text;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Notification) TableName() string { return "notifications" }

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
