package model

import (
	"time"

	"github.com/google/uuid"
)

// RoleClaim mirrors the role_claims table the route guards read:
// one row per user, role is "admin" or "member".
type RoleClaim struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Role      string    `gorm:"size:20;not null" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (RoleClaim) TableName() string {
	return "role_claims"
}
