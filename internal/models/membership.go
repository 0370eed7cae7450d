package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Membership roles.
const (
	RoleOwner  = "owner"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// Membership binds one user to one list with a role. At most one membership
// exists per (list, user) pair, enforced by the composite unique index.
type Membership struct {
	ID        string `gorm:"type:char(36);primaryKey"`
	ListID    string `gorm:"type:char(36);not null;index:idx_membership_list_user,unique"`
	UserID    string `gorm:"type:char(36);not null;index:idx_membership_list_user,unique"`
	Role      string `gorm:"size:16;not null"`
	CreatedAt time.Time
}

// BeforeCreate assigns a uuid primary key when none was supplied
func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
