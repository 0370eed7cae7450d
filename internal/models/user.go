package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an identity record. Email is globally unique; NameFull is derived
// from NameFirst and NameLast at creation time.
type User struct {
	ID        string `gorm:"type:char(36);primaryKey"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
	NameFirst string `gorm:"size:100;not null"`
	NameLast  string `gorm:"size:100;not null"`
	NameFull  string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate assigns a uuid primary key when none was supplied
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
