package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invite is a pending invitation on a shopping list, stored inside the
// list's Invites JSON column.
type Invite struct {
	Email string `json:"email"`
	Token string `json:"token,omitempty"`
}

// ShoppingList is the root aggregate. Memberships and ListItems reference it
// by id but are independent records.
type ShoppingList struct {
	ID          string `gorm:"type:char(36);primaryKey"`
	OwnerID     string `gorm:"type:char(36);not null;index"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"size:1000"`
	Invites     JSON
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BeforeCreate assigns a uuid primary key when none was supplied
func (l *ShoppingList) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for ShoppingList
func (ShoppingList) TableName() string {
	return "shopping_lists"
}

// SetInvites serializes invites into the JSON column. A nil slice is stored
// as an empty array.
func (l *ShoppingList) SetInvites(invites []Invite) error {
	if invites == nil {
		invites = []Invite{}
	}
	raw, err := json.Marshal(invites)
	if err != nil {
		return err
	}
	l.Invites.JSON = raw
	return nil
}

// GetInvites deserializes the JSON column back into invites
func (l *ShoppingList) GetInvites() ([]Invite, error) {
	invites := []Invite{}
	if len(l.Invites.JSON) == 0 {
		return invites, nil
	}
	if err := json.Unmarshal(l.Invites.JSON, &invites); err != nil {
		return nil, err
	}
	return invites, nil
}
