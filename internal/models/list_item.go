package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Quantity is an optional amount on a list item, stored inside the item's
// Quantity JSON column.
type Quantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// ListItem is a purchasable entry in a shopping list. CheckedBy is non-null
// iff IsChecked is true. Position is an append-only ordering key defaulting
// to the item count of the list at creation time.
type ListItem struct {
	ID        string `gorm:"type:char(36);primaryKey"`
	ListID    string `gorm:"type:char(36);not null;index:idx_item_list_position,priority:1"`
	CreatedBy string `gorm:"type:char(36);not null"`
	Name      string `gorm:"size:200;not null"`
	Quantity  JSON
	Note      string  `gorm:"size:1000"`
	IsChecked bool    `gorm:"not null;default:false"`
	CheckedBy *string `gorm:"type:char(36)"`
	Position  int     `gorm:"not null;default:0;index:idx_item_list_position,priority:2"`
	CreatedAt time.Time
}

// BeforeCreate assigns a uuid primary key when none was supplied
func (i *ListItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for ListItem
func (ListItem) TableName() string {
	return "list_items"
}

// SetQuantity serializes an optional quantity into the JSON column.
// A nil quantity is stored as JSON null.
func (i *ListItem) SetQuantity(q *Quantity) error {
	if q == nil {
		i.Quantity.JSON = []byte("null")
		return nil
	}
	raw, err := json.Marshal(q)
	if err != nil {
		return err
	}
	i.Quantity.JSON = raw
	return nil
}

// GetQuantity deserializes the JSON column back into an optional quantity
func (i *ListItem) GetQuantity() (*Quantity, error) {
	if len(i.Quantity.JSON) == 0 || string(i.Quantity.JSON) == "null" {
		return nil, nil
	}
	var q Quantity
	if err := json.Unmarshal(i.Quantity.JSON, &q); err != nil {
		return nil, err
	}
	return &q, nil
}
