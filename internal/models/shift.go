package models

import "time"

// Shift is one daily working window of a stylist, stored as minutes since
// midnight. Position keeps the order the shifts were submitted in.
type Shift struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	StylistID uint `gorm:"not null;index" json:"stylist_id"`

	StartMinute int `gorm:"not null" json:"start_minute"`
	EndMinute   int `gorm:"not null" json:"end_minute"`
	Position    int `gorm:"not null" json:"position"`

	CreatedAt time.Time `json:"created_at"`
}
