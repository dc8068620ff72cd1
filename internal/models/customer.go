package models

import "time"

// Customer has no login; bookings reference it by id.
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;not null" json:"phone"`

	Lifecycle Lifecycle `gorm:"size:10;not null;default:'active';index" json:"lifecycle"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
