package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	DurationMin int    `gorm:"not null" json:"duration_min"`

	Lifecycle Lifecycle `gorm:"size:10;not null;default:'active';index" json:"lifecycle"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
