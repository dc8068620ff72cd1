package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `gorm:"not null;index" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	StylistID uint    `gorm:"not null;index:idx_bookings_stylist_date,priority:1;uniqueIndex:idx_bookings_active_start,priority:1,where:status = 'active'" json:"stylist_id"`
	Stylist   Stylist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ServiceID uint    `gorm:"not null;index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	// YYYY-MM-DD
	Date string `gorm:"size:10;not null;index:idx_bookings_stylist_date,priority:2;uniqueIndex:idx_bookings_active_start,priority:2,where:status = 'active'" json:"date"`

	StartMinute int `gorm:"not null;uniqueIndex:idx_bookings_active_start,priority:3,where:status = 'active'" json:"-"`
	EndMinute   int `gorm:"not null" json:"-"`

	Status string `gorm:"size:20;not null;default:'active'" json:"status"`

	CanceledAt *time.Time `json:"canceled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
