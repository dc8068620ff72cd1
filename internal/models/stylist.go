package models

import "time"

type Stylist struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	Services []StylistService `gorm:"constraint:OnDelete:CASCADE;" json:"services"`
	Shifts   []Shift          `gorm:"constraint:OnDelete:CASCADE;" json:"shifts"`

	Lifecycle Lifecycle `gorm:"size:10;not null;default:'active';index" json:"lifecycle"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StylistService records that a stylist offers a service.
type StylistService struct {
	StylistID uint `gorm:"primaryKey" json:"stylist_id"`
	ServiceID uint `gorm:"primaryKey" json:"service_id"`

	Service Service `gorm:"constraint:OnDelete:RESTRICT;" json:"-"`
}

// Offers reports whether the stylist currently offers serviceID.
func (s *Stylist) Offers(serviceID uint) bool {
	for _, ss := range s.Services {
		if ss.ServiceID == serviceID {
			return true
		}
	}
	return false
}

func (s *Stylist) ServiceIDs() []uint {
	ids := make([]uint, 0, len(s.Services))
	for _, ss := range s.Services {
		ids = append(ids, ss.ServiceID)
	}
	return ids
}
