package dto

import (
	"time"

	stylistdomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/stylist"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type StylistDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ServiceIDs  []uint    `json:"service_ids"`
	Shifts      []string  `json:"shifts"`
	Lifecycle   string    `json:"lifecycle"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromStylist(s *models.Stylist) StylistDTO {
	shifts := stylistdomain.ShiftTokens(s)
	if shifts == nil {
		shifts = []string{}
	}
	return StylistDTO{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		ServiceIDs:  s.ServiceIDs(),
		Shifts:      shifts,
		Lifecycle:   string(s.Lifecycle),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
