package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	stylistdomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/stylist"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type StylistGormRepository struct {
	db       *gorm.DB
	bookings *BookingGormRepository
}

func NewStylistGormRepository(db *gorm.DB) *StylistGormRepository {
	return &StylistGormRepository{
		db:       db,
		bookings: NewBookingGormRepository(db),
	}
}

func (r *StylistGormRepository) GetStylist(
	ctx context.Context,
	id uint,
) (*models.Stylist, error) {
	return r.bookings.GetStylist(ctx, id)
}

func (r *StylistGormRepository) ListServicesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	var services []models.Service
	if len(ids) == 0 {
		return services, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *StylistGormRepository) CreateStylist(
	ctx context.Context,
	s *models.Stylist,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		services := s.Services
		shifts := s.Shifts
		s.Services, s.Shifts = nil, nil

		if err := tx.Omit(clause.Associations).Create(s).Error; err != nil {
			return err
		}
		if err := insertServices(tx, s.ID, services); err != nil {
			return err
		}
		if err := insertShifts(tx, s.ID, shifts); err != nil {
			return err
		}

		s.Services, s.Shifts = services, shifts
		return nil
	})
}

func (r *StylistGormRepository) UpdateStylist(
	ctx context.Context,
	s *models.Stylist,
	services []models.StylistService,
	shifts []models.Shift,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Stylist{}).
			Where("id = ?", s.ID).
			Updates(map[string]any{
				"name":        s.Name,
				"description": s.Description,
			}).Error; err != nil {
			return err
		}

		if services != nil {
			if err := tx.Where("stylist_id = ?", s.ID).Delete(&models.StylistService{}).Error; err != nil {
				return err
			}
			if err := insertServices(tx, s.ID, services); err != nil {
				return err
			}
			s.Services = services
		}

		if shifts != nil {
			if err := tx.Where("stylist_id = ?", s.ID).Delete(&models.Shift{}).Error; err != nil {
				return err
			}
			if err := insertShifts(tx, s.ID, shifts); err != nil {
				return err
			}
			s.Shifts = shifts
		}

		return nil
	})
}

func (r *StylistGormRepository) HasActiveBookings(
	ctx context.Context,
	stylistID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("stylist_id = ? AND status = ?", stylistID, string(domain.StatusActive)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *StylistGormRepository) MarkDeleted(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Stylist{}).
		Where("id = ?", id).
		Update("lifecycle", models.LifecycleDeleted)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StylistGormRepository) WithinStylistLock(
	ctx context.Context,
	id uint,
	fn func(ctx context.Context, repo stylistdomain.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockStylist(tx, id); err != nil {
			return err
		}
		return fn(ctx, &StylistGormRepository{
			db:       tx,
			bookings: &BookingGormRepository{db: tx, locked: true},
		})
	})
}

func insertServices(tx *gorm.DB, stylistID uint, services []models.StylistService) error {
	if len(services) == 0 {
		return nil
	}
	for i := range services {
		services[i].StylistID = stylistID
	}
	return tx.Omit(clause.Associations).Create(&services).Error
}

func insertShifts(tx *gorm.DB, stylistID uint, shifts []models.Shift) error {
	if len(shifts) == 0 {
		return nil
	}
	for i := range shifts {
		shifts[i].StylistID = stylistID
		shifts[i].ID = 0
	}
	return tx.Create(&shifts).Error
}

// Compile-time check
var _ stylistdomain.Repository = (*StylistGormRepository)(nil)
