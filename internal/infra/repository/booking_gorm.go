package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB

	// set inside WithinSlotLock; catalog reads then hold share locks
	locked bool
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// catalogRead takes a share lock on the row when running inside a slot
// lock, so catalog deletes wait for the booking to commit.
func (r *BookingGormRepository) catalogRead(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	if r.locked {
		q = q.Clauses(clause.Locking{Strength: "SHARE"})
	}
	return q
}

func lockStylist(tx *gorm.DB, id uint) error {
	var stylist models.Stylist
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&stylist, id).Error
	if err != nil {
		return fmt.Errorf("lock stylist %d: %w", id, notFound(err))
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetCustomer(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.catalogRead(ctx).First(&customer, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &customer, nil
}

func (r *BookingGormRepository) GetStylist(
	ctx context.Context,
	id uint,
) (*models.Stylist, error) {

	var stylist models.Stylist
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Preload("Shifts", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&stylist, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &stylist, nil
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.catalogRead(ctx).First(&service, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &service, nil
}

// --------------------------------------------------
// Bookings (read)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) ListActiveBookings(
	ctx context.Context,
	stylistID uint,
	date domain.Date,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"stylist_id = ? AND date = ? AND status = ?",
			stylistID, date.String(), string(domain.StatusActive),
		).
		Order("start_minute ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	stylistID uint,
	date domain.Date,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where("stylist_id = ? AND date = ?", stylistID, date.String()).
		Order("start_minute ASC").
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Bookings (write)
// --------------------------------------------------

func (r *BookingGormRepository) CommitBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error
	if httperr.IsExclusionConflict(err) {
		iv, ivErr := domain.IntervalOf(b)
		if ivErr != nil {
			return ivErr
		}
		return domain.ErrBookingConflict(iv, 0)
	}
	return err
}

func (r *BookingGormRepository) SetBookingStatus(
	ctx context.Context,
	id uint,
	from domain.Status,
	to domain.Status,
	at time.Time,
) (*models.Booking, error) {

	updates := map[string]any{"status": string(to)}
	if to == domain.StatusCanceled {
		updates["canceled_at"] = at
	}

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}

	current, err := r.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected == 0 {
		return current, domain.ErrStatusChanged
	}
	return current, nil
}

// WithinSlotLock serialises writers per stylist by locking the stylist row
// for the duration of the transaction. The exclusion constraint on bookings
// backs this up for writers that bypass the lock.
func (r *BookingGormRepository) WithinSlotLock(
	ctx context.Context,
	stylistID uint,
	date domain.Date,
	fn func(ctx context.Context, repo domain.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockStylist(tx, stylistID); err != nil {
			return fmt.Errorf("slot %s: %w", date, err)
		}

		return fn(ctx, &BookingGormRepository{db: tx, locked: true})
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
