package handlers

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// softDelete marks a catalog row deleted while holding its row lock, and
// refuses while an active booking references it through column. Booking
// creation takes a shared lock on the same row, so the two cannot
// interleave.
func softDelete(ctx context.Context, db *gorm.DB, model any, entity, column string, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row struct{ Lifecycle models.Lifecycle }
		err := tx.Model(model).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("lifecycle").
			Where("id = ?", id).
			Take(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && row.Lifecycle.IsDeleted()) {
			return domain.ErrNotFoundOrDeleted(entity, id)
		}
		if err != nil {
			return fmt.Errorf("lock %s %d: %w", entity, id, err)
		}

		var active int64
		if err := tx.Model(&models.Booking{}).
			Where(column+" = ? AND status = ?", id, string(domain.StatusActive)).
			Count(&active).Error; err != nil {
			return fmt.Errorf("count active bookings: %w", err)
		}
		if active > 0 {
			return domain.ErrHasActiveBookings(entity, id)
		}

		return tx.Model(model).
			Where("id = ?", id).
			Update("lifecycle", models.LifecycleDeleted).Error
	})
}
