package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// BookingListHandler serves the staff overview of every booking.
type BookingListHandler struct {
	db *gorm.DB
}

func NewBookingListHandler(db *gorm.DB) *BookingListHandler {
	return &BookingListHandler{db: db}
}

// List pages through bookings, newest day first, with optional date,
// status, stylist_id and customer_id filters.
func (h *BookingListHandler) List(c *gin.Context) {
	stylistID, ok := queryID(c, "stylist_id")
	if !ok {
		return
	}
	customerID, ok := queryID(c, "customer_id")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	q := h.db.WithContext(c.Request.Context()).Model(&models.Booking{})

	if raw := c.Query("date"); raw != "" {
		date, err := domain.ParseDate(raw)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		q = q.Where("date = ?", date.String())
	}

	switch status := domain.Status(c.Query("status")); status {
	case "":
	case domain.StatusActive, domain.StatusCanceled:
		q = q.Where("status = ?", string(status))
	default:
		httperr.Respond(c, domain.ErrInvalidFormat("status", string(status), "active or canceled"))
		return
	}

	if stylistID > 0 {
		q = q.Where("stylist_id = ?", stylistID)
	}
	if customerID > 0 {
		q = q.Where("customer_id = ?", customerID)
	}

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	var bookings []models.Booking
	if err := q.
		Preload("Customer").
		Preload("Stylist").
		Preload("Service").
		Order("date DESC").
		Order("start_minute ASC").
		Order("id ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&bookings).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]dto.BookingDetailDTO, 0, len(bookings))
	for i := range bookings {
		out = append(out, dto.FromBookingDetail(&bookings[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"page":     page,
		"limit":    limit,
		"total":    total,
		"bookings": out,
	})
}
