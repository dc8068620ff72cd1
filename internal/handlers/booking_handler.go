package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       *ucBooking.CreateBooking
	cancel       *ucBooking.CancelBooking
	get          *ucBooking.GetBooking
	listByDate   *ucBooking.ListBookingsByDate
	availability *ucBooking.GetAvailability
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	cancel *ucBooking.CancelBooking,
	get *ucBooking.GetBooking,
	listByDate *ucBooking.ListBookingsByDate,
	availability *ucBooking.GetAvailability,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		cancel:       cancel,
		get:          get,
		listByDate:   listByDate,
		availability: availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Presence is checked by the use case so that every missing field is
// reported at once.
type CreateBookingRequest struct {
	CustomerID uint   `json:"customer_id"`
	StylistID  uint   `json:"stylist_id"`
	ServiceID  uint   `json:"service_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerID: req.CustomerID,
		StylistID:  req.StylistID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		StartTime:  req.StartTime,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.FromBooking(b))
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.FromBooking(b))
}

// ======================================================
// GET
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	b, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.FromBooking(b))
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	stylistID, ok := pathID(c, "id")
	if !ok {
		return
	}

	bookings, err := h.listByDate.Execute(c.Request.Context(), stylistID, c.Query("date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	stylistID, ok := pathID(c, "id")
	if !ok {
		return
	}
	serviceID, ok := queryID(c, "service_id")
	if !ok {
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), ucBooking.AvailabilityInput{
		StylistID: stylistID,
		ServiceID: serviceID,
		Date:      c.Query("date"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, slots)
}
