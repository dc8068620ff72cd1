package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit audit.Sink
}

func NewServiceHandler(db *gorm.DB, sink audit.Sink) *ServiceHandler {
	return &ServiceHandler{db: db, audit: sink}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string `json:"name"`
	DurationMin *int   `json:"duration_min"`
}

type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	DurationMin *int    `json:"duration_min,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context()).
		Where("lifecycle = ?", models.LifecycleActive)

	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+query+"%")
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	name := strings.TrimSpace(req.Name)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if req.DurationMin == nil {
		missing = append(missing, "duration_min")
	}
	if len(missing) > 0 {
		httperr.Respond(c, domain.ErrMissingField(missing...))
		return
	}
	if err := checkDuration(*req.DurationMin); err != nil {
		httperr.Respond(c, err)
		return
	}

	service := models.Service{
		Name:        name,
		DurationMin: *req.DurationMin,
		Lifecycle:   models.LifecycleActive,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&service).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, service)
}

// Update changes name or duration. Existing bookings keep the end time
// they were created with.
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	service, ok := h.liveService(c, id)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			httperr.Respond(c, domain.ErrMissingField("name"))
			return
		}
		service.Name = name
	}
	if req.DurationMin != nil {
		if err := checkDuration(*req.DurationMin); err != nil {
			httperr.Respond(c, err)
			return
		}
		service.DurationMin = *req.DurationMin
	}

	if err := h.db.WithContext(c.Request.Context()).Save(service).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, service)
}

// Delete soft deletes a service that no active booking uses.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := softDelete(c.Request.Context(), h.db, &models.Service{}, "service", "service_id", id); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		StaffID:  middleware.StaffID(c),
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &id,
	})

	httpresp.NoContent(c)
}

func (h *ServiceHandler) liveService(c *gin.Context, id uint) (*models.Service, bool) {
	var service models.Service
	err := h.db.WithContext(c.Request.Context()).First(&service, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && service.Lifecycle.IsDeleted()) {
		httperr.Respond(c, domain.ErrNotFoundOrDeleted("service", id))
		return nil, false
	}
	if err != nil {
		httperr.Respond(c, err)
		return nil, false
	}
	return &service, true
}

func checkDuration(min int) error {
	if min <= 0 {
		return domain.ErrInvalidFormat("duration_min", strconv.Itoa(min), "positive integer")
	}
	if min > domain.MinutesPerDay {
		return domain.ErrInvalidFormat("duration_min", strconv.Itoa(min), "at most 1440")
	}
	return nil
}
