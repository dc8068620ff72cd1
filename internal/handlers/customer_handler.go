package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

type CustomerHandler struct {
	db    *gorm.DB
	audit audit.Sink
}

func NewCustomerHandler(db *gorm.DB, sink audit.Sink) *CustomerHandler {
	return &CustomerHandler{db: db, audit: sink}
}

type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ======================================================
// CREATE (PUBLIC)
// ======================================================

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		httperr.Respond(c, domain.ErrMissingField(missing...))
		return
	}
	if !validators.IsPhoneDigits(phone) {
		httperr.Respond(c, domain.ErrInvalidFormat("phone", phone, "digits only"))
		return
	}

	customer := models.Customer{
		Name:      name,
		Phone:     phone,
		Lifecycle: models.LifecycleActive,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&customer).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, customer)
}

// ======================================================
// LIST (STAFF)
// ======================================================

func (h *CustomerHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context())
	if c.Query("include_deleted") != "true" {
		q = q.Where("lifecycle = ?", models.LifecycleActive)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR phone LIKE ?", like, like)
	}

	var customers []models.Customer
	if err := q.Order("created_at DESC").Find(&customers).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, customers)
}

// ======================================================
// UPDATE (STAFF)
// ======================================================

type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	var customer models.Customer
	err := h.db.WithContext(c.Request.Context()).First(&customer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && customer.Lifecycle.IsDeleted()) {
		httperr.Respond(c, domain.ErrNotFoundOrDeleted("customer", id))
		return
	}
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			httperr.Respond(c, domain.ErrMissingField("name"))
			return
		}
		customer.Name = name
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if phone == "" {
			httperr.Respond(c, domain.ErrMissingField("phone"))
			return
		}
		if !validators.IsPhoneDigits(phone) {
			httperr.Respond(c, domain.ErrInvalidFormat("phone", phone, "digits only"))
			return
		}
		customer.Phone = phone
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&customer).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, customer)
}

// ======================================================
// DELETE (STAFF)
// ======================================================

// Delete soft deletes a customer without active bookings. Past and
// canceled bookings keep referencing the row.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := softDelete(c.Request.Context(), h.db, &models.Customer{}, "customer", "customer_id", id); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		StaffID:  middleware.StaffID(c),
		Action:   "customer_deleted",
		Entity:   "customer",
		EntityID: &id,
	})

	httpresp.NoContent(c)
}
