package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucStylist "github.com/BruksfildServices01/salon-scheduler/internal/usecase/stylist"
)

type StylistHandler struct {
	db     *gorm.DB
	create *ucStylist.CreateStylist
	update *ucStylist.UpdateStylist
	delete *ucStylist.DeleteStylist
}

func NewStylistHandler(
	db *gorm.DB,
	create *ucStylist.CreateStylist,
	update *ucStylist.UpdateStylist,
	delete *ucStylist.DeleteStylist,
) *StylistHandler {
	return &StylistHandler{
		db:     db,
		create: create,
		update: update,
		delete: delete,
	}
}

// --------- Requests ---------

type CreateStylistRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ServiceIDs  []uint   `json:"service_ids"`
	Shifts      []string `json:"shifts"`
}

type UpdateStylistRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	ServiceIDs  []uint   `json:"service_ids,omitempty"`
	Shifts      []string `json:"shifts,omitempty"`
}

// --------- Handlers ---------

func (h *StylistHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context()).
		Preload("Services").
		Preload("Shifts", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("lifecycle = ?", models.LifecycleActive)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var stylists []models.Stylist
	if err := q.Order("id ASC").Find(&stylists).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]dto.StylistDTO, 0, len(stylists))
	for i := range stylists {
		out = append(out, dto.FromStylist(&stylists[i]))
	}

	httpresp.List(c, out)
}

func (h *StylistHandler) Create(c *gin.Context) {
	var req CreateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	s, err := h.create.Execute(c.Request.Context(), ucStylist.CreateStylistInput{
		StaffID:     middleware.StaffID(c),
		Name:        req.Name,
		Description: req.Description,
		ServiceIDs:  req.ServiceIDs,
		Shifts:      req.Shifts,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.FromStylist(s))
}

func (h *StylistHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	s, err := h.update.Execute(c.Request.Context(), ucStylist.UpdateStylistInput{
		StaffID:     middleware.StaffID(c),
		StylistID:   id,
		Name:        req.Name,
		Description: req.Description,
		ServiceIDs:  req.ServiceIDs,
		Shifts:      req.Shifts,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.FromStylist(s))
}

func (h *StylistHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.StaffID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}
