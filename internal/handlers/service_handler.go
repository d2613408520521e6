package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumina-beauty/booking-api/internal/httperr"
	"github.com/lumina-beauty/booking-api/internal/httpresp"
	"github.com/lumina-beauty/booking-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// ServiceHandler is the catalog surface. Plain CRUD against the services
// table; nothing here touches slots or seat counters, so it talks to gorm
// directly instead of going through a use case.
type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	DurationMin  int     `json:"duration_min" binding:"required,gt=0"`
	Price        float64 `json:"price" binding:"required,gte=0"`
	MaxOccupancy int     `json:"max_occupancy" binding:"gte=0"`
}

type UpdateServiceRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	DurationMin  *int     `json:"duration_min"`
	Price        *float64 `json:"price"`
	MaxOccupancy *int     `json:"max_occupancy"`
	Active       *bool    `json:"active"`
}

// --------- Public ---------

// List returns active services, ordered by name. ?q= filters by name.
func (h *ServiceHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Service{}).Where("active = ?", true)

	if search := c.Query("q"); search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "service_list_failed", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Service id must be numeric.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "service_get_failed", "Could not load service.")
		return
	}

	httpresp.OK(c, svc)
}

// --------- Admin ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	occupancy := req.MaxOccupancy
	if occupancy == 0 {
		occupancy = 1
	}

	svc := models.Service{
		Name:         req.Name,
		Description:  req.Description,
		DurationMin:  req.DurationMin,
		Price:        req.Price,
		MaxOccupancy: occupancy,
		Active:       true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "service_create_failed", "Could not create service.")
		return
	}

	httpresp.Created(c, svc)
}

// Update edits catalog fields. Existing slots keep the duration and
// occupancy they were created with.
func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Service id must be numeric.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "service_get_failed", "Could not load service.")
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			httperr.BadRequest(c, "invalid_request", "duration_min must be positive.")
			return
		}
		svc.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "invalid_request", "price cannot be negative.")
			return
		}
		svc.Price = *req.Price
	}
	if req.MaxOccupancy != nil {
		if *req.MaxOccupancy <= 0 {
			httperr.BadRequest(c, "invalid_request", "max_occupancy must be positive.")
			return
		}
		svc.MaxOccupancy = *req.MaxOccupancy
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "service_update_failed", "Could not update service.")
		return
	}

	httpresp.OK(c, svc)
}

// Deactivate hides the service from the public catalog. Slots and
// reservations already made stay untouched.
func (h *ServiceHandler) Deactivate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Service id must be numeric.")
		return
	}

	result := h.db.Model(&models.Service{}).
		Where("id = ?", uint(id)).
		Update("active", false)

	if result.Error != nil {
		httperr.Internal(c, "service_deactivate_failed", "Could not deactivate service.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "not_found", "Service not found.")
		return
	}

	httpresp.Message(c, "Service deactivated.")
}
