package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lumina-beauty/booking-api/internal/dto"
	"github.com/lumina-beauty/booking-api/internal/httperr"
	"github.com/lumina-beauty/booking-api/internal/httpresp"
	usecase "github.com/lumina-beauty/booking-api/internal/usecase/slot"
)

// ======================================================
// HANDLER
// ======================================================

type SlotHandler struct {
	create *usecase.CreateSlot
	update *usecase.UpdateSlot
	remove *usecase.DeleteSlot
	list   *usecase.ListSlots
}

func NewSlotHandler(
	create *usecase.CreateSlot,
	update *usecase.UpdateSlot,
	remove *usecase.DeleteSlot,
	list *usecase.ListSlots,
) *SlotHandler {
	return &SlotHandler{
		create: create,
		update: update,
		remove: remove,
		list:   list,
	}
}

// --------- Requests ---------

type CreateSlotRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	Capacity  int    `json:"capacity" binding:"gte=0"`
}

type UpdateSlotRequest struct {
	Date      *string `json:"date"`
	StartTime *string `json:"start_time"`
	Capacity  *int    `json:"capacity"`
}

// --------- Public ---------

// Available lists open slots for a service on a date.
// GET /services/:id/availability?date=YYYY-MM-DD
func (h *SlotHandler) Available(c *gin.Context) {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Service id must be numeric.")
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "invalid_request", "date query parameter is required.")
		return
	}

	slots, err := h.list.Available(c.Request.Context(), uint(serviceID), date)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// --------- Admin ---------

func (h *SlotHandler) Create(c *gin.Context) {
	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	slot, err := h.create.Execute(c.Request.Context(), usecase.CreateSlotInput{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		StartTime: req.StartTime,
		Capacity:  req.Capacity,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.Created(c, dto.NewSlotDTO(slot))
}

func (h *SlotHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Slot id must be numeric.")
		return
	}

	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	slot, err := h.update.Execute(c.Request.Context(), uint(id), usecase.UpdateSlotInput{
		Date:      req.Date,
		StartTime: req.StartTime,
		Capacity:  req.Capacity,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, dto.NewSlotDTO(slot))
}

func (h *SlotHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Slot id must be numeric.")
		return
	}

	if err := h.remove.Execute(c.Request.Context(), uint(id)); err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.Message(c, "Slot deleted.")
}

// ListForService shows the calendar of a service, full slots included. With
// ?date= it narrows to one day, otherwise it spans all dates.
// GET /admin/services/:id/slots?date=YYYY-MM-DD
func (h *SlotHandler) ListForService(c *gin.Context) {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Service id must be numeric.")
		return
	}

	var slots []dto.SlotDTO
	if date := c.Query("date"); date != "" {
		slots, err = h.list.ForDay(c.Request.Context(), uint(serviceID), date)
	} else {
		slots, err = h.list.ByService(c.Request.Context(), uint(serviceID))
	}
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ListRange shows every slot between two dates across services.
// GET /admin/slots?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *SlotHandler) ListRange(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		httperr.BadRequest(c, "invalid_request", "from and to query parameters are required.")
		return
	}

	slots, err := h.list.InRange(c.Request.Context(), from, to)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.List(c, slots)
}
