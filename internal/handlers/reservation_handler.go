package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lumina-beauty/booking-api/internal/dto"
	"github.com/lumina-beauty/booking-api/internal/httperr"
	"github.com/lumina-beauty/booking-api/internal/httpresp"
	"github.com/lumina-beauty/booking-api/internal/middleware"
	usecase "github.com/lumina-beauty/booking-api/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	create   *usecase.CreateReservation
	manual   *usecase.CreateManualReservation
	cancel   *usecase.CancelReservation
	confirm  *usecase.ConfirmReservation
	complete *usecase.CompleteReservation
	edit     *usecase.EditReservation
	list     *usecase.ListReservations
}

func NewReservationHandler(
	create *usecase.CreateReservation,
	manual *usecase.CreateManualReservation,
	cancel *usecase.CancelReservation,
	confirm *usecase.ConfirmReservation,
	complete *usecase.CompleteReservation,
	edit *usecase.EditReservation,
	list *usecase.ListReservations,
) *ReservationHandler {
	return &ReservationHandler{
		create:   create,
		manual:   manual,
		cancel:   cancel,
		confirm:  confirm,
		complete: complete,
		edit:     edit,
		list:     list,
	}
}

// --------- Requests ---------

type CreateReservationRequest struct {
	SlotID uint   `json:"slot_id" binding:"required"`
	Notes  string `json:"notes"`
}

type ManualReservationRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	SlotID uint   `json:"slot_id" binding:"required"`
	Notes  string `json:"notes"`
}

type EditReservationRequest struct {
	SlotID *uint   `json:"slot_id"`
	Notes  *string `json:"notes"`
}

// --------- Client ---------

// Create books a seat for the authenticated client.
func (h *ReservationHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	res, err := h.create.Execute(c.Request.Context(), usecase.CreateReservationInput{
		UserID: userID,
		SlotID: req.SlotID,
		Notes:  req.Notes,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.Created(c, dto.NewReservationDTO(res))
}

// Cancel releases the client's own reservation.
func (h *ReservationHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Reservation id must be numeric.")
		return
	}

	if err := h.cancel.Execute(c.Request.Context(), uint(id), &userID); err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.Message(c, "Reservation cancelled.")
}

// GetMine loads one of the client's own reservations.
func (h *ReservationHandler) GetMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Reservation id must be numeric.")
		return
	}

	item, err := h.list.Get(c.Request.Context(), uint(id), &userID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, item)
}

// ListMine is the client's own booking history, newest first.
func (h *ReservationHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	items, err := h.list.ForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.List(c, items)
}

// --------- Admin ---------

// CreateManual books on behalf of a client identified by email, registering
// them first if needed.
func (h *ReservationHandler) CreateManual(c *gin.Context) {
	var req ManualReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	res, err := h.manual.Execute(c.Request.Context(), usecase.CreateManualReservationInput{
		Email:  req.Email,
		Name:   req.Name,
		Phone:  req.Phone,
		SlotID: req.SlotID,
		Notes:  req.Notes,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.Created(c, dto.NewReservationDTO(res))
}

func (h *ReservationHandler) Confirm(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Reservation id must be numeric.")
		return
	}

	res, err := h.confirm.Execute(c.Request.Context(), uint(id))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, dto.NewReservationDTO(res))
}

func (h *ReservationHandler) Complete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Reservation id must be numeric.")
		return
	}

	res, err := h.complete.Execute(c.Request.Context(), uint(id))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, dto.NewReservationDTO(res))
}

// AdminCancel cancels any client's reservation; no ownership check.
func (h *ReservationHandler) AdminCancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Reservation id must be numeric.")
		return
	}

	if err := h.cancel.Execute(c.Request.Context(), uint(id), nil); err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.Message(c, "Reservation cancelled.")
}

func (h *ReservationHandler) Edit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Reservation id must be numeric.")
		return
	}

	var req EditReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	res, err := h.edit.Execute(c.Request.Context(), uint(id), usecase.EditReservationInput{
		SlotID: req.SlotID,
		Notes:  req.Notes,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, dto.NewReservationDTO(res))
}

// Today is the front-desk agenda: active reservations for the current date.
func (h *ReservationHandler) Today(c *gin.Context) {
	items, err := h.list.ForToday(c.Request.Context())
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.List(c, items)
}

// ListAll is the admin overview of every reservation.
func (h *ReservationHandler) ListAll(c *gin.Context) {
	items, err := h.list.All(c.Request.Context())
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.List(c, items)
}
