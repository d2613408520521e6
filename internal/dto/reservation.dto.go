package dto

import (
	"time"

	"github.com/lumina-beauty/booking-api/internal/models"
)

type ReservationDTO struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`

	ServiceID   uint   `json:"service_id"`
	ServiceName string `json:"service_name"`

	SlotID    *uint  `json:"slot_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	Status     string    `json:"status"`
	FinalPrice *float64  `json:"final_price"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewReservationDTO expects User and Service preloaded.
func NewReservationDTO(r *models.Reservation) ReservationDTO {
	return ReservationDTO{
		ID:          r.ID,
		UserID:      r.UserID,
		UserName:    r.User.Name,
		UserEmail:   r.User.Email,
		ServiceID:   r.ServiceID,
		ServiceName: r.Service.Name,
		SlotID:      r.SlotID,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Status:      r.Status,
		FinalPrice:  r.FinalPrice,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
	}
}

func NewReservationDTOs(rs []models.Reservation) []ReservationDTO {
	out := make([]ReservationDTO, 0, len(rs))
	for i := range rs {
		out = append(out, NewReservationDTO(&rs[i]))
	}
	return out
}
