package dto

import "github.com/lumina-beauty/booking-api/internal/models"

type SlotDTO struct {
	ID          uint   `json:"id"`
	ServiceID   uint   `json:"service_id"`
	ServiceName string `json:"service_name"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Capacity    int    `json:"capacity"`
	Remaining   int    `json:"remaining"`
	Available   bool   `json:"available"`
}

// NewSlotDTO expects Service preloaded.
func NewSlotDTO(s *models.Slot) SlotDTO {
	return SlotDTO{
		ID:          s.ID,
		ServiceID:   s.ServiceID,
		ServiceName: s.Service.Name,
		Date:        s.Date,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		Capacity:    s.Capacity,
		Remaining:   s.Remaining,
		Available:   s.Remaining > 0,
	}
}

func NewSlotDTOs(slots []models.Slot) []SlotDTO {
	out := make([]SlotDTO, 0, len(slots))
	for i := range slots {
		out = append(out, NewSlotDTO(&slots[i]))
	}
	return out
}
