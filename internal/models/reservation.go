package models

import "time"

// Reservation is a user's claim on one seat of a slot.
//
// Date, StartTime, EndTime and ServiceID are copied from the slot when the
// reservation is made. That duplication is a read-time convenience: while the
// slot link is alive the slot stays authoritative for capacity, and if the
// slot is later deleted (SET NULL) the reservation keeps its history.
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index:idx_user_date" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	SlotID *uint `gorm:"index" json:"slot_id"`
	Slot   *Slot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"slot,omitempty"`

	Date      string `gorm:"size:10;not null;index:idx_user_date;index:idx_date_start" json:"date"`
	StartTime string `gorm:"size:5;not null;index:idx_date_start" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Status string `gorm:"size:20;not null;default:'pending';index" json:"status"`

	// FinalPrice is snapshotted from the service at booking time and may
	// diverge from the service's current price.
	FinalPrice *float64 `json:"final_price"`
	Notes      string   `gorm:"type:text" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
