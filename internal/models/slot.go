package models

import "time"

// Slot is one bookable window for one service on one date.
//
// Date is an ISO "2006-01-02" string and StartTime/EndTime are zero-padded
// "15:04" strings, so plain string comparison orders them correctly both here
// and in SQL.
//
// Remaining is the live seat counter and may only be mutated through the
// booking ledger while the row is held FOR UPDATE. The check constraint is a
// second line of defense behind that discipline.
type Slot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceID uint    `gorm:"not null;uniqueIndex:uk_service_date_start;index:idx_service_date" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	Date      string `gorm:"size:10;not null;uniqueIndex:uk_service_date_start;index:idx_service_date;index:idx_date" json:"date"`
	StartTime string `gorm:"size:5;not null;uniqueIndex:uk_service_date_start" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Capacity  int `gorm:"not null" json:"capacity"`
	Remaining int `gorm:"not null;check:remaining >= 0 AND remaining <= capacity" json:"remaining"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
