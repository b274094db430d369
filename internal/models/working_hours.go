package models

import "time"

// WorkingHours is one bookable window for a barber on a given weekday.
// A barber may have zero or more windows per weekday (e.g. morning and
// afternoon around a break). Weekday is ISO: 1=Monday .. 7=Sunday.
type WorkingHours struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index" json:"barber_id"`

	Weekday int `json:"weekday"`

	// "15:04" wall-clock times
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
