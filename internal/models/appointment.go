package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	MasterID uint   `gorm:"index:idx_master_slot" json:"master_id"`
	Master   Master `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"master"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Slot granularity is the exact (master, date, time) tuple.
	Date string `gorm:"size:10;index:idx_master_slot" json:"date"`
	Time string `gorm:"size:8;index:idx_master_slot" json:"time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	// Snapshot of the service price at booking time; later price
	// edits never touch it.
	TotalPrice float64 `json:"total_price"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentForm is the 1:1 detail captured with the booking intent.
// Immutable after creation.
type AppointmentForm struct {
	AppointmentID uint        `gorm:"primaryKey" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	PassportNumber string `gorm:"size:50" json:"passport_number"`
	VisitPurpose   string `gorm:"size:255" json:"visit_purpose"`
	PlannedStart   string `gorm:"size:10" json:"planned_start"`
	PlannedEnd     string `gorm:"size:10" json:"planned_end"`

	AdditionalOptionID *uint            `json:"additional_option_id"`
	AdditionalOption   AdditionalOption `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
}
