package models

import "time"

type Master struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName       string `gorm:"size:150;not null" json:"full_name"`
	Specialization string `gorm:"size:100" json:"specialization"`
	Phone          string `gorm:"size:20" json:"phone"`
	Email          string `gorm:"size:100" json:"email"`
	HireDate       string `gorm:"size:10" json:"hire_date"`
	Active         bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MasterSchedule is catalog data only: availability is decided by
// occupying appointments, not by these rows.
type MasterSchedule struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	MasterID uint   `json:"master_id"`
	Master   Master `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Weekday         int    `json:"weekday"`
	StartTime       string `gorm:"size:8" json:"start_time"`
	EndTime         string `gorm:"size:8" json:"end_time"`
	SlotDurationMin int    `json:"slot_duration_min"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
