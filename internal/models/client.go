package models

import "time"

type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName         string `gorm:"size:150;not null" json:"full_name"`
	BirthDate        string `gorm:"size:10" json:"birth_date"`
	Phone            string `gorm:"size:20" json:"phone"`
	Email            string `gorm:"size:100" json:"email"`
	RegistrationDate string `gorm:"size:10" json:"registration_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientProfile is a 1:1 side record kept current by every booking:
// the coordinator overwrites it, never appends.
type ClientProfile struct {
	ClientID uint   `gorm:"primaryKey" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	PassportNumber string `gorm:"size:50" json:"passport_number"`
	PlannedStart   string `gorm:"size:10" json:"planned_start"`
	PlannedEnd     string `gorm:"size:10" json:"planned_end"`

	AdditionalOptionID *uint            `json:"additional_option_id"`
	AdditionalOption   AdditionalOption `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Notes string `gorm:"size:255" json:"notes"`
}
