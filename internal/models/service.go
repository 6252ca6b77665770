package models

import "time"

type ServiceCategory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CategoryID uint            `json:"category_id"`
	Category   ServiceCategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`

	Name              string  `gorm:"size:100;not null" json:"name"`
	Description       string  `gorm:"size:255" json:"description"`
	Price             float64 `json:"price"`
	DurationMin       int     `json:"duration_min"`
	RequiredMaterials string  `gorm:"size:255" json:"required_materials"`
	Active            bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
