package models

import "time"

const (
	CertificateStatusActive  = "active"
	CertificateStatusUsed    = "used"
	CertificateStatusExpired = "expired"
)

type GiftCertificate struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Number           string  `gorm:"size:64;uniqueIndex;not null" json:"number"`
	NominalValue     float64 `json:"nominal_value"`
	RemainingBalance float64 `json:"remaining_balance"`

	IssueDate      string `gorm:"size:10" json:"issue_date"`
	ExpirationDate string `gorm:"size:10" json:"expiration_date"`

	PurchaserName string `gorm:"size:150" json:"purchaser_name"`
	RecipientName string `gorm:"size:150" json:"recipient_name"`

	Status string `gorm:"size:20;default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
