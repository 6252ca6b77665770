package models

const (
	PaymentMethodCash        = "cash"
	PaymentMethodCard        = "card"
	PaymentMethodCertificate = "certificate"
	PaymentMethodMixed       = "mixed"
)

// Payments are recorded against appointments but never reconciled.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Date   string  `gorm:"size:10" json:"date"`
	Amount float64 `json:"amount"`
	Method string  `gorm:"size:20;not null" json:"method"`
}

func IsValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodCertificate, PaymentMethodMixed:
		return true
	}
	return false
}
