package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arteldev/salon-scheduler/internal/httperr"
	"github.com/arteldev/salon-scheduler/internal/httpresp"
	"github.com/arteldev/salon-scheduler/internal/models"
)

// Payments are recorded against appointments, nothing more: no
// reconciliation, no gateway.
type PaymentHandler struct {
	db *gorm.DB
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{db: db}
}

type RecordPaymentRequest struct {
	AppointmentID uint    `json:"appointment_id" binding:"required"`
	Date          string  `json:"date" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Method        string  `json:"method" binding:"required"`
}

func (h *PaymentHandler) Record(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payment payload.")
		return
	}

	if !models.IsValidPaymentMethod(req.Method) {
		httperr.BadRequest(c, "invalid_payment_method", "Unknown payment method.")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, req.AppointmentID).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	payment := models.Payment{
		AppointmentID: req.AppointmentID,
		Date:          date,
		Amount:        req.Amount,
		Method:        req.Method,
	}
	if err := h.db.Create(&payment).Error; err != nil {
		httperr.Internal(c, "failed_to_record_payment", "Could not record the payment.")
		return
	}

	httpresp.Created(c, payment)
}

func (h *PaymentHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if apStr := c.Query("appointment_id"); apStr != "" {
		apID, err := strconv.ParseUint(apStr, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_appointment_id", "Appointment id must be numeric.")
			return
		}
		q = q.Where("appointment_id = ?", uint(apID))
	}

	var payments []models.Payment
	if err := q.Order("date DESC, id DESC").Find(&payments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_payments", "Could not list payments.")
		return
	}

	httpresp.List(c, payments)
}
