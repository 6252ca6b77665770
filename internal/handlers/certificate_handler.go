package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arteldev/salon-scheduler/internal/httperr"
	"github.com/arteldev/salon-scheduler/internal/httpresp"
	"github.com/arteldev/salon-scheduler/internal/models"
)

type CertificateHandler struct {
	db *gorm.DB
}

func NewCertificateHandler(db *gorm.DB) *CertificateHandler {
	return &CertificateHandler{db: db}
}

type IssueCertificateRequest struct {
	ClientID       uint    `json:"client_id" binding:"required"`
	NominalValue   float64 `json:"nominal_value" binding:"required"`
	IssueDate      string  `json:"issue_date" binding:"required"`
	ExpirationDate string  `json:"expiration_date" binding:"required"`
	PurchaserName  string  `json:"purchaser_name"`
	RecipientName  string  `json:"recipient_name"`
}

func (h *CertificateHandler) Issue(c *gin.Context) {
	var req IssueCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid certificate payload.")
		return
	}

	if _, _, err := parseDateRange(req.IssueDate, req.ExpirationDate); err != nil {
		httperr.BadRequest(c, "invalid_period", "Expiration must not precede issue date.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, req.ClientID).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}

	number := "CERT-" + strings.ToUpper(uuid.NewString()[:8])

	cert := models.GiftCertificate{
		ClientID:         req.ClientID,
		Number:           number,
		NominalValue:     req.NominalValue,
		RemainingBalance: req.NominalValue,
		IssueDate:        req.IssueDate,
		ExpirationDate:   req.ExpirationDate,
		PurchaserName:    req.PurchaserName,
		RecipientName:    req.RecipientName,
		Status:           models.CertificateStatusActive,
	}
	if err := h.db.Create(&cert).Error; err != nil {
		httperr.Internal(c, "failed_to_issue_certificate", "Could not issue the certificate.")
		return
	}

	httpresp.Created(c, cert)
}

func (h *CertificateHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("status = ?", status)
	}

	var certs []models.GiftCertificate
	if err := q.Order("id ASC").Find(&certs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_certificates", "Could not list certificates.")
		return
	}

	httpresp.List(c, certs)
}
