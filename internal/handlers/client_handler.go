package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arteldev/salon-scheduler/internal/httperr"
	"github.com/arteldev/salon-scheduler/internal/httpresp"
	"github.com/arteldev/salon-scheduler/internal/models"
	"github.com/arteldev/salon-scheduler/internal/validators"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// --------- Requests ---------

type CreateClientRequest struct {
	FullName         string `json:"full_name" binding:"required"`
	BirthDate        string `json:"birth_date"`
	Phone            string `json:"phone" binding:"required"`
	Email            string `json:"email"`
	RegistrationDate string `json:"registration_date"`
}

type UpdateClientRequest struct {
	FullName         *string `json:"full_name,omitempty"`
	BirthDate        *string `json:"birth_date,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Email            *string `json:"email,omitempty"`
	RegistrationDate *string `json:"registration_date,omitempty"`
}

type PutProfileRequest struct {
	PassportNumber     string `json:"passport_number" binding:"required"`
	PlannedStart       string `json:"planned_start" binding:"required"`
	PlannedEnd         string `json:"planned_end" binding:"required"`
	AdditionalOptionID *uint  `json:"additional_option_id"`
	Notes              string `json:"notes"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(full_name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.Order("id ASC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Could not list clients.")
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid client payload.")
		return
	}

	if req.Email != "" && !validators.IsEmailShapeValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "Email does not look valid.")
		return
	}

	client := models.Client{
		FullName:         req.FullName,
		BirthDate:        req.BirthDate,
		Phone:            req.Phone,
		Email:            req.Email,
		RegistrationDate: req.RegistrationDate,
	}
	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Could not create the client.")
		return
	}

	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid client payload.")
		return
	}

	if req.FullName != nil {
		client.FullName = *req.FullName
	}
	if req.BirthDate != nil {
		client.BirthDate = *req.BirthDate
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		if *req.Email != "" && !validators.IsEmailShapeValid(*req.Email) {
			httperr.BadRequest(c, "invalid_email", "Email does not look valid.")
			return
		}
		client.Email = *req.Email
	}
	if req.RegistrationDate != nil {
		client.RegistrationDate = *req.RegistrationDate
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Could not update the client.")
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// PROFILE (1:1 side record, upsert semantics)
// ======================================================

func (h *ClientHandler) GetProfile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "Client id must be numeric.")
		return
	}

	var profile models.ClientProfile
	if err := h.db.Where("client_id = ?", uint(id)).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "profile_not_found", "Client has no profile yet.")
			return
		}
		httperr.Internal(c, "failed_to_get_profile", "Could not load the profile.")
		return
	}

	httpresp.OK(c, profile)
}

func (h *ClientHandler) PutProfile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "Client id must be numeric.")
		return
	}
	clientID := uint(id)

	var req PutProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile payload.")
		return
	}

	if _, _, err := parseDateRange(req.PlannedStart, req.PlannedEnd); err != nil {
		httperr.BadRequest(c, "invalid_period", "Planned stay period is not valid.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, clientID).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}

	var profile models.ClientProfile
	err = h.db.Where("client_id = ?", clientID).First(&profile).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = models.ClientProfile{ClientID: clientID}
	case err != nil:
		httperr.Internal(c, "failed_to_save_profile", "Could not save the profile.")
		return
	}

	profile.PassportNumber = req.PassportNumber
	profile.PlannedStart = req.PlannedStart
	profile.PlannedEnd = req.PlannedEnd
	profile.AdditionalOptionID = req.AdditionalOptionID
	profile.Notes = req.Notes

	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_save_profile", "Could not save the profile.")
		return
	}

	c.JSON(http.StatusOK, profile)
}
