package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arteldev/salon-scheduler/internal/httperr"
	"github.com/arteldev/salon-scheduler/internal/httpresp"
	"github.com/arteldev/salon-scheduler/internal/models"
)

// AdditionalOption rows are a small reference set: referenced by
// profiles and booking forms, never computed.
type OptionHandler struct {
	db *gorm.DB
}

func NewOptionHandler(db *gorm.DB) *OptionHandler {
	return &OptionHandler{db: db}
}

type CreateOptionRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *OptionHandler) List(c *gin.Context) {
	var options []models.AdditionalOption
	if err := h.db.Order("name ASC").Find(&options).Error; err != nil {
		httperr.Internal(c, "failed_to_list_options", "Could not list options.")
		return
	}

	httpresp.List(c, options)
}

func (h *OptionHandler) Create(c *gin.Context) {
	var req CreateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid option payload.")
		return
	}

	option := models.AdditionalOption{Name: req.Name}
	if err := h.db.Create(&option).Error; err != nil {
		httperr.Internal(c, "failed_to_create_option", "Could not create the option.")
		return
	}

	httpresp.Created(c, option)
}
