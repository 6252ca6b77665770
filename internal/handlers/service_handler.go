package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arteldev/salon-scheduler/internal/httperr"
	"github.com/arteldev/salon-scheduler/internal/httpresp"
	"github.com/arteldev/salon-scheduler/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CreateServiceRequest struct {
	CategoryID        uint    `json:"category_id" binding:"required"`
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description"`
	Price             float64 `json:"price" binding:"required"`
	DurationMin       int     `json:"duration_min" binding:"required,min=1"`
	RequiredMaterials string  `json:"required_materials"`
}

type UpdateServiceRequest struct {
	CategoryID        *uint    `json:"category_id,omitempty"`
	Name              *string  `json:"name,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Price             *float64 `json:"price,omitempty"`
	DurationMin       *int     `json:"duration_min,omitempty"`
	RequiredMaterials *string  `json:"required_materials,omitempty"`
	Active            *bool    `json:"active,omitempty"`
}

// ======================================================
// CATEGORIES
// ======================================================

func (h *ServiceHandler) ListCategories(c *gin.Context) {
	var categories []models.ServiceCategory
	if err := h.db.
		Where("active = ?", true).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Could not list categories.")
		return
	}

	httpresp.List(c, categories)
}

func (h *ServiceHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid category payload.")
		return
	}

	category := models.ServiceCategory{
		Name:        req.Name,
		Description: req.Description,
		Active:      true,
	}
	if err := h.db.Create(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_create_category", "Could not create the category.")
		return
	}

	httpresp.Created(c, category)
}

// ======================================================
// SERVICES
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	activeStr := strings.TrimSpace(c.Query("active"))

	q := h.db.Preload("Category")
	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	var category models.ServiceCategory
	if err := h.db.First(&category, req.CategoryID).Error; err != nil {
		httperr.BadRequest(c, "category_not_found", "Category not found.")
		return
	}

	svc := models.Service{
		CategoryID:        req.CategoryID,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		DurationMin:       req.DurationMin,
		RequiredMaterials: req.RequiredMaterials,
		Active:            true,
	}
	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create the service.")
		return
	}

	httpresp.Created(c, svc)
}

// Update edits the catalog row only: prices captured on existing
// appointments are snapshots and stay untouched.
func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	if req.CategoryID != nil {
		svc.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.DurationMin != nil {
		svc.DurationMin = *req.DurationMin
	}
	if req.RequiredMaterials != nil {
		svc.RequiredMaterials = *req.RequiredMaterials
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update the service.")
		return
	}

	httpresp.OK(c, svc)
}
