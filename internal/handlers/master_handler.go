package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arteldev/salon-scheduler/internal/httperr"
	"github.com/arteldev/salon-scheduler/internal/httpresp"
	"github.com/arteldev/salon-scheduler/internal/models"
)

type MasterHandler struct {
	db *gorm.DB
}

func NewMasterHandler(db *gorm.DB) *MasterHandler {
	return &MasterHandler{db: db}
}

// --------- Requests ---------

type CreateMasterRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Specialization string `json:"specialization"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	HireDate       string `json:"hire_date"`
	Active         *bool  `json:"active"`
}

type UpdateMasterRequest struct {
	FullName       *string `json:"full_name,omitempty"`
	Specialization *string `json:"specialization,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty"`
	HireDate       *string `json:"hire_date,omitempty"`
	Active         *bool   `json:"active,omitempty"`
}

type ScheduleEntryRequest struct {
	Weekday         int    `json:"weekday" binding:"min=0,max=6"`
	StartTime       string `json:"start_time" binding:"required"`
	EndTime         string `json:"end_time" binding:"required"`
	SlotDurationMin int    `json:"slot_duration_min" binding:"required,min=1"`
}

// --------- Handlers ---------

func (h *MasterHandler) List(c *gin.Context) {
	activeStr := strings.TrimSpace(c.Query("active"))

	q := h.db.Session(&gorm.Session{})
	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	var masters []models.Master
	if err := q.Order("full_name ASC").Find(&masters).Error; err != nil {
		httperr.Internal(c, "failed_to_list_masters", "Could not list masters.")
		return
	}

	httpresp.List(c, masters)
}

func (h *MasterHandler) Create(c *gin.Context) {
	var req CreateMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid master payload.")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	master := models.Master{
		FullName:       req.FullName,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		Email:          req.Email,
		HireDate:       req.HireDate,
		Active:         active,
	}
	if err := h.db.Create(&master).Error; err != nil {
		httperr.Internal(c, "failed_to_create_master", "Could not create the master.")
		return
	}

	httpresp.Created(c, master)
}

func (h *MasterHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var master models.Master
	if err := h.db.First(&master, id).Error; err != nil {
		httperr.NotFound(c, "master_not_found", "Master not found.")
		return
	}

	var req UpdateMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid master payload.")
		return
	}

	if req.FullName != nil {
		master.FullName = *req.FullName
	}
	if req.Specialization != nil {
		master.Specialization = *req.Specialization
	}
	if req.Phone != nil {
		master.Phone = *req.Phone
	}
	if req.Email != nil {
		master.Email = *req.Email
	}
	if req.HireDate != nil {
		master.HireDate = *req.HireDate
	}
	if req.Active != nil {
		master.Active = *req.Active
	}

	if err := h.db.Save(&master).Error; err != nil {
		httperr.Internal(c, "failed_to_update_master", "Could not update the master.")
		return
	}

	httpresp.OK(c, master)
}

// ======================================================
// SCHEDULE (catalog only; availability never consults it)
// ======================================================

func (h *MasterHandler) ListSchedule(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_master_id", "Master id must be numeric.")
		return
	}

	var entries []models.MasterSchedule
	if err := h.db.
		Where("master_id = ?", uint(id)).
		Order("weekday ASC").
		Find(&entries).Error; err != nil {
		httperr.Internal(c, "failed_to_list_schedule", "Could not list the schedule.")
		return
	}

	httpresp.List(c, entries)
}

// PutSchedule replaces the master's weekly schedule wholesale.
func (h *MasterHandler) PutSchedule(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_master_id", "Master id must be numeric.")
		return
	}
	masterID := uint(id)

	var master models.Master
	if err := h.db.First(&master, masterID).Error; err != nil {
		httperr.NotFound(c, "master_not_found", "Master not found.")
		return
	}

	var req []ScheduleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid schedule payload.")
		return
	}

	for _, entry := range req {
		if _, err := parseTimeOfDay(entry.StartTime); err != nil {
			httperr.BadRequest(c, "invalid_time", "Schedule times must be HH:MM or HH:MM:SS.")
			return
		}
		if _, err := parseTimeOfDay(entry.EndTime); err != nil {
			httperr.BadRequest(c, "invalid_time", "Schedule times must be HH:MM or HH:MM:SS.")
			return
		}
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("master_id = ?", masterID).
			Delete(&models.MasterSchedule{}).Error; err != nil {
			return err
		}

		for _, entry := range req {
			start, _ := parseTimeOfDay(entry.StartTime)
			end, _ := parseTimeOfDay(entry.EndTime)
			row := models.MasterSchedule{
				MasterID:        masterID,
				Weekday:         entry.Weekday,
				StartTime:       start,
				EndTime:         end,
				SlotDurationMin: entry.SlotDurationMin,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_schedule", "Could not save the schedule.")
		return
	}

	h.ListSchedule(c)
}
