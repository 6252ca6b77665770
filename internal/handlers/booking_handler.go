package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/arteldev/salon-scheduler/internal/domain/booking"
	"github.com/arteldev/salon-scheduler/internal/httperr"
	"github.com/arteldev/salon-scheduler/internal/httpresp"
	"github.com/arteldev/salon-scheduler/internal/middleware"
	"github.com/arteldev/salon-scheduler/internal/models"
	ucBooking "github.com/arteldev/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC       *ucBooking.CreateBooking
	availabilityUC *ucBooking.GetAvailability
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	availabilityUC *ucBooking.GetAvailability,
) *BookingHandler {
	return &BookingHandler{
		createUC:       createUC,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	// Admins book on behalf of any client; client-role callers use
	// their linked client and this field is ignored.
	ClientID uint `json:"client_id"`

	MasterID  uint   `json:"master_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`

	PassportNumber     string `json:"passport_number" binding:"required"`
	VisitPurpose       string `json:"visit_purpose"`
	PlannedStart       string `json:"planned_start" binding:"required"`
	PlannedEnd         string `json:"planned_end" binding:"required"`
	AdditionalOptionID *uint  `json:"additional_option_id"`
	Notes              string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	clientID := req.ClientID
	if role == models.RoleClient {
		linked, ok := middleware.LinkedClientID(c)
		if !ok {
			httperr.Forbidden(c, "no_linked_client", "Account is not linked to a client record.")
			return
		}
		clientID = linked
	}
	if clientID == 0 {
		httperr.BadRequest(c, "missing_client", "A client is required for a booking.")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}
	timeOfDay, err := parseTimeOfDay(req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "Time must be HH:MM or HH:MM:SS.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), userID, domain.Intent{
		ClientID:           clientID,
		MasterID:           req.MasterID,
		ServiceID:          req.ServiceID,
		Date:               date,
		Time:               timeOfDay,
		PassportNumber:     req.PassportNumber,
		VisitPurpose:       req.VisitPurpose,
		PlannedStart:       req.PlannedStart,
		PlannedEnd:         req.PlannedEnd,
		AdditionalOptionID: req.AdditionalOptionID,
		Notes:              req.Notes,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			switch code {
			case "master_unavailable":
				httperr.Conflict(c, code, "Master is occupied at the requested date/time.")
			case "invalid_period":
				httperr.BadRequest(c, code, "Planned stay period is not valid.")
			default:
				httperr.BadRequest(c, code, "Booking rejected.")
			}
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Could not create the appointment.")
		return
	}

	httpresp.Created(c, gin.H{
		"id":          ap.ID,
		"status":      ap.Status,
		"date":        ap.Date,
		"time":        ap.Time,
		"total_price": ap.TotalPrice,
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) CheckMaster(c *gin.Context) {
	masterID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_master_id", "Master id must be numeric.")
		return
	}

	date, err := parseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}
	timeOfDay, err := parseTimeOfDay(c.Query("time"))
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "Time must be HH:MM or HH:MM:SS.")
		return
	}

	available, err := h.availabilityUC.IsMasterAvailable(
		c.Request.Context(), uint(masterID), date, timeOfDay,
	)
	if err != nil {
		httperr.Internal(c, "availability_check_failed", "Could not check availability.")
		return
	}

	httpresp.OK(c, gin.H{
		"master_id": masterID,
		"date":      date,
		"time":      timeOfDay,
		"available": available,
	})
}

func (h *BookingHandler) ListAvailableMasters(c *gin.Context) {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}
	timeOfDay, err := parseTimeOfDay(c.Query("time"))
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "Time must be HH:MM or HH:MM:SS.")
		return
	}

	masters, err := h.availabilityUC.ListAvailableMasters(
		c.Request.Context(), date, timeOfDay,
	)
	if err != nil {
		httperr.Internal(c, "availability_check_failed", "Could not list available masters.")
		return
	}

	httpresp.List(c, masters)
}

func (h *BookingHandler) ListAvailableMastersInPeriod(c *gin.Context) {
	from, to, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		httperr.BadRequest(c, "invalid_period", "Expected from/to as YYYY-MM-DD with from <= to.")
		return
	}

	masters, err := h.availabilityUC.ListAvailableMastersInPeriod(
		c.Request.Context(), from, to,
	)
	if err != nil {
		httperr.Internal(c, "availability_check_failed", "Could not list available masters.")
		return
	}

	httpresp.List(c, masters)
}
