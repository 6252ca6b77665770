package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/arteldev/salon-scheduler/internal/domain/booking"
	"github.com/arteldev/salon-scheduler/internal/httperr"
	"github.com/arteldev/salon-scheduler/internal/httpresp"
	"github.com/arteldev/salon-scheduler/internal/middleware"
	ucBooking "github.com/arteldev/salon-scheduler/internal/usecase/booking"
)

type AppointmentHandler struct {
	listUC       *ucBooking.ListAppointments
	transitionUC *ucBooking.TransitionAppointment
}

func NewAppointmentHandler(
	listUC *ucBooking.ListAppointments,
	transitionUC *ucBooking.TransitionAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		listUC:       listUC,
		transitionUC: transitionUC,
	}
}

// ======================================================
// LIST (admin; optional inclusive date range)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	fromStr := c.Query("from")
	toStr := c.Query("to")

	var from, to string
	if fromStr != "" || toStr != "" {
		var err error
		from, to, err = parseDateRange(fromStr, toStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_period", "Expected from/to as YYYY-MM-DD with from <= to.")
			return
		}
	}

	aps, err := h.listUC.ByRange(c.Request.Context(), from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// LIST MINE (client role, linked client required)
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	clientID, ok := middleware.LinkedClientID(c)
	if !ok {
		httperr.Forbidden(c, "no_linked_client", "Account is not linked to a client record.")
		return
	}

	aps, err := h.listUC.ByClient(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// LIST FOR A SPECIFIC CLIENT (admin)
// ======================================================

func (h *AppointmentHandler) ListForClient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "Client id must be numeric.")
		return
	}

	aps, err := h.listUC.ByClient(c.Request.Context(), uint(id))
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// STATUS TRANSITION (operator)
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment id must be numeric.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A target status is required.")
		return
	}

	ap, err := h.transitionUC.Execute(
		c.Request.Context(),
		userID,
		uint(id),
		domain.Status(req.Status),
	)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			if code == "appointment_not_found" {
				httperr.NotFound(c, code, "Appointment not found.")
				return
			}
			httperr.BadRequest(c, code, "Status change rejected.")
			return
		}
		httperr.Internal(c, "failed_to_update_status", "Could not update the appointment.")
		return
	}

	httpresp.OK(c, ap)
}
