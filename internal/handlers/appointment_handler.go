package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/pawsclinic/clinic-scheduler/internal/domain/appointment"
	"github.com/pawsclinic/clinic-scheduler/internal/dto"
	"github.com/pawsclinic/clinic-scheduler/internal/httperr"
	"github.com/pawsclinic/clinic-scheduler/internal/httpresp"
	ucAppointment "github.com/pawsclinic/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC   *ucAppointment.CreateAppointment
	updateUC   *ucAppointment.UpdateAppointment
	cancelUC   *ucAppointment.CancelAppointment
	completeUC *ucAppointment.CompleteAppointment
	deleteUC   *ucAppointment.DeleteAppointment
	listUC     *ucAppointment.ListAppointments
	getUC      *ucAppointment.GetAppointment
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointments,
	getUC *ucAppointment.GetAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:   createUC,
		updateUC:   updateUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		deleteUC:   deleteUC,
		listUC:     listUC,
		getUC:      getUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PetID   string `json:"petId"`
	OwnerID string `json:"ownerId"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Reason  string `json:"reason"`
}

type PatchAppointmentRequest struct {
	PetID   *string `json:"petId"`
	OwnerID *string `json:"ownerId"`
	Date    *string `json:"date"`
	Time    *string `json:"time"`
	Status  *string `json:"status"`
	Reason  *string `json:"reason"`
}

type PutAppointmentRequest struct {
	PetID   string  `json:"petId" binding:"required"`
	OwnerID string  `json:"ownerId" binding:"required"`
	Date    string  `json:"date" binding:"required"`
	Time    string  `json:"time" binding:"required"`
	Status  *string `json:"status"`
	Reason  *string `json:"reason"`
}

// ======================================================
// ERROR MAPPING
// ======================================================

// writeError maps the booking error taxonomy onto the HTTP contract.
// Both conflict codes land on 409 so callers cannot tell whether the
// pre-check or the store constraint caught the double booking.
func writeError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, httperr.CodeValidation):
		httperr.BadRequest(c, httperr.CodeValidation,
			"petId, ownerId, date and time are required; date must be YYYY-MM-DD and time HH:MM")
	case httperr.IsBusiness(err, httperr.CodeNotFound):
		httperr.NotFound(c, httperr.CodeNotFound, "Appointment not found")
	case httperr.IsBusiness(err, httperr.CodeDoubleBooking):
		httperr.Conflict(c, httperr.CodeDoubleBooking,
			"Double booking detected: pet already has a scheduled appointment for this slot")
	case httperr.IsBusiness(err, httperr.CodeDoubleBookingRaced):
		httperr.Conflict(c, httperr.CodeDoubleBookingRaced,
			"Double booking detected by constraint: pet already has a scheduled appointment for this slot")
	case httperr.IsBusiness(err, httperr.CodeInvalidState):
		httperr.BadRequest(c, httperr.CodeInvalidState,
			"Appointment cannot be completed in its current status")
	default:
		httperr.Internal(c, "store_error", "Unexpected persistence failure")
	}
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	f := domain.Filter{
		OwnerID: c.Query("ownerId"),
		PetID:   c.Query("petId"),
		Status:  c.Query("status"),
		Date:    c.Query("date"),
	}

	aps, err := h.listUC.Execute(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromAppointments(aps))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		PetID:   req.PetID,
		OwnerID: req.OwnerID,
		Date:    req.Date,
		Time:    req.Time,
		Reason:  req.Reason,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// PATCH / PUT
// ======================================================

func (h *AppointmentHandler) Patch(c *gin.Context) {
	var req PatchAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), c.Param("id"), domain.Patch{
		PetID:   req.PetID,
		OwnerID: req.OwnerID,
		Date:    req.Date,
		Time:    req.Time,
		Status:  req.Status,
		Reason:  req.Reason,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// Put replaces the slot identity wholesale: petId, ownerId, date and
// time are mandatory. Conflict checking is identical to Patch.
func (h *AppointmentHandler) Put(c *gin.Context) {
	var req PutAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation,
			"petId, ownerId, date and time are required; date must be YYYY-MM-DD and time HH:MM")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), c.Param("id"), domain.Patch{
		PetID:   &req.PetID,
		OwnerID: &req.OwnerID,
		Date:    &req.Date,
		Time:    &req.Time,
		Status:  req.Status,
		Reason:  req.Reason,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancelUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	ap, err := h.completeUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Appointment deleted")
}
