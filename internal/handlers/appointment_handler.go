package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yaalstudio/salon-agenda/internal/audit"
	"github.com/yaalstudio/salon-agenda/internal/httperr"
	"github.com/yaalstudio/salon-agenda/internal/repository"
	"github.com/yaalstudio/salon-agenda/internal/usecase/booking"
)

type AppointmentHandler struct {
	repo     repository.AppointmentRepository
	createUC *booking.CreateBooking
	audit    *audit.Dispatcher
}

func NewAppointmentHandler(
	repo repository.AppointmentRepository,
	createUC *booking.CreateBooking,
	audit *audit.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:     repo,
		createUC: createUC,
		audit:    audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookingRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Date    string `json:"date"` // YYYY-MM-DD
	Time    string `json:"time"` // HH:mm
}

type AppointmentUpdateRequest struct {
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// ======================================================
// GET /api/appointments[?id=]
// ======================================================

// List devolve cada linha já com client_name/client_phone do join.
func (h *AppointmentHandler) List(c *gin.Context) {
	if id, ok := idFromQuery(c); ok {
		row, err := h.repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		if err != nil {
			httperr.Internal(c, err.Error())
			return
		}
		c.JSON(http.StatusOK, row)
		return
	}

	rows, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ======================================================
// POST /api/appointments (booking público)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Corpo da requisição inválido")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), booking.CreateBookingInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Service: req.Service,
		Date:    req.Date,
		Time:    req.Time,
	})
	if httperr.IsBusiness(err, "missing_fields") {
		httperr.BadRequest(c, "Campos obrigatórios faltando")
		return
	}
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// PUT /api/appointments?id=
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := idFromQuery(c)
	if !ok {
		httperr.BadRequest(c, "id é obrigatório")
		return
	}

	var req AppointmentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Corpo da requisição inválido")
		return
	}

	service := strings.TrimSpace(req.Service)
	date := strings.TrimSpace(req.Date)
	hour := strings.TrimSpace(req.Time)
	if service == "" || date == "" || hour == "" {
		httperr.BadRequest(c, "service, date e time são obrigatórios")
		return
	}

	ap, err := h.repo.Update(c.Request.Context(), id, service, date, hour)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE /api/appointments?id=
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := idFromQuery(c)
	if !ok {
		httperr.BadRequest(c, "id é obrigatório")
		return
	}

	res, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	if res == repository.Deleted {
		h.audit.Dispatch(audit.Event{
			Action:   "appointment_deleted",
			Entity:   "appointment",
			EntityID: &id,
		})
	}

	c.Status(http.StatusNoContent)
}
