package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yaalstudio/salon-agenda/internal/audit"
	"github.com/yaalstudio/salon-agenda/internal/httperr"
	"github.com/yaalstudio/salon-agenda/internal/models"
	"github.com/yaalstudio/salon-agenda/internal/repository"
)

type ContactHandler struct {
	repo  repository.ContactRepository
	audit *audit.Dispatcher
}

func NewContactHandler(
	repo repository.ContactRepository,
	audit *audit.Dispatcher,
) *ContactHandler {
	return &ContactHandler{
		repo:  repo,
		audit: audit,
	}
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *ContactHandler) List(c *gin.Context) {
	if id, ok := idFromQuery(c); ok {
		contact, err := h.repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		if err != nil {
			httperr.Internal(c, err.Error())
			return
		}
		c.JSON(http.StatusOK, contact)
		return
	}

	contacts, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// Create não valida presença de campos: mensagem vazia entra mesmo
// assim, como o formulário sempre se comportou.
func (h *ContactHandler) Create(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Corpo da requisição inválido")
		return
	}

	contact := models.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
	}
	if err := h.repo.Create(c.Request.Context(), &contact); err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, contact)
}

func (h *ContactHandler) Delete(c *gin.Context) {
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
			Action:   "contact_deleted",
			Entity:   "contact",
			EntityID: &id,
		})
	}

	c.Status(http.StatusNoContent)
}
