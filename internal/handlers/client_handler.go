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

type ClientHandler struct {
	repo  repository.ClientRepository
	audit *audit.Dispatcher
}

func NewClientHandler(
	repo repository.ClientRepository,
	audit *audit.Dispatcher,
) *ClientHandler {
	return &ClientHandler{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ======================================================
// GET /api/clients[?id=]
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	if id, ok := idFromQuery(c); ok {
		client, err := h.repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		if err != nil {
			httperr.Internal(c, err.Error())
			return
		}
		c.JSON(http.StatusOK, client)
		return
	}

	clients, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, clients)
}

// ======================================================
// POST /api/clients
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Corpo da requisição inválido")
		return
	}

	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || phone == "" {
		httperr.BadRequest(c, "name e phone são obrigatórios")
		return
	}

	client := models.Client{Name: name, Phone: phone}
	if err := h.repo.Create(c.Request.Context(), &client); err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	c.JSON(http.StatusCreated, client)
}

// ======================================================
// PUT /api/clients?id=
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := idFromQuery(c)
	if !ok {
		httperr.BadRequest(c, "id é obrigatório")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Corpo da requisição inválido")
		return
	}

	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || phone == "" {
		// Payload parcial não apaga campo: ou vem tudo, ou 400.
		httperr.BadRequest(c, "name e phone são obrigatórios")
		return
	}

	client, err := h.repo.Update(c.Request.Context(), id, name, phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	c.JSON(http.StatusOK, client)
}

// ======================================================
// DELETE /api/clients?id=
// ======================================================

// Delete em cascata: remove também todos os agendamentos do cliente.
// Id inexistente continua respondendo 204.
func (h *ClientHandler) Delete(c *gin.Context) {
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
			Action:   "client_deleted",
			Entity:   "client",
			EntityID: &id,
		})
	}

	c.Status(http.StatusNoContent)
}
