package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yaalstudio/salon-agenda/internal/audit"
	"github.com/yaalstudio/salon-agenda/internal/httperr"
)

type AuditLogsHandler struct {
	logger *audit.Logger
}

func NewAuditLogsHandler(logger *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger}
}

// List devolve as últimas 100 entradas, mais recente primeiro.
func (h *AuditLogsHandler) List(c *gin.Context) {
	logs, err := h.logger.List(100)
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, logs)
}
