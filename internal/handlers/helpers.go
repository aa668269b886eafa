package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// idFromQuery lê o parâmetro ?id=. Valor ausente ou não numérico
// conta como "sem id", igual ao comportamento histórico da API.
func idFromQuery(c *gin.Context) (uint, bool) {
	raw := c.Query("id")
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
