package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// StaticHandler serve os arquivos do site público para qualquer rota
// que não casou com a API. Caminho fora do diretório público é 403.
type StaticHandler struct {
	root string
}

func NewStaticHandler(root string) *StaticHandler {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	return &StaticHandler{root: abs}
}

func (h *StaticHandler) Serve(c *gin.Context) {
	rel := c.Request.URL.Path
	if rel == "/" {
		rel = "/index.html"
	}

	full := filepath.Join(h.root, filepath.FromSlash(rel))
	full = filepath.Clean(full)

	if full != h.root && !strings.HasPrefix(full, h.root+string(filepath.Separator)) {
		c.String(http.StatusForbidden, "Forbidden")
		return
	}

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		c.String(http.StatusNotFound, "404 - Página não encontrada")
		return
	}

	c.File(full)
}
