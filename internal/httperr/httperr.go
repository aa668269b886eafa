package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func MethodNotAllowed(c *gin.Context) {
	Write(c, http.StatusMethodNotAllowed, "Método não permitido")
}

func Internal(c *gin.Context, detail string) {
	c.JSON(http.StatusInternalServerError, HTTPError{
		Error:  "Erro interno",
		Detail: detail,
	})
}

// BusinessError é um erro de regra de negócio identificado por código.
// O use case devolve o código; o handler decide o status HTTP.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness diz se err carrega o código dado.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
