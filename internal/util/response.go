package util

import (
	"net/http"

	"jobmatch_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// The wire envelope: every response carries "ok", failures add "error".
// swagger:model
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func OK(c *gin.Context, fields gin.H) {
	body := gin.H{"ok": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{OK: false, Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

func MethodNotAllowed(c *gin.Context) {
	Fail(c, http.StatusMethodNotAllowed, "Method not allowed")
}

// InternalError logs the cause server-side and returns only a generic message.
func InternalError(c *gin.Context, message string, err error) {
	logger.Log.Error(message, zap.Error(err), zap.String("path", c.FullPath()))
	Fail(c, http.StatusInternalServerError, message)
}
