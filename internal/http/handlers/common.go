package handlers

import (
	"net/http"
	"strconv"

	intconfig "quicktransit/internal/config"
	"quicktransit/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

var (
	jwtSecret []byte
	siteName  string
	logoPath  string
)

// Configure applies startup configuration to the handler package. Called
// once while the router is built; nothing here changes afterwards.
func Configure(env intconfig.Env) {
	jwtSecret = []byte(env.JWTSecret)
	siteName = env.SiteName
	logoPath = env.ReceiptLogo
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// ParamID parses a positive int64 path parameter.
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid "+name, err)
		return 0, false
	}
	return id, true
}
