package util

import (
	"net/http"
	"talkify_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response tüm endpoint'lerin döndüğü ortak zarf
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

func SuccessMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string, errs ...string) {
	c.JSON(code, Response{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Yetkilendirme gerekli.")
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

func UnsupportedMedia(c *gin.Context) {
	Error(c, http.StatusUnsupportedMediaType, "İstek JSON formatında olmalıdır.")
}

func TooManyRequests(c *gin.Context) {
	Error(c, http.StatusTooManyRequests, "Çok fazla istek. Lütfen daha sonra tekrar deneyin.")
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Sunucu hatası oluştu.")
}

// LogInternalError beklenmeyen hatayı loglar, istemciye genel mesaj döner
func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	InternalServerError(c)
}
