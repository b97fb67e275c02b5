package controller

import (
	"errors"

	"talkify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// handleServiceError servis sentinel hatalarını HTTP durumuna eşler.
// Eşleşmeyen her şey loglanıp genel 500 olarak döner.
func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrInvalidInput):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrNotFound),
		errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrWordNotFound),
		errors.Is(err, util.ErrQuizNotFound),
		errors.Is(err, util.ErrSessionNotFound),
		errors.Is(err, util.ErrConvNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrConflict),
		errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrFirebaseRegistered),
		errors.Is(err, util.ErrWordExists):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Error(ctx, 401, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// listResponse sayfalı liste zarfı
func listResponse(items interface{}, pagination *util.Pagination) gin.H {
	return gin.H{
		"items":      items,
		"pagination": pagination,
	}
}
