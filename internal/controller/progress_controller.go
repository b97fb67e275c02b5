package controller

import (
	"talkify_backend/internal/service"
	"talkify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// Stats godoc
// @Summary Öğrenme istatistikleri
// @Tags ilerleme
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.ProgressStats}
// @Router /api/progress/stats [get]
func (c *ProgressController) Stats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.ProgressService.Stats(claims.UserID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// Words godoc
// @Summary Kelime ilerleme listesi
// @Tags ilerleme
// @Produce json
// @Security BearerAuth
// @Param learned query bool false "Öğrenilme filtresi"
// @Param page query int false "Sayfa"
// @Param per_page query int false "Sayfa boyu"
// @Success 200 {object} util.Response
// @Router /api/progress/words [get]
func (c *ProgressController) Words(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, perPage := util.NormalizePagination(ctx.Query("page"), ctx.Query("per_page"))

	var learned *bool
	if v, ok := ctx.GetQuery("learned"); ok {
		b := v == "true" || v == "1"
		learned = &b
	}

	rows, pagination, err := c.ProgressService.ListProgress(claims.UserID, learned, page, perPage)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, listResponse(rows, pagination))
}

// Daily godoc
// @Summary Günlük hedef durumu
// @Tags ilerleme
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.DailyProgress}
// @Router /api/progress/daily [get]
func (c *ProgressController) Daily(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	daily, err := c.ProgressService.Daily(claims.UserID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, daily)
}

// ListSessions godoc
// @Summary Öğrenme oturumları
// @Tags ilerleme
// @Produce json
// @Security BearerAuth
// @Param session_type query string false "Oturum tipi"
// @Param page query int false "Sayfa"
// @Param per_page query int false "Sayfa boyu"
// @Success 200 {object} util.Response
// @Router /api/progress/sessions [get]
func (c *ProgressController) ListSessions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, perPage := util.NormalizePagination(ctx.Query("page"), ctx.Query("per_page"))

	sessions, pagination, err := c.ProgressService.ListSessions(claims.UserID, ctx.Query("session_type"), page, perPage)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, listResponse(sessions, pagination))
}

// StartSession godoc
// @Summary Oturum başlat
// @Tags ilerleme
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.StartSessionRequest true "Oturum tipi"
// @Success 201 {object} util.Response{data=model.LearningSession}
// @Failure 400 {object} util.Response "Geçersiz oturum tipi"
// @Router /api/progress/sessions [post]
func (c *ProgressController) StartSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.ProgressService.StartSession(claims.UserID, &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, "Oturum başlatıldı.", session)
}

// CompleteSession godoc
// @Summary Oturumu tamamla
// @Description Süre verilmemişse başlangıç zamanından hesaplanır
// @Tags ilerleme
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Oturum ID"
// @Param body body service.CompleteSessionRequest true "Tamamlama bilgisi"
// @Success 200 {object} util.Response{data=model.LearningSession}
// @Failure 404 {object} util.Response
// @Router /api/progress/sessions/{id} [put]
func (c *ProgressController) CompleteSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CompleteSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.ProgressService.CompleteSession(claims.UserID, util.MustParseUint(ctx.Param("id")), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Oturum tamamlandı.", session)
}
