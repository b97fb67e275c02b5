package controller

import (
	"talkify_backend/internal/service"
	"talkify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// List godoc
// @Summary Aktif quiz listesi
// @Tags quiz
// @Produce json
// @Param level query string false "CEFR seviyesi"
// @Param category query string false "Kategori"
// @Param search query string false "Başlıkta arama"
// @Param page query int false "Sayfa"
// @Param per_page query int false "Sayfa boyu"
// @Success 200 {object} util.Response
// @Router /api/quizzes [get]
func (c *QuizController) List(ctx *gin.Context) {
	page, perPage := util.NormalizePagination(ctx.Query("page"), ctx.Query("per_page"))

	filter := service.QuizFilter{
		Level:    ctx.Query("level"),
		Category: ctx.Query("category"),
		Search:   ctx.Query("search"),
	}

	quizzes, pagination, err := c.QuizService.ListQuizzes(filter, page, perPage)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, listResponse(quizzes, pagination))
}

// Get godoc
// @Summary Quiz detayı (sorular dahil)
// @Tags quiz
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	quiz, err := c.QuizService.GetQuiz(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// Questions godoc
// @Summary Quiz soruları
// @Description exam_mode=true iken doğru cevap ve açıklamalar gizlenir
// @Tags quiz
// @Produce json
// @Param id path int true "Quiz ID"
// @Param exam_mode query bool false "Sınav modu"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id}/questions [get]
func (c *QuizController) Questions(ctx *gin.Context) {
	examMode := ctx.Query("exam_mode") == "true"

	questions, err := c.QuizService.GetQuestions(util.MustParseUint(ctx.Param("id")), examMode)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// Submit godoc
// @Summary Quiz sonucu gönder
// @Description Puanı doğrular, sonucu kaydeder, seri ve başarımları günceller
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.SubmitResultRequest true "Sonuç"
// @Success 201 {object} util.Response{data=service.SubmitResultResponse}
// @Failure 400 {object} util.Response "Puan aralık dışı"
// @Failure 404 {object} util.Response "Quiz bulunamadı"
// @Router /api/quizzes/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.SubmitResult(claims.UserID, &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, "Sonuç kaydedildi.", result)
}

// History godoc
// @Summary Quiz geçmişi
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Param page query int false "Sayfa"
// @Param per_page query int false "Sayfa boyu"
// @Success 200 {object} util.Response
// @Router /api/quizzes/history [get]
func (c *QuizController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, perPage := util.NormalizePagination(ctx.Query("page"), ctx.Query("per_page"))

	results, pagination, err := c.QuizService.History(claims.UserID, page, perPage)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, listResponse(results, pagination))
}

// Stats godoc
// @Summary Quiz istatistikleri
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=repository.ResultStats}
// @Router /api/quizzes/stats [get]
func (c *QuizController) Stats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.QuizService.Stats(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

type SyncResultsRequest struct {
	Results []service.LegacyResult `json:"results" binding:"required"`
}

// SyncResults godoc
// @Summary Eski istemci sonuçlarını toplu aktar
// @Description İstemcinin yolladığı yüzdeye güvenilir; geçersiz kayıtlar atlanır
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SyncResultsRequest true "Sonuç listesi"
// @Success 200 {object} util.Response
// @Router /api/sync-results [post]
func (c *QuizController) SyncResults(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SyncResultsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	synced, err := c.QuizService.SyncResults(claims.UserID, req.Results)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Sonuçlar aktarıldı.", gin.H{"synced": synced})
}
