package controller

import (
	"talkify_backend/internal/service"
	"talkify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type WordController struct {
	WordService     *service.WordService
	ProgressService *service.ProgressService
}

func NewWordController(wordService *service.WordService, progressService *service.ProgressService) *WordController {
	return &WordController{
		WordService:     wordService,
		ProgressService: progressService,
	}
}

// List godoc
// @Summary Kelime listesi
// @Description Seviye, kategori ve arama filtreleriyle sayfalı kelime listesi.
// @Description Geçersiz seviye filtresi sessizce yok sayılır.
// @Tags kelimeler
// @Produce json
// @Param level query string false "CEFR seviyesi (A1..C2)"
// @Param category query string false "Kategori"
// @Param search query string false "Kelime veya anlamda arama"
// @Param page query int false "Sayfa (varsayılan 1)"
// @Param per_page query int false "Sayfa boyu (varsayılan 20, en çok 100)"
// @Success 200 {object} util.Response
// @Router /api/words [get]
func (c *WordController) List(ctx *gin.Context) {
	page, perPage := util.NormalizePagination(ctx.Query("page"), ctx.Query("per_page"))

	filter := service.WordFilter{
		Level:    ctx.Query("level"),
		Category: ctx.Query("category"),
		Search:   ctx.Query("search"),
	}

	words, pagination, err := c.WordService.ListWords(filter, page, perPage)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, listResponse(words, pagination))
}

// Get godoc
// @Summary Kelime detayı
// @Tags kelimeler
// @Produce json
// @Param id path int true "Kelime ID"
// @Success 200 {object} util.Response{data=model.Word}
// @Failure 404 {object} util.Response
// @Router /api/words/{id} [get]
func (c *WordController) Get(ctx *gin.Context) {
	word, err := c.WordService.GetWord(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, word)
}

// Daily godoc
// @Summary Günün kelimesi
// @Tags kelimeler
// @Produce json
// @Success 200 {object} util.Response{data=model.Word}
// @Failure 404 {object} util.Response "Havuzda hiç kelime yok"
// @Router /api/words/daily [get]
func (c *WordController) Daily(ctx *gin.Context) {
	word, err := c.WordService.DailyWord(ctx.Request.Context())
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, word)
}

// Categories godoc
// @Summary Kategori listesi
// @Tags kelimeler
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/words/categories [get]
func (c *WordController) Categories(ctx *gin.Context) {
	categories, err := c.WordService.Categories()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// Levels godoc
// @Summary Geçerli seviye listesi
// @Tags kelimeler
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/words/levels [get]
func (c *WordController) Levels(ctx *gin.Context) {
	util.Success(ctx, c.WordService.Levels())
}

// RecordProgress godoc
// @Summary Kelime tekrarı kaydet
// @Description Tekrar sayacını artırır, öğrenildi bayrağını günceller ve
// @Description günün aktivitesini loglar.
// @Tags kelimeler
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.RecordReviewRequest true "Tekrar bilgisi"
// @Success 200 {object} util.Response{data=service.RecordReviewResponse}
// @Failure 404 {object} util.Response "Kelime bulunamadı"
// @Router /api/words/progress [post]
func (c *WordController) RecordProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.RecordReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ProgressService.RecordReview(claims.UserID, &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// ListProgress godoc
// @Summary Kullanıcının kelime ilerlemesi
// @Tags kelimeler
// @Produce json
// @Security BearerAuth
// @Param learned query bool false "Yalnızca öğrenilen/öğrenilmeyen"
// @Param page query int false "Sayfa"
// @Param per_page query int false "Sayfa boyu"
// @Success 200 {object} util.Response
// @Router /api/words/progress [get]
func (c *WordController) ListProgress(ctx *gin.Context) {
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
