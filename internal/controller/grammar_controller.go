package controller

import (
	"talkify_backend/internal/service"
	"talkify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GrammarController struct {
	GrammarService *service.GrammarService
}

func NewGrammarController(grammarService *service.GrammarService) *GrammarController {
	return &GrammarController{GrammarService: grammarService}
}

// List godoc
// @Summary Gramer içerik listesi
// @Tags gramer
// @Produce json
// @Param level query string false "CEFR seviyesi"
// @Param page query int false "Sayfa"
// @Param per_page query int false "Sayfa boyu"
// @Success 200 {object} util.Response
// @Router /api/grammar [get]
func (c *GrammarController) List(ctx *gin.Context) {
	page, perPage := util.NormalizePagination(ctx.Query("page"), ctx.Query("per_page"))

	contents, pagination, err := c.GrammarService.List(ctx.Query("level"), page, perPage)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, listResponse(contents, pagination))
}

// Get godoc
// @Summary Gramer içeriği detayı
// @Tags gramer
// @Produce json
// @Param id path int true "İçerik ID"
// @Success 200 {object} util.Response{data=model.GrammarContent}
// @Failure 404 {object} util.Response
// @Router /api/grammar/{id} [get]
func (c *GrammarController) Get(ctx *gin.Context) {
	content, err := c.GrammarService.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, content)
}
