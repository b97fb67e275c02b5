package controller

import (
	"talkify_backend/internal/service"
	"talkify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminService   *service.AdminService
	WordService    *service.WordService
	QuizService    *service.QuizService
	GrammarService *service.GrammarService
}

func NewAdminController(
	adminService *service.AdminService,
	wordService *service.WordService,
	quizService *service.QuizService,
	grammarService *service.GrammarService,
) *AdminController {
	return &AdminController{
		AdminService:   adminService,
		WordService:    wordService,
		QuizService:    quizService,
		GrammarService: grammarService,
	}
}

// Dashboard godoc
// @Summary Yönetim paneli istatistikleri
// @Tags admin
// @Produce json
// @Security AdminKey
// @Success 200 {object} util.Response{data=service.DashboardStats}
// @Router /api/admin/dashboard [get]
func (c *AdminController) Dashboard(ctx *gin.Context) {
	stats, err := c.AdminService.Dashboard()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// ListUsers godoc
// @Summary Kullanıcı listesi
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param search query string false "E-posta veya kullanıcı adında arama"
// @Param page query int false "Sayfa"
// @Param per_page query int false "Sayfa boyu"
// @Success 200 {object} util.Response
// @Router /api/admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	page, perPage := util.NormalizePagination(ctx.Query("page"), ctx.Query("per_page"))

	users, pagination, err := c.AdminService.ListUsers(ctx.Query("search"), page, perPage)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, listResponse(users, pagination))
}

// GetUser godoc
// @Summary Kullanıcı detayı
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param id path int true "Kullanıcı ID"
// @Success 200 {object} util.Response{data=service.AdminUserDetail}
// @Failure 404 {object} util.Response
// @Router /api/admin/users/{id} [get]
func (c *AdminController) GetUser(ctx *gin.Context) {
	detail, err := c.AdminService.GetUser(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// DeleteUser godoc
// @Summary Kullanıcıyı ve tüm kayıtlarını sil
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param id path int true "Kullanıcı ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/users/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	if err := c.AdminService.DeleteUser(util.MustParseUint(ctx.Param("id"))); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Kullanıcı silindi.", nil)
}

// ListWords godoc
// @Summary Kelime listesi (en yeni önce)
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param level query string false "CEFR seviyesi"
// @Param category query string false "Kategori"
// @Param search query string false "Arama"
// @Param page query int false "Sayfa"
// @Param per_page query int false "Sayfa boyu"
// @Success 200 {object} util.Response
// @Router /api/admin/words [get]
func (c *AdminController) ListWords(ctx *gin.Context) {
	page, perPage := util.NormalizePagination(ctx.Query("page"), ctx.Query("per_page"))

	words, pagination, err := c.AdminService.ListWordsAdmin(
		ctx.Query("level"), ctx.Query("category"), ctx.Query("search"), page, perPage)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, listResponse(words, pagination))
}

// CreateWord godoc
// @Summary Kelime ekle
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param body body service.WordRequest true "Kelime"
// @Success 201 {object} util.Response{data=model.Word}
// @Failure 409 {object} util.Response "Kelime zaten mevcut"
// @Router /api/admin/words [post]
func (c *AdminController) CreateWord(ctx *gin.Context) {
	var req service.WordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	word, err := c.WordService.CreateWord(&req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, "Kelime eklendi.", word)
}

// UpdateWord godoc
// @Summary Kelime güncelle
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param id path int true "Kelime ID"
// @Param body body service.WordRequest true "Kelime"
// @Success 200 {object} util.Response{data=model.Word}
// @Failure 404 {object} util.Response
// @Router /api/admin/words/{id} [put]
func (c *AdminController) UpdateWord(ctx *gin.Context) {
	var req service.WordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	word, err := c.WordService.UpdateWord(util.MustParseUint(ctx.Param("id")), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Kelime güncellendi.", word)
}

// DeleteWord godoc
// @Summary Kelime sil
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param id path int true "Kelime ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/words/{id} [delete]
func (c *AdminController) DeleteWord(ctx *gin.Context) {
	if err := c.WordService.DeleteWord(util.MustParseUint(ctx.Param("id"))); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Kelime silindi.", nil)
}

// ListQuizzes godoc
// @Summary Quiz listesi (pasifler dahil)
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param page query int false "Sayfa"
// @Param per_page query int false "Sayfa boyu"
// @Success 200 {object} util.Response
// @Router /api/admin/quizzes [get]
func (c *AdminController) ListQuizzes(ctx *gin.Context) {
	page, perPage := util.NormalizePagination(ctx.Query("page"), ctx.Query("per_page"))

	quizzes, pagination, err := c.QuizService.ListAllQuizzes(page, perPage)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, listResponse(quizzes, pagination))
}

// CreateQuiz godoc
// @Summary Quiz oluştur (iç içe sorularla)
// @Description correct_answer her soruda options dizisine indeks olmalıdır
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param body body service.QuizRequest true "Quiz"
// @Success 201 {object} util.Response{data=model.Quiz}
// @Failure 400 {object} util.Response
// @Router /api/admin/quizzes [post]
func (c *AdminController) CreateQuiz(ctx *gin.Context) {
	var req service.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.CreateQuiz(&req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, "Quiz oluşturuldu.", quiz)
}

// GetQuiz godoc
// @Summary Quiz detayı
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param id path int true "Quiz ID"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /api/admin/quizzes/{id} [get]
func (c *AdminController) GetQuiz(ctx *gin.Context) {
	quiz, err := c.QuizService.GetQuiz(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// UpdateQuiz godoc
// @Summary Quiz güncelle
// @Description Soru listesi gönderilenle tamamen değiştirilir
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param id path int true "Quiz ID"
// @Param body body service.QuizRequest true "Quiz"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /api/admin/quizzes/{id} [put]
func (c *AdminController) UpdateQuiz(ctx *gin.Context) {
	var req service.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.UpdateQuiz(util.MustParseUint(ctx.Param("id")), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Quiz güncellendi.", quiz)
}

// DeleteQuiz godoc
// @Summary Quiz sil (sorularıyla birlikte)
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param id path int true "Quiz ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/quizzes/{id} [delete]
func (c *AdminController) DeleteQuiz(ctx *gin.Context) {
	if err := c.QuizService.DeleteQuiz(util.MustParseUint(ctx.Param("id"))); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Quiz silindi.", nil)
}

// ListGrammar godoc
// @Summary Gramer içerikleri
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param level query string false "CEFR seviyesi"
// @Param page query int false "Sayfa"
// @Param per_page query int false "Sayfa boyu"
// @Success 200 {object} util.Response
// @Router /api/admin/grammar [get]
func (c *AdminController) ListGrammar(ctx *gin.Context) {
	page, perPage := util.NormalizePagination(ctx.Query("page"), ctx.Query("per_page"))

	contents, pagination, err := c.GrammarService.List(ctx.Query("level"), page, perPage)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, listResponse(contents, pagination))
}

// CreateGrammar godoc
// @Summary Gramer içeriği ekle
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param body body service.GrammarRequest true "İçerik"
// @Success 201 {object} util.Response{data=model.GrammarContent}
// @Router /api/admin/grammar [post]
func (c *AdminController) CreateGrammar(ctx *gin.Context) {
	var req service.GrammarRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	content, err := c.GrammarService.Create(&req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, "İçerik eklendi.", content)
}

// UpdateGrammar godoc
// @Summary Gramer içeriği güncelle
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param id path int true "İçerik ID"
// @Param body body service.GrammarRequest true "İçerik"
// @Success 200 {object} util.Response{data=model.GrammarContent}
// @Failure 404 {object} util.Response
// @Router /api/admin/grammar/{id} [put]
func (c *AdminController) UpdateGrammar(ctx *gin.Context) {
	var req service.GrammarRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	content, err := c.GrammarService.Update(util.MustParseUint(ctx.Param("id")), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "İçerik güncellendi.", content)
}

// DeleteGrammar godoc
// @Summary Gramer içeriği sil
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param id path int true "İçerik ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/grammar/{id} [delete]
func (c *AdminController) DeleteGrammar(ctx *gin.Context) {
	if err := c.GrammarService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "İçerik silindi.", nil)
}

// ListAchievements godoc
// @Summary Başarım tanımları
// @Tags admin
// @Produce json
// @Security AdminKey
// @Success 200 {object} util.Response
// @Router /api/admin/achievements [get]
func (c *AdminController) ListAchievements(ctx *gin.Context) {
	achievements, err := c.AdminService.ListAchievements()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, achievements)
}

// SeedAchievements godoc
// @Summary Varsayılan başarım setini tamamla
// @Description Eksik tanımları ekler, mevcutlara dokunmaz
// @Tags admin
// @Produce json
// @Security AdminKey
// @Success 200 {object} util.Response
// @Router /api/admin/achievements/seed [post]
func (c *AdminController) SeedAchievements(ctx *gin.Context) {
	created, err := c.AdminService.SeedAchievements()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Başarım seti güncellendi.", gin.H{"created": created})
}
