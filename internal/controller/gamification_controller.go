package controller

import (
	"talkify_backend/internal/service"
	"talkify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GamificationController struct {
	GamificationService *service.GamificationService
}

func NewGamificationController(gamificationService *service.GamificationService) *GamificationController {
	return &GamificationController{GamificationService: gamificationService}
}

// Achievements godoc
// @Summary Tüm başarımlar ve kazanım durumu
// @Tags oyunlaştırma
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/gamification/achievements [get]
func (c *GamificationController) Achievements(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	achievements, err := c.GamificationService.ListAchievements(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, achievements)
}

// MyAchievements godoc
// @Summary Kazanılan başarımlar
// @Tags oyunlaştırma
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/gamification/my-achievements [get]
func (c *GamificationController) MyAchievements(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	earned, err := c.GamificationService.ListEarned(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, earned)
}

// Streak godoc
// @Summary Mevcut seri durumu
// @Description Seri kopmuşsa sıfırlanmış hali kalıcılaştırılır, artırılmaz
// @Tags oyunlaştırma
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.StreakStatus}
// @Router /api/gamification/streak [get]
func (c *GamificationController) Streak(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	streak, err := c.GamificationService.GetStreak(claims.UserID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, streak)
}

// LogActivity godoc
// @Summary Günün aktivitesini logla
// @Description Takvim günü başına idempotenttir; ayrıca başarımları değerlendirir
// @Tags oyunlaştırma
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/gamification/activity [post]
func (c *GamificationController) LogActivity(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	streak, err := c.GamificationService.LogActivity(claims.UserID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	unlocked, err := c.GamificationService.CheckAchievements(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"streak":          streak,
		"newAchievements": unlocked,
	})
}
