package controller

import (
	"talkify_backend/internal/service"
	"talkify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// ListConversations godoc
// @Summary Sohbet listesi (en son güncellenen önce)
// @Tags sohbet
// @Produce json
// @Security BearerAuth
// @Param page query int false "Sayfa"
// @Param per_page query int false "Sayfa boyu"
// @Success 200 {object} util.Response
// @Router /api/chat/conversations [get]
func (c *ChatController) ListConversations(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, perPage := util.NormalizePagination(ctx.Query("page"), ctx.Query("per_page"))

	conversations, pagination, err := c.ChatService.ListConversations(claims.UserID, page, perPage)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, listResponse(conversations, pagination))
}

// CreateConversation godoc
// @Summary Yeni sohbet başlat
// @Tags sohbet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CreateConversationRequest true "Başlık (opsiyonel)"
// @Success 201 {object} util.Response{data=model.Conversation}
// @Router /api/chat/conversations [post]
func (c *ChatController) CreateConversation(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateConversationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	conv, err := c.ChatService.CreateConversation(claims.UserID, &req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, "Yeni sohbet başlatıldı.", conv)
}

// ListMessages godoc
// @Summary Sohbet mesajları (kronolojik)
// @Tags sohbet
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sohbet ID"
// @Param page query int false "Sayfa"
// @Param per_page query int false "Sayfa boyu"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Sohbet bulunamadı ya da başkasına ait"
// @Router /api/chat/conversations/{id}/messages [get]
func (c *ChatController) ListMessages(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, perPage := util.NormalizePagination(ctx.Query("page"), ctx.Query("per_page"))

	messages, pagination, err := c.ChatService.ListMessages(claims.UserID, ctx.Param("id"), page, perPage)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, listResponse(messages, pagination))
}

// AddMessage godoc
// @Summary Sohbete mesaj ekle
// @Tags sohbet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sohbet ID"
// @Param body body service.AddMessageRequest true "Mesaj"
// @Success 201 {object} util.Response{data=model.ChatMessage}
// @Failure 404 {object} util.Response
// @Router /api/chat/conversations/{id}/messages [post]
func (c *ChatController) AddMessage(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.AddMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	msg, err := c.ChatService.AddMessage(claims.UserID, ctx.Param("id"), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, "Mesaj eklendi.", msg)
}
