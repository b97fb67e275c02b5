package service

import (
	"errors"
	"strings"
	"time"

	"talkify_backend/internal/model"
	"talkify_backend/internal/repository"
	"talkify_backend/internal/util"

	"gorm.io/gorm"
)

const defaultConversationTitle = "New English Practice"

type ChatService struct {
	ChatRepo *repository.ChatRepository

	Now func() time.Time
}

func NewChatService(chatRepo *repository.ChatRepository) *ChatService {
	return &ChatService{
		ChatRepo: chatRepo,
		Now:      time.Now,
	}
}

func (s *ChatService) ListConversations(userID uint, page, perPage int) ([]model.Conversation, *util.Pagination, error) {
	var conversations []model.Conversation
	pagination, err := util.Paginate(s.ChatRepo.QueryConversationsByUser(userID), page, perPage, &conversations)
	if err != nil {
		return nil, nil, err
	}
	return conversations, pagination, nil
}

type CreateConversationRequest struct {
	Title string `json:"title" binding:"max=100"`
}

func (s *ChatService) CreateConversation(userID uint, req *CreateConversationRequest) (*model.Conversation, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = defaultConversationTitle
	}

	conv := &model.Conversation{
		UserID: userID,
		Title:  title,
	}
	if err := s.ChatRepo.CreateConversation(conv); err != nil {
		return nil, err
	}
	return conv, nil
}

// getOwnedConversation sahiplik kontrolü; başkasının sohbeti 404 görünür
func (s *ChatService) getOwnedConversation(conversationID string, userID uint) (*model.Conversation, error) {
	conv, err := s.ChatRepo.FindConversationByIDAndUser(conversationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrConvNotFound
		}
		return nil, err
	}
	return conv, nil
}

func (s *ChatService) ListMessages(userID uint, conversationID string, page, perPage int) ([]model.ChatMessage, *util.Pagination, error) {
	if _, err := s.getOwnedConversation(conversationID, userID); err != nil {
		return nil, nil, err
	}

	var messages []model.ChatMessage
	pagination, err := util.Paginate(s.ChatRepo.QueryMessages(conversationID), page, perPage, &messages)
	if err != nil {
		return nil, nil, err
	}
	return messages, pagination, nil
}

type AddMessageRequest struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// AddMessage mesajı ekler ve sohbetin updated_at damgasını yeniler
func (s *ChatService) AddMessage(userID uint, conversationID string, req *AddMessageRequest) (*model.ChatMessage, error) {
	if req.Role != model.ChatRoleUser && req.Role != model.ChatRoleAssistant {
		return nil, util.ErrInvalidInput
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, util.ErrInvalidInput
	}

	if _, err := s.getOwnedConversation(conversationID, userID); err != nil {
		return nil, err
	}

	msg := &model.ChatMessage{
		ConversationID: conversationID,
		Role:           req.Role,
		Content:        req.Content,
	}
	if err := s.ChatRepo.CreateMessage(msg); err != nil {
		return nil, err
	}
	if err := s.ChatRepo.TouchConversation(conversationID, s.Now()); err != nil {
		return nil, err
	}
	return msg, nil
}
