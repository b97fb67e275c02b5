package repository

import (
	"time"

	"talkify_backend/internal/model"

	"gorm.io/gorm"
)

type ChatRepository struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

func (r *ChatRepository) CreateConversation(conv *model.Conversation) error {
	return r.DB.Create(conv).Error
}

func (r *ChatRepository) FindConversationByIDAndUser(id string, userID uint) (*model.Conversation, error) {
	var conv model.Conversation
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&conv).Error
	return &conv, err
}

// QueryConversationsByUser en son güncellenen önce
func (r *ChatRepository) QueryConversationsByUser(userID uint) *gorm.DB {
	return r.DB.Model(&model.Conversation{}).
		Where("user_id = ?", userID).
		Order("updated_at DESC")
}

// TouchConversation mesaj eklendiğinde updated_at yenilenir
func (r *ChatRepository) TouchConversation(id string, at time.Time) error {
	return r.DB.Model(&model.Conversation{}).
		Where("id = ?", id).
		Update("updated_at", at).Error
}

func (r *ChatRepository) CreateMessage(msg *model.ChatMessage) error {
	return r.DB.Create(msg).Error
}

// QueryMessages eski mesaj önce (kronolojik)
func (r *ChatRepository) QueryMessages(conversationID string) *gorm.DB {
	return r.DB.Model(&model.ChatMessage{}).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC, id ASC")
}
