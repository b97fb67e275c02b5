package model

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// Conversation kullanıcıya ait sohbet; mesaj eklendikçe UpdatedAt yenilenir
type Conversation struct {
	UUIDBase
	UserID   uint          `gorm:"index;not null" json:"userId"`
	Title    string        `gorm:"size:100;default:'New English Practice'" json:"title"`
	Messages []ChatMessage `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// ChatMessage append-only mesaj kaydı
type ChatMessage struct {
	UUIDBase
	ConversationID string `gorm:"index;type:varchar(36);not null" json:"conversationId"`
	Role           string `gorm:"size:20;not null" json:"role"`
	Content        string `gorm:"type:text;not null" json:"content"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
