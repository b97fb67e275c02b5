package service

import (
	"testing"
	"time"

	"talkify_backend/internal/model"
	"talkify_backend/internal/repository"
	"talkify_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestChat(db *gorm.DB) *ChatService {
	return NewChatService(repository.NewChatRepository(db))
}

func TestCreateConversation_DefaultTitle(t *testing.T) {
	db := newTestDB(t)
	svc := newTestChat(db)
	user := createTestUser(t, db, "c1@test.com")

	conv, err := svc.CreateConversation(user.ID, &CreateConversationRequest{})
	require.NoError(t, err)
	assert.Equal(t, defaultConversationTitle, conv.Title)
	assert.NotEmpty(t, conv.ID)
}

func TestAddMessage_OtherUsersConversationHidden(t *testing.T) {
	db := newTestDB(t)
	svc := newTestChat(db)
	owner := createTestUser(t, db, "owner-chat@test.com")
	other := createTestUser(t, db, "other-chat@test.com")

	conv, err := svc.CreateConversation(owner.ID, &CreateConversationRequest{Title: "Pratik"})
	require.NoError(t, err)

	_, err = svc.AddMessage(other.ID, conv.ID, &AddMessageRequest{Role: model.ChatRoleUser, Content: "merhaba"})
	assert.ErrorIs(t, err, util.ErrConvNotFound)

	_, _, err = svc.ListMessages(other.ID, conv.ID, 1, 20)
	assert.ErrorIs(t, err, util.ErrConvNotFound)
}

func TestAddMessage_InvalidRole(t *testing.T) {
	db := newTestDB(t)
	svc := newTestChat(db)
	user := createTestUser(t, db, "c2@test.com")

	conv, err := svc.CreateConversation(user.ID, &CreateConversationRequest{})
	require.NoError(t, err)

	_, err = svc.AddMessage(user.ID, conv.ID, &AddMessageRequest{Role: "system", Content: "x"})
	assert.ErrorIs(t, err, util.ErrInvalidInput)

	_, err = svc.AddMessage(user.ID, conv.ID, &AddMessageRequest{Role: model.ChatRoleUser, Content: "   "})
	assert.ErrorIs(t, err, util.ErrInvalidInput)
}

func TestAddMessage_TouchesConversation(t *testing.T) {
	db := newTestDB(t)
	svc := newTestChat(db)
	user := createTestUser(t, db, "c3@test.com")

	conv, err := svc.CreateConversation(user.ID, &CreateConversationRequest{})
	require.NoError(t, err)

	later := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc.Now = fixedClock(later)

	_, err = svc.AddMessage(user.ID, conv.ID, &AddMessageRequest{Role: model.ChatRoleUser, Content: "hello"})
	require.NoError(t, err)

	var fresh model.Conversation
	require.NoError(t, db.First(&fresh, "id = ?", conv.ID).Error)
	assert.True(t, fresh.UpdatedAt.Equal(later))
}

func TestListMessages_Chronological(t *testing.T) {
	db := newTestDB(t)
	svc := newTestChat(db)
	user := createTestUser(t, db, "c4@test.com")

	conv, err := svc.CreateConversation(user.ID, &CreateConversationRequest{})
	require.NoError(t, err)

	for _, content := range []string{"bir", "iki", "üç"} {
		_, err = svc.AddMessage(user.ID, conv.ID, &AddMessageRequest{Role: model.ChatRoleUser, Content: content})
		require.NoError(t, err)
	}

	messages, pagination, err := svc.ListMessages(user.ID, conv.ID, 1, 20)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "bir", messages[0].Content)
	assert.Equal(t, "üç", messages[2].Content)
	assert.Equal(t, int64(3), pagination.TotalItems)
}
