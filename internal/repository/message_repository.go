package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillswap/internal/model"
)

// MessageRepository defines conversation and message persistence operations.
type MessageRepository interface {
	// OpenConversation creates the conversation for a swap if it does not
	// exist yet and returns it either way.
	OpenConversation(ctx context.Context, conversation *model.Conversation) (*model.Conversation, error)
	FindConversationByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error)
	FindConversationBySwapID(ctx context.Context, swapID uuid.UUID) (*model.Conversation, error)
	ListConversationsForUser(ctx context.Context, userID uuid.UUID) ([]model.Conversation, error)
	CreateMessage(ctx context.Context, message *model.Message) error
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]model.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// OpenConversation is idempotent on swap id: the unique index plus
// FirstOrCreate makes reopening a no-op.
func (r *messageRepository) OpenConversation(ctx context.Context, conversation *model.Conversation) (*model.Conversation, error) {
	var existing model.Conversation
	err := r.db.WithContext(ctx).
		Where(model.Conversation{SwapID: conversation.SwapID}).
		Attrs(model.Conversation{
			RequesterID: conversation.RequesterID,
			ResponderID: conversation.ResponderID,
		}).
		FirstOrCreate(&existing).Error
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

// FindConversationByID finds a conversation by ID.
func (r *messageRepository) FindConversationByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	var conversation model.Conversation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&conversation).Error; err != nil {
		return nil, err
	}
	return &conversation, nil
}

// FindConversationBySwapID finds the conversation opened for a swap.
func (r *messageRepository) FindConversationBySwapID(ctx context.Context, swapID uuid.UUID) (*model.Conversation, error) {
	var conversation model.Conversation
	if err := r.db.WithContext(ctx).Where("swap_id = ?", swapID).First(&conversation).Error; err != nil {
		return nil, err
	}
	return &conversation, nil
}

// ListConversationsForUser lists conversations the user participates in,
// most recently active first.
func (r *messageRepository) ListConversationsForUser(ctx context.Context, userID uuid.UUID) ([]model.Conversation, error) {
	var conversations []model.Conversation
	err := r.db.WithContext(ctx).
		Where("requester_id = ? OR responder_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&conversations).Error
	return conversations, err
}

// CreateMessage appends an immutable message to a conversation.
func (r *messageRepository) CreateMessage(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// ListMessages lists a conversation's messages in chronological order.
func (r *messageRepository) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}
