package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillswap/internal/errors"
	"skillswap/internal/model"
	"skillswap/internal/repository"
)

// MessageService handles the conversations opened by accepted swaps and the
// messages exchanged inside them.
type MessageService interface {
	// OpenForSwap opens the message channel for an accepted swap. Calling
	// it again for the same swap returns the existing conversation.
	OpenForSwap(ctx context.Context, swap *model.SwapRequest) (*model.Conversation, error)
	GetForSwap(ctx context.Context, swapID, userID uuid.UUID) (*model.Conversation, error)
	ListConversations(ctx context.Context, userID uuid.UUID) ([]model.Conversation, error)
	Send(ctx context.Context, conversationID, senderID uuid.UUID, text, image *string) (*model.Message, error)
	ListMessages(ctx context.Context, conversationID, userID uuid.UUID) ([]model.Message, error)
}

type messageService struct {
	messageRepo         repository.MessageRepository
	notificationService NotificationService
}

// NewMessageService creates a new message service.
func NewMessageService(messageRepo repository.MessageRepository, notificationService NotificationService) MessageService {
	return &messageService{
		messageRepo:         messageRepo,
		notificationService: notificationService,
	}
}

// OpenForSwap opens the conversation between the swap's participants.
func (s *messageService) OpenForSwap(ctx context.Context, swap *model.SwapRequest) (*model.Conversation, error) {
	conversation, err := s.messageRepo.OpenConversation(ctx, &model.Conversation{
		SwapID:      swap.ID,
		RequesterID: swap.RequesterID,
		ResponderID: swap.ResponderID,
	})
	if err != nil {
		return nil, fmt.Errorf("open conversation: %w", err)
	}
	return conversation, nil
}

// GetForSwap returns the conversation for a swap, participants only.
func (s *messageService) GetForSwap(ctx context.Context, swapID, userID uuid.UUID) (*model.Conversation, error) {
	conversation, err := s.messageRepo.FindConversationBySwapID(ctx, swapID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrConversationNotFound
		}
		return nil, fmt.Errorf("find conversation: %w", err)
	}
	if !conversation.HasParticipant(userID) {
		return nil, errors.ErrForbidden
	}
	return conversation, nil
}

// ListConversations lists the user's conversations.
func (s *messageService) ListConversations(ctx context.Context, userID uuid.UUID) ([]model.Conversation, error) {
	return s.messageRepo.ListConversationsForUser(ctx, userID)
}

// Send appends an immutable message and notifies the other participant.
func (s *messageService) Send(ctx context.Context, conversationID, senderID uuid.UUID, text, image *string) (*model.Message, error) {
	if (text == nil || *text == "") && (image == nil || *image == "") {
		return nil, errors.ErrEmptyMessage
	}

	conversation, err := s.messageRepo.FindConversationByID(ctx, conversationID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrConversationNotFound
		}
		return nil, fmt.Errorf("find conversation: %w", err)
	}
	if !conversation.HasParticipant(senderID) {
		return nil, errors.ErrForbidden
	}

	message := &model.Message{
		ConversationID: conversation.ID,
		SenderID:       senderID,
		ReceiverID:     conversation.Other(senderID),
		Text:           text,
		Image:          image,
	}
	if err := s.messageRepo.CreateMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	// Delivery is at-least-once; a failed notification never unwinds the
	// message itself.
	if _, err := s.notificationService.Notify(ctx, message.ReceiverID, model.NotificationMessageReceived,
		"You have a new message", &conversation.ID); err != nil {
		log.Printf("notify message received: %v", err)
	}

	return message, nil
}

// ListMessages lists a conversation's messages, participants only.
func (s *messageService) ListMessages(ctx context.Context, conversationID, userID uuid.UUID) ([]model.Message, error) {
	conversation, err := s.messageRepo.FindConversationByID(ctx, conversationID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrConversationNotFound
		}
		return nil, fmt.Errorf("find conversation: %w", err)
	}
	if !conversation.HasParticipant(userID) {
		return nil, errors.ErrForbidden
	}
	return s.messageRepo.ListMessages(ctx, conversationID)
}
