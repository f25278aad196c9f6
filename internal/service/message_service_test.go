package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"skillswap/internal/errors"
	"skillswap/internal/model"
)

// MockMessageRepository is a mock implementation of MessageRepository.
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) OpenConversation(ctx context.Context, conversation *model.Conversation) (*model.Conversation, error) {
	args := m.Called(ctx, conversation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Conversation), args.Error(1)
}

func (m *MockMessageRepository) FindConversationByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Conversation), args.Error(1)
}

func (m *MockMessageRepository) FindConversationBySwapID(ctx context.Context, swapID uuid.UUID) (*model.Conversation, error) {
	args := m.Called(ctx, swapID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Conversation), args.Error(1)
}

func (m *MockMessageRepository) ListConversationsForUser(ctx context.Context, userID uuid.UUID) ([]model.Conversation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Conversation), args.Error(1)
}

func (m *MockMessageRepository) CreateMessage(ctx context.Context, message *model.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]model.Message, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

func strPtr(s string) *string { return &s }

func TestMessageService_Send(t *testing.T) {
	conversationID := uuid.New()
	requesterID := uuid.New()
	responderID := uuid.New()
	strangerID := uuid.New()

	conversation := &model.Conversation{
		ID:          conversationID,
		RequesterID: requesterID,
		ResponderID: responderID,
	}

	tests := []struct {
		name          string
		senderID      uuid.UUID
		text          *string
		image         *string
		setupMock     func(*MockMessageRepository, *MockNotificationService)
		expectedError error
	}{
		{
			name:     "text message notifies the other participant",
			senderID: requesterID,
			text:     strPtr("hello"),
			setupMock: func(mRepo *MockMessageRepository, mNotify *MockNotificationService) {
				mRepo.On("FindConversationByID", mock.Anything, conversationID).Return(conversation, nil)
				mRepo.On("CreateMessage", mock.Anything, mock.AnythingOfType("*model.Message")).Return(nil)
				mNotify.On("Notify", mock.Anything, responderID, model.NotificationMessageReceived,
					"You have a new message", mock.Anything).Return(&model.Notification{}, nil)
			},
		},
		{
			name:     "image-only message is allowed",
			senderID: responderID,
			image:    strPtr("https://cdn.example.com/pic.jpg"),
			setupMock: func(mRepo *MockMessageRepository, mNotify *MockNotificationService) {
				mRepo.On("FindConversationByID", mock.Anything, conversationID).Return(conversation, nil)
				mRepo.On("CreateMessage", mock.Anything, mock.AnythingOfType("*model.Message")).Return(nil)
				mNotify.On("Notify", mock.Anything, requesterID, model.NotificationMessageReceived,
					"You have a new message", mock.Anything).Return(&model.Notification{}, nil)
			},
		},
		{
			name:          "empty message is rejected",
			senderID:      requesterID,
			setupMock:     func(mRepo *MockMessageRepository, mNotify *MockNotificationService) {},
			expectedError: errors.ErrEmptyMessage,
		},
		{
			name:     "non-participant is rejected",
			senderID: strangerID,
			text:     strPtr("hello"),
			setupMock: func(mRepo *MockMessageRepository, mNotify *MockNotificationService) {
				mRepo.On("FindConversationByID", mock.Anything, conversationID).Return(conversation, nil)
			},
			expectedError: errors.ErrForbidden,
		},
		{
			name:     "missing conversation",
			senderID: requesterID,
			text:     strPtr("hello"),
			setupMock: func(mRepo *MockMessageRepository, mNotify *MockNotificationService) {
				mRepo.On("FindConversationByID", mock.Anything, conversationID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrConversationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMessageRepository)
			mockNotify := new(MockNotificationService)
			tt.setupMock(mockRepo, mockNotify)

			svc := NewMessageService(mockRepo, mockNotify)
			message, err := svc.Send(context.Background(), conversationID, tt.senderID, tt.text, tt.image)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, message)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, message)
				assert.Equal(t, tt.senderID, message.SenderID)
				assert.NotEqual(t, tt.senderID, message.ReceiverID)
			}

			mockRepo.AssertExpectations(t)
			mockNotify.AssertExpectations(t)
		})
	}
}

func TestMessageService_Send_NotificationFailureDoesNotUnwindMessage(t *testing.T) {
	conversationID := uuid.New()
	requesterID := uuid.New()
	responderID := uuid.New()

	mockRepo := new(MockMessageRepository)
	mockRepo.On("FindConversationByID", mock.Anything, conversationID).Return(&model.Conversation{
		ID:          conversationID,
		RequesterID: requesterID,
		ResponderID: responderID,
	}, nil)
	mockRepo.On("CreateMessage", mock.Anything, mock.AnythingOfType("*model.Message")).Return(nil)

	mockNotify := new(MockNotificationService)
	mockNotify.On("Notify", mock.Anything, responderID, model.NotificationMessageReceived,
		"You have a new message", mock.Anything).Return(nil, assert.AnError)

	svc := NewMessageService(mockRepo, mockNotify)
	message, err := svc.Send(context.Background(), conversationID, requesterID, strPtr("hi"), nil)

	assert.NoError(t, err)
	assert.NotNil(t, message)
}

func TestMessageService_OpenForSwap(t *testing.T) {
	swapID := uuid.New()
	requesterID := uuid.New()
	responderID := uuid.New()

	swap := &model.SwapRequest{
		ID:          swapID,
		RequesterID: requesterID,
		ResponderID: responderID,
		Status:      model.SwapStatusAccepted,
	}

	existing := &model.Conversation{
		ID:          uuid.New(),
		SwapID:      swapID,
		RequesterID: requesterID,
		ResponderID: responderID,
	}

	mockRepo := new(MockMessageRepository)
	mockRepo.On("OpenConversation", mock.Anything, mock.AnythingOfType("*model.Conversation")).Return(existing, nil).Twice()

	svc := NewMessageService(mockRepo, new(MockNotificationService))

	first, err := svc.OpenForSwap(context.Background(), swap)
	assert.NoError(t, err)
	second, err := svc.OpenForSwap(context.Background(), swap)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	mockRepo.AssertExpectations(t)
}

func TestMessageService_ListMessages(t *testing.T) {
	conversationID := uuid.New()
	requesterID := uuid.New()
	responderID := uuid.New()
	strangerID := uuid.New()

	conversation := &model.Conversation{
		ID:          conversationID,
		RequesterID: requesterID,
		ResponderID: responderID,
	}

	mockRepo := new(MockMessageRepository)
	mockRepo.On("FindConversationByID", mock.Anything, conversationID).Return(conversation, nil)
	mockRepo.On("ListMessages", mock.Anything, conversationID).Return([]model.Message{
		{ID: uuid.New(), SenderID: requesterID, ReceiverID: responderID, Text: strPtr("first")},
		{ID: uuid.New(), SenderID: responderID, ReceiverID: requesterID, Text: strPtr("second")},
	}, nil)

	svc := NewMessageService(mockRepo, new(MockNotificationService))

	messages, err := svc.ListMessages(context.Background(), conversationID, requesterID)
	assert.NoError(t, err)
	assert.Len(t, messages, 2)

	messages, err = svc.ListMessages(context.Background(), conversationID, strangerID)
	assert.ErrorIs(t, err, errors.ErrForbidden)
	assert.Nil(t, messages)
}
