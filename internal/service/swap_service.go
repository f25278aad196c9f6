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

// SwapService enforces the swap request lifecycle:
//
//	pending -> accepted | rejected | cancelled
//
// Terminal states admit no further transition. Only the responder may accept
// or reject; only the requester may cancel. Transitions are serialized per
// swap through a row lock so concurrent attempts resolve to exactly one
// winner; the loser gets ErrInvalidTransition.
type SwapService interface {
	Create(ctx context.Context, requesterID, responderID, offeredSkillID, wantedSkillID uuid.UUID) (*model.SwapRequest, error)
	Accept(ctx context.Context, swapID, actorID uuid.UUID) (*model.SwapRequest, error)
	Reject(ctx context.Context, swapID, actorID uuid.UUID) (*model.SwapRequest, error)
	Cancel(ctx context.Context, swapID, actorID uuid.UUID) (*model.SwapRequest, error)
	GetByID(ctx context.Context, swapID, actorID uuid.UUID) (*model.SwapRequest, error)
	ListForUser(ctx context.Context, userID uuid.UUID, filter repository.SwapListFilter) ([]model.SwapRequest, error)
}

type swapService struct {
	swapRepo            repository.SwapRepository
	skillRepo           repository.SkillRepository
	userRepo            repository.UserRepository
	notificationService NotificationService
	messageService      MessageService
}

// NewSwapService creates a new swap service.
func NewSwapService(
	swapRepo repository.SwapRepository,
	skillRepo repository.SkillRepository,
	userRepo repository.UserRepository,
	notificationService NotificationService,
	messageService MessageService,
) SwapService {
	return &swapService{
		swapRepo:            swapRepo,
		skillRepo:           skillRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
		messageService:      messageService,
	}
}

// Create validates participants and skill sets, stores the request as
// pending and notifies the responder.
func (s *swapService) Create(ctx context.Context, requesterID, responderID, offeredSkillID, wantedSkillID uuid.UUID) (*model.SwapRequest, error) {
	if requesterID == responderID {
		return nil, errors.ErrInvalidParticipants
	}

	requester, err := s.userRepo.FindByID(ctx, requesterID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find requester: %w", err)
	}
	if _, err := s.userRepo.FindByID(ctx, responderID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find responder: %w", err)
	}

	offeredSkill, err := s.skillRepo.FindByID(ctx, offeredSkillID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrSkillNotFound
		}
		return nil, fmt.Errorf("find offered skill: %w", err)
	}
	if _, err := s.skillRepo.FindByID(ctx, wantedSkillID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrSkillNotFound
		}
		return nil, fmt.Errorf("find wanted skill: %w", err)
	}

	// The requester must actually offer what they put on the table, and
	// the responder must offer what the requester wants.
	offers, err := s.skillRepo.UserOffers(ctx, requesterID, offeredSkillID)
	if err != nil {
		return nil, fmt.Errorf("check requester skills: %w", err)
	}
	if !offers {
		return nil, errors.ErrSkillNotOffered
	}
	offers, err = s.skillRepo.UserOffers(ctx, responderID, wantedSkillID)
	if err != nil {
		return nil, fmt.Errorf("check responder skills: %w", err)
	}
	if !offers {
		return nil, errors.ErrSkillNotOffered
	}

	exists, err := s.swapRepo.ExistsPending(ctx, requesterID, responderID, offeredSkillID, wantedSkillID)
	if err != nil {
		return nil, fmt.Errorf("check duplicate swap: %w", err)
	}
	if exists {
		return nil, errors.ErrDuplicateSwap
	}

	swap := &model.SwapRequest{
		RequesterID:    requesterID,
		ResponderID:    responderID,
		OfferedSkillID: offeredSkillID,
		WantedSkillID:  wantedSkillID,
		Status:         model.SwapStatusPending,
	}
	if err := s.swapRepo.Create(ctx, swap); err != nil {
		return nil, fmt.Errorf("create swap request: %w", err)
	}
	swap.OfferedSkill = *offeredSkill

	s.notify(ctx, responderID, model.NotificationSwapRequest,
		fmt.Sprintf("%s wants to swap skills and is offering %s", requester.Name, offeredSkill.Name), swap.ID)

	return swap, nil
}

// Accept transitions a pending swap to accepted, notifies the requester and
// opens the message channel between the participants.
func (s *swapService) Accept(ctx context.Context, swapID, actorID uuid.UUID) (*model.SwapRequest, error) {
	swap, err := s.transition(ctx, swapID, actorID, model.SwapStatusAccepted)
	if err != nil {
		return nil, err
	}

	// Channel creation is idempotent, so a retry after a crash between
	// commit and open converges to the same conversation.
	if _, err := s.messageService.OpenForSwap(ctx, swap); err != nil {
		log.Printf("open conversation for swap %s: %v", swap.ID, err)
	}

	s.notify(ctx, swap.RequesterID, model.NotificationSwapAccepted,
		"Your swap request has been accepted", swap.ID)

	return swap, nil
}

// Reject transitions a pending swap to rejected and notifies the requester.
func (s *swapService) Reject(ctx context.Context, swapID, actorID uuid.UUID) (*model.SwapRequest, error) {
	swap, err := s.transition(ctx, swapID, actorID, model.SwapStatusRejected)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, swap.RequesterID, model.NotificationSwapRejected,
		"Your swap request has been rejected", swap.ID)

	return swap, nil
}

// Cancel transitions a pending swap to cancelled. Cancellation is silent:
// no notification goes to the responder.
func (s *swapService) Cancel(ctx context.Context, swapID, actorID uuid.UUID) (*model.SwapRequest, error) {
	return s.transition(ctx, swapID, actorID, model.SwapStatusCancelled)
}

// transition moves a swap out of pending under a row lock. The guarded
// update re-checks the status so of two racing callers exactly one commits;
// the other observes a non-pending row and fails with ErrInvalidTransition.
func (s *swapService) transition(ctx context.Context, swapID, actorID uuid.UUID, to model.SwapStatus) (*model.SwapRequest, error) {
	var swap *model.SwapRequest
	err := s.swapRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.SwapRepository) error {
		locked, err := txRepo.FindByIDForUpdate(ctx, swapID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrSwapNotFound
			}
			return fmt.Errorf("lock swap request: %w", err)
		}

		switch to {
		case model.SwapStatusAccepted, model.SwapStatusRejected:
			if locked.ResponderID != actorID {
				return errors.ErrForbidden
			}
		case model.SwapStatusCancelled:
			if locked.RequesterID != actorID {
				return errors.ErrForbidden
			}
		}

		if locked.Status != model.SwapStatusPending {
			return errors.ErrInvalidTransition
		}

		ok, err := txRepo.TransitionFromPending(ctx, swapID, to)
		if err != nil {
			return fmt.Errorf("transition swap request: %w", err)
		}
		if !ok {
			return errors.ErrInvalidTransition
		}

		locked.Status = to
		swap = locked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return swap, nil
}

// GetByID returns a swap request, participants only.
func (s *swapService) GetByID(ctx context.Context, swapID, actorID uuid.UUID) (*model.SwapRequest, error) {
	swap, err := s.swapRepo.FindByID(ctx, swapID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrSwapNotFound
		}
		return nil, fmt.Errorf("find swap request: %w", err)
	}
	if swap.RequesterID != actorID && swap.ResponderID != actorID {
		return nil, errors.ErrForbidden
	}
	return swap, nil
}

// ListForUser lists swap requests the user participates in.
func (s *swapService) ListForUser(ctx context.Context, userID uuid.UUID, filter repository.SwapListFilter) ([]model.SwapRequest, error) {
	return s.swapRepo.ListForUser(ctx, userID, filter)
}

// notify emits a side-effect notification. A failure is logged, never
// propagated: the committed transition is the business outcome.
func (s *swapService) notify(ctx context.Context, recipientID uuid.UUID, typ model.NotificationType, content string, swapID uuid.UUID) {
	if _, err := s.notificationService.Notify(ctx, recipientID, typ, content, &swapID); err != nil {
		log.Printf("notify %s for swap %s: %v", typ, swapID, err)
	}
}
