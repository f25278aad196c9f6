package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillswap/internal/model"
)

// SwapListFilter narrows a user's swap request listing.
type SwapListFilter struct {
	Status   *model.SwapStatus
	Sent     bool
	Received bool
	Limit    int
	Offset   int
}

// SwapRepository defines swap request persistence operations.
type SwapRepository interface {
	Create(ctx context.Context, swap *model.SwapRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SwapRequest, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.SwapRequest, error)
	// TransitionFromPending flips the status only if the row is still
	// pending, returning false when another transition already won.
	TransitionFromPending(ctx context.Context, id uuid.UUID, to model.SwapStatus) (bool, error)
	ExistsPending(ctx context.Context, requesterID, responderID, offeredSkillID, wantedSkillID uuid.UUID) (bool, error)
	ListForUser(ctx context.Context, userID uuid.UUID, filter SwapListFilter) ([]model.SwapRequest, error)
	// WithTransaction executes fn inside a database transaction.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo SwapRepository) error) error
}

type swapRepository struct {
	db *gorm.DB
}

// NewSwapRepository creates a new swap repository.
func NewSwapRepository(db *gorm.DB) SwapRepository {
	return &swapRepository{db: db}
}

// Create creates a new swap request record.
func (r *swapRepository) Create(ctx context.Context, swap *model.SwapRequest) error {
	return r.db.WithContext(ctx).Create(swap).Error
}

// FindByID finds a swap request by ID with skills preloaded.
func (r *swapRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SwapRequest, error) {
	var swap model.SwapRequest
	if err := r.db.WithContext(ctx).
		Preload("OfferedSkill").Preload("WantedSkill").
		Where("id = ?", id).First(&swap).Error; err != nil {
		return nil, err
	}
	return &swap, nil
}

// FindByIDForUpdate finds a swap request by ID with row-level lock for update.
func (r *swapRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.SwapRequest, error) {
	var swap model.SwapRequest
	if err := r.db.WithContext(ctx).Set("gorm:query_option", "FOR UPDATE").
		Where("id = ?", id).First(&swap).Error; err != nil {
		return nil, err
	}
	return &swap, nil
}

// TransitionFromPending performs the guarded status flip. The WHERE clause on
// status is what makes two racing transitions resolve to exactly one winner.
func (r *swapRepository) TransitionFromPending(ctx context.Context, id uuid.UUID, to model.SwapStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.SwapRequest{}).
		Where("id = ? AND status = ?", id, model.SwapStatusPending).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ExistsPending reports whether an identical pending request already exists.
func (r *swapRepository) ExistsPending(ctx context.Context, requesterID, responderID, offeredSkillID, wantedSkillID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SwapRequest{}).
		Where("requester_id = ? AND responder_id = ? AND offered_skill_id = ? AND wanted_skill_id = ? AND status = ?",
			requesterID, responderID, offeredSkillID, wantedSkillID, model.SwapStatusPending).
		Count(&count).Error
	return count > 0, err
}

// ListForUser lists swap requests the user participates in, newest first.
func (r *swapRepository) ListForUser(ctx context.Context, userID uuid.UUID, filter SwapListFilter) ([]model.SwapRequest, error) {
	query := r.db.WithContext(ctx).Model(&model.SwapRequest{}).
		Preload("OfferedSkill").Preload("WantedSkill")

	switch {
	case filter.Sent && !filter.Received:
		query = query.Where("requester_id = ?", userID)
	case filter.Received && !filter.Sent:
		query = query.Where("responder_id = ?", userID)
	default:
		query = query.Where("requester_id = ? OR responder_id = ?", userID, userID)
	}

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var swaps []model.SwapRequest
	err := query.Find(&swaps).Error
	return swaps, err
}

// WithTransaction executes a function within a database transaction.
func (r *swapRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo SwapRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &swapRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
