package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating is a 1-5 score one participant gives the other after an accepted swap.
type Rating struct {
	ID        uuid.UUID `json:"ratingId" gorm:"type:char(36);primaryKey"`
	SwapID    uuid.UUID `json:"swapId" gorm:"type:char(36);not null;index:idx_ratings_swap_rater,unique"`
	UserID    uuid.UUID `json:"userId" gorm:"type:char(36);not null;index"` // the rated user
	RatedByID uuid.UUID `json:"ratedById" gorm:"type:char(36);not null;index:idx_ratings_swap_rater,unique"`
	Score     int       `json:"score" gorm:"not null"`
	Comment   *string   `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Swap    SwapRequest `json:"-" gorm:"foreignKey:SwapID"`
	User    User        `json:"-" gorm:"foreignKey:UserID"`
	RatedBy User        `json:"-" gorm:"foreignKey:RatedByID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RatingStats summarizes the ratings a user has received.
type RatingStats struct {
	UserID       uuid.UUID   `json:"userId"`
	TotalRatings int64       `json:"totalRatings"`
	Average      float64     `json:"average"`
	ScoreCounts  map[int]int `json:"scoreCounts"`
}
