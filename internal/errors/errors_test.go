package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		err          error
		expectedCode int
		expectedTag  string
	}{
		{ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{ErrSkillNotFound, http.StatusNotFound, "SKILL_NOT_FOUND"},
		{ErrSwapNotFound, http.StatusNotFound, "SWAP_NOT_FOUND"},
		{ErrInvalidParticipants, http.StatusBadRequest, "INVALID_PARTICIPANTS"},
		{ErrSkillNotOffered, http.StatusBadRequest, "SKILL_NOT_OFFERED"},
		{ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION"},
		{ErrDuplicateSwap, http.StatusConflict, "DUPLICATE_SWAP"},
		{ErrInvalidScore, http.StatusBadRequest, "INVALID_SCORE"},
		{ErrSwapNotAccepted, http.StatusBadRequest, "SWAP_NOT_ACCEPTED"},
		{ErrAlreadyRated, http.StatusConflict, "ALREADY_RATED"},
		{ErrEmptyMessage, http.StatusBadRequest, "EMPTY_MESSAGE"},
		{ErrSkillInUse, http.StatusConflict, "SKILL_IN_USE"},
	}

	for _, tt := range tests {
		t.Run(tt.expectedTag, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedCode, httpErr.StatusCode)
			assert.Equal(t, tt.expectedTag, httpErr.Code)
			assert.Equal(t, tt.err.Error(), httpErr.Message)
		})
	}
}

func TestMapErrorToHTTP_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("transition swap request: %w", ErrInvalidTransition)
	httpErr := MapErrorToHTTP(wrapped)
	assert.Equal(t, http.StatusConflict, httpErr.StatusCode)
	assert.Equal(t, "INVALID_TRANSITION", httpErr.Code)
}

func TestMapErrorToHTTP_UnknownError(t *testing.T) {
	httpErr := MapErrorToHTTP(assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "INTERNAL_ERROR", httpErr.Code)
	assert.Equal(t, "internal server error", httpErr.Message)
}
