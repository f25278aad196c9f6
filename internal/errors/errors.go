package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrSkillNotFound is returned when a skill id is absent from the catalog.
	ErrSkillNotFound = errors.New("skill not found")
	// ErrSwapNotFound is returned when a swap request is not found.
	ErrSwapNotFound = errors.New("swap request not found")
	// ErrConversationNotFound is returned when a conversation is not found.
	ErrConversationNotFound = errors.New("conversation not found")
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrRatingNotFound is returned when a rating is not found.
	ErrRatingNotFound = errors.New("rating not found")

	// ErrInvalidParticipants is returned when a user requests a swap with themselves.
	ErrInvalidParticipants = errors.New("requester and responder must be different users")
	// ErrSkillNotOffered is returned when the offered skill is not in the
	// requester's offered set or the wanted skill is not in the responder's.
	ErrSkillNotOffered = errors.New("skill is not offered by the expected participant")
	// ErrForbidden is returned when the acting user lacks permission for the operation.
	ErrForbidden = errors.New("operation not permitted for this user")
	// ErrInvalidTransition is returned when a swap is no longer pending,
	// including when a concurrent transition won the race.
	ErrInvalidTransition = errors.New("swap request is not pending")
	// ErrDuplicateSwap is returned when an identical pending request already exists.
	ErrDuplicateSwap = errors.New("pending swap request already exists")

	// ErrInvalidScore is returned when a rating score is outside 1-5.
	ErrInvalidScore = errors.New("score must be between 1 and 5")
	// ErrSwapNotAccepted is returned when rating a swap that was never accepted.
	ErrSwapNotAccepted = errors.New("only accepted swaps can be rated")
	// ErrAlreadyRated is returned when a participant rates the same swap twice.
	ErrAlreadyRated = errors.New("swap already rated by this user")

	// ErrEmptyMessage is returned when a message has neither text nor image.
	ErrEmptyMessage = errors.New("message must contain text or an image")
	// ErrSkillInUse is returned when deleting a skill that is still referenced.
	ErrSkillInUse = errors.New("skill is referenced by users or swap requests")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Every precondition
// failure surfaces a distinct code so the client can show an accurate
// message; anything unrecognized is an opaque infrastructure error.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrSkillNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SKILL_NOT_FOUND")
	case errors.Is(err, ErrSwapNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SWAP_NOT_FOUND")
	case errors.Is(err, ErrConversationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CONVERSATION_NOT_FOUND")
	case errors.Is(err, ErrNotificationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOTIFICATION_NOT_FOUND")
	case errors.Is(err, ErrRatingNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "RATING_NOT_FOUND")
	case errors.Is(err, ErrInvalidParticipants):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PARTICIPANTS")
	case errors.Is(err, ErrSkillNotOffered):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SKILL_NOT_OFFERED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrInvalidTransition):
		return NewHTTPError(http.StatusConflict, err.Error(), "INVALID_TRANSITION")
	case errors.Is(err, ErrDuplicateSwap):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_SWAP")
	case errors.Is(err, ErrInvalidScore):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_SCORE")
	case errors.Is(err, ErrSwapNotAccepted):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SWAP_NOT_ACCEPTED")
	case errors.Is(err, ErrAlreadyRated):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_RATED")
	case errors.Is(err, ErrEmptyMessage):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_MESSAGE")
	case errors.Is(err, ErrSkillInUse):
		return NewHTTPError(http.StatusConflict, err.Error(), "SKILL_IN_USE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
