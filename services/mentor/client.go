package mentor

import (
	"context"
	"errors"

	"founderforge/models"
)

// Response token cap shared by both providers.
const maxResponseTokens = 1024

// ErrModelCall wraps every external model failure. Exchanges that hit it are
// retryable: nothing has been committed.
var ErrModelCall = errors.New("model call failed")

// ErrInvalidReference marks an unknown stage or task id, rejected before any
// external call.
var ErrInvalidReference = errors.New("invalid stage or task reference")

// Client is the external language-model boundary. Complete sends a system
// prompt plus conversation history and returns the raw assistant text.
type Client interface {
	Complete(ctx context.Context, system string, messages []models.Message) (string, error)
}
