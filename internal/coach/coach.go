// Package coach adapts the dashboard's chat screen to a hosted
// large-language-model. It owns prompt construction, conversation
// formatting, model/configuration selection per coaching mode, and
// streaming-response assembly. Everything behind the Provider
// interface is an external collaborator; failures stop at this
// boundary and never take the session down.
package coach

import (
	"context"
	"errors"

	"gauravfit/coach-app/internal/domain"
)

// Mode selects between the fast conversational model and the
// higher-capability reasoning model.
type Mode string

const (
	ModeStandard Mode = "standard"
	ModeExpert   Mode = "expert"
)

// ParseMode maps free-form input onto a Mode, defaulting to standard.
func ParseMode(s string) Mode {
	if s == string(ModeExpert) {
		return ModeExpert
	}
	return ModeStandard
}

// Error definitions for the adapter boundary.
var (
	ErrNoAPIKey   = errors.New("coach: API key is not configured")
	ErrEmptyReply = errors.New("coach: model returned no candidates")
	ErrRemoteCall = errors.New("coach: remote call failed")
)

// Provider is the hosted-model collaborator. History is ordered oldest
// first and excludes the prompt being sent. ChatStream delivers
// fragments in arrival order through onChunk and returns the fully
// assembled text.
type Provider interface {
	Chat(ctx context.Context, history []domain.ChatMessage, prompt string, mode Mode) (string, error)
	ChatStream(ctx context.Context, history []domain.ChatMessage, prompt string, mode Mode, onChunk func(string)) (string, error)
	DailyTip(ctx context.Context) (string, error)
}
