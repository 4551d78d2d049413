package model

import "context"

// SessionRepository persists dialogue sessions between turns keyed by
// conversation ID.
type SessionRepository interface {
	// Load retrieves the session for a conversation, or (nil, nil) when no
	// session exists yet.
	Load(ctx context.Context, conversationID string) (*Session, error)

	// Save stores the session, replacing any previous value.
	Save(ctx context.Context, session *Session) error

	// Delete removes the session for a conversation.
	Delete(ctx context.Context, conversationID string) error
}
