package repo

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/autoparts-agent/server/internal/agent/model"
)

// MemorySessionRepository keeps sessions in-process. Sessions are stored as
// JSON copies so callers never share mutable state through the repository.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{sessions: make(map[string][]byte)}
}

func (m *MemorySessionRepository) Load(_ context.Context, conversationID string) (*model.Session, error) {
	m.mu.RLock()
	raw, ok := m.sessions[conversationID]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var s model.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (m *MemorySessionRepository) Save(_ context.Context, session *model.Session) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.sessions[session.ConversationID] = b
	m.mu.Unlock()
	return nil
}

func (m *MemorySessionRepository) Delete(_ context.Context, conversationID string) error {
	m.mu.Lock()
	delete(m.sessions, conversationID)
	m.mu.Unlock()
	return nil
}

var _ model.SessionRepository = (*MemorySessionRepository)(nil)
