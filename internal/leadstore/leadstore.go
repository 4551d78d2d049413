// Package leadstore persists captured customer leads.
package leadstore

import (
	"context"
	"sync"
	"time"
)

// Lead is one captured contact record.
type Lead struct {
	ID               string    `json:"id"`
	Timestamp        time.Time `json:"timestamp"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	VehicleMake      string    `json:"vehicle_make"`
	PartCategory     string    `json:"part_category"`
	Message          string    `json:"message"`
	ServiceRequested bool      `json:"service_requested"`
}

// Store is the lead persistence collaborator.
type Store interface {
	// Append stores a new lead.
	Append(ctx context.Context, lead Lead) error
}

// Memory is an in-process Store used by tests and the demo.
type Memory struct {
	mu    sync.Mutex
	leads []Lead
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Append stores the lead.
func (m *Memory) Append(_ context.Context, lead Lead) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leads = append(m.leads, lead)
	return nil
}

// Leads returns a copy of everything stored so far.
func (m *Memory) Leads() []Lead {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Lead, len(m.leads))
	copy(out, m.leads)
	return out
}

var _ Store = (*Memory)(nil)
