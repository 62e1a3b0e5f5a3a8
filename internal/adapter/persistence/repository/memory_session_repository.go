package repository

import (
	"context"
	"sync"

	"geoquote/internal/domain/entities"
	"geoquote/internal/usecase/interfaces"
)

// MemorySessionRepository keeps quote sessions in process memory.
// Durable persistence belongs to backend collaborators; anything durable
// plugs in behind the same port.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]entities.QuoteSession
}

var _ interfaces.IQuoteSessionRepository = (*MemorySessionRepository)(nil)

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{sessions: make(map[string]entities.QuoteSession)}
}

func (r *MemorySessionRepository) Create(_ context.Context, session entities.QuoteSession) (entities.QuoteSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return session, nil
}

func (r *MemorySessionRepository) GetByID(_ context.Context, id string) (entities.QuoteSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id], nil
}

func (r *MemorySessionRepository) Save(_ context.Context, session entities.QuoteSession) (entities.QuoteSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return session, nil
}

func (r *MemorySessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
