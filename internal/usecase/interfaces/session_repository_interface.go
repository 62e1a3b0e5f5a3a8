package interfaces

import (
	"context"

	"geoquote/internal/domain/entities"
)

// IQuoteSessionRepository stores quote sessions. Persistence backends are
// external collaborators; the pipeline only depends on this port and
// ships an in-memory adapter.
//
// Lookup misses are reported with a zero-value session (ID == ""), not an
// error, matching how callers distinguish "absent" from "broken".
type IQuoteSessionRepository interface {
	Create(ctx context.Context, session entities.QuoteSession) (entities.QuoteSession, error)
	GetByID(ctx context.Context, id string) (entities.QuoteSession, error)
	Save(ctx context.Context, session entities.QuoteSession) (entities.QuoteSession, error)
	Delete(ctx context.Context, id string) error
}
