// Package ports defines the contracts between the quotebook application layer
// and the infrastructure that backs it.
//
// Port rules:
//   - Context is always the first parameter
//   - Inputs and outputs are domain types, never driver types
//   - Failures are reported with domain errors (NotFound, Unavailable)
package ports

import (
	"context"

	"github.com/jsamuelsen/quotebook-service/internal/domain"
)

// QuoteRepository is the document-store collaborator behind the quotebook.
// Every mutating method is a single atomic operation in the backing store;
// callers never hold locks or open transactions around it.
//
// Implementations must store QuoteDraft.Category and QuotePatch.Category as
// given. Normalization happens in the domain before the repository is called.
type QuoteRepository interface {
	HealthChecker

	// Insert persists a new quote and returns it with its store-assigned ID.
	// Returns domain.ErrUnavailable if the store cannot be reached.
	Insert(ctx context.Context, draft domain.QuoteDraft) (domain.Quote, error)

	// DistinctCategories returns every category currently referenced by at
	// least one quote. An empty store yields an empty slice.
	DistinctCategories(ctx context.Context) ([]string, error)

	// SampleByCategory returns one quote chosen uniformly at random among those
	// with the given category. found is false when the category has no quotes.
	SampleByCategory(ctx context.Context, category string) (quote domain.Quote, found bool, err error)

	// UpdateByID applies patch to the quote with the given ID and returns the
	// quote as it is after the update.
	// Returns domain.ErrNotFound if no quote has that ID.
	UpdateByID(ctx context.Context, id string, patch domain.QuotePatch) (domain.Quote, error)

	// DeleteByID removes the quote with the given ID and returns it as it was.
	// Returns domain.ErrNotFound if no quote has that ID.
	DeleteByID(ctx context.Context, id string) (domain.Quote, error)

	// Close releases the connection handle. It is called once at shutdown.
	Close(ctx context.Context) error
}
