// Package app contains the quotebook use cases.
package app

import (
	"context"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotebook-service/internal/domain"
	"github.com/jsamuelsen/quotebook-service/internal/platform/logging"
	"github.com/jsamuelsen/quotebook-service/internal/ports"
)

const tracerName = "github.com/jsamuelsen/quotebook-service/internal/app"

// QuoteService implements the quotebook operations on top of a QuoteRepository.
// It validates and normalizes input before any store call and holds no state
// of its own between requests.
type QuoteService struct {
	repo   ports.QuoteRepository
	logger *slog.Logger
	tracer trace.Tracer
}

// QuoteServiceConfig contains the dependencies of the quote service.
type QuoteServiceConfig struct {
	Repository ports.QuoteRepository
	Logger     *slog.Logger
}

// NewQuoteService creates a quote service. It panics without a repository.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Repository == nil {
		panic("app: QuoteServiceConfig.Repository is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		repo:   cfg.Repository,
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

// ListCategories returns the distinct categories in sorted order.
func (s *QuoteService) ListCategories(ctx context.Context) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.ListCategories")
	defer span.End()

	categories, err := s.repo.DistinctCategories(ctx)
	if err != nil {
		return nil, s.fail(ctx, span, "failed to list categories", err)
	}

	if categories == nil {
		categories = []string{}
	}

	slices.Sort(categories)

	span.SetAttributes(attribute.Int("quotebook.categories", len(categories)))
	s.log(ctx).DebugContext(ctx, "listed categories", slog.Int("count", len(categories)))

	return categories, nil
}

// GetRandomQuote returns one random quote in category. found is false when
// the category has no quotes; that is not an error.
func (s *QuoteService) GetRandomQuote(ctx context.Context, category string) (domain.Quote, bool, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.GetRandomQuote")
	defer span.End()

	normalized := domain.NormalizeCategory(category)
	if normalized == "" {
		return domain.Quote{}, false, domain.NewValidationError(domain.FieldCategory, "must not be empty")
	}

	span.SetAttributes(attribute.String("quotebook.category", normalized))

	quote, found, err := s.repo.SampleByCategory(ctx, normalized)
	if err != nil {
		return domain.Quote{}, false, s.fail(ctx, span, "failed to sample quote", err)
	}

	s.log(ctx).DebugContext(ctx, "sampled quote",
		slog.String("category", normalized),
		slog.Bool("found", found),
	)

	return quote, found, nil
}

// AddQuote validates and stores a new quote.
func (s *QuoteService) AddQuote(ctx context.Context, category, text, author string) (domain.Quote, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.AddQuote")
	defer span.End()

	draft, err := domain.NewQuoteDraft(category, text, author)
	if err != nil {
		return domain.Quote{}, err
	}

	quote, err := s.repo.Insert(ctx, draft)
	if err != nil {
		return domain.Quote{}, s.fail(ctx, span, "failed to add quote", err)
	}

	span.SetAttributes(attribute.String("quotebook.quote_id", quote.ID))
	s.log(ctx).InfoContext(ctx, "quote added",
		slog.String("quote_id", quote.ID),
		slog.String("category", quote.Category),
	)

	return quote, nil
}

// UpdateQuote applies the supplied fields of patch to the quote with id.
func (s *QuoteService) UpdateQuote(ctx context.Context, id string, patch domain.QuotePatch) (domain.Quote, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.UpdateQuote",
		trace.WithAttributes(attribute.String("quotebook.quote_id", id)),
	)
	defer span.End()

	normalized, err := patch.Normalize()
	if err != nil {
		return domain.Quote{}, err
	}

	quote, err := s.repo.UpdateByID(ctx, id, normalized)
	if err != nil {
		return domain.Quote{}, s.fail(ctx, span, "failed to update quote", err)
	}

	s.log(ctx).InfoContext(ctx, "quote updated", slog.String("quote_id", quote.ID))

	return quote, nil
}

// DeleteQuote removes the quote with id and returns it.
func (s *QuoteService) DeleteQuote(ctx context.Context, id string) (domain.Quote, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.DeleteQuote",
		trace.WithAttributes(attribute.String("quotebook.quote_id", id)),
	)
	defer span.End()

	quote, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return domain.Quote{}, s.fail(ctx, span, "failed to delete quote", err)
	}

	s.log(ctx).InfoContext(ctx, "quote deleted", slog.String("quote_id", quote.ID))

	return quote, nil
}

// fail records err on the span and logs it. Not-found is an expected outcome
// and is logged at debug.
func (s *QuoteService) fail(ctx context.Context, span trace.Span, msg string, err error) error {
	if domain.IsNotFound(err) {
		s.log(ctx).DebugContext(ctx, msg, slog.Any("error", err))
		return err
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	s.log(ctx).ErrorContext(ctx, msg, slog.Any("error", err))

	return err
}

// log prefers the request-scoped logger so request and correlation ids are attached.
func (s *QuoteService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}
