package storage

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quotebook-service/internal/domain"
	"github.com/jsamuelsen/quotebook-service/internal/ports"
)

// Outcome label values for store operation metrics.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

const (
	metricsNamespace = "quotebook"
	metricsSubsystem = "store"

	labelStore     = "store"
	labelOperation = "operation"
	labelOutcome   = "outcome"
)

// Collectors holds the store operation metrics. Create it once per registry.
type Collectors struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewCollectors creates and registers the store metrics on reg. If the
// collectors are already registered, the existing ones are reused.
func NewCollectors(reg prometheus.Registerer) (*Collectors, error) {
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "operations_total",
		Help:      "Quote store operations by outcome.",
	}, []string{labelStore, labelOperation, labelOutcome})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "operation_duration_seconds",
		Help:      "Quote store round-trip latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{labelStore, labelOperation})

	var err error

	if operations, err = register(reg, operations); err != nil {
		return nil, err
	}

	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}

	return &Collectors{operations: operations, duration: duration}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}

		return c, err
	}

	return c, nil
}

// Instrumented decorates a QuoteRepository with operation counters and latency
// histograms. It changes no behavior of the wrapped repository.
type Instrumented struct {
	next    ports.QuoteRepository
	metrics *Collectors
}

var _ ports.QuoteRepository = (*Instrumented)(nil)

// NewInstrumented wraps next.
func NewInstrumented(next ports.QuoteRepository, metrics *Collectors) *Instrumented {
	return &Instrumented{next: next, metrics: metrics}
}

func (r *Instrumented) observe(op string, start time.Time, err error) {
	store := r.next.Name()

	r.metrics.duration.WithLabelValues(store, op).Observe(time.Since(start).Seconds())
	r.metrics.operations.WithLabelValues(store, op, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case domain.IsNotFound(err):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}

// Name returns the wrapped repository's name.
func (r *Instrumented) Name() string { return r.next.Name() }

// Check runs the wrapped health check.
func (r *Instrumented) Check(ctx context.Context) error {
	start := time.Now()
	err := r.next.Check(ctx)
	r.observe("check", start, err)

	return err
}

// Insert implements ports.QuoteRepository.
func (r *Instrumented) Insert(ctx context.Context, draft domain.QuoteDraft) (domain.Quote, error) {
	start := time.Now()
	q, err := r.next.Insert(ctx, draft)
	r.observe("insert", start, err)

	return q, err
}

// DistinctCategories implements ports.QuoteRepository.
func (r *Instrumented) DistinctCategories(ctx context.Context) ([]string, error) {
	start := time.Now()
	categories, err := r.next.DistinctCategories(ctx)
	r.observe("distinct_categories", start, err)

	return categories, err
}

// SampleByCategory implements ports.QuoteRepository.
func (r *Instrumented) SampleByCategory(ctx context.Context, category string) (domain.Quote, bool, error) {
	start := time.Now()
	q, found, err := r.next.SampleByCategory(ctx, category)
	r.observe("sample_by_category", start, err)

	return q, found, err
}

// UpdateByID implements ports.QuoteRepository.
func (r *Instrumented) UpdateByID(ctx context.Context, id string, patch domain.QuotePatch) (domain.Quote, error) {
	start := time.Now()
	q, err := r.next.UpdateByID(ctx, id, patch)
	r.observe("update_by_id", start, err)

	return q, err
}

// DeleteByID implements ports.QuoteRepository.
func (r *Instrumented) DeleteByID(ctx context.Context, id string) (domain.Quote, error) {
	start := time.Now()
	q, err := r.next.DeleteByID(ctx, id)
	r.observe("delete_by_id", start, err)

	return q, err
}

// Close closes the wrapped repository.
func (r *Instrumented) Close(ctx context.Context) error {
	return r.next.Close(ctx)
}
