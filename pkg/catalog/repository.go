package catalog

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Options configures a Repository. Every field is optional.
type Options struct {
	// Logger receives duplicate-record warnings and lookup debug lines.
	Logger *slog.Logger

	// Tracer creates one span per lookup.
	Tracer trace.Tracer

	// Observer receives lookup outcomes and latencies.
	Observer LookupObserver
}

// Repository translates identifiers into catalog lookups and classifies the
// outcome. It is safe for concurrent use and holds no per-request state.
type Repository struct {
	store    Store
	logger   *slog.Logger
	tracer   trace.Tracer
	observer LookupObserver
}

// NewRepository creates a repository reading from store.
func NewRepository(store Store, opts Options) *Repository {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tracer := opts.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("catalog")
	}

	return &Repository{
		store:    store,
		logger:   logger.With("component", "catalog.repository", "backend", store.Name()),
		tracer:   tracer,
		observer: opts.Observer,
	}
}

// Lookup returns the record with the given id.
//
// It returns ErrNotFound when nothing matches and an error matching
// ErrStoreUnavailable when the store fails. When the store holds more than
// one record for id, the first is returned and a warning is logged.
func (r *Repository) Lookup(ctx context.Context, id int64) (*Record, error) {
	ctx, span := r.tracer.Start(ctx, "catalog.lookup", trace.WithAttributes(
		attribute.Int64("planet.id", id),
		attribute.String("store.backend", r.store.Name()),
	))
	defer span.End()

	start := time.Now()

	records, err := r.store.FindByID(ctx, id)
	if err != nil {
		var storeErr *StoreError
		if !errors.As(err, &storeErr) {
			err = NewStoreError(r.store.Name(), "find", err)
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, "store unavailable")
		r.observe(OutcomeError, start)
		return nil, err
	}

	switch len(records) {
	case 0:
		span.SetAttributes(attribute.String("lookup.outcome", OutcomeNotFound))
		r.observe(OutcomeNotFound, start)
		r.logger.DebugContext(ctx, "planet not found", "id", id)
		return nil, ErrNotFound

	case 1:
		span.SetAttributes(attribute.String("lookup.outcome", OutcomeHit))
		r.observe(OutcomeHit, start)

	default:
		span.SetAttributes(attribute.String("lookup.outcome", OutcomeDuplicate))
		r.observe(OutcomeDuplicate, start)
		r.logger.WarnContext(ctx, "catalog holds duplicate records for id, using the first",
			"id", id,
			"matches", len(records),
		)
	}

	record := records[0]
	return &record, nil
}

// Ping checks the underlying store connection.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.store.Ping(ctx); err != nil {
		var storeErr *StoreError
		if errors.As(err, &storeErr) {
			return err
		}
		return NewStoreError(r.store.Name(), "ping", err)
	}
	return nil
}

func (r *Repository) observe(outcome string, start time.Time) {
	if r.observer != nil {
		r.observer.ObserveLookup(outcome, time.Since(start))
	}
}
