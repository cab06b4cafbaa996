// Package store is the domain state store: the single authoritative in-memory
// document plus the mutation operations that keep it consistent.
//
// Every mutation is a pure transform over a cloned document applied by a
// common commit step: clone, transform, swap, persist, notify. A transform
// error leaves the document untouched; a persist error keeps the in-memory
// effect and surfaces as ErrDurability so the caller can warn that durability
// is at risk. There is exactly one logical writer; the mutex only serializes
// handler goroutines.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/gurukul-app/backend/internal/metrics"
	"github.com/gurukul-app/backend/internal/models"
	"github.com/gurukul-app/backend/internal/storage"
)

const (
	// DefaultMonthlyFee is the fee assigned when a pending student is
	// approved, regardless of any prior value.
	DefaultMonthlyFee = 350

	// billDueDay is the fixed day-of-month printed on demand bill due dates.
	billDueDay = 10
)

var (
	// ErrValidation marks rejected input. The document is left unchanged.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateRoll reports a registration with an already-taken roll number.
	ErrDuplicateRoll = fmt.Errorf("%w: roll number already registered", ErrValidation)

	// ErrPasswordMismatch reports a registration whose confirmation differs
	// from the password.
	ErrPasswordMismatch = fmt.Errorf("%w: passwords do not match", ErrValidation)

	// ErrDurability reports that a mutation committed in memory but could not
	// be persisted. The in-memory document remains authoritative for the
	// session.
	ErrDurability = errors.New("document not persisted")
)

// Store owns the current document and applies mutations to it.
type Store struct {
	mu        sync.Mutex
	doc       models.Document
	persister storage.Persister
	onChange  func(models.Document)
	validate  *validator.Validate

	// seams for tests
	now   func() time.Time
	newID func() string
}

// Open hydrates a Store from the persister. An empty or corrupt slot seeds
// the default document; that is a recoverable condition, never fatal.
func Open(ctx context.Context, p storage.Persister) (*Store, error) {
	var doc models.Document
	loaded, err := p.Load(ctx)
	switch {
	case err == nil:
		doc = *loaded
	case errors.Is(err, storage.ErrNotFound):
		doc = models.DefaultDocument()
		slog.Info("no stored document, seeding defaults", "key", models.SchemaKey)
		if serr := p.Save(ctx, &doc); serr != nil {
			slog.Warn("seed document not persisted", "error", serr)
		}
	default:
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	return &Store{
		doc:       doc,
		persister: p,
		validate:  validator.New(),
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}, nil
}

// OnChange registers a callback invoked with the new document after every
// committed mutation. Used by the consumer layer for change notification;
// must be set before the store is shared.
func (s *Store) OnChange(fn func(models.Document)) {
	s.onChange = fn
}

// Snapshot returns a deep copy of the current document for read-only use.
// Projections operate on snapshots and can never mutate stored state.
func (s *Store) Snapshot() models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// apply runs one mutation as a unit: transform a clone, swap it in, persist,
// notify. No mutation ever partially applies.
func (s *Store) apply(ctx context.Context, op string, transform func(models.Document) (models.Document, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := transform(s.doc.Clone())
	if err != nil {
		metrics.MutationErrors.WithLabelValues(op).Inc()
		slog.Warn("mutation rejected", "op", op, "error", err)
		return err
	}

	s.doc = next
	metrics.Mutations.WithLabelValues(op).Inc()

	persistErr := s.persister.Save(ctx, &next)
	if persistErr != nil {
		metrics.PersistFailures.Inc()
		slog.Error("document save failed, in-memory state remains authoritative",
			"op", op,
			"error", persistErr,
		)
	}

	if s.onChange != nil {
		s.onChange(next.Clone())
	}

	if persistErr != nil {
		return fmt.Errorf("%w: %v", ErrDurability, persistErr)
	}
	slog.Debug("mutation committed", "op", op)
	return nil
}

// checkInput runs struct validation and folds validator errors into the
// store's error taxonomy.
func (s *Store) checkInput(in any) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if errors.As(err, &fields) {
		for _, fe := range fields {
			if fe.Tag() == "eqfield" {
				return ErrPasswordMismatch
			}
		}
		return fmt.Errorf("%w: %s", ErrValidation, fields.Error())
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
