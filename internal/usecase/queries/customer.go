package queries

import (
	"context"
	"log/slog"

	"groombook/internal/domain/customer"
	"groombook/internal/pkg/errs"

	"github.com/google/uuid"
)

type RosterReadStore interface {
	FindRoster(ctx context.Context, tenantID uuid.UUID) ([]customer.Customer, error)
}

// RosterCache holds a tenant's roster between keystrokes. Implementations may
// be unavailable; lookups then fall back to the store.
type RosterCache interface {
	Get(ctx context.Context, tenantID uuid.UUID) ([]customer.Customer, bool, error)
	Set(ctx context.Context, tenantID uuid.UUID, roster []customer.Customer) error
}

type CacheRecorder interface {
	RosterCacheLookup(hit bool)
}

type CustomerQueries interface {
	Search(ctx context.Context, tenantID uuid.UUID, query string) ([]customer.MatchCandidate, error)
}

type customerQueriesImpl struct {
	store    RosterReadStore
	cache    RosterCache
	recorder CacheRecorder
}

func NewCustomerQueries(store RosterReadStore, cache RosterCache, recorder CacheRecorder) CustomerQueries {
	return &customerQueriesImpl{store: store, cache: cache, recorder: recorder}
}

func (q *customerQueriesImpl) Search(ctx context.Context, tenantID uuid.UUID, query string) ([]customer.MatchCandidate, error) {
	roster, err := q.roster(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return customer.Search(query, roster), nil
}

func (q *customerQueriesImpl) roster(ctx context.Context, tenantID uuid.UUID) ([]customer.Customer, error) {
	if q.cache != nil {
		roster, hit, err := q.cache.Get(ctx, tenantID)
		if err != nil {
			slog.Warn("roster cache read failed", "tenant_id", tenantID.String(), "error", err.Error())
		}
		if q.recorder != nil {
			q.recorder.RosterCacheLookup(hit)
		}
		if hit {
			return roster, nil
		}
	}

	roster, err := q.store.FindRoster(ctx, tenantID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if q.cache != nil {
		if err := q.cache.Set(ctx, tenantID, roster); err != nil {
			slog.Warn("roster cache write failed", "tenant_id", tenantID.String(), "error", err.Error())
		}
	}
	return roster, nil
}
