// Package memstore is the map-backed store: process-local, lost on exit, used for tests and
// single-user demos. A transaction works on a copy of the maps and swaps it in on success, so
// writers are serialized and a failed transaction leaves nothing behind.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yungbote/agencyhub-backend/internal/data/store"
	"github.com/yungbote/agencyhub-backend/internal/domain"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
)

type state struct {
	clients    map[int64]domain.Client
	projects   map[int64]domain.Project
	payments   map[int64]domain.Payment
	activities map[int64]domain.Activity

	nextClientID   int64
	nextProjectID  int64
	nextPaymentID  int64
	nextActivityID int64
}

func newState() *state {
	return &state{
		clients:    map[int64]domain.Client{},
		projects:   map[int64]domain.Project{},
		payments:   map[int64]domain.Payment{},
		activities: map[int64]domain.Activity{},
	}
}

func (s *state) clone() *state {
	out := &state{
		clients:        make(map[int64]domain.Client, len(s.clients)),
		projects:       make(map[int64]domain.Project, len(s.projects)),
		payments:       make(map[int64]domain.Payment, len(s.payments)),
		activities:     make(map[int64]domain.Activity, len(s.activities)),
		nextClientID:   s.nextClientID,
		nextProjectID:  s.nextProjectID,
		nextPaymentID:  s.nextPaymentID,
		nextActivityID: s.nextActivityID,
	}
	for k, v := range s.clients {
		out.clients[k] = v
	}
	for k, v := range s.projects {
		out.projects[k] = v
	}
	for k, v := range s.payments {
		out.payments[k] = v
	}
	for k, v := range s.activities {
		out.activities[k] = v
	}
	return out
}

type Store struct {
	mu  sync.RWMutex
	st  *state
	log *logger.Logger
}

var _ store.Store = (*Store)(nil)

func New(baseLog *logger.Logger) *Store {
	return &Store{st: newState(), log: baseLog.With("store", "memory")}
}

func (s *Store) InTx(ctx context.Context, fn func(tx store.Tx) error) error {
	if fn == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return store.MapError("memstore.tx", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(&memTx{st: work}); err != nil {
		return err
	}
	s.st = work
	return nil
}

func (s *Store) View() store.Tx { return &memTx{shared: s} }

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

func (s *Store) Close() error { return nil }

// memTx either owns a private working copy (inside InTx) or reads the shared state under lock.
type memTx struct {
	st     *state
	shared *Store
}

func (t *memTx) read(ctx context.Context, fn func(st *state)) error {
	if err := ctx.Err(); err != nil {
		return store.MapError("memstore.read", err)
	}
	if t.shared == nil {
		fn(t.st)
		return nil
	}
	t.shared.mu.RLock()
	defer t.shared.mu.RUnlock()
	fn(t.shared.st)
	return nil
}

func (t *memTx) write(ctx context.Context, fn func(st *state)) error {
	if err := ctx.Err(); err != nil {
		return store.MapError("memstore.write", err)
	}
	if t.shared == nil {
		fn(t.st)
		return nil
	}
	t.shared.mu.Lock()
	defer t.shared.mu.Unlock()
	fn(t.shared.st)
	return nil
}

func (t *memTx) Clients() store.ClientRepo      { return clientRepo{t} }
func (t *memTx) Projects() store.ProjectRepo    { return projectRepo{t} }
func (t *memTx) Payments() store.PaymentRepo    { return paymentRepo{t} }
func (t *memTx) Activities() store.ActivityRepo { return activityRepo{t} }

// newestFirst orders by creation time descending, breaking ties by id descending.
func newestFirst[T any](rows []*T, key func(*T) (time.Time, int64)) {
	sort.SliceStable(rows, func(i, j int) bool {
		ti, ii := key(rows[i])
		tj, ij := key(rows[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return ii > ij
	})
}
