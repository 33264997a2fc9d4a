package memstore

import (
	"context"
	"time"

	"github.com/yungbote/agencyhub-backend/internal/data/store"
	"github.com/yungbote/agencyhub-backend/internal/domain"
)

func clientKey(c *domain.Client) (time.Time, int64)     { return c.CreatedAt, c.ID }
func projectKey(p *domain.Project) (time.Time, int64)   { return p.CreatedAt, p.ID }
func paymentKey(p *domain.Payment) (time.Time, int64)   { return p.CreatedAt, p.ID }
func activityKey(a *domain.Activity) (time.Time, int64) { return a.CreatedAt, a.ID }

// collect copies every row that passes keep, so callers never alias stored values.
func collect[T any](rows map[int64]T, keep func(*T) bool) []*T {
	out := []*T{}
	for _, row := range rows {
		row := row
		if keep(&row) {
			out = append(out, &row)
		}
	}
	return out
}

func lookup[T any](rows map[int64]T, id int64) *T {
	row, ok := rows[id]
	if !ok {
		return nil
	}
	return &row
}

func remove[T any](rows map[int64]T, id int64) bool {
	if _, ok := rows[id]; !ok {
		return false
	}
	delete(rows, id)
	return true
}

type clientRepo struct{ tx *memTx }

func (r clientRepo) Create(ctx context.Context, row *domain.Client) error {
	return r.tx.write(ctx, func(st *state) {
		st.nextClientID++
		row.ID = st.nextClientID
		st.clients[row.ID] = *row
	})
}

func (r clientRepo) GetByID(ctx context.Context, id int64) (out *domain.Client, err error) {
	err = r.tx.read(ctx, func(st *state) { out = lookup(st.clients, id) })
	return out, err
}

func (r clientRepo) ListByOwner(ctx context.Context, ownerID string) (out []*domain.Client, err error) {
	err = r.tx.read(ctx, func(st *state) {
		out = collect(st.clients, func(c *domain.Client) bool { return c.OwnerID == ownerID })
	})
	newestFirst(out, clientKey)
	return out, err
}

func (r clientRepo) Save(ctx context.Context, row *domain.Client) error {
	return r.tx.write(ctx, func(st *state) { st.clients[row.ID] = *row })
}

func (r clientRepo) DeleteByID(ctx context.Context, id int64) (ok bool, err error) {
	err = r.tx.write(ctx, func(st *state) { ok = remove(st.clients, id) })
	return ok, err
}

func (r clientRepo) CountByStatus(ctx context.Context, ownerID string, status domain.ClientStatus) (n int64, err error) {
	err = r.tx.read(ctx, func(st *state) {
		for _, c := range st.clients {
			if c.OwnerID == ownerID && c.Status == status {
				n++
			}
		}
	})
	return n, err
}

type projectRepo struct{ tx *memTx }

func (r projectRepo) Create(ctx context.Context, row *domain.Project) error {
	return r.tx.write(ctx, func(st *state) {
		st.nextProjectID++
		row.ID = st.nextProjectID
		st.projects[row.ID] = *row
	})
}

func (r projectRepo) GetByID(ctx context.Context, id int64) (out *domain.Project, err error) {
	err = r.tx.read(ctx, func(st *state) { out = lookup(st.projects, id) })
	return out, err
}

func (r projectRepo) ListByOwner(ctx context.Context, ownerID string) (out []*domain.Project, err error) {
	err = r.tx.read(ctx, func(st *state) {
		out = collect(st.projects, func(p *domain.Project) bool { return p.OwnerID == ownerID })
	})
	newestFirst(out, projectKey)
	return out, err
}

func (r projectRepo) ListByClient(ctx context.Context, clientID int64) (out []*domain.Project, err error) {
	err = r.tx.read(ctx, func(st *state) {
		out = collect(st.projects, func(p *domain.Project) bool { return p.ClientID == clientID })
	})
	newestFirst(out, projectKey)
	return out, err
}

func (r projectRepo) Save(ctx context.Context, row *domain.Project) error {
	return r.tx.write(ctx, func(st *state) { st.projects[row.ID] = *row })
}

func (r projectRepo) DeleteByID(ctx context.Context, id int64) (ok bool, err error) {
	err = r.tx.write(ctx, func(st *state) { ok = remove(st.projects, id) })
	return ok, err
}

func (r projectRepo) CountByStatus(ctx context.Context, ownerID string, status domain.ProjectStatus) (n int64, err error) {
	err = r.tx.read(ctx, func(st *state) {
		for _, p := range st.projects {
			if p.OwnerID == ownerID && p.Status == status {
				n++
			}
		}
	})
	return n, err
}

type paymentRepo struct{ tx *memTx }

func (r paymentRepo) Create(ctx context.Context, row *domain.Payment) error {
	return r.tx.write(ctx, func(st *state) {
		st.nextPaymentID++
		row.ID = st.nextPaymentID
		st.payments[row.ID] = *row
	})
}

func (r paymentRepo) GetByID(ctx context.Context, id int64) (out *domain.Payment, err error) {
	err = r.tx.read(ctx, func(st *state) { out = lookup(st.payments, id) })
	return out, err
}

func (r paymentRepo) ListByOwner(ctx context.Context, ownerID string) (out []*domain.Payment, err error) {
	err = r.tx.read(ctx, func(st *state) {
		out = collect(st.payments, func(p *domain.Payment) bool { return p.OwnerID == ownerID })
	})
	newestFirst(out, paymentKey)
	return out, err
}

func (r paymentRepo) ListByClient(ctx context.Context, clientID int64) (out []*domain.Payment, err error) {
	err = r.tx.read(ctx, func(st *state) {
		out = collect(st.payments, func(p *domain.Payment) bool { return p.ClientID == clientID })
	})
	newestFirst(out, paymentKey)
	return out, err
}

func (r paymentRepo) ListByProject(ctx context.Context, projectID int64) (out []*domain.Payment, err error) {
	err = r.tx.read(ctx, func(st *state) {
		out = collect(st.payments, func(p *domain.Payment) bool {
			return p.ProjectID != nil && *p.ProjectID == projectID
		})
	})
	newestFirst(out, paymentKey)
	return out, err
}

func (r paymentRepo) Save(ctx context.Context, row *domain.Payment) error {
	return r.tx.write(ctx, func(st *state) { st.payments[row.ID] = *row })
}

func (r paymentRepo) DeleteByID(ctx context.Context, id int64) (ok bool, err error) {
	err = r.tx.write(ctx, func(st *state) { ok = remove(st.payments, id) })
	return ok, err
}

func (r paymentRepo) SumAmount(ctx context.Context, ownerID string, filter store.PaymentSum) (total float64, err error) {
	err = r.tx.read(ctx, func(st *state) {
		for _, p := range st.payments {
			p := p
			if p.OwnerID == ownerID && filter.Matches(&p) {
				total += p.Amount
			}
		}
	})
	return total, err
}

type activityRepo struct{ tx *memTx }

func (r activityRepo) Create(ctx context.Context, row *domain.Activity) error {
	return r.tx.write(ctx, func(st *state) {
		st.nextActivityID++
		row.ID = st.nextActivityID
		st.activities[row.ID] = *row
	})
}

func (r activityRepo) ListByOwner(ctx context.Context, ownerID string, limit int) (out []*domain.Activity, err error) {
	err = r.tx.read(ctx, func(st *state) {
		out = collect(st.activities, func(a *domain.Activity) bool { return a.OwnerID == ownerID })
	})
	newestFirst(out, activityKey)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, err
}
