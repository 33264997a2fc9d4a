package services

import (
	"context"
	"time"

	"github.com/yungbote/agencyhub-backend/internal/data/store"
)

// cascade removes records together with their dependents. Every call runs inside the caller's
// transaction and records one activity per row it actually removed, children before parents.
type cascade struct {
	rec *ActivityRecorder
}

func (c cascade) deletePayment(ctx context.Context, tx store.Tx, id int64, now time.Time) (bool, error) {
	pay, err := tx.Payments().GetByID(ctx, id)
	if err != nil || pay == nil {
		return false, err
	}
	ok, err := tx.Payments().DeleteByID(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	return true, c.rec.PaymentDeleted(ctx, tx, pay, now)
}

func (c cascade) deleteProject(ctx context.Context, tx store.Tx, id int64, now time.Time) (bool, error) {
	project, err := tx.Projects().GetByID(ctx, id)
	if err != nil || project == nil {
		return false, err
	}
	payments, err := tx.Payments().ListByProject(ctx, id)
	if err != nil {
		return false, err
	}
	for _, pay := range payments {
		if _, err := c.deletePayment(ctx, tx, pay.ID, now); err != nil {
			return false, err
		}
	}
	ok, err := tx.Projects().DeleteByID(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	return true, c.rec.ProjectDeleted(ctx, tx, project, now)
}

func (c cascade) deleteClient(ctx context.Context, tx store.Tx, id int64, now time.Time) (bool, error) {
	client, err := tx.Clients().GetByID(ctx, id)
	if err != nil || client == nil {
		return false, err
	}
	projects, err := tx.Projects().ListByClient(ctx, id)
	if err != nil {
		return false, err
	}
	for _, p := range projects {
		if _, err := c.deleteProject(ctx, tx, p.ID, now); err != nil {
			return false, err
		}
	}
	// Listed after the project pass, so payments already removed with their project are gone.
	payments, err := tx.Payments().ListByClient(ctx, id)
	if err != nil {
		return false, err
	}
	for _, pay := range payments {
		if _, err := c.deletePayment(ctx, tx, pay.ID, now); err != nil {
			return false, err
		}
	}
	ok, err := tx.Clients().DeleteByID(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	return true, c.rec.ClientDeleted(ctx, tx, client, now)
}
