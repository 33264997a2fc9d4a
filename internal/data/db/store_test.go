package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yungbote/agencyhub-backend/internal/data/memstore"
	"github.com/yungbote/agencyhub-backend/internal/data/repos/testutil"
	"github.com/yungbote/agencyhub-backend/internal/data/store"
	"github.com/yungbote/agencyhub-backend/internal/domain"
)

// stores yields every Store implementation the services can run on.
func stores(t *testing.T) map[string]func(t *testing.T) store.Store {
	return map[string]func(t *testing.T) store.Store{
		"memory": func(t *testing.T) store.Store {
			return memstore.New(testutil.Logger(t))
		},
		"sqlite": func(t *testing.T) store.Store {
			return NewStore(testutil.SQLite(t), testutil.Logger(t))
		},
	}
}

func TestStoreRollsBackFailedTx(t *testing.T) {
	for name, open := range stores(t) {
		t.Run(name, func(t *testing.T) {
			st := open(t)
			ctx := context.Background()
			boom := errors.New("boom")

			err := st.InTx(ctx, func(tx store.Tx) error {
				c := domain.NewClient(domain.ClientInput{Name: "Acme", Email: "a@acme.io", Company: "Acme"}, "owner-1", time.Now())
				if err := tx.Clients().Create(ctx, c); err != nil {
					return err
				}
				return boom
			})
			if !errors.Is(err, boom) {
				t.Fatalf("InTx: expected boom, got %v", err)
			}

			list, err := st.View().Clients().ListByOwner(ctx, "owner-1")
			if err != nil {
				t.Fatalf("ListByOwner: %v", err)
			}
			if len(list) != 0 {
				t.Fatalf("expected rollback, found %d clients", len(list))
			}
		})
	}
}

func TestStoreCommitsAndReads(t *testing.T) {
	for name, open := range stores(t) {
		t.Run(name, func(t *testing.T) {
			st := open(t)
			ctx := context.Background()
			now := time.Now()

			var client *domain.Client
			var pay *domain.Payment
			err := st.InTx(ctx, func(tx store.Tx) error {
				client = domain.NewClient(domain.ClientInput{Name: "Acme", Email: "a@acme.io", Company: "Acme"}, "owner-1", now)
				if err := tx.Clients().Create(ctx, client); err != nil {
					return err
				}
				amount := 120.0
				pay = domain.NewPayment(domain.PaymentInput{ClientID: client.ID, Amount: &amount, Status: domain.PaymentStatusPaid}, "owner-1", now)
				if err := tx.Payments().Create(ctx, pay); err != nil {
					return err
				}
				// Reads inside the tx see its own writes.
				got, err := tx.Payments().ListByClient(ctx, client.ID)
				if err != nil {
					return err
				}
				if len(got) != 1 {
					t.Errorf("in-tx ListByClient: expected 1, got %d", len(got))
				}
				return nil
			})
			if err != nil {
				t.Fatalf("InTx: %v", err)
			}
			if client.ID <= 0 || pay.ID <= 0 {
				t.Fatalf("ids not assigned: client=%d payment=%d", client.ID, pay.ID)
			}

			start := domain.MonthStart(now.UTC())
			end := start.AddDate(0, 1, 0)
			total, err := st.View().Payments().SumAmount(ctx, "owner-1", store.PaymentSum{
				Status:     domain.PaymentStatusPaid,
				PaidFrom:   &start,
				PaidBefore: &end,
			})
			if err != nil {
				t.Fatalf("SumAmount: %v", err)
			}
			if total != 120 {
				t.Fatalf("SumAmount: expected 120, got %v", total)
			}

			got, err := st.View().Payments().GetByID(ctx, pay.ID)
			if err != nil || got == nil {
				t.Fatalf("GetByID: got=%v err=%v", got, err)
			}
			if got.PaidDate == nil {
				t.Fatalf("paid payment lost its paid date")
			}
		})
	}
}

func TestStoreHonorsCancelledContext(t *testing.T) {
	st := memstore.New(testutil.Logger(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := st.View().Clients().ListByOwner(ctx, "owner-1")
	if !store.IsCode(err, store.CodeRetryable) || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected retryable context error, got %v", err)
	}
}
