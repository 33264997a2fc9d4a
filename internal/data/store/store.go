// Package store defines the persistence contract the services run against.
//
// A Store hands out Tx values. Everything done through one Tx inside InTx commits or rolls back
// together; View gives a read handle outside any transaction. Two implementations exist: the GORM
// store in internal/data/db (Postgres or SQLite) and the map-backed one in internal/data/memstore.
//
// Lookups return (nil, nil) when a row does not exist. Deletes report whether a row was removed.
package store

import (
	"context"
	"time"

	"github.com/yungbote/agencyhub-backend/internal/domain"
)

type Store interface {
	InTx(ctx context.Context, fn func(tx Tx) error) error
	View() Tx
	Close() error
}

type Tx interface {
	Clients() ClientRepo
	Projects() ProjectRepo
	Payments() PaymentRepo
	Activities() ActivityRepo
}

type ClientRepo interface {
	Create(ctx context.Context, row *domain.Client) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Client, error)
	Save(ctx context.Context, row *domain.Client) error
	DeleteByID(ctx context.Context, id int64) (bool, error)
	CountByStatus(ctx context.Context, ownerID string, status domain.ClientStatus) (int64, error)
}

type ProjectRepo interface {
	Create(ctx context.Context, row *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error)
	ListByClient(ctx context.Context, clientID int64) ([]*domain.Project, error)
	Save(ctx context.Context, row *domain.Project) error
	DeleteByID(ctx context.Context, id int64) (bool, error)
	CountByStatus(ctx context.Context, ownerID string, status domain.ProjectStatus) (int64, error)
}

type PaymentRepo interface {
	Create(ctx context.Context, row *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Payment, error)
	ListByClient(ctx context.Context, clientID int64) ([]*domain.Payment, error)
	ListByProject(ctx context.Context, projectID int64) ([]*domain.Payment, error)
	Save(ctx context.Context, row *domain.Payment) error
	DeleteByID(ctx context.Context, id int64) (bool, error)
	SumAmount(ctx context.Context, ownerID string, filter PaymentSum) (float64, error)
}

type ActivityRepo interface {
	Create(ctx context.Context, row *domain.Activity) error
	// ListByOwner returns newest first; limit <= 0 means no limit.
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]*domain.Activity, error)
}

// PaymentSum selects payments to total. Nil bounds are open; PaidFrom is inclusive and PaidBefore
// exclusive, and either bound excludes payments with no paid date.
type PaymentSum struct {
	Status     domain.PaymentStatus
	PaidFrom   *time.Time
	PaidBefore *time.Time
}

// Matches applies the filter to one payment in memory.
func (f PaymentSum) Matches(p *domain.Payment) bool {
	if p == nil || (f.Status != "" && p.Status != f.Status) {
		return false
	}
	if f.PaidFrom == nil && f.PaidBefore == nil {
		return true
	}
	if p.PaidDate == nil {
		return false
	}
	if f.PaidFrom != nil && p.PaidDate.Before(*f.PaidFrom) {
		return false
	}
	if f.PaidBefore != nil && !p.PaidDate.Before(*f.PaidBefore) {
		return false
	}
	return true
}
