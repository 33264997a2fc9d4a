package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/agencyhub-backend/internal/data/repos"
	"github.com/yungbote/agencyhub-backend/internal/data/store"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
)

type gormStore struct {
	db  *gorm.DB
	log *logger.Logger
}

type gormTx struct {
	clients    store.ClientRepo
	projects   store.ProjectRepo
	payments   store.PaymentRepo
	activities store.ActivityRepo
}

// NewStore returns the relational store. The schema must already be migrated.
func NewStore(db *gorm.DB, baseLog *logger.Logger) store.Store {
	return &gormStore{db: db, log: baseLog.With("store", "gorm")}
}

func (s *gormStore) bind(db *gorm.DB) *gormTx {
	return &gormTx{
		clients:    repos.NewClientRepo(db, s.log),
		projects:   repos.NewProjectRepo(db, s.log),
		payments:   repos.NewPaymentRepo(db, s.log),
		activities: repos.NewActivityRepo(db, s.log),
	}
}

func (s *gormStore) InTx(ctx context.Context, fn func(tx store.Tx) error) error {
	if fn == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(s.bind(tx))
	})
}

func (s *gormStore) View() store.Tx { return s.bind(s.db) }

func (s *gormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *gormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (t *gormTx) Clients() store.ClientRepo      { return t.clients }
func (t *gormTx) Projects() store.ProjectRepo    { return t.projects }
func (t *gormTx) Payments() store.PaymentRepo    { return t.payments }
func (t *gormTx) Activities() store.ActivityRepo { return t.activities }
