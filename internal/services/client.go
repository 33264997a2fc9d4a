package services

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/yungbote/agencyhub-backend/internal/data/store"
	"github.com/yungbote/agencyhub-backend/internal/domain"
	"github.com/yungbote/agencyhub-backend/internal/observability"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
)

type ClientService interface {
	List(ctx context.Context, ownerID string) ([]*domain.Client, error)
	Get(ctx context.Context, id int64) (*domain.Client, error)
	Create(ctx context.Context, ownerID string, in domain.ClientInput) (*domain.Client, error)
	// Update returns (nil, nil) when the client does not exist.
	Update(ctx context.Context, id int64, patch domain.ClientPatch) (*domain.Client, error)
	// Delete removes the client, its projects and every payment linked to either.
	Delete(ctx context.Context, id int64) (bool, error)
}

type clientService struct {
	log     *logger.Logger
	st      store.Store
	rec     *ActivityRecorder
	cascade cascade
	clock   Clock
}

func NewClientService(st store.Store, rec *ActivityRecorder, clock Clock, baseLog *logger.Logger) ClientService {
	return &clientService{
		log:     baseLog.With("service", "ClientService"),
		st:      st,
		rec:     rec,
		cascade: cascade{rec: rec},
		clock:   clock,
	}
}

func (s *clientService) List(ctx context.Context, ownerID string) ([]*domain.Client, error) {
	out, err := s.st.View().Clients().ListByOwner(ctx, ownerID)
	return out, store.MapError("clients.list", err)
}

func (s *clientService) Get(ctx context.Context, id int64) (*domain.Client, error) {
	out, err := s.st.View().Clients().GetByID(ctx, id)
	return out, store.MapError("clients.get", err)
}

func (s *clientService) Create(ctx context.Context, ownerID string, in domain.ClientInput) (*domain.Client, error) {
	now := s.clock.now()
	row := domain.NewClient(in, ownerID, now)
	err := s.st.InTx(ctx, func(tx store.Tx) error {
		if err := tx.Clients().Create(ctx, row); err != nil {
			return err
		}
		return s.rec.ClientAdded(ctx, tx, row, now)
	})
	if err != nil {
		return nil, store.MapError("clients.create", err)
	}
	s.log.Debug("client created", "client_id", row.ID, "owner_id", ownerID)
	return row, nil
}

func (s *clientService) Update(ctx context.Context, id int64, patch domain.ClientPatch) (*domain.Client, error) {
	now := s.clock.now()
	var out *domain.Client
	err := s.st.InTx(ctx, func(tx store.Tx) error {
		row, err := tx.Clients().GetByID(ctx, id)
		if err != nil || row == nil {
			return err
		}
		fields := patch.Apply(row)
		if err := tx.Clients().Save(ctx, row); err != nil {
			return err
		}
		if err := s.rec.ClientUpdated(ctx, tx, row, fields, now); err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, store.MapError("clients.update", err)
	}
	return out, nil
}

func (s *clientService) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, span := observability.StartSpan(ctx, "clients.delete", attribute.Int64("client_id", id))
	defer span.End()

	now := s.clock.now()
	var deleted bool
	err := s.st.InTx(ctx, func(tx store.Tx) error {
		var err error
		deleted, err = s.cascade.deleteClient(ctx, tx, id, now)
		return err
	})
	if err != nil {
		return false, store.MapError("clients.delete", err)
	}
	if deleted {
		s.log.Debug("client deleted", "client_id", id)
	}
	return deleted, nil
}
