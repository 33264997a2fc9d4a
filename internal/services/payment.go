package services

import (
	"context"

	"github.com/yungbote/agencyhub-backend/internal/data/store"
	"github.com/yungbote/agencyhub-backend/internal/domain"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
)

type PaymentService interface {
	List(ctx context.Context, ownerID string) ([]*domain.Payment, error)
	ListByClient(ctx context.Context, clientID int64) ([]*domain.Payment, error)
	ListByProject(ctx context.Context, projectID int64) ([]*domain.Payment, error)
	Get(ctx context.Context, id int64) (*domain.Payment, error)
	Create(ctx context.Context, ownerID string, in domain.PaymentInput) (*domain.Payment, error)
	// Update stamps the paid date when the patch marks an undated payment as paid.
	Update(ctx context.Context, id int64, patch domain.PaymentPatch) (*domain.Payment, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type paymentService struct {
	log     *logger.Logger
	st      store.Store
	rec     *ActivityRecorder
	cascade cascade
	clock   Clock
}

func NewPaymentService(st store.Store, rec *ActivityRecorder, clock Clock, baseLog *logger.Logger) PaymentService {
	return &paymentService{
		log:     baseLog.With("service", "PaymentService"),
		st:      st,
		rec:     rec,
		cascade: cascade{rec: rec},
		clock:   clock,
	}
}

func (s *paymentService) List(ctx context.Context, ownerID string) ([]*domain.Payment, error) {
	out, err := s.st.View().Payments().ListByOwner(ctx, ownerID)
	return out, store.MapError("payments.list", err)
}

func (s *paymentService) ListByClient(ctx context.Context, clientID int64) ([]*domain.Payment, error) {
	out, err := s.st.View().Payments().ListByClient(ctx, clientID)
	return out, store.MapError("payments.list_by_client", err)
}

func (s *paymentService) ListByProject(ctx context.Context, projectID int64) ([]*domain.Payment, error) {
	out, err := s.st.View().Payments().ListByProject(ctx, projectID)
	return out, store.MapError("payments.list_by_project", err)
}

func (s *paymentService) Get(ctx context.Context, id int64) (*domain.Payment, error) {
	out, err := s.st.View().Payments().GetByID(ctx, id)
	return out, store.MapError("payments.get", err)
}

func (s *paymentService) Create(ctx context.Context, ownerID string, in domain.PaymentInput) (*domain.Payment, error) {
	now := s.clock.now()
	row := domain.NewPayment(in, ownerID, now)
	err := s.st.InTx(ctx, func(tx store.Tx) error {
		if err := tx.Payments().Create(ctx, row); err != nil {
			return err
		}
		return s.rec.PaymentCreated(ctx, tx, row, now)
	})
	if err != nil {
		return nil, store.MapError("payments.create", err)
	}
	s.log.Debug("payment created", "payment_id", row.ID, "client_id", row.ClientID, "status", row.Status)
	return row, nil
}

func (s *paymentService) Update(ctx context.Context, id int64, patch domain.PaymentPatch) (*domain.Payment, error) {
	now := s.clock.now()
	var out *domain.Payment
	err := s.st.InTx(ctx, func(tx store.Tx) error {
		row, err := tx.Payments().GetByID(ctx, id)
		if err != nil || row == nil {
			return err
		}
		fields, markedPaid := patch.Apply(row, now)
		if err := tx.Payments().Save(ctx, row); err != nil {
			return err
		}
		if err := s.rec.PaymentUpdated(ctx, tx, row, fields, markedPaid, now); err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, store.MapError("payments.update", err)
	}
	return out, nil
}

func (s *paymentService) Delete(ctx context.Context, id int64) (bool, error) {
	now := s.clock.now()
	var deleted bool
	err := s.st.InTx(ctx, func(tx store.Tx) error {
		var err error
		deleted, err = s.cascade.deletePayment(ctx, tx, id, now)
		return err
	})
	if err != nil {
		return false, store.MapError("payments.delete", err)
	}
	return deleted, nil
}
