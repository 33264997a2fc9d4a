package services

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/agencyhub-backend/internal/data/store"
	"github.com/yungbote/agencyhub-backend/internal/domain"
	"github.com/yungbote/agencyhub-backend/internal/observability"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
)

type DashboardService interface {
	Stats(ctx context.Context, ownerID string) (*domain.DashboardStats, error)
}

type dashboardService struct {
	log   *logger.Logger
	st    store.Store
	loc   *time.Location
	clock Clock
}

// NewDashboardService computes stats from scratch on every call. loc decides where the current
// month starts; nil means time.Local.
func NewDashboardService(st store.Store, loc *time.Location, clock Clock, baseLog *logger.Logger) DashboardService {
	if loc == nil {
		loc = time.Local
	}
	return &dashboardService{
		log:   baseLog.With("service", "DashboardService"),
		st:    st,
		loc:   loc,
		clock: clock,
	}
}

func (s *dashboardService) Stats(ctx context.Context, ownerID string) (*domain.DashboardStats, error) {
	ctx, span := observability.StartSpan(ctx, "dashboard.stats")
	defer span.End()

	start := domain.MonthStart(s.clock.now().In(s.loc)).UTC()

	view := s.st.View()
	out := &domain.DashboardStats{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := view.Clients().CountByStatus(gctx, ownerID, domain.ClientStatusActive)
		out.ActiveClients = n
		return err
	})
	g.Go(func() error {
		n, err := view.Projects().CountByStatus(gctx, ownerID, domain.ProjectStatusInProgress)
		out.ActiveProjects = n
		return err
	})
	g.Go(func() error {
		// Revenue counts every paid date from the start of the month on, future-dated ones included.
		sum, err := view.Payments().SumAmount(gctx, ownerID, store.PaymentSum{
			Status:   domain.PaymentStatusPaid,
			PaidFrom: &start,
		})
		out.MonthlyRevenue = sum
		return err
	})
	g.Go(func() error {
		sum, err := view.Payments().SumAmount(gctx, ownerID, store.PaymentSum{Status: domain.PaymentStatusPending})
		out.PendingInvoices = sum
		return err
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "aggregate failed")
		s.log.Warn("dashboard aggregate failed", "owner_id", ownerID, "error", err)
		return nil, store.MapError("dashboard.stats", err)
	}
	return out, nil
}
