package services

import (
	"context"

	"github.com/yungbote/agencyhub-backend/internal/data/store"
	"github.com/yungbote/agencyhub-backend/internal/domain"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
)

type ProjectService interface {
	List(ctx context.Context, ownerID string) ([]*domain.Project, error)
	ListByClient(ctx context.Context, clientID int64) ([]*domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	Create(ctx context.Context, ownerID string, in domain.ProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id int64, patch domain.ProjectPatch) (*domain.Project, error)
	// Delete removes the project and the payments that reference it.
	Delete(ctx context.Context, id int64) (bool, error)
}

type projectService struct {
	log     *logger.Logger
	st      store.Store
	rec     *ActivityRecorder
	cascade cascade
	clock   Clock
}

func NewProjectService(st store.Store, rec *ActivityRecorder, clock Clock, baseLog *logger.Logger) ProjectService {
	return &projectService{
		log:     baseLog.With("service", "ProjectService"),
		st:      st,
		rec:     rec,
		cascade: cascade{rec: rec},
		clock:   clock,
	}
}

func (s *projectService) List(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	out, err := s.st.View().Projects().ListByOwner(ctx, ownerID)
	return out, store.MapError("projects.list", err)
}

func (s *projectService) ListByClient(ctx context.Context, clientID int64) ([]*domain.Project, error) {
	out, err := s.st.View().Projects().ListByClient(ctx, clientID)
	return out, store.MapError("projects.list_by_client", err)
}

func (s *projectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	out, err := s.st.View().Projects().GetByID(ctx, id)
	return out, store.MapError("projects.get", err)
}

func (s *projectService) Create(ctx context.Context, ownerID string, in domain.ProjectInput) (*domain.Project, error) {
	now := s.clock.now()
	row := domain.NewProject(in, ownerID, now)
	err := s.st.InTx(ctx, func(tx store.Tx) error {
		if err := tx.Projects().Create(ctx, row); err != nil {
			return err
		}
		return s.rec.ProjectCreated(ctx, tx, row, now)
	})
	if err != nil {
		return nil, store.MapError("projects.create", err)
	}
	s.log.Debug("project created", "project_id", row.ID, "client_id", row.ClientID)
	return row, nil
}

func (s *projectService) Update(ctx context.Context, id int64, patch domain.ProjectPatch) (*domain.Project, error) {
	now := s.clock.now()
	var out *domain.Project
	err := s.st.InTx(ctx, func(tx store.Tx) error {
		row, err := tx.Projects().GetByID(ctx, id)
		if err != nil || row == nil {
			return err
		}
		fields := patch.Apply(row)
		if err := tx.Projects().Save(ctx, row); err != nil {
			return err
		}
		if err := s.rec.ProjectUpdated(ctx, tx, row, fields, now); err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, store.MapError("projects.update", err)
	}
	return out, nil
}

func (s *projectService) Delete(ctx context.Context, id int64) (bool, error) {
	now := s.clock.now()
	var deleted bool
	err := s.st.InTx(ctx, func(tx store.Tx) error {
		var err error
		deleted, err = s.cascade.deleteProject(ctx, tx, id, now)
		return err
	})
	if err != nil {
		return false, store.MapError("projects.delete", err)
	}
	return deleted, nil
}
