package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/agencyhub-backend/internal/data/store"
	"github.com/yungbote/agencyhub-backend/internal/domain"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
)

type projectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

var _ store.ProjectRepo = (*projectRepo)(nil)

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) store.ProjectRepo {
	return &projectRepo{db: db, log: baseLog.With("repo", "ProjectRepo")}
}

func (r *projectRepo) Create(ctx context.Context, row *domain.Project) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *projectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	if id <= 0 {
		return nil, nil
	}
	var out []*domain.Project
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *projectRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	out := []*domain.Project{}
	if ownerID == "" {
		return out, nil
	}
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *projectRepo) ListByClient(ctx context.Context, clientID int64) ([]*domain.Project, error) {
	out := []*domain.Project{}
	if clientID <= 0 {
		return out, nil
	}
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC, id DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *projectRepo) Save(ctx context.Context, row *domain.Project) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *projectRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Project{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *projectRepo) CountByStatus(ctx context.Context, ownerID string, status domain.ProjectStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("owner_id = ? AND status = ?", ownerID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
