package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/agencyhub-backend/internal/data/store"
	"github.com/yungbote/agencyhub-backend/internal/domain"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
)

type clientRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

var _ store.ClientRepo = (*clientRepo)(nil)

func NewClientRepo(db *gorm.DB, baseLog *logger.Logger) store.ClientRepo {
	return &clientRepo{db: db, log: baseLog.With("repo", "ClientRepo")}
}

func (r *clientRepo) Create(ctx context.Context, row *domain.Client) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *clientRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	if id <= 0 {
		return nil, nil
	}
	var out []*domain.Client
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

func (r *clientRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Client, error) {
	out := []*domain.Client{}
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

func (r *clientRepo) Save(ctx context.Context, row *domain.Client) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *clientRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Client{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *clientRepo) CountByStatus(ctx context.Context, ownerID string, status domain.ClientStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Client{}).
		Where("owner_id = ? AND status = ?", ownerID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
