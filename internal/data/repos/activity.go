package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/agencyhub-backend/internal/data/store"
	"github.com/yungbote/agencyhub-backend/internal/domain"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
)

type activityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

var _ store.ActivityRepo = (*activityRepo)(nil)

func NewActivityRepo(db *gorm.DB, baseLog *logger.Logger) store.ActivityRepo {
	return &activityRepo{db: db, log: baseLog.With("repo", "ActivityRepo")}
}

func (r *activityRepo) Create(ctx context.Context, row *domain.Activity) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *activityRepo) ListByOwner(ctx context.Context, ownerID string, limit int) ([]*domain.Activity, error) {
	out := []*domain.Activity{}
	if ownerID == "" {
		return out, nil
	}
	q := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
