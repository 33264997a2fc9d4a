package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/agencyhub-backend/internal/data/store"
	"github.com/yungbote/agencyhub-backend/internal/domain"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
)

type paymentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

var _ store.PaymentRepo = (*paymentRepo)(nil)

func NewPaymentRepo(db *gorm.DB, baseLog *logger.Logger) store.PaymentRepo {
	return &paymentRepo{db: db, log: baseLog.With("repo", "PaymentRepo")}
}

func (r *paymentRepo) Create(ctx context.Context, row *domain.Payment) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *paymentRepo) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	if id <= 0 {
		return nil, nil
	}
	var out []*domain.Payment
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

func (r *paymentRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Payment, error) {
	out := []*domain.Payment{}
	if ownerID == "" {
		return out, nil
	}
	return r.list(ctx, out, "owner_id = ?", ownerID)
}

func (r *paymentRepo) ListByClient(ctx context.Context, clientID int64) ([]*domain.Payment, error) {
	out := []*domain.Payment{}
	if clientID <= 0 {
		return out, nil
	}
	return r.list(ctx, out, "client_id = ?", clientID)
}

func (r *paymentRepo) ListByProject(ctx context.Context, projectID int64) ([]*domain.Payment, error) {
	out := []*domain.Payment{}
	if projectID <= 0 {
		return out, nil
	}
	return r.list(ctx, out, "project_id = ?", projectID)
}

func (r *paymentRepo) list(ctx context.Context, out []*domain.Payment, query string, args ...interface{}) ([]*domain.Payment, error) {
	if err := r.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at DESC, id DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *paymentRepo) Save(ctx context.Context, row *domain.Payment) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *paymentRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Payment{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *paymentRepo) SumAmount(ctx context.Context, ownerID string, filter store.PaymentSum) (float64, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("owner_id = ?", ownerID)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.PaidFrom != nil {
		q = q.Where("paid_date >= ?", *filter.PaidFrom)
	}
	if filter.PaidBefore != nil {
		q = q.Where("paid_date < ?", *filter.PaidBefore)
	}
	var total float64
	if err := q.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
