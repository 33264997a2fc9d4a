package services

import (
	"context"

	"github.com/yungbote/agencyhub-backend/internal/data/store"
	"github.com/yungbote/agencyhub-backend/internal/domain"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
)

type ActivityService interface {
	// List returns the owner's feed newest first. limit <= 0 falls back to the configured default,
	// and a default of 0 means the whole feed.
	List(ctx context.Context, ownerID string, limit int) ([]*domain.Activity, error)
}

type activityService struct {
	log          *logger.Logger
	st           store.Store
	defaultLimit int
}

func NewActivityService(st store.Store, defaultLimit int, baseLog *logger.Logger) ActivityService {
	return &activityService{
		log:          baseLog.With("service", "ActivityService"),
		st:           st,
		defaultLimit: defaultLimit,
	}
}

func (s *activityService) List(ctx context.Context, ownerID string, limit int) ([]*domain.Activity, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	out, err := s.st.View().Activities().ListByOwner(ctx, ownerID, limit)
	return out, store.MapError("activities.list", err)
}
