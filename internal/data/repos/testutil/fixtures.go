package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/agencyhub-backend/internal/domain"
)

func SeedClient(tb testing.TB, ctx context.Context, tx *gorm.DB, ownerID, name string) *domain.Client {
	tb.Helper()
	c := &domain.Client{
		OwnerID:         ownerID,
		Name:            name,
		Email:           name + "@example.com",
		Company:         name + " Co",
		Status:          domain.ClientStatusActive,
		ServiceCategory: domain.ServiceWebDesign,
		CreatedAt:       time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed client: %v", err)
	}
	return c
}

func SeedProject(tb testing.TB, ctx context.Context, tx *gorm.DB, c *domain.Client, name string) *domain.Project {
	tb.Helper()
	now := time.Now().UTC()
	p := &domain.Project{
		OwnerID:   c.OwnerID,
		ClientID:  c.ID,
		Name:      name,
		Status:    domain.ProjectStatusInProgress,
		StartDate: now,
		CreatedAt: now,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed project: %v", err)
	}
	return p
}

func SeedPayment(tb testing.TB, ctx context.Context, tx *gorm.DB, c *domain.Client, projectID *int64, amount float64, status domain.PaymentStatus, paidDate *time.Time) *domain.Payment {
	tb.Helper()
	p := &domain.Payment{
		OwnerID:   c.OwnerID,
		ClientID:  c.ID,
		ProjectID: projectID,
		Amount:    amount,
		Status:    status,
		PaidDate:  paidDate,
		CreatedAt: time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed payment: %v", err)
	}
	return p
}
