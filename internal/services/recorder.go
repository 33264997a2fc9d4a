package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gorm.io/datatypes"

	"github.com/yungbote/agencyhub-backend/internal/data/store"
	"github.com/yungbote/agencyhub-backend/internal/domain"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
)

// Clock returns the current instant. Services take one so tests can pin "now".
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

type MoneyFormat struct {
	Locale string // BCP 47 tag, e.g. "en-US"
	Symbol string // prefix, e.g. "$"
}

// ActivityRecorder writes the audit row for a mutation through the caller's transaction, so the
// activity commits or rolls back with the change it describes.
type ActivityRecorder struct {
	log     *logger.Logger
	printer *message.Printer
	symbol  string
}

func NewActivityRecorder(money MoneyFormat, baseLog *logger.Logger) *ActivityRecorder {
	tag, err := language.Parse(strings.TrimSpace(money.Locale))
	if err != nil {
		tag = language.AmericanEnglish
	}
	symbol := money.Symbol
	if symbol == "" {
		symbol = "$"
	}
	return &ActivityRecorder{
		log:     baseLog.With("service", "ActivityRecorder"),
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

// Money renders an amount the way activity descriptions show it, e.g. "$250.00" or "-$50.00".
func (r *ActivityRecorder) Money(amount float64) string {
	if amount < 0 {
		return "-" + r.symbol + r.printer.Sprintf("%.2f", -amount)
	}
	return r.symbol + r.printer.Sprintf("%.2f", amount)
}

func (r *ActivityRecorder) ClientAdded(ctx context.Context, tx store.Tx, c *domain.Client, now time.Time) error {
	return r.record(ctx, tx, activityRow(c.OwnerID, domain.ActivityClientAdded, domain.EntityClient, c.ID,
		"New client added: "+c.Name, nil, now))
}

func (r *ActivityRecorder) ClientUpdated(ctx context.Context, tx store.Tx, c *domain.Client, fields []string, now time.Time) error {
	return r.record(ctx, tx, activityRow(c.OwnerID, domain.ActivityClientUpdated, domain.EntityClient, c.ID,
		"Client updated: "+c.Name, fieldDetails(fields), now))
}

func (r *ActivityRecorder) ClientDeleted(ctx context.Context, tx store.Tx, c *domain.Client, now time.Time) error {
	return r.record(ctx, tx, activityRow(c.OwnerID, domain.ActivityClientDeleted, domain.EntityClient, c.ID,
		"Client deleted: "+c.Name, nil, now))
}

func (r *ActivityRecorder) ProjectCreated(ctx context.Context, tx store.Tx, p *domain.Project, now time.Time) error {
	return r.record(ctx, tx, activityRow(p.OwnerID, domain.ActivityProjectCreated, domain.EntityProject, p.ID,
		"New project created: "+p.Name, nil, now))
}

func (r *ActivityRecorder) ProjectUpdated(ctx context.Context, tx store.Tx, p *domain.Project, fields []string, now time.Time) error {
	return r.record(ctx, tx, activityRow(p.OwnerID, domain.ActivityProjectUpdated, domain.EntityProject, p.ID,
		"Project updated: "+p.Name, fieldDetails(fields), now))
}

func (r *ActivityRecorder) ProjectDeleted(ctx context.Context, tx store.Tx, p *domain.Project, now time.Time) error {
	return r.record(ctx, tx, activityRow(p.OwnerID, domain.ActivityProjectDeleted, domain.EntityProject, p.ID,
		"Project deleted: "+p.Name, nil, now))
}

func (r *ActivityRecorder) PaymentCreated(ctx context.Context, tx store.Tx, p *domain.Payment, now time.Time) error {
	return r.record(ctx, tx, activityRow(p.OwnerID, domain.ActivityPaymentCreated, domain.EntityPayment, p.ID,
		"New payment created: "+r.Money(p.Amount), map[string]any{"amount": p.Amount}, now))
}

func (r *ActivityRecorder) PaymentUpdated(ctx context.Context, tx store.Tx, p *domain.Payment, fields []string, markedPaid bool, now time.Time) error {
	desc := "Payment updated: " + r.Money(p.Amount)
	if markedPaid {
		desc = "Payment marked as paid: " + r.Money(p.Amount)
	}
	details := fieldDetails(fields)
	details["amount"] = p.Amount
	details["marked_paid"] = markedPaid
	return r.record(ctx, tx, activityRow(p.OwnerID, domain.ActivityPaymentUpdated, domain.EntityPayment, p.ID,
		desc, details, now))
}

func (r *ActivityRecorder) PaymentDeleted(ctx context.Context, tx store.Tx, p *domain.Payment, now time.Time) error {
	return r.record(ctx, tx, activityRow(p.OwnerID, domain.ActivityPaymentDeleted, domain.EntityPayment, p.ID,
		"Payment deleted: "+r.Money(p.Amount), map[string]any{"amount": p.Amount}, now))
}

type pendingActivity struct {
	row     *domain.Activity
	details map[string]any
}

func activityRow(ownerID string, typ domain.ActivityType, kind domain.EntityType, id int64, desc string, details map[string]any, now time.Time) pendingActivity {
	return pendingActivity{
		row: &domain.Activity{
			OwnerID:     ownerID,
			Type:        typ,
			Description: desc,
			EntityID:    id,
			EntityType:  kind,
			CreatedAt:   now.UTC(),
		},
		details: details,
	}
}

func (r *ActivityRecorder) record(ctx context.Context, tx store.Tx, a pendingActivity) error {
	if len(a.details) > 0 {
		b, err := json.Marshal(a.details)
		if err != nil {
			return fmt.Errorf("encode activity details: %w", err)
		}
		a.row.Details = datatypes.JSON(b)
	}
	if err := tx.Activities().Create(ctx, a.row); err != nil {
		r.log.Warn("activity insert failed", "type", a.row.Type, "entity_id", a.row.EntityID, "error", err)
		return fmt.Errorf("record %s: %w", a.row.Type, err)
	}
	return nil
}

func fieldDetails(fields []string) map[string]any {
	out := map[string]any{}
	if len(fields) == 0 {
		return out
	}
	sorted := append([]string(nil), fields...)
	sort.Strings(sorted)
	out["fields"] = sorted
	return out
}
