package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusOverdue   PaymentStatus = "overdue"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

type Payment struct {
	ID            int64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OwnerID       string        `gorm:"not null;index;column:owner_id" json:"owner_id"`
	ClientID      int64         `gorm:"not null;index;column:client_id" json:"client_id"`
	ProjectID     *int64        `gorm:"index;column:project_id" json:"project_id"`
	Amount        float64       `gorm:"not null;column:amount" json:"amount"`
	Status        PaymentStatus `gorm:"not null;default:pending;index;column:status" json:"status"`
	DueDate       *time.Time    `gorm:"column:due_date" json:"due_date"`
	PaidDate      *time.Time    `gorm:"index;column:paid_date" json:"paid_date"`
	InvoiceNumber *string       `gorm:"column:invoice_number" json:"invoice_number"`
	Notes         *string       `gorm:"column:notes" json:"notes"`
	CreatedAt     time.Time     `gorm:"not null;index;column:created_at" json:"created_at"`
}

func (Payment) TableName() string { return "payment" }

// InvoiceLabel is the invoice number to display: the stored one, else INV-0042 style from the id.
func (p Payment) InvoiceLabel() string {
	if p.InvoiceNumber != nil && strings.TrimSpace(*p.InvoiceNumber) != "" {
		return strings.TrimSpace(*p.InvoiceNumber)
	}
	return fmt.Sprintf("INV-%04d", p.ID)
}

func (p Payment) MarshalJSON() ([]byte, error) {
	type plain Payment
	return json.Marshal(struct {
		plain
		InvoiceLabel string `json:"invoice_label"`
	}{plain: plain(p), InvoiceLabel: p.InvoiceLabel()})
}

type PaymentInput struct {
	ClientID      int64         `json:"client_id" yaml:"-" binding:"required,gt=0"`
	ProjectID     *int64        `json:"project_id" yaml:"-" binding:"omitempty,gt=0"`
	Amount        *float64      `json:"amount" yaml:"amount" binding:"required"`
	Status        PaymentStatus `json:"status" yaml:"status" binding:"omitempty,oneof=pending paid overdue cancelled"`
	DueDate       *time.Time    `json:"due_date" yaml:"due_date"`
	PaidDate      *time.Time    `json:"paid_date" yaml:"paid_date"`
	InvoiceNumber *string       `json:"invoice_number" yaml:"invoice_number"`
	Notes         *string       `json:"notes" yaml:"notes"`
}

// NewPayment builds the record to persist. A payment created as paid without a paid date is
// stamped with now, the same rule updates follow.
func NewPayment(in PaymentInput, ownerID string, now time.Time) *Payment {
	p := &Payment{
		OwnerID:       ownerID,
		ClientID:      in.ClientID,
		ProjectID:     in.ProjectID,
		Status:        in.Status,
		DueDate:       in.DueDate,
		PaidDate:      in.PaidDate,
		InvoiceNumber: in.InvoiceNumber,
		Notes:         in.Notes,
		CreatedAt:     now,
	}
	if in.Amount != nil {
		p.Amount = *in.Amount
	}
	if p.Status == "" {
		p.Status = PaymentStatusPending
	}
	if p.Status == PaymentStatusPaid && p.PaidDate == nil {
		stamp := now
		p.PaidDate = &stamp
	}
	p.normalizeTimes()
	return p
}

// normalizeTimes keeps stored instants in UTC so range filters compare consistently.
func (p *Payment) normalizeTimes() {
	p.CreatedAt = p.CreatedAt.UTC()
	p.DueDate = utcPtr(p.DueDate)
	p.PaidDate = utcPtr(p.PaidDate)
}

type PaymentPatch struct {
	ClientID      *int64              `json:"client_id" binding:"omitempty,gt=0"`
	ProjectID     Optional[int64]     `json:"project_id"`
	Amount        *float64            `json:"amount"`
	Status        *PaymentStatus      `json:"status" binding:"omitempty,oneof=pending paid overdue cancelled"`
	DueDate       Optional[time.Time] `json:"due_date"`
	PaidDate      Optional[time.Time] `json:"paid_date"`
	InvoiceNumber Optional[string]    `json:"invoice_number"`
	Notes         Optional[string]    `json:"notes"`
}

func (p PaymentPatch) Validate() error {
	if p.ProjectID.Value != nil && *p.ProjectID.Value <= 0 {
		return ErrInvalidField("project_id", "must be positive")
	}
	return nil
}

// Apply merges the patch onto pay. When the patch sets status to paid and the merged record has
// no paid date, the paid date becomes now. markedPaid reports a move into paid from another status.
func (p PaymentPatch) Apply(pay *Payment, now time.Time) (fields []string, markedPaid bool) {
	prevStatus := pay.Status
	mark := func(name string, changed bool) {
		if changed {
			fields = append(fields, name)
		}
	}
	mark("client_id", setIf(p.ClientID, &pay.ClientID))
	mark("project_id", p.ProjectID.apply(&pay.ProjectID))
	mark("amount", setIf(p.Amount, &pay.Amount))
	mark("status", setIf(p.Status, &pay.Status))
	mark("due_date", p.DueDate.apply(&pay.DueDate))
	mark("paid_date", p.PaidDate.apply(&pay.PaidDate))
	mark("invoice_number", p.InvoiceNumber.apply(&pay.InvoiceNumber))
	mark("notes", p.Notes.apply(&pay.Notes))

	if p.Status != nil && *p.Status == PaymentStatusPaid {
		if pay.PaidDate == nil {
			stamp := now
			pay.PaidDate = &stamp
			if !p.PaidDate.Set {
				fields = append(fields, "paid_date")
			}
		}
		markedPaid = prevStatus != PaymentStatusPaid
	}
	pay.normalizeTimes()
	return fields, markedPaid
}
