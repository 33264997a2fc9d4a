package store

import (
	"testing"
	"time"

	"github.com/yungbote/agencyhub-backend/internal/domain"
)

func TestPaymentSumMatches(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	inMonth := start.Add(36 * time.Hour)
	lastMonth := start.Add(-time.Hour)

	month := PaymentSum{Status: domain.PaymentStatusPaid, PaidFrom: &start, PaidBefore: &end}
	cases := []struct {
		name string
		p    domain.Payment
		want bool
	}{
		{name: "paid this month", p: domain.Payment{Status: domain.PaymentStatusPaid, PaidDate: &inMonth}, want: true},
		{name: "paid on the first", p: domain.Payment{Status: domain.PaymentStatusPaid, PaidDate: &start}, want: true},
		{name: "paid last month", p: domain.Payment{Status: domain.PaymentStatusPaid, PaidDate: &lastMonth}, want: false},
		{name: "paid next month", p: domain.Payment{Status: domain.PaymentStatusPaid, PaidDate: &end}, want: false},
		{name: "paid without date", p: domain.Payment{Status: domain.PaymentStatusPaid}, want: false},
		{name: "pending this month", p: domain.Payment{Status: domain.PaymentStatusPending, PaidDate: &inMonth}, want: false},
	}
	for _, tc := range cases {
		p := tc.p
		if got := month.Matches(&p); got != tc.want {
			t.Fatalf("%s: got=%v want=%v", tc.name, got, tc.want)
		}
	}

	pending := PaymentSum{Status: domain.PaymentStatusPending}
	if !pending.Matches(&domain.Payment{Status: domain.PaymentStatusPending}) {
		t.Fatalf("pending without dates should match")
	}
}
