package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yungbote/agencyhub-backend/internal/data/memstore"
	"github.com/yungbote/agencyhub-backend/internal/domain"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
	"github.com/yungbote/agencyhub-backend/internal/services"
)

const book = `
clients:
  - name: Acme
    email: ops@acme.test
    company: Acme Corp
    service_category: seo
    projects:
      - name: Site relaunch
        budget: 5000
        progress: 40
      - name: Ads
    payments:
      - amount: 1200.5
        status: paid
        project: Site relaunch
      - amount: 300
        due_date: 2026-04-01T00:00:00Z
  - name: Globex
    email: hi@globex.test
    company: Globex
`

func TestLoadAndApply(t *testing.T) {
	doc, err := Load(strings.NewReader(book))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Clients) != 2 || len(doc.Clients[0].Projects) != 2 || doc.Clients[0].Payments[0].Project != "Site relaunch" {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if doc.Clients[0].Payments[1].DueDate == nil {
		t.Fatalf("due_date not decoded")
	}

	log := logger.Nop()
	st := memstore.New(log)
	rec := services.NewActivityRecorder(services.MoneyFormat{}, log)
	clients := services.NewClientService(st, rec, nil, log)
	projects := services.NewProjectService(st, rec, nil, log)
	payments := services.NewPaymentService(st, rec, nil, log)

	ctx := context.Background()
	sum, err := NewSeeder(log, clients, projects, payments).Apply(ctx, "acct", doc)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if sum != (Summary{Clients: 2, Projects: 2, Payments: 2}) {
		t.Fatalf("summary: %+v", sum)
	}

	ps, err := projects.List(ctx, "acct")
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	var relaunch *domain.Project
	for _, p := range ps {
		if p.Name == "Site relaunch" {
			relaunch = p
		}
	}
	if relaunch == nil || relaunch.Progress != 40 {
		t.Fatalf("relaunch not seeded: %+v", ps)
	}
	linked, err := payments.ListByProject(ctx, relaunch.ID)
	if err != nil {
		t.Fatalf("list payments: %v", err)
	}
	if len(linked) != 1 || linked[0].Amount != 1200.5 || linked[0].PaidDate == nil {
		t.Fatalf("linked payment: %+v", linked)
	}

	acts, err := services.NewActivityService(st, 50, log).List(ctx, "acct", 0)
	if err != nil {
		t.Fatalf("list activity: %v", err)
	}
	if len(acts) != 6 {
		t.Fatalf("activities: got=%d", len(acts))
	}
}

func TestLoadRejectsBadDocuments(t *testing.T) {
	cases := map[string]string{
		"unknown field":  "clients:\n  - name: A\n    email: a@a.test\n    company: A\n    colour: red\n",
		"missing email":  "clients:\n  - name: A\n    company: A\n",
		"bad project":    "clients:\n  - name: A\n    email: a@a.test\n    company: A\n    payments:\n      - amount: 1\n        project: Nope\n",
		"no amount":      "clients:\n  - name: A\n    email: a@a.test\n    company: A\n    payments:\n      - status: paid\n",
		"dup project":    "clients:\n  - name: A\n    email: a@a.test\n    company: A\n    projects:\n      - name: X\n      - name: X\n",
		"bad email":      "clients:\n  - name: A\n    email: not-an-email\n    company: A\n",
		"client status":  "clients:\n  - name: A\n    email: a@a.test\n    company: A\n    status: bogus\n",
		"category":       "clients:\n  - name: A\n    email: a@a.test\n    company: A\n    service_category: knitting\n",
		"project status": "clients:\n  - name: A\n    email: a@a.test\n    company: A\n    projects:\n      - name: X\n        status: exploded\n",
		"budget":         "clients:\n  - name: A\n    email: a@a.test\n    company: A\n    projects:\n      - name: X\n        budget: -5\n",
		"progress":       "clients:\n  - name: A\n    email: a@a.test\n    company: A\n    projects:\n      - name: X\n        progress: 120\n",
		"payment status": "clients:\n  - name: A\n    email: a@a.test\n    company: A\n    payments:\n      - amount: 10\n        status: whatever\n",
	}
	for name, src := range cases {
		_, err := Load(strings.NewReader(src))
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if name != "unknown field" && !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestLoadEmpty(t *testing.T) {
	doc, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Clients) != 0 {
		t.Fatalf("expected no clients")
	}
}
