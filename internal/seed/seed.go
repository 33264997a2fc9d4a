// Package seed loads a YAML book of clients, with their projects and payments, into the store
// through the regular services so every seeded row also lands in the activity feed.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"gopkg.in/yaml.v3"

	"github.com/yungbote/agencyhub-backend/internal/domain"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
	"github.com/yungbote/agencyhub-backend/internal/services"
)

type Document struct {
	Clients []ClientDoc `yaml:"clients"`
}

type ClientDoc struct {
	domain.ClientInput `yaml:",inline"`
	Projects           []ProjectDoc `yaml:"projects"`
	Payments           []PaymentDoc `yaml:"payments"`
}

type ProjectDoc struct {
	domain.ProjectInput `yaml:",inline"`
}

// PaymentDoc may name one of its client's projects.
type PaymentDoc struct {
	domain.PaymentInput `yaml:",inline"`
	Project             string `yaml:"project"`
}

type Summary struct {
	Clients  int
	Projects int
	Payments int
}

func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Validate runs the same binding rules the HTTP handlers apply, plus project references.
func (d *Document) Validate() error {
	for i, c := range d.Clients {
		where := fmt.Sprintf("clients[%d]", i)
		if err := validateInput(where, c.ClientInput); err != nil {
			return err
		}
		names := make(map[string]bool, len(c.Projects))
		for j, p := range c.Projects {
			in := p.ProjectInput
			// client_id is assigned when the document is applied.
			in.ClientID = 1
			if err := validateInput(fmt.Sprintf("%s.projects[%d]", where, j), in); err != nil {
				return err
			}
			name := strings.TrimSpace(p.Name)
			if names[name] {
				return fmt.Errorf("%s.projects[%d]: duplicate project %q: %w", where, j, name, domain.ErrValidation)
			}
			names[name] = true
		}
		for j, p := range c.Payments {
			in := p.PaymentInput
			in.ClientID = 1
			if err := validateInput(fmt.Sprintf("%s.payments[%d]", where, j), in); err != nil {
				return err
			}
			if ref := strings.TrimSpace(p.Project); ref != "" && !names[ref] {
				return fmt.Errorf("%s.payments[%d]: unknown project %q: %w", where, j, ref, domain.ErrValidation)
			}
		}
	}
	return nil
}

func validateInput(where string, in any) error {
	if err := binding.Validator.ValidateStruct(in); err != nil {
		return fmt.Errorf("%s: %w: %v", where, domain.ErrValidation, err)
	}
	return nil
}

type Seeder struct {
	log      *logger.Logger
	clients  services.ClientService
	projects services.ProjectService
	payments services.PaymentService
}

func NewSeeder(baseLog *logger.Logger, clients services.ClientService, projects services.ProjectService, payments services.PaymentService) *Seeder {
	return &Seeder{
		log:      baseLog.With("component", "Seeder"),
		clients:  clients,
		projects: projects,
		payments: payments,
	}
}

// Apply creates every record in doc for ownerID. It stops at the first failure; records created
// before it are kept.
func (s *Seeder) Apply(ctx context.Context, ownerID string, doc *Document) (Summary, error) {
	var sum Summary
	for _, cd := range doc.Clients {
		c, err := s.clients.Create(ctx, ownerID, cd.ClientInput)
		if err != nil {
			return sum, fmt.Errorf("seed client %q: %w", cd.Name, err)
		}
		sum.Clients++

		projectIDs := make(map[string]int64, len(cd.Projects))
		for _, pd := range cd.Projects {
			in := pd.ProjectInput
			in.ClientID = c.ID
			p, err := s.projects.Create(ctx, ownerID, in)
			if err != nil {
				return sum, fmt.Errorf("seed project %q: %w", pd.Name, err)
			}
			projectIDs[strings.TrimSpace(pd.Name)] = p.ID
			sum.Projects++
		}

		for _, pd := range cd.Payments {
			in := pd.PaymentInput
			in.ClientID = c.ID
			in.ProjectID = nil
			if ref := strings.TrimSpace(pd.Project); ref != "" {
				id := projectIDs[ref]
				in.ProjectID = &id
			}
			if _, err := s.payments.Create(ctx, ownerID, in); err != nil {
				return sum, fmt.Errorf("seed payment for %q: %w", cd.Name, err)
			}
			sum.Payments++
		}
		s.log.Debug("Seeded client", "client_id", c.ID, "projects", len(cd.Projects), "payments", len(cd.Payments))
	}
	s.log.Info("Seed applied", "owner_id", ownerID, "clients", sum.Clients, "projects", sum.Projects, "payments", sum.Payments)
	return sum, nil
}
