package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/yungbote/agencyhub-backend/internal/app"
	"github.com/yungbote/agencyhub-backend/internal/seed"
)

func main() {
	file := flag.String("file", "seed.yaml", "YAML seed document")
	owner := flag.String("owner", "", "owner id the seeded records belong to")
	flag.Parse()

	if err := run(*file, *owner); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run(file, owner string) error {
	if owner == "" {
		return errors.New("-owner is required")
	}
	doc, err := seed.LoadFile(file)
	if err != nil {
		return fmt.Errorf("load %s: %w", file, err)
	}

	a, err := app.New()
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	svc := a.Services
	sum, err := seed.NewSeeder(a.Log, svc.Clients, svc.Projects, svc.Payments).Apply(context.Background(), owner, doc)
	if err != nil {
		a.Log.Error("Seed failed", "error", err, "clients", sum.Clients, "projects", sum.Projects, "payments", sum.Payments)
		return err
	}
	fmt.Printf("Seeded %d clients, %d projects, %d payments\n", sum.Clients, sum.Projects, sum.Payments)
	return nil
}
