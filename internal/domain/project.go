package domain

import (
	"strings"
	"time"
)

type ProjectStatus string

const (
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusReview     ProjectStatus = "review"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

type Project struct {
	ID          int64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OwnerID     string        `gorm:"not null;index;column:owner_id" json:"owner_id"`
	Name        string        `gorm:"not null;column:name" json:"name"`
	Description *string       `gorm:"column:description" json:"description"`
	ClientID    int64         `gorm:"not null;index;column:client_id" json:"client_id"`
	Status      ProjectStatus `gorm:"not null;default:in_progress;index;column:status" json:"status"`
	StartDate   time.Time     `gorm:"not null;column:start_date" json:"start_date"`
	EndDate     *time.Time    `gorm:"column:end_date" json:"end_date"`
	Budget      *float64      `gorm:"column:budget" json:"budget"`
	Progress    int           `gorm:"not null;default:0;column:progress" json:"progress"`
	Notes       *string       `gorm:"column:notes" json:"notes"`
	CreatedAt   time.Time     `gorm:"not null;index;column:created_at" json:"created_at"`
}

func (Project) TableName() string { return "project" }

type ProjectInput struct {
	Name        string        `json:"name" yaml:"name" binding:"required"`
	Description *string       `json:"description" yaml:"description"`
	ClientID    int64         `json:"client_id" yaml:"-" binding:"required,gt=0"`
	Status      ProjectStatus `json:"status" yaml:"status" binding:"omitempty,oneof=in_progress completed review on_hold cancelled"`
	StartDate   *time.Time    `json:"start_date" yaml:"start_date"`
	EndDate     *time.Time    `json:"end_date" yaml:"end_date"`
	Budget      *float64      `json:"budget" yaml:"budget" binding:"omitempty,gte=0"`
	Progress    *int          `json:"progress" yaml:"progress" binding:"omitempty,min=0,max=100"`
	Notes       *string       `json:"notes" yaml:"notes"`
}

// NewProject builds the record to persist. StartDate defaults to the creation time.
func NewProject(in ProjectInput, ownerID string, now time.Time) *Project {
	p := &Project{
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		ClientID:    in.ClientID,
		Status:      in.Status,
		StartDate:   now,
		EndDate:     in.EndDate,
		Budget:      in.Budget,
		Notes:       in.Notes,
		CreatedAt:   now,
	}
	if in.StartDate != nil {
		p.StartDate = *in.StartDate
	}
	if in.Progress != nil {
		p.Progress = *in.Progress
	}
	if p.Status == "" {
		p.Status = ProjectStatusInProgress
	}
	p.normalizeTimes()
	return p
}

func (p *Project) normalizeTimes() {
	p.CreatedAt = p.CreatedAt.UTC()
	p.StartDate = p.StartDate.UTC()
	p.EndDate = utcPtr(p.EndDate)
}

type ProjectPatch struct {
	Name        *string             `json:"name" binding:"omitempty,min=1"`
	Description Optional[string]    `json:"description"`
	ClientID    *int64              `json:"client_id" binding:"omitempty,gt=0"`
	Status      *ProjectStatus      `json:"status" binding:"omitempty,oneof=in_progress completed review on_hold cancelled"`
	StartDate   *time.Time          `json:"start_date"`
	EndDate     Optional[time.Time] `json:"end_date"`
	Budget      Optional[float64]   `json:"budget"`
	Progress    *int                `json:"progress" binding:"omitempty,min=0,max=100"`
	Notes       Optional[string]    `json:"notes"`
}

// Validate covers the nullable fields binding tags cannot reach.
func (p ProjectPatch) Validate() error {
	if p.Budget.Value != nil && *p.Budget.Value < 0 {
		return ErrInvalidField("budget", "must be non-negative")
	}
	return nil
}

func (p ProjectPatch) Apply(pr *Project) []string {
	var fields []string
	mark := func(name string, changed bool) {
		if changed {
			fields = append(fields, name)
		}
	}
	mark("name", setIf(p.Name, &pr.Name))
	mark("description", p.Description.apply(&pr.Description))
	mark("client_id", setIf(p.ClientID, &pr.ClientID))
	mark("status", setIf(p.Status, &pr.Status))
	mark("start_date", setIf(p.StartDate, &pr.StartDate))
	mark("end_date", p.EndDate.apply(&pr.EndDate))
	mark("budget", p.Budget.apply(&pr.Budget))
	mark("progress", setIf(p.Progress, &pr.Progress))
	mark("notes", p.Notes.apply(&pr.Notes))
	pr.normalizeTimes()
	return fields
}
