package domain

import (
	"strings"
	"time"
)

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
	ClientStatusPending  ClientStatus = "pending"
)

type ServiceCategory string

const (
	ServiceWebDesign   ServiceCategory = "web_design"
	ServiceSEO         ServiceCategory = "seo"
	ServiceSocialMedia ServiceCategory = "social_media"
	ServiceCustom      ServiceCategory = "custom"
)

type Client struct {
	ID              int64           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OwnerID         string          `gorm:"not null;index;column:owner_id" json:"owner_id"`
	Name            string          `gorm:"not null;column:name" json:"name"`
	Email           string          `gorm:"not null;column:email" json:"email"`
	Company         string          `gorm:"not null;column:company" json:"company"`
	Phone           *string         `gorm:"column:phone" json:"phone"`
	Website         *string         `gorm:"column:website" json:"website"`
	Address         *string         `gorm:"column:address" json:"address"`
	Notes           *string         `gorm:"column:notes" json:"notes"`
	Status          ClientStatus    `gorm:"not null;default:active;index;column:status" json:"status"`
	ServiceCategory ServiceCategory `gorm:"not null;default:web_design;column:service_category" json:"service_category"`
	// CustomService only means something when ServiceCategory is custom.
	CustomService *string   `gorm:"column:custom_service" json:"custom_service"`
	CreatedAt     time.Time `gorm:"not null;index;column:created_at" json:"created_at"`
}

func (Client) TableName() string { return "client" }

// ClientInput is the validated body of a create request.
type ClientInput struct {
	Name            string          `json:"name" yaml:"name" binding:"required"`
	Email           string          `json:"email" yaml:"email" binding:"required,email"`
	Company         string          `json:"company" yaml:"company" binding:"required"`
	Phone           *string         `json:"phone" yaml:"phone"`
	Website         *string         `json:"website" yaml:"website"`
	Address         *string         `json:"address" yaml:"address"`
	Notes           *string         `json:"notes" yaml:"notes"`
	Status          ClientStatus    `json:"status" yaml:"status" binding:"omitempty,oneof=active inactive pending"`
	ServiceCategory ServiceCategory `json:"service_category" yaml:"service_category" binding:"omitempty,oneof=web_design seo social_media custom"`
	CustomService   *string         `json:"custom_service" yaml:"custom_service"`
}

// NewClient builds the record to persist from a validated input.
func NewClient(in ClientInput, ownerID string, now time.Time) *Client {
	c := &Client{
		OwnerID:         ownerID,
		Name:            strings.TrimSpace(in.Name),
		Email:           strings.TrimSpace(in.Email),
		Company:         strings.TrimSpace(in.Company),
		Phone:           in.Phone,
		Website:         in.Website,
		Address:         in.Address,
		Notes:           in.Notes,
		Status:          in.Status,
		ServiceCategory: in.ServiceCategory,
		CustomService:   in.CustomService,
		CreatedAt:       now.UTC(),
	}
	if c.Status == "" {
		c.Status = ClientStatusActive
	}
	if c.ServiceCategory == "" {
		c.ServiceCategory = ServiceWebDesign
	}
	c.normalizeService()
	return c
}

func (c *Client) normalizeService() {
	if c.ServiceCategory != ServiceCustom {
		c.CustomService = nil
	}
}

// ClientPatch is a partial update; nil / unset fields are left untouched.
type ClientPatch struct {
	Name            *string          `json:"name" binding:"omitempty,min=1"`
	Email           *string          `json:"email" binding:"omitempty,email"`
	Company         *string          `json:"company" binding:"omitempty,min=1"`
	Phone           Optional[string] `json:"phone"`
	Website         Optional[string] `json:"website"`
	Address         Optional[string] `json:"address"`
	Notes           Optional[string] `json:"notes"`
	Status          *ClientStatus    `json:"status" binding:"omitempty,oneof=active inactive pending"`
	ServiceCategory *ServiceCategory `json:"service_category" binding:"omitempty,oneof=web_design seo social_media custom"`
	CustomService   Optional[string] `json:"custom_service"`
}

// Apply merges the patch onto c and returns the names of the supplied fields.
func (p ClientPatch) Apply(c *Client) []string {
	var fields []string
	mark := func(name string, changed bool) {
		if changed {
			fields = append(fields, name)
		}
	}
	mark("name", setIf(p.Name, &c.Name))
	mark("email", setIf(p.Email, &c.Email))
	mark("company", setIf(p.Company, &c.Company))
	mark("phone", p.Phone.apply(&c.Phone))
	mark("website", p.Website.apply(&c.Website))
	mark("address", p.Address.apply(&c.Address))
	mark("notes", p.Notes.apply(&c.Notes))
	mark("status", setIf(p.Status, &c.Status))
	mark("service_category", setIf(p.ServiceCategory, &c.ServiceCategory))
	mark("custom_service", p.CustomService.apply(&c.CustomService))
	c.normalizeService()
	return fields
}
