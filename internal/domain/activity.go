package domain

import (
	"time"

	"gorm.io/datatypes"
)

type ActivityType string

// Clients are "added" while projects and payments are "created"; consumers already key on these.
const (
	ActivityClientAdded    ActivityType = "client_added"
	ActivityClientUpdated  ActivityType = "client_updated"
	ActivityClientDeleted  ActivityType = "client_deleted"
	ActivityProjectCreated ActivityType = "project_created"
	ActivityProjectUpdated ActivityType = "project_updated"
	ActivityProjectDeleted ActivityType = "project_deleted"
	ActivityPaymentCreated ActivityType = "payment_created"
	ActivityPaymentUpdated ActivityType = "payment_updated"
	ActivityPaymentDeleted ActivityType = "payment_deleted"
)

// Activity is an append-only audit row. Rows are never updated and never deleted, including when
// the entity they point at is.
type Activity struct {
	ID          int64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OwnerID     string         `gorm:"not null;index:idx_activity_owner_created,priority:1;column:owner_id" json:"owner_id"`
	Type        ActivityType   `gorm:"not null;column:type" json:"type"`
	Description string         `gorm:"not null;column:description" json:"description"`
	EntityID    int64          `gorm:"not null;index;column:entity_id" json:"entity_id"`
	EntityType  EntityType     `gorm:"not null;column:entity_type" json:"entity_type"`
	Details     datatypes.JSON `gorm:"column:details" json:"details,omitempty"`
	CreatedAt   time.Time      `gorm:"not null;index:idx_activity_owner_created,priority:2;column:created_at" json:"created_at"`
}

func (Activity) TableName() string { return "activity" }
