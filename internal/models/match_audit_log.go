package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionRunStarted     = "reconciliation_run_started"
	AuditActionRunCompleted   = "reconciliation_run_completed"
	AuditActionRunFailed      = "reconciliation_run_failed"
	AuditActionMatchAuto      = "match_auto_accepted"
	AuditActionMatchConfirmed = "match_confirmed"
	AuditActionMatchOverride  = "match_overridden"
	AuditActionMatchRejected  = "match_rejected"
)

// MatchAuditLog records every reconciliation decision for later review.
// Rows are append-only.
type MatchAuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ActorID    *uuid.UUID `gorm:"type:uuid;index" json:"actor_id,omitempty"`
	Action     string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource   string     `gorm:"type:varchar(100);not null" json:"resource"`
	ResourceID string     `gorm:"type:varchar(255)" json:"resource_id,omitempty"`
	IPAddress  string     `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	Metadata   JSONBMap   `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"created_at"`
}

func (mal *MatchAuditLog) SetMetadata(key string, value interface{}) {
	if mal.Metadata == nil {
		mal.Metadata = make(JSONBMap)
	}
	mal.Metadata[key] = value
}

func (mal *MatchAuditLog) GetMetadata(key string, defaultValue interface{}) interface{} {
	if mal.Metadata == nil {
		return defaultValue
	}

	if value, exists := mal.Metadata[key]; exists {
		return value
	}

	return defaultValue
}

func (mal *MatchAuditLog) String() string {
	actorStr := "system"
	if mal.ActorID != nil {
		actorStr = mal.ActorID.String()
	}

	return fmt.Sprintf("MatchAuditLog[Actor: %s, Action: %s, Resource: %s/%s, Time: %s]",
		actorStr, mal.Action, mal.Resource, mal.ResourceID, mal.CreatedAt.Format(time.RFC3339))
}

func (mal *MatchAuditLog) TableName() string {
	return "match_audit_logs"
}

func (mal *MatchAuditLog) BeforeCreate(tx *gorm.DB) error {
	if mal.ID == uuid.Nil {
		mal.ID = uuid.New()
	}

	if mal.CreatedAt.IsZero() {
		mal.CreatedAt = time.Now()
	}
	return nil
}

// JSONBMap represents a JSONB map field for PostgreSQL
type JSONBMap map[string]interface{}

// Value implements driver.Valuer interface
func (m JSONBMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}

func (m JSONBMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	return json.Marshal(map[string]interface{}(m))
}

func (m *JSONBMap) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var tmp map[string]interface{}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*m = JSONBMap(tmp)
	return nil
}
