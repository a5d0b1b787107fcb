package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Meta is a free-form JSON payload stored on audit entries.
type Meta map[string]interface{}

// Value implements the driver.Valuer interface
func (m Meta) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	jsonData, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil // Return as string for JSONB type
}

// Scan implements the sql.Scanner interface
func (m *Meta) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal Meta: unsupported type %T", value)
	}

	return json.Unmarshal(data, m)
}

// AuditLog records a state-changing action. Rows are append-only and writing
// one must never fail the operation being audited.
type AuditLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ActorID   uint      `json:"actor_id" gorm:"index"`
	ActorRole Role      `json:"actor_role" gorm:"type:varchar(16)"`
	Action    string    `json:"action"`
	Target    string    `json:"target"`
	Metadata  Meta      `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt time.Time `json:"created_at"`
}
