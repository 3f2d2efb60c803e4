package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is an ordered list of strings stored as a JSON array in a
// single TEXT column.
type StringList []string

// Value serializes the list for storage. A nil list encodes as an empty
// JSON array so the column never holds SQL NULL for a created entity.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("failed to encode string list: %w", err)
	}
	return string(data), nil
}

// Scan decodes the stored JSON array. NULL and empty columns decode to an
// empty list, never to nil.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}

	if len(data) == 0 {
		*l = StringList{}
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to decode string list: %w", err)
	}
	if items == nil {
		items = []string{}
	}
	*l = StringList(items)
	return nil
}

type Organisation struct {
	ID        uint64     `gorm:"primarykey" json:"id"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	Details   *string    `gorm:"type:text" json:"details"`
	Tags      StringList `gorm:"type:text" json:"tags"`
	URL       *string    `gorm:"type:varchar(2048)" json:"url"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
