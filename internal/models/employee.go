package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// DateOnly is a calendar date without a time component. It marshals to a
// plain "YYYY-MM-DD" string in JSON and in storage.
type DateOnly struct {
	time.Time
}

// NewDateOnly builds a DateOnly from year, month, and day in UTC.
func NewDateOnly(year int, month time.Month, day int) DateOnly {
	return DateOnly{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d DateOnly) String() string {
	return d.Format(dateOnlyLayout)
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateOnlyLayout) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	t, err := time.ParseInLocation(dateOnlyLayout, s[1:len(s)-1], time.UTC)
	if err != nil {
		return fmt.Errorf("invalid date %s: %w", s, err)
	}
	d.Time = t
	return nil
}

// Value serializes the date for storage as a "YYYY-MM-DD" string.
func (d DateOnly) Value() (driver.Value, error) {
	return d.Format(dateOnlyLayout), nil
}

// Scan decodes a stored date from TEXT or a driver-native time value.
func (d *DateOnly) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateOnly", value)
	}
}

func (d *DateOnly) parse(s string) error {
	// Drivers may hand back a full timestamp for TEXT date columns.
	if len(s) > len(dateOnlyLayout) {
		s = s[:len(dateOnlyLayout)]
	}
	t, err := time.ParseInLocation(dateOnlyLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid stored date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

type Employee struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	LastName       string    `gorm:"type:varchar(255);not null" json:"last_name"`
	Age            int       `gorm:"not null" json:"age"`
	DateOfBirth    DateOnly  `gorm:"type:date;not null" json:"date_of_birth"`
	Location       string    `gorm:"type:varchar(255);not null" json:"location"`
	OrganisationID uint64    `gorm:"not null" json:"organisation_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
