package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateOnly_MarshalJSON(t *testing.T) {
	d := NewDateOnly(1992, time.May, 15)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"1992-05-15"`, string(data))
}

func TestDateOnly_UnmarshalJSON(t *testing.T) {
	var d DateOnly
	require.NoError(t, json.Unmarshal([]byte(`"1989-11-03"`), &d))
	require.Equal(t, NewDateOnly(1989, time.November, 3), d)
}

func TestDateOnly_UnmarshalJSONRejectsGarbage(t *testing.T) {
	var d DateOnly
	require.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
	require.Error(t, json.Unmarshal([]byte(`12345`), &d))
}

func TestDateOnly_StorageRoundTrip(t *testing.T) {
	original := NewDateOnly(1996, time.August, 22)

	value, err := original.Value()
	require.NoError(t, err)
	require.Equal(t, "1996-08-22", value)

	var decoded DateOnly
	require.NoError(t, decoded.Scan(value))
	require.Equal(t, original, decoded)
}

func TestDateOnly_ScanTimestampText(t *testing.T) {
	var decoded DateOnly
	require.NoError(t, decoded.Scan("1996-08-22T00:00:00Z"))
	require.Equal(t, NewDateOnly(1996, time.August, 22), decoded)
}

func TestDateOnly_ScanDriverTime(t *testing.T) {
	var decoded DateOnly
	require.NoError(t, decoded.Scan(time.Date(1983, time.July, 9, 13, 45, 0, 0, time.UTC)))
	require.Equal(t, NewDateOnly(1983, time.July, 9), decoded)
}
