package timeutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatElapsed(t *testing.T) {
	table := []struct {
		ms       int64
		expected string
	}{
		{0, "0:00"},
		{999, "0:00"},
		{1000, "0:01"},
		{5000, "0:05"},
		{59000, "0:59"},
		{59999, "0:59"},
		{60000, "1:00"},
		{600000, "10:00"},
		{3599999, "59:59"},
		{3661000, "61:01"},
		{-2500, "0:00"},
	}

	for _, v := range table {
		got := FormatElapsed(v.ms)
		if got != v.expected {
			t.Errorf("FormatElapsed(%d): expected %s, but got %s", v.ms, v.expected, got)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "2:05", FormatDuration(2*time.Minute+5*time.Second+900*time.Millisecond))
}

func TestMinsToHoursAndMins(t *testing.T) {
	table := []struct {
		mins, hrs, rem int
	}{
		{0, 0, 0},
		{59, 0, 59},
		{60, 1, 0},
		{135, 2, 15},
	}

	for _, v := range table {
		h, m := MinsToHoursAndMins(v.mins)
		assert.Equal(t, v.hrs, h)
		assert.Equal(t, v.rem, m)
	}
}

func TestRoundToStart(t *testing.T) {
	d := time.Date(2025, time.March, 14, 13, 45, 12, 5, time.UTC)

	assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), RoundToStart(d))
}

func TestToKeySortsChronologically(t *testing.T) {
	a := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)
	b := a.Add(time.Hour)

	assert.Less(t, string(ToKey(a)), string(ToKey(b)))

	// sub-second precision must not break byte ordering
	c := a.Add(500 * time.Millisecond)
	assert.Less(t, string(ToKey(a)), string(ToKey(c)))
	assert.Equal(t, "2025-03-14T09:00:00.500000000Z", string(ToKey(c)))
}

func TestFromStr(t *testing.T) {
	now := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

	got, err := FromStr("2025-03-01", now)
	require.NoError(t, err)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 1, got.Day())

	_, err = FromStr("   ", now)
	assert.Error(t, err)
}

func TestAPITimeAcceptsNaiveTimestamps(t *testing.T) {
	table := []struct {
		input    string
		expected time.Time
	}{
		{`"2025-03-15T08:30:00"`, time.Date(2025, time.March, 15, 8, 30, 0, 0, time.UTC)},
		{`"2025-03-15T08:30:00.250000"`, time.Date(2025, time.March, 15, 8, 30, 0, 250000000, time.UTC)},
		{`"2025-03-15T09:30:00+01:00"`, time.Date(2025, time.March, 15, 8, 30, 0, 0, time.UTC)},
		{`null`, time.Time{}},
	}

	for _, v := range table {
		var got APITime

		require.NoError(t, json.Unmarshal([]byte(v.input), &got), v.input)
		assert.True(t, v.expected.Equal(got.Time), v.input)
	}

	var bad APITime
	assert.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &bad))
}
