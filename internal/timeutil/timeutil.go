// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const (
	minutesInAnHour = 60
	msInASecond     = 1000
	secondsInAMin   = 60
)

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// FormatElapsed renders a number of milliseconds as "M:SS". Minutes are not
// padded and never roll over into hours. Partial seconds are truncated.
func FormatElapsed(ms int64) string {
	if ms < 0 {
		ms = 0
	}

	totalSecs := ms / msInASecond

	return fmt.Sprintf("%d:%02d", totalSecs/secondsInAMin, totalSecs%secondsInAMin)
}

// FormatDuration is FormatElapsed for a time.Duration.
func FormatDuration(d time.Duration) string {
	return FormatElapsed(d.Milliseconds())
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// keyLayout is fixed width so byte order matches chronological order.
const keyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}

// FromStr parses absolute ("2025-03-14", "March 14 7pm") and relative
// ("3 days ago", "yesterday") dates relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", s, err)
	}

	return dt.Time, nil
}

// naiveLayout is how the backend writes timestamps that carry no zone.
// Such timestamps are UTC.
const naiveLayout = "2006-01-02T15:04:05.999999999"

// APITime is a timestamp decoded from the backend, with or without a zone.
type APITime struct {
	time.Time
}

func (t *APITime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		parsed, err = time.Parse(naiveLayout, s)
		if err != nil {
			return err
		}
	}

	t.Time = parsed

	return nil
}
