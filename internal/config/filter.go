package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/projectascend/ascend/internal/timeutil"
)

// FilterConfig selects saved workouts by when they took place.
type FilterConfig struct {
	StartTime time.Time
	EndTime   time.Time
}

// Filter builds a FilterConfig from the --since and --until flags. Without
// --since the filter covers the last seven days.
func Filter(ctx *cli.Context) (*FilterConfig, error) {
	return newFilter(ctx.String("since"), ctx.String("until"), time.Now())
}

func newFilter(since, until string, now time.Time) (*FilterConfig, error) {
	f := &FilterConfig{
		StartTime: timeutil.RoundToStart(now.AddDate(0, 0, -6)),
		EndTime:   now,
	}

	if s := strings.TrimSpace(since); s != "" {
		t, err := timeutil.FromStr(s, now)
		if err != nil {
			return nil, errInvalidDate.Fmt("since", s).Wrap(err)
		}

		f.StartTime = t
	}

	if u := strings.TrimSpace(until); u != "" {
		t, err := timeutil.FromStr(u, now)
		if err != nil {
			return nil, errInvalidDate.Fmt("until", u).Wrap(err)
		}

		f.EndTime = t
	}

	if f.EndTime.Before(f.StartTime) {
		return nil, errInvalidDateRange
	}

	return f, nil
}
