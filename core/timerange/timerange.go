package timerange

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultTimezone is used when a profile does not name a timezone.
const DefaultTimezone = "Europe/Berlin"

// MakeISORange combines two dates (YYYY-MM-DD) and two wall-clock times
// (HH:MM or HH:MM:SS) in the named timezone and returns both instants as
// UTC ISO-8601 strings with a trailing Z.
func MakeISORange(fromDate, fromTime, toDate, toTime, tzName string) (string, string, error) {
	if tzName == "" {
		tzName = DefaultTimezone
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return "", "", fmt.Errorf("unknown timezone %q: %w", tzName, err)
	}

	from, err := combine(fromDate, fromTime, loc)
	if err != nil {
		return "", "", fmt.Errorf("invalid from timestamp: %w", err)
	}
	to, err := combine(toDate, toTime, loc)
	if err != nil {
		return "", "", fmt.Errorf("invalid to timestamp: %w", err)
	}

	return toISO(from), toISO(to), nil
}

// TodayRange returns the range covering the current local day, 00:00:00 to
// 23:59:59, in the named timezone.
func TodayRange(tzName string) (string, string, error) {
	if tzName == "" {
		tzName = DefaultTimezone
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return "", "", fmt.Errorf("unknown timezone %q: %w", tzName, err)
	}
	day := time.Now().In(loc).Format("2006-01-02")
	return MakeISORange(day, "00:00:00", day, "23:59:59", tzName)
}

// NowISOUTC returns the current instant as a second-resolution UTC ISO string.
func NowISOUTC() string {
	return time.Now().UTC().Truncate(time.Second).Format("2006-01-02T15:04:05") + "Z"
}

// ParseISO parses an ISO-8601 string, accepting a trailing Z for UTC, and
// returns the instant in UTC.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

func combine(date, clock string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}, err
	}
	h, m, s, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), h, m, s, 0, loc), nil
}

func parseClock(clock string) (h, m, s int, err error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, fmt.Errorf("time %q not in HH:MM[:SS] form", clock)
	}
	vals := make([]int, 3)
	for i, p := range parts {
		vals[i], err = strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("time %q not in HH:MM[:SS] form", clock)
		}
	}
	return vals[0], vals[1], vals[2], nil
}

func toISO(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05") + "Z"
}
