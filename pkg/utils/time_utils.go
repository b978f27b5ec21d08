package utils

import "time"

// Timestamps are stored as epoch seconds; accrual idempotency works at
// UTC calendar-day granularity.

func NowUnixSeconds() int64 { return time.Now().Unix() }

// SameUTCDay reports whether two epoch-second instants fall on the same
// UTC calendar day. Used as the daily-profit watermark check.
func SameUTCDay(a, b int64) bool {
	ta := time.Unix(a, 0).UTC()
	tb := time.Unix(b, 0).UTC()
	return ta.Year() == tb.Year() && ta.YearDay() == tb.YearDay()
}

// StartOfUTCDay truncates an epoch-second instant to 00:00:00 UTC.
func StartOfUTCDay(ts int64) int64 {
	t := time.Unix(ts, 0).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix()
}

func FromUnixSeconds(ts int64) time.Time {
	if ts <= 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}

func FormatRFC3339(ts int64) string {
	if ts <= 0 {
		return ""
	}
	return time.Unix(ts, 0).UTC().Format(time.RFC3339)
}
