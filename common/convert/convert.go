package convert

import (
	"time"
)

// Time scale multipliers for exchanges that report unix timestamps in
// units other than milliseconds. The canonical unit across the module is
// milliseconds since epoch, UTC.
const (
	TimeScaleMilliseconds int64 = 1
	TimeScaleSeconds      int64 = 1000
)

// UnixTimestampWithScale converts a raw exchange timestamp to time.Time
// using the supplied scale, e.g. a second-based timestamp with
// TimeScaleSeconds becomes millisecond precision UTC.
func UnixTimestampWithScale(timestamp, scale int64) time.Time {
	return time.UnixMilli(timestamp * scale).UTC()
}

// UnixTimestampToTime returns a UTC time.Time from a second-based unix
// timestamp.
func UnixTimestampToTime(timestamp int64) time.Time {
	return time.Unix(timestamp, 0).UTC()
}

// UnixMillis converts a time.Time to a millisecond unix timestamp.
func UnixMillis(t time.Time) int64 {
	return t.UnixMilli()
}
