package wise

import (
	"time"

	"wisefeed/internal"
)

// wireTimeFormat is what the WISE search endpoints expect for window
// boundaries. No timezone designator: the platform interprets times in
// the facility's local zone, same as the host clock here.
const wireTimeFormat = "2006-01-02T15:04:05"

// DateWindowFrom computes the start/end of the day daysAhead days after
// now, in now's location.
func DateWindowFrom(now time.Time, daysAhead int) internal.DateWindow {
	target := now.AddDate(0, 0, daysAhead)
	y, m, d := target.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, target.Location())
	end := time.Date(y, m, d, 23, 59, 59, 0, target.Location())
	return internal.DateWindow{Start: start, End: end, TargetDay: target}
}

func NewDateWindow(daysAhead int) internal.DateWindow {
	return DateWindowFrom(time.Now(), daysAhead)
}

func wireTime(t time.Time) string {
	return t.Format(wireTimeFormat)
}
