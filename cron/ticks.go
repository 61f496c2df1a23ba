package cron

// ticks counts 100-nanosecond units since 0001-01-01 00:00:00, the unit the
// occurrence finder reasons in internally. Callers never see this type; it
// exists so the finder's comparisons and carries are exact integers instead
// of repeated calendar reconstructions.
type ticks int64

const (
	ticksPerSecond ticks = 10_000_000
	ticksPerMinute       = ticksPerSecond * 60
	ticksPerHour         = ticksPerMinute * 60
	ticksPerDay          = ticksPerHour * 24
)

// maxTicks is the tick value of 2500-01-01 00:00:00, one past the last
// representable instant (spec.md caps recurrence at year 2499).
var maxTicks = ticks(dayNumber(maxYear+1, 1, 1)) * ticksPerDay

// dateTimeToTicks composes a tick count from calendar parts. Seconds,
// minutes and hours must already be range-checked by the caller.
func dateTimeToTicks(year, month, day, hour, min, sec int) ticks {
	days := ticks(dayNumber(year, month, day))
	return days*ticksPerDay + ticks(hour)*ticksPerHour + ticks(min)*ticksPerMinute + ticks(sec)*ticksPerSecond
}

// fillDateTimeParts decomposes a tick count into calendar parts. Any
// sub-second remainder is discarded, matching spec.md §4.B.
func fillDateTimeParts(t ticks) (sec, min, hour, day, month, year int) {
	days := int(t / ticksPerDay)
	rem := t % ticksPerDay
	year, month, day = dateFromDayNumber(days)

	hour = int(rem / ticksPerHour)
	rem %= ticksPerHour
	min = int(rem / ticksPerMinute)
	rem %= ticksPerMinute
	sec = int(rem / ticksPerSecond)
	return
}
