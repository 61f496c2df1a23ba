package cron

import "time"

// localTicksOf reads t's civil wall-clock reading in z as ticks.
func localTicksOf(t time.Time, z Zone) ticks {
	lt := t.In(z.loc)
	y, mo, d := lt.Date()
	h, mi, s := lt.Clock()
	return dateTimeToTicks(y, int(mo), d, h, mi, s)
}

// nextOccurrence is the zoned driver of spec §4.E.2: it wraps the UTC-only
// findOccurrence with DST handling, so the result is always a valid,
// unambiguous absolute instant (or the earlier of an ambiguous pair, per
// step 7).
func nextOccurrence(expr *CronExpression, fromUtc time.Time, z Zone, inclusive bool) (time.Time, bool) {
	if z.isUTC() {
		// timeToUTCTicks drops any sub-second part; the floored instant
		// precedes fromUtc, so it must not count as a match.
		if fromUtc.Nanosecond() != 0 {
			inclusive = false
		}
		from := timeToUTCTicks(fromUtc)
		result := expr.findOccurrence(from, inclusive, maxTicks)
		if result == notFound {
			return time.Time{}, false
		}
		return ticksToUTCTime(result), true
	}

	// Sub-second normalization: floor drift near a DST boundary.
	if fromUtc.Nanosecond() != 0 {
		fromUtc = fromUtc.Truncate(time.Second)
		inclusive = false
	}

	fromLocal := localTicksOf(fromUtc, z)

	if z.isAmbiguousTime(fromLocal) {
		_, currentOffset := fromUtc.In(z.loc).Zone()
		standardOffset := z.getUtcOffset(fromLocal)
		ambiguousIntervalEnd := z.getAmbiguousIntervalEnd(fromLocal)

		if currentOffset != standardOffset {
			// Early (daylight-offset) half.
			end := z.getDaylightTimeEnd(fromLocal)
			if result := expr.findOccurrence(fromLocal, inclusive, end-1); result != notFound {
				daylightOffset := z.getDaylightOffset(fromLocal)
				return localToAbsolute(result, daylightOffset, z), true
			}
			fromLocal = z.getStandardTimeStart(fromLocal)
			inclusive = true
		}

		// Late (standard-offset) half.
		if expr.flags.has(flagInterval) {
			if result := expr.findOccurrence(fromLocal, inclusive, ambiguousIntervalEnd-1); result != notFound {
				return localToAbsolute(result, standardOffset, z), true
			}
		}
		fromLocal = ambiguousIntervalEnd
		inclusive = true
	}

	result := expr.findOccurrence(fromLocal, inclusive, maxTicks)
	if result == notFound {
		return time.Time{}, false
	}

	if z.isInvalidTime(result) {
		snapped, offset := z.getDaylightTimeStart(result)
		return localToAbsolute(snapped, offset, z), true
	}
	if z.isAmbiguousTime(result) {
		return localToAbsolute(result, z.getDaylightOffset(result), z), true
	}
	return localToAbsolute(result, z.getUtcOffset(result), z), true
}
