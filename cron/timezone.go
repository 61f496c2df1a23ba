package cron

import "time"

// Zone wraps the host's time zone database, the black box spec §6 treats
// the finder as consuming through eight predicates. Grounded in
// go-chrono-chrono's Zone (zones.go), which wraps *time.Location the same
// way; we add the ambiguous/invalid-time contract §4.C requires, built from
// Time.ZoneBounds (the standard way to locate a zone's offset transitions
// without a second tz library).
type Zone struct {
	loc *time.Location
}

// UTC is the zone with no DST transitions.
func UTC() Zone { return Zone{loc: time.UTC} }

// LoadZone loads a named IANA zone from the host tz database.
func LoadZone(name string) (Zone, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Zone{}, err
	}
	return Zone{loc: loc}, nil
}

// zoneOf wraps an existing *time.Location, defaulting a nil location to UTC
// (the zero value of time.Time carries UTC).
func zoneOf(loc *time.Location) Zone {
	if loc == nil {
		return UTC()
	}
	return Zone{loc: loc}
}

func (z Zone) isUTC() bool {
	return z.loc == nil || z.loc == time.UTC
}

// transition describes the DST offset change nearest a queried wall-clock
// instant, expressed as local ticks on both sides of the jump.
type transition struct {
	exists                bool
	curOffset, prevOffset int   // seconds; curOffset applies at and after the jump
	boundaryCur           ticks // local reading at the jump instant, under curOffset
	boundaryPrev          ticks // local reading at the jump instant, under prevOffset
}

// nearestTransition locates the DST transition nearest wall: of the two
// transitions bounding the zone period that the host resolves wall to, the
// closer one. Transitions are always far apart (months) relative to a DST
// jump (1-2 hours), so whichever side of an ambiguous or invalid wall clock
// the host picks, the returned transition is the relevant one.
func (z Zone) nearestTransition(wall ticks) transition {
	if z.isUTC() {
		return transition{}
	}

	sec, min, hr, day, mon, yr := fillDateTimeParts(wall)
	guess := time.Date(yr, time.Month(mon), day, hr, min, sec, 0, z.loc)
	start, end := guess.ZoneBounds()
	if !end.IsZero() && (start.IsZero() || end.Sub(guess) < guess.Sub(start)) {
		start = end
	}
	if start.IsZero() {
		return transition{}
	}

	_, curOffset := start.Zone()
	_, prevOffset := start.Add(-time.Nanosecond).Zone()
	if curOffset == prevOffset {
		return transition{}
	}

	y, mo, d := start.In(z.loc).Date()
	h, mi, s := start.In(z.loc).Clock()
	boundaryCur := dateTimeToTicks(y, int(mo), d, h, mi, s)
	boundaryPrev := boundaryCur + ticks(prevOffset-curOffset)*ticksPerSecond

	return transition{
		exists:       true,
		curOffset:    curOffset,
		prevOffset:   prevOffset,
		boundaryCur:  boundaryCur,
		boundaryPrev: boundaryPrev,
	}
}

// offsetAt returns the zone's UTC offset, in seconds, at the given local
// wall-clock instant. Only meaningful for non-ambiguous, non-invalid wall.
func (z Zone) offsetAt(wall ticks) int {
	if z.isUTC() {
		return 0
	}
	sec, min, hr, day, mon, yr := fillDateTimeParts(wall)
	t := time.Date(yr, time.Month(mon), day, hr, min, sec, 0, z.loc)
	_, offset := t.Zone()
	return offset
}

// isAmbiguousTime reports whether wall occurs twice, during a fall-back
// transition. The earlier boundary of the overlap is ambiguous; the later
// boundary is not (spec §4.C).
func (z Zone) isAmbiguousTime(wall ticks) bool {
	tr := z.nearestTransition(wall)
	return tr.exists && tr.curOffset < tr.prevOffset && wall >= tr.boundaryCur && wall < tr.boundaryPrev
}

// isInvalidTime reports whether wall falls in a spring-forward gap.
func (z Zone) isInvalidTime(wall ticks) bool {
	tr := z.nearestTransition(wall)
	return tr.exists && tr.curOffset > tr.prevOffset && wall >= tr.boundaryPrev && wall < tr.boundaryCur
}

// getUtcOffset returns the UTC offset in effect at wall. For wall inside a
// fall-back overlap, time.Date's own choice of offset is host-dependent
// (spec §4.C: the adapter, not the host, owns ambiguous-time semantics), so
// ambiguous wall is biased explicitly to the offset that applies from the
// transition onward, rather than delegating to offsetAt.
func (z Zone) getUtcOffset(wall ticks) int {
	tr := z.nearestTransition(wall)
	if tr.exists && tr.curOffset < tr.prevOffset && wall >= tr.boundaryCur && wall < tr.boundaryPrev {
		return tr.curOffset
	}
	return z.offsetAt(wall)
}

// getDaylightOffset returns the DST-active offset applicable around wall.
func (z Zone) getDaylightOffset(wall ticks) int {
	tr := z.nearestTransition(wall)
	if tr.exists && tr.curOffset < tr.prevOffset {
		return tr.prevOffset
	}
	return z.offsetAt(wall)
}

// getDaylightTimeStart returns the first valid local instant at or after a
// spring-forward jump, and its offset.
func (z Zone) getDaylightTimeStart(wall ticks) (ticks, int) {
	tr := z.nearestTransition(wall)
	if tr.exists && tr.curOffset > tr.prevOffset {
		return tr.boundaryCur, tr.curOffset
	}
	return wall, z.offsetAt(wall)
}

// getDaylightTimeEnd returns the boundary at which the daylight offset ends
// during a fall-back overlap (the "second" reading of the repeated hour).
func (z Zone) getDaylightTimeEnd(wall ticks) ticks {
	tr := z.nearestTransition(wall)
	if tr.exists && tr.curOffset < tr.prevOffset {
		return tr.boundaryPrev
	}
	return wall
}

// getStandardTimeStart returns the first standard-offset local instant
// corresponding to a fall-back overlap window.
func (z Zone) getStandardTimeStart(wall ticks) ticks {
	tr := z.nearestTransition(wall)
	if tr.exists && tr.curOffset < tr.prevOffset {
		return tr.boundaryCur
	}
	return wall
}

// getAmbiguousIntervalEnd returns the local instant strictly after which
// clocks are unambiguous again.
func (z Zone) getAmbiguousIntervalEnd(wall ticks) ticks {
	return z.getDaylightTimeEnd(wall)
}

// ticksToUTCTime builds an absolute time.Time from a tick count, treating
// the parts as a UTC civil reading.
func ticksToUTCTime(t ticks) time.Time {
	sec, min, hr, day, mon, yr := fillDateTimeParts(t)
	return time.Date(yr, time.Month(mon), day, hr, min, sec, 0, time.UTC)
}

// timeToUTCTicks converts an absolute time.Time into ticks, via its UTC
// civil reading.
func timeToUTCTicks(t time.Time) ticks {
	u := t.UTC()
	y, mo, d := u.Date()
	h, mi, s := u.Clock()
	return dateTimeToTicks(y, int(mo), d, h, mi, s)
}

// localToAbsolute builds the absolute instant for a local wall-clock
// reading known to apply offsetSeconds, expressed in z. Building through
// UTC arithmetic (instead of time.Date in loc) sidesteps the host's
// internal disambiguation of ambiguous/invalid local times, since the
// caller already knows exactly which offset applies.
func localToAbsolute(local ticks, offsetSeconds int, z Zone) time.Time {
	utc := local - ticks(offsetSeconds)*ticksPerSecond
	return ticksToUTCTime(utc).In(z.loc)
}
