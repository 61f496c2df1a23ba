package cron

import (
	"testing"
	"time"
)

func newYork(t *testing.T) Zone {
	z, err := LoadZone("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	return z
}

func TestZoneSpringForwardGap(t *testing.T) {
	z := newYork(t)
	// 2020-03-08: US clocks jump from 02:00 to 03:00 local.
	gap := dateTimeToTicks(2020, 3, 8, 2, 30, 0)
	if !z.isInvalidTime(gap) {
		t.Errorf("02:30 on the spring-forward date should be invalid")
	}

	before := dateTimeToTicks(2020, 3, 8, 1, 30, 0)
	if z.isInvalidTime(before) {
		t.Errorf("01:30 should be valid, before the gap")
	}

	start, offset := z.getDaylightTimeStart(gap)
	sec, min, hr, day, mon, yr := fillDateTimeParts(start)
	if yr != 2020 || mon != 3 || day != 8 || hr != 3 || min != 0 || sec != 0 {
		t.Errorf("getDaylightTimeStart = %04d-%02d-%02d %02d:%02d:%02d, want 2020-03-08 03:00:00",
			yr, mon, day, hr, min, sec)
	}
	if offset != -4*3600 {
		t.Errorf("daylight offset = %d, want -14400 (EDT)", offset)
	}
}

func TestZoneFallBackOverlap(t *testing.T) {
	z := newYork(t)
	// 2020-11-01: US clocks fall back from 02:00 to 01:00 local.
	ambiguous := dateTimeToTicks(2020, 11, 1, 1, 30, 0)
	if !z.isAmbiguousTime(ambiguous) {
		t.Errorf("01:30 on the fall-back date should be ambiguous")
	}

	notAmbiguous := dateTimeToTicks(2020, 11, 1, 2, 0, 0)
	if z.isAmbiguousTime(notAmbiguous) {
		t.Errorf("02:00 local (the later boundary) should not be reported ambiguous")
	}

	daylightOffset := z.getDaylightOffset(ambiguous)
	if daylightOffset != -4*3600 {
		t.Errorf("getDaylightOffset = %d, want -14400 (EDT)", daylightOffset)
	}

	end := z.getDaylightTimeEnd(ambiguous)
	sec, min, hr, day, mon, yr := fillDateTimeParts(end)
	if yr != 2020 || mon != 11 || day != 1 || hr != 2 || min != 0 || sec != 0 {
		t.Errorf("getDaylightTimeEnd = %04d-%02d-%02d %02d:%02d:%02d, want 2020-11-01 02:00:00",
			yr, mon, day, hr, min, sec)
	}
}

func TestZoneGetUtcOffsetOrdinaryTime(t *testing.T) {
	z := newYork(t)
	summer := dateTimeToTicks(2020, 7, 1, 12, 0, 0)
	if got := z.getUtcOffset(summer); got != -4*3600 {
		t.Errorf("July offset = %d, want -14400 (EDT)", got)
	}
	winter := dateTimeToTicks(2020, 1, 1, 12, 0, 0)
	if got := z.getUtcOffset(winter); got != -5*3600 {
		t.Errorf("January offset = %d, want -18000 (EST)", got)
	}
}

func TestZoneGetUtcOffsetAmbiguousTime(t *testing.T) {
	z := newYork(t)
	// 01:30 on the fall-back date occurs twice; getUtcOffset must report
	// the standard offset that applies from the transition onward, not
	// whatever the host's own ambiguous-time resolution happens to pick.
	ambiguous := dateTimeToTicks(2020, 11, 1, 1, 30, 0)
	if got := z.getUtcOffset(ambiguous); got != -5*3600 {
		t.Errorf("getUtcOffset(ambiguous) = %d, want -18000 (EST)", got)
	}
}

func TestLocalToAbsolute(t *testing.T) {
	z := newYork(t)
	local := dateTimeToTicks(2020, 7, 1, 12, 0, 0)
	got := localToAbsolute(local, -4*3600, z)
	want := time.Date(2020, 7, 1, 16, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("localToAbsolute = %s, want %s", got, want)
	}
}
