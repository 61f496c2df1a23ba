package cron

import (
	"strconv"
	"strings"
)

// String renders e back into cron syntax. The rendering is canonical
// (numeric lists, "*" for a field's full range) rather than a byte-for-byte
// echo of whatever text Parse originally consumed; spec §8 property 5 only
// requires the built-in constants to round-trip, which canonical rendering
// satisfies.
func (e CronExpression) String() string {
	var fields []string
	if e.flags.has(flagHasSecondsField) {
		fields = append(fields, renderField(e.second, secondMask, secondSpec.min, secondSpec.max))
	}
	fields = append(fields,
		renderField(e.minute, minuteMask, minuteSpec.min, minuteSpec.max),
		renderField(e.hour, hourMask, hourSpec.min, hourSpec.max),
		e.renderDayOfMonth(),
		renderField(e.month, monthMask, monthSpec.min, monthSpec.max),
		e.renderDayOfWeek(),
	)
	return strings.Join(fields, " ")
}

func (e CronExpression) renderDayOfMonth() string {
	switch {
	case e.flags.has(flagDayOfMonthLast) && e.flags.has(flagNearestWeekday):
		return "LW"
	case e.flags.has(flagDayOfMonthLast) && e.lastMonthOffset > 0:
		return "L-" + strconv.Itoa(e.lastMonthOffset)
	case e.flags.has(flagDayOfMonthLast):
		return "L"
	case e.flags.has(flagNearestWeekday):
		return strconv.Itoa(e.dayOfMonth.firstSet()) + "W"
	default:
		return renderField(e.dayOfMonth, dayOfMonthMask, domSpec.min, domSpec.max)
	}
}

func (e CronExpression) renderDayOfWeek() string {
	switch {
	case e.flags.has(flagDayOfWeekLast):
		return strconv.Itoa(e.dayOfWeek.firstSet()) + "L"
	case e.flags.has(flagNthDayOfWeek):
		return strconv.Itoa(e.dayOfWeek.firstSet()) + "#" + strconv.Itoa(e.nthDayOfWeek)
	default:
		// 0 is canonical for Sunday; fold bit 7 (the alias "7") into bit 0
		// before enumerating, per spec §4.F.
		bits := e.dayOfWeek
		if bits.contains(7) {
			bits = bits.set(0) &^ (fieldBits(1) << 7)
		}
		return renderField(bits, rangeBits(0, 6), dowSpec.min, 6)
	}
}

func renderField(bits, fullMask fieldBits, lo, hi int) string {
	if bits == fullMask {
		return "*"
	}

	var parts []string
	for v := lo; v <= hi; v++ {
		if bits.contains(v) {
			parts = append(parts, strconv.Itoa(v))
		}
	}
	if len(parts) == 0 {
		return "*"
	}
	return strings.Join(parts, ",")
}
