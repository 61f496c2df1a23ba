package cron

import (
	"strconv"
	"strings"
)

// nameLookup resolves a textual token (e.g. "JAN", "mon") to its numeric
// value. Returns false if tok isn't a recognized name.
type nameLookup func(tok string) (int, bool)

func monthName(tok string) (int, bool) {
	switch strings.ToLower(tok) {
	case "jan", "january":
		return 1, true
	case "feb", "february":
		return 2, true
	case "mar", "march":
		return 3, true
	case "apr", "april":
		return 4, true
	case "may":
		return 5, true
	case "jun", "june":
		return 6, true
	case "jul", "july":
		return 7, true
	case "aug", "august":
		return 8, true
	case "sep", "september":
		return 9, true
	case "oct", "october":
		return 10, true
	case "nov", "november":
		return 11, true
	case "dec", "december":
		return 12, true
	default:
		return 0, false
	}
}

func weekdayName(tok string) (int, bool) {
	switch strings.ToLower(tok) {
	case "sun", "sunday":
		return 0, true
	case "mon", "monday":
		return 1, true
	case "tue", "tuesday":
		return 2, true
	case "wed", "wednesday":
		return 3, true
	case "thu", "thursday":
		return 4, true
	case "fri", "friday":
		return 5, true
	case "sat", "saturday":
		return 6, true
	default:
		return 0, false
	}
}

// lookupValue resolves tok as a plain integer or, if nameOf is given, as a
// recognized name.
func lookupValue(tok string, nameOf nameLookup) (int, bool) {
	if n, err := strconv.Atoi(tok); err == nil {
		return n, true
	}
	if nameOf != nil {
		return nameOf(tok)
	}
	return 0, false
}

func steppedRange(lo, hi, step int) fieldBits {
	var b fieldBits
	for i := lo; i <= hi; i += step {
		b = b.set(i)
	}
	return b
}

// fieldSpec describes the legal numeric range of a field and, for month and
// day-of-week, how to resolve name tokens.
type fieldSpec struct {
	name     string
	min, max int
	nameOf   nameLookup
}

var (
	secondSpec = fieldSpec{"second", 0, 59, nil}
	minuteSpec = fieldSpec{"minute", 0, 59, nil}
	hourSpec   = fieldSpec{"hour", 0, 23, nil}
	monthSpec  = fieldSpec{"month", 1, 12, monthName}
	domSpec    = fieldSpec{"day of month", 1, 31, nil}
	dowSpec    = fieldSpec{"day of week", 0, 7, weekdayName}
)

// parseEntry parses a single (non-comma-separated) token against spec,
// returning the bits it sets. It handles "*", "a", "a-b", "*/step" and
// "a-b/step" and "a/step" (meaning a through spec.max, stepped).
func parseEntry(spec fieldSpec, entry string) (fieldBits, error) {
	if entry == "*" {
		return rangeBits(spec.min, spec.max), nil
	}

	if idx := strings.IndexByte(entry, '/'); idx != -1 {
		base, stepStr := entry[:idx], entry[idx+1:]
		step, err := strconv.Atoi(stepStr)
		if err != nil || step < 1 {
			return 0, newFieldError(spec, entry)
		}

		var lo, hi int
		switch {
		case base == "*":
			lo, hi = spec.min, spec.max
		case strings.IndexByte(base, '-') != -1:
			var err error
			lo, hi, err = parseRange(spec, base)
			if err != nil {
				return 0, err
			}
		default:
			v, ok := lookupValue(base, spec.nameOf)
			if !ok || v < spec.min || v > spec.max {
				return 0, newFieldError(spec, entry)
			}
			lo, hi = v, spec.max
		}
		return steppedRange(lo, hi, step), nil
	}

	if strings.IndexByte(entry, '-') != -1 {
		lo, hi, err := parseRange(spec, entry)
		if err != nil {
			return 0, err
		}
		return rangeBits(lo, hi), nil
	}

	v, ok := lookupValue(entry, spec.nameOf)
	if !ok || v < spec.min || v > spec.max {
		return 0, newFieldError(spec, entry)
	}
	return fieldBits(0).set(v), nil
}

func parseRange(spec fieldSpec, entry string) (lo, hi int, err error) {
	idx := strings.IndexByte(entry, '-')
	loTok, hiTok := entry[:idx], entry[idx+1:]
	lo, ok1 := lookupValue(loTok, spec.nameOf)
	hi, ok2 := lookupValue(hiTok, spec.nameOf)
	if !ok1 || !ok2 || lo < spec.min || hi > spec.max || lo > hi {
		return 0, 0, newFieldError(spec, entry)
	}
	return lo, hi, nil
}

// parseListField parses a comma-separated field against spec, unioning the
// bits of each entry.
func parseListField(spec fieldSpec, field string) (fieldBits, error) {
	var bits fieldBits
	for _, entry := range strings.Split(field, ",") {
		b, err := parseEntry(spec, entry)
		if err != nil {
			return 0, err
		}
		bits |= b
	}
	return bits, nil
}

func newFieldError(spec fieldSpec, entry string) error {
	return &ParseError{Field: spec.name, Reason: "syntax error near '" + entry + "'"}
}
