package cron

import (
	"strconv"
	"strings"
)

// parseConfig selects the grammar Parse uses. The zero value is the
// standard 5-field grammar.
type parseConfig struct {
	includeSeconds bool
}

// ParseOption configures how Parse interprets an expression string.
type ParseOption func(*parseConfig)

// IncludeSeconds selects the 6-field grammar (sec min hour dom month dow)
// instead of the standard 5-field grammar.
func IncludeSeconds() ParseOption {
	return func(c *parseConfig) { c.includeSeconds = true }
}

// Parse converts expression text into a CronExpression. An error is
// returned for empty input, unknown tokens, out-of-range numbers,
// malformed ranges/steps, conflicting extensions, or a wrong field count.
func Parse(expression string, opts ...ParseOption) (CronExpression, error) {
	cfg := parseConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	trimmed := strings.TrimSpace(expression)
	if trimmed == "" {
		return CronExpression{}, &ParseError{Expression: expression, Reason: "empty expression"}
	}

	if strings.HasPrefix(trimmed, "@") {
		expr, err := parseMacro(trimmed)
		if err != nil {
			return CronExpression{}, withExpression(err, expression)
		}
		return expr, nil
	}

	fields := strings.Fields(trimmed)
	expected := 5
	if cfg.includeSeconds {
		expected = 6
	}
	if len(fields) != expected {
		return CronExpression{}, &ParseError{
			Expression: expression,
			Reason:     "expected " + strconv.Itoa(expected) + " fields, got " + strconv.Itoa(len(fields)),
		}
	}

	expr, err := parseStandardFields(fields, cfg.includeSeconds)
	if err != nil {
		return CronExpression{}, withExpression(err, expression)
	}
	return expr, nil
}

// MustParse is like Parse but panics on error.
func MustParse(expression string, opts ...ParseOption) CronExpression {
	expr, err := Parse(expression, opts...)
	if err != nil {
		panic(err)
	}
	return expr
}

// TryParse is like Parse but reports parse errors as a boolean instead of
// an error value. Argument validation is never caught here; there is none
// at parse time.
func TryParse(expression string, opts ...ParseOption) (CronExpression, bool) {
	expr, err := Parse(expression, opts...)
	if err != nil {
		return CronExpression{}, false
	}
	return expr, true
}

func withExpression(err error, expression string) error {
	if pe, ok := err.(*ParseError); ok {
		pe.Expression = expression
	}
	return err
}

func parseMacro(spec string) (CronExpression, error) {
	switch spec {
	case "@yearly", "@annually":
		return Yearly, nil
	case "@monthly":
		return Monthly, nil
	case "@weekly":
		return Weekly, nil
	case "@daily", "@midnight":
		return Daily, nil
	case "@hourly":
		return Hourly, nil
	case "@every_second":
		return EverySecond, nil
	default:
		return CronExpression{}, &ParseError{Reason: "unrecognized macro '" + spec + "'"}
	}
}

func parseStandardFields(fields []string, includeSeconds bool) (CronExpression, error) {
	idx := 0
	var expr CronExpression

	if includeSeconds {
		sec, err := parseListField(secondSpec, fields[idx])
		if err != nil {
			return CronExpression{}, err
		}
		expr.second = sec
		expr.flags |= flagHasSecondsField
		idx++
	} else {
		expr.second = secondSentinel
	}

	minute, err := parseListField(minuteSpec, fields[idx])
	if err != nil {
		return CronExpression{}, err
	}
	expr.minute = minute
	idx++

	hour, err := parseListField(hourSpec, fields[idx])
	if err != nil {
		return CronExpression{}, err
	}
	expr.hour = hour
	idx++

	if err := parseDayOfMonthField(&expr, fields[idx]); err != nil {
		return CronExpression{}, err
	}
	idx++

	month, err := parseListField(monthSpec, fields[idx])
	if err != nil {
		return CronExpression{}, err
	}
	expr.month = month
	idx++

	if err := parseDayOfWeekField(&expr, fields[idx]); err != nil {
		return CronExpression{}, err
	}
	idx++

	if err := validate(&expr); err != nil {
		return CronExpression{}, err
	}
	computeIntervalFlag(&expr)
	return expr, nil
}

// parseDayOfMonthField handles the day-of-month field, including its L,
// L-n, LW, dW and ? extensions. Per spec §3 invariant 2/4, L/L-n/LW/dW
// extensions must be the field's sole entry.
func parseDayOfMonthField(expr *CronExpression, field string) error {
	if field == "?" {
		expr.dayOfMonth = dayOfMonthMask
		return nil
	}
	if strings.Contains(field, ",") {
		if strings.Contains(field, "L") || strings.HasSuffix(field, "W") {
			return &ParseError{Field: domSpec.name, Reason: "L/W extensions cannot be combined with a list"}
		}
		bits, err := parseListField(domSpec, field)
		if err != nil {
			return err
		}
		expr.dayOfMonth = bits
		return nil
	}

	switch {
	case field == "L":
		expr.dayOfMonth = dayOfMonthMask
		expr.flags |= flagDayOfMonthLast
		return nil
	case field == "LW":
		expr.dayOfMonth = dayOfMonthMask
		expr.flags |= flagDayOfMonthLast | flagNearestWeekday
		return nil
	case strings.HasPrefix(field, "L-"):
		n, err := strconv.Atoi(field[2:])
		if err != nil || n < 0 || n > 30 {
			return &ParseError{Field: domSpec.name, Reason: "invalid L-n offset '" + field + "'"}
		}
		expr.dayOfMonth = dayOfMonthMask
		expr.flags |= flagDayOfMonthLast
		expr.lastMonthOffset = n
		return nil
	case strings.HasSuffix(field, "W"):
		n, err := strconv.Atoi(field[:len(field)-1])
		if err != nil || n < domSpec.min || n > domSpec.max {
			return &ParseError{Field: domSpec.name, Reason: "invalid nearest-weekday day '" + field + "'"}
		}
		expr.dayOfMonth = fieldBits(0).set(n)
		expr.flags |= flagNearestWeekday
		return nil
	}

	bits, err := parseListField(domSpec, field)
	if err != nil {
		return err
	}
	expr.dayOfMonth = bits
	return nil
}

// parseDayOfWeekField handles the day-of-week field, including its dL and
// d#n extensions. Per spec §3 invariant 3, each requires exactly one
// day-of-week bit, so these must be the field's sole entry.
func parseDayOfWeekField(expr *CronExpression, field string) error {
	if field == "?" {
		expr.dayOfWeek = dayOfWeekMask
		return nil
	}

	if idx := strings.IndexByte(field, '#'); idx != -1 {
		dayTok, nTok := field[:idx], field[idx+1:]
		day, ok := lookupValue(dayTok, dowSpec.nameOf)
		if !ok || day < dowSpec.min || day > dowSpec.max {
			return &ParseError{Field: dowSpec.name, Reason: "invalid weekday in '" + field + "'"}
		}
		n, err := strconv.Atoi(nTok)
		if err != nil || n < 1 || n > 5 {
			return &ParseError{Field: dowSpec.name, Reason: "invalid ordinal in '" + field + "'"}
		}
		expr.dayOfWeek = fieldBits(0).set(day)
		expr.nthDayOfWeek = n
		expr.flags |= flagNthDayOfWeek
		return nil
	}

	if strings.HasSuffix(field, "L") && field != "L" {
		dayTok := field[:len(field)-1]
		day, ok := lookupValue(dayTok, dowSpec.nameOf)
		if !ok || day < dowSpec.min || day > dowSpec.max {
			return &ParseError{Field: dowSpec.name, Reason: "invalid weekday in '" + field + "'"}
		}
		expr.dayOfWeek = fieldBits(0).set(day)
		expr.flags |= flagDayOfWeekLast
		return nil
	}

	bits, err := parseListField(dowSpec, field)
	if err != nil {
		return err
	}
	expr.dayOfWeek = bits
	return nil
}

// validate enforces the structural invariants of spec §3.
func validate(expr *CronExpression) error {
	if expr.second.isEmpty() || expr.minute.isEmpty() || expr.hour.isEmpty() || expr.month.isEmpty() {
		return &ParseError{Reason: "field has no legal values"}
	}
	if !expr.flags.has(flagDayOfMonthLast) && expr.dayOfMonth.isEmpty() {
		return &ParseError{Field: domSpec.name, Reason: "field has no legal values"}
	}
	if !expr.flags.has(flagDayOfWeekLast) && !expr.flags.has(flagNthDayOfWeek) && expr.dayOfWeek.isEmpty() {
		return &ParseError{Field: dowSpec.name, Reason: "field has no legal values"}
	}
	if expr.flags.has(flagNearestWeekday) && !expr.flags.has(flagDayOfMonthLast) && expr.dayOfMonth.count() != 1 {
		return &ParseError{Field: domSpec.name, Reason: "W requires a single day of month"}
	}
	if (expr.flags.has(flagDayOfWeekLast) || expr.flags.has(flagNthDayOfWeek)) && expr.dayOfWeek.count() != 1 {
		return &ParseError{Field: dowSpec.name, Reason: "L/# requires a single day of week"}
	}
	return nil
}

// computeIntervalFlag sets flagInterval when the second, minute or hour
// field is not a single point, the hint the DST overlap driver uses: only
// such an expression can match more than one time of day, so only it fires
// again in the repeated hour of a fall-back overlap.
func computeIntervalFlag(expr *CronExpression) {
	interval := expr.second.count() > 1 ||
		expr.minute.count() > 1 ||
		expr.hour.count() > 1
	if interval {
		expr.flags |= flagInterval
	}
}
