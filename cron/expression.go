package cron

// cronFlags records which of the irregular extensions an expression uses.
type cronFlags uint8

const (
	flagDayOfMonthLast cronFlags = 1 << iota
	flagDayOfWeekLast
	flagNthDayOfWeek
	flagNearestWeekday
	flagInterval
	// flagHasSecondsField distinguishes a 6-field expression whose seconds
	// field happens to be literal "0" from the 5-field grammar's implicit
	// zero seconds; both produce the same second bitmap, so String()
	// cannot tell them apart from the bitmap alone.
	flagHasSecondsField
)

func (f cronFlags) has(flag cronFlags) bool { return f&flag != 0 }

// secondSentinel is the bitmap value meaning "seconds default to 0",
// produced by the 5-field (standard) grammar. See spec §3.
const secondSentinel fieldBits = 1

// Field range masks, used by the parser for "*" and by validation.
const (
	secondMask     fieldBits = 1<<60 - 1 // bits 0..59
	minuteMask               = secondMask
	hourMask       fieldBits = 1<<24 - 1        // bits 0..23
	dayOfMonthMask fieldBits = (1<<32 - 1) &^ 1 // bits 1..31
	monthMask      fieldBits = (1<<13 - 1) &^ 1 // bits 1..12
	dayOfWeekMask  fieldBits = 1<<8 - 1         // bits 0..7
)

// CronExpression is an immutable, value-equal parsed cron expression. Zero
// values are not valid expressions; construct one via Parse, MustParse,
// TryParse or one of the package-level constants.
type CronExpression struct {
	second          fieldBits
	minute          fieldBits
	hour            fieldBits
	dayOfMonth      fieldBits
	month           fieldBits
	dayOfWeek       fieldBits
	nthDayOfWeek    int
	lastMonthOffset int
	flags           cronFlags
}

// Equal reports whether two expressions are structurally identical.
func (e CronExpression) Equal(other CronExpression) bool {
	return e == other
}

// IsZero reports whether e is the unconstructed zero value.
func (e CronExpression) IsZero() bool {
	return e == CronExpression{}
}

// Built-in constants, matching the conventional cron macros. Their String()
// forms are part of the public contract (spec §8 property 5).
var (
	// Yearly fires at midnight on January 1st: "0 0 1 1 *".
	Yearly = CronExpression{
		second: secondSentinel, minute: fieldBits(1), hour: fieldBits(1),
		dayOfMonth: fieldBits(1) << 1, month: fieldBits(1) << 1, dayOfWeek: dayOfWeekMask,
	}
	// Monthly fires at midnight on the 1st of every month: "0 0 1 * *".
	Monthly = CronExpression{
		second: secondSentinel, minute: fieldBits(1), hour: fieldBits(1),
		dayOfMonth: fieldBits(1) << 1, month: monthMask, dayOfWeek: dayOfWeekMask,
	}
	// Weekly fires at midnight every Sunday: "0 0 * * 0".
	Weekly = CronExpression{
		second: secondSentinel, minute: fieldBits(1), hour: fieldBits(1),
		dayOfMonth: dayOfMonthMask, month: monthMask, dayOfWeek: fieldBits(1),
	}
	// Daily fires at midnight every day: "0 0 * * *".
	Daily = CronExpression{
		second: secondSentinel, minute: fieldBits(1), hour: fieldBits(1),
		dayOfMonth: dayOfMonthMask, month: monthMask, dayOfWeek: dayOfWeekMask,
	}
	// Hourly fires at the top of every hour: "0 * * * *".
	Hourly = CronExpression{
		second: secondSentinel, minute: fieldBits(1), hour: hourMask,
		dayOfMonth: dayOfMonthMask, month: monthMask, dayOfWeek: dayOfWeekMask,
		flags: flagInterval,
	}
	// EveryMinute fires once a second 0 of every minute: "* * * * *".
	EveryMinute = CronExpression{
		second: secondSentinel, minute: minuteMask, hour: hourMask,
		dayOfMonth: dayOfMonthMask, month: monthMask, dayOfWeek: dayOfWeekMask,
		flags: flagInterval,
	}
	// EverySecond fires every second: "* * * * * *".
	EverySecond = CronExpression{
		second: secondMask, minute: minuteMask, hour: hourMask,
		dayOfMonth: dayOfMonthMask, month: monthMask, dayOfWeek: dayOfWeekMask,
		flags: flagInterval | flagHasSecondsField,
	}
)
