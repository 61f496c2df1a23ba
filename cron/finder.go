package cron

// notFound is returned by findOccurrence when no legal instant exists
// before the year-2499 ceiling.
const notFound ticks = 0

// findOccurrence is the backtracking calendar walk of spec §4.E.1: given a
// tick count and whether that instant itself counts as a match, it returns
// the next tick that satisfies expr, no earlier than from and no later
// than endTicks (pass maxTicks for an effectively unbounded search).
func (expr *CronExpression) findOccurrence(from ticks, inclusive bool, endTicks ticks) ticks {
	if !inclusive {
		from++
	}
	// The walk below works in whole seconds (fillDateTimeParts discards any
	// remainder), so start from the first whole second at or after from.
	if rem := from % ticksPerSecond; rem != 0 {
		from += ticksPerSecond - rem
	}

	sec, min, hr, day, mon, yr := fillDateTimeParts(from)
	startYr, startMon, startDay, startHr, startMin := yr, mon, day, hr, min

	minMatchedDay := expr.dayOfMonth.firstSet()

	// Field advance: forward only, with carry into the next-coarser field.
	if !expr.second.contains(sec) {
		s, ok := expr.second.next(sec)
		sec = s
		if !ok {
			min++
		}
	}
	if !expr.minute.contains(min) {
		m, ok := expr.minute.next(min)
		min = m
		if !ok {
			hr++
		}
	}
	if !expr.hour.contains(hr) {
		h, ok := expr.hour.next(hr)
		hr = h
		if !ok {
			day++
		}
	}

	if expr.flags.has(flagNearestWeekday) {
		// The W modifier may shift backward into the month, so the
		// search must restart from the field minimum.
		day = minMatchedDay
	}

	if !expr.dayOfMonth.contains(day) {
		d, ok := expr.dayOfMonth.next(day)
		day = d
		if !ok {
			goto retryMonth
		}
	}
	if !expr.month.contains(mon) {
		goto retryMonth
	}

retry:
	{
		lastDay := daysInMonth(yr, mon)
		if expr.flags.has(flagDayOfMonthLast) {
			lastDay -= expr.lastMonthOffset
		}
		if day > lastDay {
			goto retryMonth
		}
		if expr.flags.has(flagDayOfMonthLast) {
			day = lastDay
		}
		lastCheckedDay := day

		actualDay := day
		if expr.flags.has(flagNearestWeekday) {
			actualDay = moveToNearestWeekDay(yr, mon, day)
		}

		if isDayOfWeekMatch(expr, yr, mon, actualDay) {
			hh, mm, ss := hr, min, sec
			switch {
			case gregorianGreater(yr, mon, actualDay, startYr, startMon, startDay):
				hh, mm, ss = expr.hour.firstSet(), expr.minute.firstSet(), expr.second.firstSet()
			case hh > startHr:
				mm, ss = expr.minute.firstSet(), expr.second.firstSet()
			case mm > startMin:
				ss = expr.second.firstSet()
			}

			found := dateTimeToTicks(yr, mon, actualDay, hh, mm, ss)
			if found >= from && found <= endTicks {
				return found
			}
		}

		day = lastCheckedDay
		if expr.flags.has(flagDayOfMonthLast) {
			// Exactly one last-day-of-month candidate per month.
			goto retryMonth
		}
		d, ok := expr.dayOfMonth.next(day)
		day = d
		if !ok {
			goto retryMonth
		}
		hr, min, sec = expr.hour.firstSet(), expr.minute.firstSet(), expr.second.firstSet()
		goto retry
	}

retryMonth:
	{
		m, ok := expr.month.next(mon)
		mon = m
		if !ok {
			yr++
			if yr > maxYear {
				return notFound
			}
		}
		day = minMatchedDay
		hr, min, sec = expr.hour.firstSet(), expr.minute.firstSet(), expr.second.firstSet()
		goto retry
	}
}

// isDayOfWeekMatch applies the day-of-week test of spec §4.E.1, treating an
// all-bits-set bitmap as unconstrained and folding bit 7 into Sunday.
func isDayOfWeekMatch(expr *CronExpression, year, month, day int) bool {
	if expr.flags.has(flagDayOfWeekLast) {
		return isLastDayOfWeek(year, month, day) && dayOfWeek(year, month, day) == expr.dayOfWeek.firstSet()%7
	}
	if expr.flags.has(flagNthDayOfWeek) {
		return isNthDayOfWeek(day, expr.nthDayOfWeek) && dayOfWeek(year, month, day) == expr.dayOfWeek.firstSet()%7
	}

	unconstrained := dayOfWeekMask &^ (fieldBits(1) << 7)
	if expr.dayOfWeek&^(fieldBits(1)<<7) == unconstrained {
		return true
	}

	wd := dayOfWeek(year, month, day)
	if expr.dayOfWeek.contains(wd) {
		return true
	}
	return wd == 0 && expr.dayOfWeek.contains(7)
}

func gregorianGreater(y1, m1, d1, y2, m2, d2 int) bool {
	if y1 != y2 {
		return y1 > y2
	}
	if m1 != m2 {
		return m1 > m2
	}
	return d1 > d2
}
