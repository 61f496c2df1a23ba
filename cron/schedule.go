// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cron

import "time"

// Schedule describes a recurring activation pattern. CronExpression
// satisfies it directly; callers composing ad-hoc patterns can also
// implement it with ScheduleFunc.
type Schedule interface {
	// Next returns the next activation time, strictly after t. A returned
	// zero time.Time means the schedule has no further activations.
	Next(t time.Time) time.Time
}

// Next satisfies Schedule, so any CronExpression can be combined with
// Union, Minus or Intersect directly.
func (e CronExpression) Next(t time.Time) time.Time {
	next, ok := e.GetNextOccurrence(t)
	if !ok {
		return time.Time{}
	}
	return next
}

// ScheduleFunc adapts an ordinary function to the Schedule interface.
type ScheduleFunc func(time.Time) time.Time

func (f ScheduleFunc) Next(t time.Time) time.Time {
	return f(t)
}

// Union returns the schedule firing whenever l or r does (l ∪ r).
func Union(l, r Schedule) Schedule {
	return &unionSchedule{l: l, r: r}
}

type unionSchedule struct {
	l, r Schedule
}

func (u *unionSchedule) Next(t time.Time) time.Time {
	t1 := u.l.Next(t)
	t2 := u.r.Next(t)
	if t2.IsZero() || (!t1.IsZero() && t1.Before(t2)) {
		return t1
	}
	return t2
}

// Minus returns the schedule firing whenever l fires but r does not (l - r).
func Minus(l, r Schedule) Schedule {
	return &minusSchedule{l: l, r: r}
}

type minusSchedule struct {
	l, r Schedule
}

func (m *minusSchedule) Next(t time.Time) time.Time {
	t1 := m.l.Next(t)
	t2 := m.r.Next(t)

	for {
		if t2.IsZero() {
			return t1
		}
		if t1.Before(t2) {
			return t1
		}
		if t1.Equal(t2) {
			t1 = m.l.Next(t1)
			t2 = m.r.Next(t2)
			continue
		}
		for !t2.IsZero() && t1.After(t2) {
			t2 = m.r.Next(t2)
		}
	}
}

// Intersect returns the schedule firing only when l and r coincide (l ∩ r).
func Intersect(l, r Schedule) Schedule {
	return &intersectSchedule{l: l, r: r}
}

type intersectSchedule struct {
	l, r Schedule
}

func (i *intersectSchedule) Next(t time.Time) time.Time {
	t1 := i.l.Next(t)
	t2 := i.r.Next(t)
	for {
		if t1.IsZero() || t2.IsZero() {
			return time.Time{}
		}
		if t1.Equal(t2) {
			return t1
		}
		if t1.Before(t2) {
			t1 = i.l.Next(t1)
		} else {
			t2 = i.r.Next(t2)
		}
	}
}
