package cron

import (
	"iter"
	"time"
)

// rangeConfig holds the inclusivity of the two endpoints GetOccurrences
// iterates between. Defaults match spec §4.E.3: the start is inclusive,
// the end is not.
type rangeConfig struct {
	fromInclusive bool
	toInclusive   bool
}

// RangeOption configures the endpoint inclusivity of GetOccurrences.
type RangeOption func(*rangeConfig)

// FromExclusive excludes from itself as a candidate occurrence.
func FromExclusive() RangeOption {
	return func(c *rangeConfig) { c.fromInclusive = false }
}

// ToInclusive allows to itself to be returned as the final occurrence.
func ToInclusive() RangeOption {
	return func(c *rangeConfig) { c.toInclusive = true }
}

// GetOccurrences returns a lazy sequence of e's occurrences in [from, to)
// (or as adjusted by opts), produced by repeatedly calling
// GetNextOccurrence with inclusive=false after the first step.
func (e CronExpression) GetOccurrences(from, to time.Time, opts ...RangeOption) (iter.Seq[time.Time], error) {
	if to.Before(from) {
		return nil, newArgumentError("to is before from")
	}

	cfg := rangeConfig{fromInclusive: true, toInclusive: false}
	for _, opt := range opts {
		opt(&cfg)
	}

	seq := func(yield func(time.Time) bool) {
		cur := from
		inclusive := cfg.fromInclusive
		for {
			next, ok := e.GetNextOccurrence(cur, inclusive)
			if !ok {
				return
			}
			if next.After(to) {
				return
			}
			if next.Equal(to) && !cfg.toInclusive {
				return
			}
			if !yield(next) {
				return
			}
			cur = next
			inclusive = false
		}
	}
	return seq, nil
}
