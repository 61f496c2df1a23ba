// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cron parses cron expressions and computes the occurrences they
// describe, with correct behavior across daylight-saving gaps and overlaps.
package cron

import "time"

// GetNextOccurrence returns the closest instant at or after from (or
// strictly after, if inclusive is omitted or false) matching e, in from's
// own time zone. The second return value is false if e has no further
// occurrence before the year-2499 ceiling.
func (e CronExpression) GetNextOccurrence(from time.Time, inclusive ...bool) (time.Time, bool) {
	inc := false
	if len(inclusive) > 0 {
		inc = inclusive[0]
	}
	return nextOccurrence(&e, from, zoneOf(from.Location()), inc)
}
