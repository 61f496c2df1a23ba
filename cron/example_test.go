// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cron

import (
	"fmt"
	"time"
)

func ExampleMustParse() {
	t := time.Date(2013, time.August, 31, 0, 0, 0, 0, time.UTC)
	expr := MustParse("0 0 29 2 *")

	for i := 0; i < 5; i++ {
		t = expr.Next(t)
		fmt.Println(t.Format(time.RFC1123))
	}
	// Output:
	// Mon, 29 Feb 2016 00:00:00 UTC
	// Sat, 29 Feb 2020 00:00:00 UTC
	// Thu, 29 Feb 2024 00:00:00 UTC
	// Tue, 29 Feb 2028 00:00:00 UTC
	// Sun, 29 Feb 2032 00:00:00 UTC
}

func ExampleCronExpression_String() {
	fmt.Println(Yearly.String())
	fmt.Println(MustParse("0 0 15W * *").String())
	// Output:
	// 0 0 1 1 *
	// 0 0 15W * *
}

func ExampleCronExpression_GetOccurrences() {
	expr := MustParse("0 0 * * *")
	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 1, 4, 0, 0, 0, 0, time.UTC)

	seq, err := expr.GetOccurrences(from, to)
	if err != nil {
		fmt.Println(err)
		return
	}
	for occ := range seq {
		fmt.Println(occ.Format("2006-01-02"))
	}
	// Output:
	// 2020-01-01
	// 2020-01-02
	// 2020-01-03
}
