package cron

import (
	"testing"
	"time"
)

func TestGetOccurrencesDefaultRange(t *testing.T) {
	expr := MustParse("0 * * * *")
	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 1, 1, 3, 0, 0, 0, time.UTC)

	seq, err := expr.GetOccurrences(from, to)
	if err != nil {
		t.Fatalf("GetOccurrences: %v", err)
	}

	var got []time.Time
	for occ := range seq {
		got = append(got, occ)
	}

	want := []time.Time{
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 1, 1, 1, 0, 0, 0, time.UTC),
		time.Date(2020, 1, 1, 2, 0, 0, 0, time.UTC),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d occurrences, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("occurrence %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestGetOccurrencesToInclusive(t *testing.T) {
	expr := MustParse("0 * * * *")
	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 1, 1, 2, 0, 0, 0, time.UTC)

	seq, err := expr.GetOccurrences(from, to, ToInclusive())
	if err != nil {
		t.Fatalf("GetOccurrences: %v", err)
	}

	count := 0
	for range seq {
		count++
	}
	if count != 3 {
		t.Errorf("got %d occurrences, want 3", count)
	}
}

func TestGetOccurrencesRejectsInvertedRange(t *testing.T) {
	expr := MustParse("0 * * * *")
	from := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := expr.GetOccurrences(from, to)
	if err == nil {
		t.Fatal("expected an ArgumentError")
	}
	var ae *ArgumentError
	if !asArgumentError(err, &ae) {
		t.Errorf("expected *ArgumentError, got %T", err)
	}
}

func asArgumentError(err error, target **ArgumentError) bool {
	ae, ok := err.(*ArgumentError)
	if !ok {
		return false
	}
	*target = ae
	return true
}
