package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntry_ComputeDuration(t *testing.T) {
	t.Parallel()

	day := func(d int) *time.Time {
		ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, d)
		return &ts
	}
	at := func(d int, hour int) *time.Time {
		ts := time.Date(2025, 6, 1, hour, 0, 0, 0, time.UTC).AddDate(0, 0, d)
		return &ts
	}

	tests := []struct {
		name     string
		checkIn  *time.Time
		checkOut *time.Time
		want     int64
	}{
		{name: "exact three days", checkIn: day(0), checkOut: day(3), want: 3},
		{name: "partial day rounds up", checkIn: at(0, 12), checkOut: at(2, 18), want: 3},
		{name: "reversed dates use absolute difference", checkIn: day(5), checkOut: day(2), want: 3},
		{name: "same instant", checkIn: day(1), checkOut: day(1), want: 0},
		{name: "one hour rounds up to a day", checkIn: at(0, 12), checkOut: at(0, 13), want: 1},
		{name: "missing check-out leaves duration alone", checkIn: day(0), checkOut: nil, want: 0},
		{name: "missing check-in leaves duration alone", checkIn: nil, checkOut: day(0), want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			e := &Entry{CheckIn: tc.checkIn, CheckOut: tc.checkOut}
			e.ComputeDuration()
			assert.Equal(t, tc.want, e.Duration)
		})
	}
}

func TestEntry_ComputeDuration_Recomputes(t *testing.T) {
	t.Parallel()

	in := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out := in.AddDate(0, 0, 2)
	e := &Entry{CheckIn: &in, CheckOut: &out, Duration: 99}
	e.ComputeDuration()
	assert.Equal(t, int64(2), e.Duration)
}
