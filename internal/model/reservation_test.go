package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusRefused, true},
		{StatusPending, StatusCancelled, false},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusRefused, false},
		{StatusConfirmed, StatusPending, false},
		{StatusRefused, StatusConfirmed, false},
		{StatusRefused, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{"", StatusConfirmed, false},
		{StatusPending, "", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOverlapsHalfOpenWindows(t *testing.T) {
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	end := base.Add(Duration)

	// identical window clashes
	assert.True(t, Overlaps(base, end, base, end))
	// partial overlap clashes
	assert.True(t, Overlaps(base, end, base.Add(30*time.Minute), end.Add(30*time.Minute)))
	// containment clashes
	assert.True(t, Overlaps(base.Add(-time.Hour), end.Add(time.Hour), base, end))

	// back-to-back windows do not clash: one ends exactly when the next starts
	assert.False(t, Overlaps(base, end, end, end.Add(Duration)))
	assert.False(t, Overlaps(end, end.Add(Duration), base, end))
	// disjoint windows do not clash
	assert.False(t, Overlaps(base, end, end.Add(time.Hour), end.Add(2*time.Hour)))
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusConfirmed, StatusRefused, StatusCancelled} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("DONE"))
	assert.False(t, ValidStatus("pending"))
	assert.False(t, ValidStatus(""))
}

func TestDurationIsOneHour(t *testing.T) {
	assert.Equal(t, time.Hour, Duration)
}
