package main

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOffset(t *testing.T) {
	for _, tt := range []struct {
		hours float64
		want  string
	}{
		{0, "+0:00"},
		{1, "+1:00"},
		{5.5, "+5:30"},
		{5.75, "+5:45"},
		{13, "+13:00"},
		{-3.5, "-3:30"},
		{-8, "-8:00"},
	} {
		assert.Equal(t, tt.want, formatOffset(tt.hours), "offset %v", tt.hours)
	}
}

// parseOffset inverts formatOffset.
func parseOffset(t *testing.T, s string) float64 {
	t.Helper()
	require.Greater(t, len(s), 1)
	sign := 1.0
	switch s[0] {
	case '+':
	case '-':
		sign = -1
	default:
		t.Fatalf("offset %q has no sign", s)
	}
	hh, mm, ok := strings.Cut(s[1:], ":")
	require.True(t, ok, "offset %q", s)
	require.Len(t, mm, 2, "offset %q", s)
	h, err := strconv.Atoi(hh)
	require.NoError(t, err)
	m, err := strconv.Atoi(mm)
	require.NoError(t, err)
	return sign * (float64(h) + float64(m)/60)
}

func TestFormatOffsetMatchesTable(t *testing.T) {
	for key, z := range zones {
		got := parseOffset(t, formatOffset(z.offsetHours))
		assert.InDelta(t, z.offsetHours, got, 1e-9, "zone %s (%s)", key, z.name)
	}
	assert.Equal(t, "+5:30", formatOffset(zones["2"].offsetHours))
}

func TestSortedKeys(t *testing.T) {
	keys := sortedKeys()
	require.Len(t, keys, len(zones))
	assert.Equal(t, "1", keys[0])
	assert.Equal(t, "41", keys[len(keys)-1])
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keyNum(keys[i-1]), keyNum(keys[i]))
	}
}

func TestLookupZone(t *testing.T) {
	z, ok := lookupZone(" 2 ")
	require.True(t, ok)
	assert.Equal(t, "India (IST)", z.name)
	assert.Equal(t, 5.5, z.offsetHours)

	for _, key := range []string{"", "0", "42", "abc", "2a", "-1"} {
		_, ok := lookupZone(key)
		assert.False(t, ok, "key %q", key)
	}
}

func TestZoneLabel(t *testing.T) {
	assert.Equal(t, "India", zones["2"].label())
	assert.Equal(t, "USA - Pacific", zones["25"].label())
	assert.Equal(t, "Plain", zone{name: "Plain"}.label())
}

func TestLocalTimeUTC(t *testing.T) {
	now := time.Now()
	got := localTime(now, zones["1"])
	want := now.UTC().Truncate(time.Second)

	assert.True(t, got.Equal(want), "got %s, want %s", got, want)
	assert.Equal(t, want.Format(time.DateTime), got.Format(time.DateTime))
	assert.Zero(t, got.Nanosecond())
}

func TestLocalTimeDayRollover(t *testing.T) {
	for _, tt := range []struct {
		name     string
		utc      time.Time
		key      string
		wantTime string
		wantDate string
	}{
		{
			name:     "forward half hour",
			utc:      time.Date(2024, 2, 29, 23, 30, 0, 0, time.UTC),
			key:      "2",
			wantTime: "05:00:00",
			wantDate: "Friday, 01 March 2024",
		},
		{
			name:     "backward",
			utc:      time.Date(2024, 1, 1, 2, 0, 0, 0, time.UTC),
			key:      "25",
			wantTime: "18:00:00",
			wantDate: "Sunday, 31 December 2023",
		},
		{
			name:     "new year",
			utc:      time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC),
			key:      "35",
			wantTime: "01:00:00",
			wantDate: "Monday, 01 January 2024",
		},
		{
			name:     "same day",
			utc:      time.Date(2024, 6, 15, 12, 34, 56, 789, time.UTC),
			key:      "3",
			wantTime: "21:34:56",
			wantDate: "Saturday, 15 June 2024",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			lt := localTime(tt.utc, zones[tt.key])
			assert.Equal(t, tt.wantTime, lt.Format(timeLayout))
			assert.Equal(t, tt.wantDate, lt.Format(dateLayout))
		})
	}
}

func TestLocalTimeIgnoresInputLocation(t *testing.T) {
	utc := time.Date(2024, 2, 29, 23, 30, 0, 0, time.UTC)
	elsewhere := utc.In(time.FixedZone("X", -7*3600))
	assert.Equal(t,
		localTime(utc, zones["2"]).Format(time.DateTime),
		localTime(elsewhere, zones["2"]).Format(time.DateTime),
	)
}
