package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputePeriod_Daily(t *testing.T) {
	for _, d := range []string{"2024-01-01", "2024-02-29", "2024-12-31", "2025-07-15"} {
		p, err := ComputePeriod(TypeDaily, date(d), 0)
		require.NoError(t, err)
		assert.Equal(t, date(d), p.Start, "daily start %s", d)
		assert.Equal(t, date(d), p.End, "daily end %s", d)
	}
}

func TestComputePeriod_Daily_IgnoresTimeOfDay(t *testing.T) {
	paidAt := time.Date(2024, 3, 10, 23, 45, 12, 0, time.FixedZone("x", 5*3600))
	p, err := ComputePeriod(TypeDaily, paidAt, 0)
	require.NoError(t, err)
	assert.Equal(t, date("2024-03-10"), p.Start)
	assert.Equal(t, date("2024-03-10"), p.End)
}

func TestComputePeriod_Monthly(t *testing.T) {
	cases := []struct {
		paidAt, start, end string
	}{
		{"2024-01-15", "2024-01-01", "2024-01-31"},
		{"2024-02-10", "2024-02-01", "2024-02-29"}, // leap year
		{"2023-02-28", "2023-02-01", "2023-02-28"},
		{"2024-04-30", "2024-04-01", "2024-04-30"},
		{"2024-12-01", "2024-12-01", "2024-12-31"},
	}
	for _, tc := range cases {
		p, err := ComputePeriod(TypeMonthly, date(tc.paidAt), 0)
		require.NoError(t, err)
		assert.Equal(t, date(tc.start), p.Start, "monthly start %s", tc.paidAt)
		assert.Equal(t, date(tc.end), p.End, "monthly end %s", tc.paidAt)
	}
}

func TestComputePeriod_Monthly_IgnoresSuppliedDuration(t *testing.T) {
	// the screen always sends something; monthly coverage is one month no
	// matter what
	for _, dur := range []int{0, 1, 6, 12} {
		p, err := ComputePeriod(TypeMonthly, date("2024-05-20"), dur)
		require.NoError(t, err)
		assert.Equal(t, date("2024-05-01"), p.Start)
		assert.Equal(t, date("2024-05-31"), p.End)
	}
}

func TestComputePeriod_Package(t *testing.T) {
	cases := []struct {
		paidAt     string
		months     int
		start, end string
	}{
		{"2024-01-15", 3, "2024-01-01", "2024-03-31"},
		{"2024-01-15", 2, "2024-01-01", "2024-02-29"},
		{"2024-11-05", 3, "2024-11-01", "2025-01-31"}, // crosses year boundary
		{"2024-12-31", 2, "2024-12-01", "2025-01-31"},
		{"2023-12-15", 3, "2023-12-01", "2024-02-29"}, // lands on a leap February
		{"2024-06-01", 12, "2024-06-01", "2025-05-31"},
	}
	for _, tc := range cases {
		p, err := ComputePeriod(TypePackage, date(tc.paidAt), tc.months)
		require.NoError(t, err)
		assert.Equal(t, date(tc.start), p.Start, "package start %s x%d", tc.paidAt, tc.months)
		assert.Equal(t, date(tc.end), p.End, "package end %s x%d", tc.paidAt, tc.months)
	}
}

func TestComputePeriod_Package_RejectsShortDuration(t *testing.T) {
	for _, dur := range []int{1, 0, -3} {
		_, err := ComputePeriod(TypePackage, date("2024-01-15"), dur)
		assert.ErrorIs(t, err, ErrPackageDurationTooShort, "duration %d", dur)
	}
}

func TestComputePeriod_UnknownType(t *testing.T) {
	_, err := ComputePeriod("yearly", date("2024-01-15"), 1)
	assert.Error(t, err)
}

func TestNormalizeDuration(t *testing.T) {
	assert.Equal(t, 0, NormalizeDuration(TypeDaily, 5))
	assert.Equal(t, 1, NormalizeDuration(TypeMonthly, 7))
	assert.Equal(t, 6, NormalizeDuration(TypePackage, 6))
}
