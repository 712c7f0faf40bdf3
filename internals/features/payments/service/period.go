package service

import (
	"errors"
	"fmt"
	"time"
)

// Payment types.
const (
	TypeDaily   = "daily"
	TypeMonthly = "monthly"
	TypePackage = "package"
)

var ErrPackageDurationTooShort = errors.New("package duration must be at least 2 months")

// Period is an inclusive calendar-date range.
type Period struct {
	Start time.Time
	End   time.Time
}

// ComputePeriod maps a payment type and paid date to the billing period it
// covers. Dates are calendar dates (UTC midnight), no timezone conversion,
// so month boundaries never shift across offsets.
//
//   - daily:   both bounds equal the paid date
//   - monthly: the paid date's full calendar month (duration forced to 1)
//   - package: durationMonths full calendar months starting from the paid
//     date's month; duration must be >= 2
func ComputePeriod(paymentType string, paidAt time.Time, durationMonths int) (Period, error) {
	d := DateOnly(paidAt)

	switch paymentType {
	case TypeDaily:
		return Period{Start: d, End: d}, nil

	case TypeMonthly:
		start := firstOfMonth(d)
		return Period{Start: start, End: lastOfMonth(start)}, nil

	case TypePackage:
		if durationMonths < 2 {
			return Period{}, ErrPackageDurationTooShort
		}
		start := firstOfMonth(d)
		// last day of the (durationMonths-1)-th month after the start month
		end := lastOfMonth(start.AddDate(0, durationMonths-1, 0))
		return Period{Start: start, End: end}, nil

	default:
		return Period{}, fmt.Errorf("unknown payment type %q", paymentType)
	}
}

// NormalizeDuration returns the duration_months stored with the payment:
// 0 for daily, 1 for monthly regardless of caller input, N for package.
func NormalizeDuration(paymentType string, durationMonths int) int {
	switch paymentType {
	case TypeDaily:
		return 0
	case TypeMonthly:
		return 1
	default:
		return durationMonths
	}
}

// DateOnly truncates to a calendar date at UTC midnight.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func firstOfMonth(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func lastOfMonth(d time.Time) time.Time {
	return firstOfMonth(d).AddDate(0, 1, -1)
}
