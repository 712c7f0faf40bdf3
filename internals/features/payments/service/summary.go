package service

import (
	"time"

	model "eaglesfitness_backend/internals/features/payments/model"
)

// Summary is the read-side aggregate over a payment set. "Active sum" is the
// revenue whose coverage period has not yet ended: settled-but-expired
// package/monthly money is excluded.
type Summary struct {
	TotalAmount float64 `json:"total_amount"`
	TotalCount  int     `json:"total_count"`
	Daily       int     `json:"daily"`
	Monthly     int     `json:"monthly"`
	Package     int     `json:"package"`
	ActiveSum   float64 `json:"active_sum"`
}

// Summarize folds a payment list into totals, per-type counts and the active
// sum. Pure accumulation over the set: result does not depend on input order
// (the store returns newest-first, the aggregator must not care).
// A payment whose period_end equals today still counts as active.
func Summarize(payments []model.Payment, today time.Time) Summary {
	ref := DateOnly(today)

	var s Summary
	for _, p := range payments {
		s.TotalAmount += p.PaymentAmount
		s.TotalCount++

		switch p.PaymentType {
		case TypeDaily:
			s.Daily++
		case TypeMonthly:
			s.Monthly++
		case TypePackage:
			s.Package++
		}

		if !DateOnly(p.PaymentPeriodEnd).Before(ref) {
			s.ActiveSum += p.PaymentAmount
		}
	}
	return s
}
