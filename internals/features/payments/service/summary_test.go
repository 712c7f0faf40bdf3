package service

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	model "eaglesfitness_backend/internals/features/payments/model"
)

func payment(amount float64, ptype, paidAt, periodEnd string) model.Payment {
	return model.Payment{
		PaymentAmount:    amount,
		PaymentType:      ptype,
		PaymentPaidAt:    date(paidAt),
		PaymentPeriodEnd: date(periodEnd),
	}
}

func TestSummarize(t *testing.T) {
	today := date("2024-06-15")
	payments := []model.Payment{
		payment(500, TypeDaily, "2024-06-01", "2024-06-01"),      // expired
		payment(3000, TypeMonthly, "2024-06-05", "2024-06-30"),   // active
		payment(3000, TypeMonthly, "2024-05-02", "2024-05-31"),   // expired
		payment(8000, TypePackage, "2024-05-20", "2024-07-31"),   // active
		payment(15000, TypePackage, "2023-11-10", "2024-01-31"),  // expired
	}

	s := Summarize(payments, today)

	assert.Equal(t, 5, s.TotalCount)
	assert.InDelta(t, 29500, s.TotalAmount, 0.001)
	assert.Equal(t, 1, s.Daily)
	assert.Equal(t, 2, s.Monthly)
	assert.Equal(t, 2, s.Package)
	assert.InDelta(t, 11000, s.ActiveSum, 0.001)
}

func TestSummarize_ActiveBoundaryInclusive(t *testing.T) {
	today := date("2024-06-30")
	payments := []model.Payment{
		payment(3000, TypeMonthly, "2024-06-05", "2024-06-30"), // ends today: active
		payment(3000, TypeMonthly, "2024-06-05", "2024-06-29"), // ended yesterday
	}

	s := Summarize(payments, today)
	assert.InDelta(t, 3000, s.ActiveSum, 0.001)
}

func TestSummarize_OrderInvariant(t *testing.T) {
	payments := []model.Payment{
		payment(500, TypeDaily, "2024-06-01", "2024-06-01"),
		payment(3000, TypeMonthly, "2024-06-05", "2024-06-30"),
		payment(8000, TypePackage, "2024-05-20", "2024-07-31"),
		payment(1000, TypeDaily, "2024-06-10", "2024-06-10"),
		payment(3000, TypeMonthly, "2024-04-02", "2024-04-30"),
		payment(24000, TypePackage, "2024-01-05", "2024-12-31"),
	}
	today := date("2024-06-15")

	want := Summarize(payments, today)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < 20; i++ {
		shuffled := make([]model.Payment, len(payments))
		copy(shuffled, payments)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, Summarize(shuffled, today))
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, date("2024-06-15"))
	assert.Equal(t, Summary{}, s)
}
