package service

import (
	"math"

	"lease-agent/domain"
)

// ToMonthly converts a per-period payment amount to its canonical monthly
// value. Biweekly quotes cover 26 pay periods a year, so they scale by
// 26/12. Monthly amounts pass through unchanged.
func ToMonthly(amount float64, freq domain.PaymentFrequency) float64 {
	if freq == domain.FrequencyBiweekly {
		return amount * biweeklyPeriodsPerYear / monthsPerYear
	}
	return amount
}

// ToPerPeriod is the inverse of ToMonthly.
func ToPerPeriod(monthly float64, freq domain.PaymentFrequency) float64 {
	if freq == domain.FrequencyBiweekly {
		return monthly * monthsPerYear / biweeklyPeriodsPerYear
	}
	return monthly
}

// TotalPayments returns how many payments a term produces at the given
// frequency. Biweekly counts are rarely whole (39 months → 84.5); ties
// round half away from zero, which is what math.Round does.
func TotalPayments(termMonths int, freq domain.PaymentFrequency) int {
	if freq == domain.FrequencyBiweekly {
		return int(math.Round(float64(termMonths) / monthsPerYear * biweeklyPeriodsPerYear))
	}
	return termMonths
}
