package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lease-agent/domain"
)

func TestToMonthly(t *testing.T) {
	assert.InDelta(t, 650.0, ToMonthly(300, domain.FrequencyBiweekly), 1e-9)
	assert.InDelta(t, 650.0, ToMonthly(650, domain.FrequencyMonthly), 1e-9)
}

func TestToPerPeriod(t *testing.T) {
	assert.InDelta(t, 300.0, ToPerPeriod(650, domain.FrequencyBiweekly), 1e-9)
	assert.InDelta(t, 650.0, ToPerPeriod(650, domain.FrequencyMonthly), 1e-9)
}

func TestTotalPayments(t *testing.T) {
	tests := []struct {
		name string
		term int
		freq domain.PaymentFrequency
		want int
	}{
		{"monthly term passes through", 36, domain.FrequencyMonthly, 36},
		{"36 months biweekly is exact", 36, domain.FrequencyBiweekly, 78},
		{"48 months biweekly is exact", 48, domain.FrequencyBiweekly, 104},
		{"39 months biweekly rounds half away from zero", 39, domain.FrequencyBiweekly, 85},
		{"24 months biweekly", 24, domain.FrequencyBiweekly, 52},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPayments(tt.term, tt.freq))
		})
	}
}

func TestPeriodConversionRoundTrip(t *testing.T) {
	amounts := []float64{0, 0.01, 1, 123.45, 299.99, 650, 1234.56, 99999.99}
	for _, freq := range []domain.PaymentFrequency{domain.FrequencyMonthly, domain.FrequencyBiweekly} {
		for _, amount := range amounts {
			got := ToPerPeriod(ToMonthly(amount, freq), freq)
			assert.InDelta(t, amount, got, 1e-9, "freq=%s amount=%f", freq, amount)
		}
	}
}
