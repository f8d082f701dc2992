package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lease-agent/domain"
)

func TestClassifyFee_Junk(t *testing.T) {
	for _, name := range []string{"Paint Protection", "VIN Etching", "Nitrogen Tire Fill", "Market Adjustment", "Fabric Protection"} {
		legitimacy, explanation := ClassifyFee(name)
		assert.Equal(t, domain.FeeJunk, legitimacy, "fee %q", name)
		assert.NotEmpty(t, explanation)
	}
}

func TestClassifyFee_Legitimate(t *testing.T) {
	for _, name := range []string{"Acquisition Fee", "Disposition Fee", "Registration", "Sales Tax", "First Month Payment"} {
		legitimacy, _ := ClassifyFee(name)
		assert.Equal(t, domain.FeeLegitimate, legitimacy, "fee %q", name)
	}
}

func TestClassifyFee_Negotiable(t *testing.T) {
	for _, name := range []string{"Documentation Fee", "Dealer Prep", "Advertising Fee", "Extended Warranty", "GAP Coverage"} {
		legitimacy, _ := ClassifyFee(name)
		assert.Equal(t, domain.FeeNegotiable, legitimacy, "fee %q", name)
	}
}

func TestClassifyFee_UnknownDefaultsToNegotiable(t *testing.T) {
	legitimacy, explanation := ClassifyFee("Mystery Charge")
	assert.Equal(t, domain.FeeNegotiable, legitimacy)
	assert.Equal(t, defaultFeeExplanation, explanation)
}

func TestClassifyFee_CaseAndWhitespaceInsensitive(t *testing.T) {
	a, _ := ClassifyFee("paint protection")
	b, _ := ClassifyFee("  PAINT PROTECTION  ")
	c, _ := ClassifyFee("Paint Protection")
	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
	assert.Equal(t, domain.FeeJunk, a)
}

func TestClassifyFee_FirstMatchWins(t *testing.T) {
	// "Warranty Registration" matches both the registration rule
	// (legitimate) and the warranty rule (negotiable); the earlier rule
	// decides.
	legitimacy, _ := ClassifyFee("Warranty Registration")
	assert.Equal(t, domain.FeeLegitimate, legitimacy)
}

func TestClassifyFee_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		legitimacy, explanation := ClassifyFee("Doc Fee")
		assert.Equal(t, domain.FeeNegotiable, legitimacy)
		assert.NotEqual(t, defaultFeeExplanation, explanation)
	}
}
