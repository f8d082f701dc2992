package domain

// FeeLegitimacy classifies an itemized charge from the consumer's side.
type FeeLegitimacy string

const (
	FeeLegitimate FeeLegitimacy = "legitimate"
	FeeNegotiable FeeLegitimacy = "negotiable"
	FeeJunk       FeeLegitimacy = "junk"
)

// FeeAssessment is one input fee plus its classification.
type FeeAssessment struct {
	Name        string        `json:"name"`
	Amount      float64       `json:"amount"`
	Legitimacy  FeeLegitimacy `json:"legitimacy"`
	Explanation string        `json:"explanation"`
}

// Grade is a letter grade with consumer-facing copy.
type Grade struct {
	Letter      string `json:"letter"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// TipPriority orders negotiation tips.
type TipPriority string

const (
	TipHigh   TipPriority = "high"
	TipMedium TipPriority = "medium"
	TipLow    TipPriority = "low"
)

// Tip is one actionable negotiation suggestion. PotentialSavings is
// expressed per month.
type Tip struct {
	Priority         TipPriority `json:"priority"`
	Title            string      `json:"title"`
	Detail           string      `json:"detail"`
	PotentialSavings float64     `json:"potential_savings"`
}

// LeaseAnalysis is the full derived picture of one lease quote. It is a
// pure function of its LeaseInput and has no identity of its own.
type LeaseAnalysis struct {
	GrossCapCost        float64 `json:"gross_cap_cost"`
	AdjustedCapCost     float64 `json:"adjusted_cap_cost"`
	Depreciation        float64 `json:"depreciation"`
	DepreciationPayment float64 `json:"depreciation_payment"`
	RentCharge          float64 `json:"rent_charge"`
	CalculatedPayment   float64 `json:"calculated_payment"`

	MoneyFactor float64 `json:"money_factor"`
	APR         float64 `json:"apr"`

	ResidualPercent      float64 `json:"residual_percent"`
	SellingPriceDiscount float64 `json:"selling_price_discount"`
	OnePercentRule       float64 `json:"one_percent_rule"`

	TotalLeaseCost       float64 `json:"total_lease_cost"`
	EffectiveMonthlyCost float64 `json:"effective_monthly_cost"`

	// Per-period mirrors of the monthly fields above, converted to the
	// input's payment frequency. Display only.
	DepreciationPerPeriod      float64 `json:"depreciation_per_period"`
	RentChargePerPeriod        float64 `json:"rent_charge_per_period"`
	CalculatedPaymentPerPeriod float64 `json:"calculated_payment_per_period"`
	EffectiveCostPerPeriod     float64 `json:"effective_cost_per_period"`

	PaymentDifference     float64 `json:"payment_difference"`
	HasPaymentDiscrepancy bool    `json:"has_payment_discrepancy"`

	FeeAnalysis   []FeeAssessment `json:"fee_analysis"`
	TotalJunkFees float64         `json:"total_junk_fees"`

	OverallGrade      Grade `json:"overall_grade"`
	MoneyFactorGrade  Grade `json:"money_factor_grade"`
	SellingPriceGrade Grade `json:"selling_price_grade"`
	ResidualGrade     Grade `json:"residual_grade"`
	OnePercentGrade   Grade `json:"one_percent_grade"`

	Tips                      []Tip   `json:"tips"`
	PotentialSavingsPerPeriod float64 `json:"potential_savings_per_period"`
	PotentialSavingsTotal     float64 `json:"potential_savings_total"`

	Explanation string `json:"explanation,omitempty"`
}

// AdvisorContext carries the calculator intermediates the negotiation
// advisor needs. The advisor depends on this shape only, never on the
// calculator's internals.
type AdvisorContext struct {
	APR                  float64
	MoneyFactor          float64
	SellingPriceDiscount float64
	ResidualPercent      float64
	OnePercentRule       float64
	TotalJunkFees        float64
	FeeAnalysis          []FeeAssessment
	RentCharge           float64
	DepreciationPayment  float64
	AdjustedCapCost      float64
	Input                LeaseInput
}
