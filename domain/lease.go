package domain

// PaymentFrequency is the cadence of the dealer-quoted payment.
type PaymentFrequency string

const (
	FrequencyMonthly  PaymentFrequency = "monthly"
	FrequencyBiweekly PaymentFrequency = "biweekly"
)

// Fee is a single itemized charge on a lease quote.
type Fee struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// LeaseInput is everything the consumer can read off a dealer quote sheet.
type LeaseInput struct {
	MSRP             float64          `json:"msrp"`
	SellingPrice     float64          `json:"selling_price"`
	DownPayment      float64          `json:"down_payment"`
	TradeInValue     float64          `json:"trade_in_value"`
	Rebates          float64          `json:"rebates"`
	Fees             []Fee            `json:"fees"`
	PaymentFrequency PaymentFrequency `json:"payment_frequency"`
	PaymentAmount    float64          `json:"payment_amount"`
	LeaseTermMonths  int              `json:"lease_term_months"`
	ResidualValue    float64          `json:"residual_value"`
	DueOnDelivery    float64          `json:"due_on_delivery"`
}
