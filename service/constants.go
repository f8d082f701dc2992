package service

const (
	MaxMSRP            = 10_000_000.0 // sanity cap for vehicle prices
	MaxLeaseTermMonths = 120
	MaxFeesPerQuote    = 50
	MaxFeeAmount       = 100_000.0

	// Money factor × 2400 approximates APR%. Industry constant.
	aprPerMoneyFactor = 2400.0

	// Dealers round their quoted payment; differences inside this band
	// are not flagged as discrepancies.
	paymentTolerance = 2.0

	biweeklyPeriodsPerYear = 26.0
	monthsPerYear          = 12.0

	// Advisor thresholds.
	highAPRThreshold     = 4.0
	moderateAPRThreshold = 2.0
	referenceAPR         = 3.0
	stretchReferenceAPR  = 1.5

	minAcceptableDiscountPct = 3.0
	targetDiscountPct        = 6.0

	downPaymentRiskThreshold = 500.0
	onePercentBenchmark      = 1.3
	maxTipsBeforeFallback    = 5

	negotiableRecoveryRate = 0.5

	// Monthly-savings floors below which a tip is noise.
	aprTipFloor        = 5.0
	priceTipFloor      = 5.0
	negotiableTipFloor = 3.0

	// Junk-fee penalty on the composite grade.
	junkPenaltyDivisor = 1000.0
	junkPenaltyCap     = 1.5
)
