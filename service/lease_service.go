package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"math"

	"go.uber.org/zap"

	"lease-agent/domain"
	"lease-agent/repository"
)

// roundTo2Decimals rounds a float64 to 2 decimals.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

type LeaseService struct {
	repo      repository.AnalysisRepository
	cache     repository.CacheRepository
	explainer *Explainer
}

// NewLeaseService creates a new LeaseService with the given repository,
// cache and explainer.
func NewLeaseService(repo repository.AnalysisRepository,
	cache repository.CacheRepository,
	explainer *Explainer,
) *LeaseService {
	return &LeaseService{repo: repo, cache: cache, explainer: explainer}
}

// Analyze validates a lease quote and runs the full analysis pipeline.
// The computation itself is pure; the cache and repository sit around it.
func (s *LeaseService) Analyze(
	ctx context.Context,
	input domain.LeaseInput,
) (domain.LeaseAnalysis, error) {

	if err := validateInput(input); err != nil {
		return domain.LeaseAnalysis{}, err
	}

	cacheKey, keyOK := cacheKeyFor(input)
	if keyOK && s.cache != nil {
		if cached, ok := s.cache.Get(ctx, cacheKey); ok {
			var analysis domain.LeaseAnalysis
			if err := json.Unmarshal([]byte(cached), &analysis); err == nil {
				return analysis, nil
			}
			zap.L().Warn("lease: discarding unreadable cache entry", zap.String("key", cacheKey))
		}
	}

	analysis := computeAnalysis(input)
	if s.explainer != nil {
		analysis.Explanation = s.explainer.Explain(input, analysis)
	}

	// Persisting is not critical to the caller's answer.
	if _, err := s.repo.Save(ctx, input, analysis); err != nil {
		zap.L().Warn("lease: failed to save analysis", zap.Error(err))
	}

	if keyOK && s.cache != nil {
		if encoded, err := json.Marshal(analysis); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(encoded)); err != nil {
				zap.L().Warn("lease: failed to cache analysis", zap.Error(err))
			}
		}
	}

	return analysis, nil
}

func validateInput(input domain.LeaseInput) error {
	if input.MSRP <= 0 {
		return errors.New("msrp must be positive")
	}
	if input.MSRP > MaxMSRP {
		return fmt.Errorf("msrp exceeds the maximum of $%.2f", float64(MaxMSRP))
	}
	if input.SellingPrice <= 0 {
		return errors.New("selling price must be positive")
	}
	if input.DownPayment < 0 || input.TradeInValue < 0 || input.Rebates < 0 {
		return errors.New("cap cost reductions cannot be negative")
	}
	if input.PaymentAmount <= 0 {
		return errors.New("payment amount must be positive")
	}
	if input.LeaseTermMonths <= 0 {
		return errors.New("lease term must be positive")
	}
	if input.LeaseTermMonths > MaxLeaseTermMonths {
		return fmt.Errorf("lease term exceeds the maximum of %d months", MaxLeaseTermMonths)
	}
	if input.ResidualValue <= 0 {
		return errors.New("residual value must be positive")
	}
	if input.DueOnDelivery < 0 {
		return errors.New("due on delivery cannot be negative")
	}
	if input.PaymentFrequency != domain.FrequencyMonthly &&
		input.PaymentFrequency != domain.FrequencyBiweekly {
		return errors.New("invalid payment frequency")
	}
	if len(input.Fees) > MaxFeesPerQuote {
		return fmt.Errorf("number of fees exceeds the maximum of %d", MaxFeesPerQuote)
	}
	for _, fee := range input.Fees {
		if fee.Amount < 0 {
			return fmt.Errorf("fee %q has a negative amount", fee.Name)
		}
		if fee.Amount > MaxFeeAmount {
			return fmt.Errorf("fee %q exceeds the maximum of $%.2f", fee.Name, float64(MaxFeeAmount))
		}
	}
	return nil
}

// cacheKeyFor hashes the canonical JSON encoding of the input.
func cacheKeyFor(input domain.LeaseInput) (string, bool) {
	encoded, err := json.Marshal(input)
	if err != nil {
		return "", false
	}
	h := fnv.New64a()
	_, _ = h.Write(encoded)
	return fmt.Sprintf("lease:analysis:%x", h.Sum64()), true
}

// computeAnalysis is the deterministic calculation pipeline. It assumes a
// validated input and never fails: the one degenerate denominator is
// guarded to a zero money factor instead of producing Inf or NaN.
func computeAnalysis(in domain.LeaseInput) domain.LeaseAnalysis {
	term := float64(in.LeaseTermMonths)

	totalFees := 0.0
	for _, fee := range in.Fees {
		totalFees += fee.Amount
	}

	grossCapCost := in.SellingPrice + totalFees
	adjustedCapCost := grossCapCost - in.DownPayment - in.TradeInValue - in.Rebates

	// Depreciation may go negative when the residual exceeds the
	// adjusted cap cost. Unusual, but a valid deal.
	depreciation := adjustedCapCost - in.ResidualValue
	depreciationPayment := depreciation / term

	monthlyPayment := ToMonthly(in.PaymentAmount, in.PaymentFrequency)

	// The reverse-engineering step: whatever the dealer's payment covers
	// beyond depreciation is the finance charge.
	rentCharge := monthlyPayment - depreciationPayment

	moneyFactor := 0.0
	if denom := adjustedCapCost + in.ResidualValue; denom > 0 {
		moneyFactor = rentCharge / denom
	}
	apr := moneyFactor * aprPerMoneyFactor

	calculatedPayment := depreciationPayment + rentCharge

	residualPercent := in.ResidualValue / in.MSRP * 100
	sellingPriceDiscount := (in.MSRP - in.SellingPrice) / in.MSRP * 100

	// Sanity check against the quoted amount, in the quote's own units.
	// Trivially near zero on this path, but a caller supplying an
	// independently quoted payment gets a real signal.
	paymentDifference := math.Abs(ToPerPeriod(calculatedPayment, in.PaymentFrequency) - in.PaymentAmount)
	hasPaymentDiscrepancy := paymentDifference > paymentTolerance

	// The 1% rule is defined at $0 down, so any down payment is
	// amortized back in before taking the ratio.
	normalizedMonthly := monthlyPayment
	if in.DownPayment > 0 {
		normalizedMonthly += in.DownPayment / term
	}
	onePercentRule := normalizedMonthly / in.MSRP * 100

	payments := TotalPayments(in.LeaseTermMonths, in.PaymentFrequency)
	totalLeaseCost := in.PaymentAmount*float64(payments) + in.DueOnDelivery
	effectiveMonthlyCost := totalLeaseCost / term

	feeAnalysis := make([]domain.FeeAssessment, 0, len(in.Fees))
	totalJunkFees := 0.0
	for _, fee := range in.Fees {
		legitimacy, explanation := ClassifyFee(fee.Name)
		if legitimacy == domain.FeeJunk {
			totalJunkFees += fee.Amount
		}
		feeAnalysis = append(feeAnalysis, domain.FeeAssessment{
			Name:        fee.Name,
			Amount:      fee.Amount,
			Legitimacy:  legitimacy,
			Explanation: explanation,
		})
	}

	aprScore := scoreAPR(apr)
	priceScore := scoreDiscount(sellingPriceDiscount)
	residualScore := scoreResidual(residualPercent, in.LeaseTermMonths)
	onePctScore := scoreOnePercent(onePercentRule)

	analysis := domain.LeaseAnalysis{
		GrossCapCost:        roundTo2Decimals(grossCapCost),
		AdjustedCapCost:     roundTo2Decimals(adjustedCapCost),
		Depreciation:        roundTo2Decimals(depreciation),
		DepreciationPayment: roundTo2Decimals(depreciationPayment),
		RentCharge:          roundTo2Decimals(rentCharge),
		CalculatedPayment:   roundTo2Decimals(calculatedPayment),

		MoneyFactor: moneyFactor,
		APR:         apr,

		ResidualPercent:      residualPercent,
		SellingPriceDiscount: sellingPriceDiscount,
		OnePercentRule:       onePercentRule,

		TotalLeaseCost:       roundTo2Decimals(totalLeaseCost),
		EffectiveMonthlyCost: roundTo2Decimals(effectiveMonthlyCost),

		DepreciationPerPeriod:      roundTo2Decimals(ToPerPeriod(depreciationPayment, in.PaymentFrequency)),
		RentChargePerPeriod:        roundTo2Decimals(ToPerPeriod(rentCharge, in.PaymentFrequency)),
		CalculatedPaymentPerPeriod: roundTo2Decimals(ToPerPeriod(calculatedPayment, in.PaymentFrequency)),
		EffectiveCostPerPeriod:     roundTo2Decimals(ToPerPeriod(effectiveMonthlyCost, in.PaymentFrequency)),

		PaymentDifference:     roundTo2Decimals(paymentDifference),
		HasPaymentDiscrepancy: hasPaymentDiscrepancy,

		FeeAnalysis:   feeAnalysis,
		TotalJunkFees: roundTo2Decimals(totalJunkFees),

		OverallGrade:      GradeComposite(onePctScore, aprScore, priceScore, residualScore, totalJunkFees),
		MoneyFactorGrade:  GradeAPR(apr),
		SellingPriceGrade: GradeDiscount(sellingPriceDiscount),
		ResidualGrade:     GradeResidual(residualPercent, in.LeaseTermMonths),
		OnePercentGrade:   GradeOnePercent(onePercentRule),
	}

	analysis.Tips = GenerateTips(domain.AdvisorContext{
		APR:                  apr,
		MoneyFactor:          moneyFactor,
		SellingPriceDiscount: sellingPriceDiscount,
		ResidualPercent:      residualPercent,
		OnePercentRule:       onePercentRule,
		TotalJunkFees:        totalJunkFees,
		FeeAnalysis:          feeAnalysis,
		RentCharge:           rentCharge,
		DepreciationPayment:  depreciationPayment,
		AdjustedCapCost:      adjustedCapCost,
		Input:                in,
	})

	monthlySavings := 0.0
	for _, tip := range analysis.Tips {
		monthlySavings += tip.PotentialSavings
	}
	analysis.PotentialSavingsPerPeriod = roundTo2Decimals(ToPerPeriod(monthlySavings, in.PaymentFrequency))
	analysis.PotentialSavingsTotal = roundTo2Decimals(monthlySavings * term)

	return analysis
}
