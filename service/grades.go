package service

import (
	"fmt"
	"math"

	"lease-agent/domain"
)

// Each metric maps to an ordinal score 0–4, which in turn maps to a
// letter. The composite is a weighted average of the component scores.
var (
	gradeLetters = [5]string{"F", "D", "C", "B", "A"}
	gradeLabels  = [5]string{"Bad", "Poor", "Fair", "Good", "Excellent"}
)

func buildGrade(score int, description string) domain.Grade {
	if score < 0 {
		score = 0
	}
	if score > 4 {
		score = 4
	}
	return domain.Grade{
		Letter:      gradeLetters[score],
		Label:       gradeLabels[score],
		Description: description,
	}
}

// scoreAPR grades the back-solved finance rate. Lower is better.
func scoreAPR(apr float64) int {
	switch {
	case apr <= 2:
		return 4
	case apr <= 4:
		return 3
	case apr <= 6:
		return 2
	case apr <= 8:
		return 1
	default:
		return 0
	}
}

// scoreDiscount grades the negotiated discount from MSRP. Higher is
// better; paying above sticker fails outright.
func scoreDiscount(discountPct float64) int {
	switch {
	case discountPct >= 8:
		return 4
	case discountPct >= 5:
		return 3
	case discountPct >= 2:
		return 2
	case discountPct >= 0:
		return 1
	default:
		return 0
	}
}

// scoreResidual grades the residual percentage. Shorter leases normally
// carry higher residuals, so the thresholds shift with term: +5 at or
// under 24 months, unchanged through 36, -5 beyond that.
func scoreResidual(residualPct float64, termMonths int) int {
	adjust := 0.0
	switch {
	case termMonths <= 24:
		adjust = 5
	case termMonths <= 36:
		adjust = 0
	default:
		adjust = -5
	}
	switch {
	case residualPct >= 60+adjust:
		return 4
	case residualPct >= 55+adjust:
		return 3
	case residualPct >= 50+adjust:
		return 2
	case residualPct >= 45+adjust:
		return 1
	default:
		return 0
	}
}

// scoreOnePercent grades the normalized payment-to-MSRP ratio against the
// informal 1% benchmark. Lower is better.
func scoreOnePercent(ratioPct float64) int {
	switch {
	case ratioPct <= 0.8:
		return 4
	case ratioPct <= 1.0:
		return 3
	case ratioPct <= 1.2:
		return 2
	case ratioPct <= 1.5:
		return 1
	default:
		return 0
	}
}

// compositeScore blends the four component scores with fixed weights and
// subtracts a junk-fee penalty of min(junk/1000, 1.5), floored at zero.
func compositeScore(onePctScore, aprScore, priceScore, residualScore int, totalJunkFees float64) float64 {
	score := 0.35*float64(onePctScore) +
		0.30*float64(aprScore) +
		0.20*float64(priceScore) +
		0.15*float64(residualScore)
	score -= math.Min(totalJunkFees/junkPenaltyDivisor, junkPenaltyCap)
	return math.Max(score, 0)
}

// compositeLetter maps the continuous 0–4 composite onto an ordinal score.
func compositeLetter(score float64) int {
	switch {
	case score >= 3.5:
		return 4
	case score >= 2.5:
		return 3
	case score >= 1.5:
		return 2
	case score >= 0.75:
		return 1
	default:
		return 0
	}
}

// GradeAPR builds the money-factor component grade.
func GradeAPR(apr float64) domain.Grade {
	return buildGrade(scoreAPR(apr), fmt.Sprintf("Effective APR of %.2f%% back-solved from the quoted payment.", apr))
}

// GradeDiscount builds the selling-price component grade.
func GradeDiscount(discountPct float64) domain.Grade {
	if discountPct < 0 {
		return buildGrade(0, fmt.Sprintf("Selling price is %.1f%% above MSRP.", -discountPct))
	}
	return buildGrade(scoreDiscount(discountPct), fmt.Sprintf("Negotiated %.1f%% off MSRP.", discountPct))
}

// GradeResidual builds the residual component grade.
func GradeResidual(residualPct float64, termMonths int) domain.Grade {
	return buildGrade(scoreResidual(residualPct, termMonths),
		fmt.Sprintf("Residual value is %.1f%% of MSRP over a %d-month term.", residualPct, termMonths))
}

// GradeOnePercent builds the 1%-rule component grade.
func GradeOnePercent(ratioPct float64) domain.Grade {
	return buildGrade(scoreOnePercent(ratioPct),
		fmt.Sprintf("Normalized payment is %.2f%% of MSRP against the 1%% benchmark.", ratioPct))
}

// GradeComposite builds the overall grade from the component scores and
// the junk-fee total.
func GradeComposite(onePctScore, aprScore, priceScore, residualScore int, totalJunkFees float64) domain.Grade {
	score := compositeScore(onePctScore, aprScore, priceScore, residualScore, totalJunkFees)
	desc := fmt.Sprintf("Weighted composite score %.2f of 4.", score)
	if totalJunkFees > 0 {
		desc = fmt.Sprintf("Weighted composite score %.2f of 4 after a %.2f-point junk-fee penalty.",
			score, math.Min(totalJunkFees/junkPenaltyDivisor, junkPenaltyCap))
	}
	return buildGrade(compositeLetter(score), desc)
}
