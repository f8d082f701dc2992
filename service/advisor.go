package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"lease-agent/domain"
)

var tipPriorityRank = map[domain.TipPriority]int{
	domain.TipHigh:   0,
	domain.TipMedium: 1,
	domain.TipLow:    2,
}

// GenerateTips evaluates every advisor rule against the analysis context
// and returns the triggered tips sorted by priority, then by descending
// monthly savings. The sort is stable: equal tips keep generation order.
func GenerateTips(ctx domain.AdvisorContext) []domain.Tip {
	in := ctx.Input
	term := float64(in.LeaseTermMonths)
	tips := []domain.Tip{}

	// Finance rate. A high rate is the single most hidden cost on a
	// lease; estimate what the payment looks like at a reference rate.
	if ctx.APR > highAPRThreshold {
		betterRent := (ctx.AdjustedCapCost + in.ResidualValue) * (referenceAPR / aprPerMoneyFactor)
		savings := math.Max(ctx.RentCharge-betterRent, 0)
		tips = append(tips, domain.Tip{
			Priority: domain.TipHigh,
			Title:    "Negotiate the money factor",
			Detail: fmt.Sprintf(
				"Your effective APR is %.2f%%, well above a competitive rate. Ask the dealer for the buy-rate money factor and compare financing through your bank or credit union at around %.0f%%.",
				ctx.APR, referenceAPR),
			PotentialSavings: roundTo2Decimals(savings),
		})
	} else if ctx.APR > moderateAPRThreshold {
		betterRent := (ctx.AdjustedCapCost + in.ResidualValue) * (stretchReferenceAPR / aprPerMoneyFactor)
		savings := math.Max(ctx.RentCharge-betterRent, 0)
		if savings > aprTipFloor {
			tips = append(tips, domain.Tip{
				Priority: domain.TipMedium,
				Title:    "Ask about a lower money factor",
				Detail: fmt.Sprintf(
					"Your effective APR of %.2f%% is decent, but well-qualified lessees sometimes see %.1f%%. It costs nothing to ask.",
					ctx.APR, stretchReferenceAPR),
				PotentialSavings: roundTo2Decimals(savings),
			})
		}
	}

	// Selling price. The payment is built on the negotiated price, so a
	// thin discount leaks into every single payment.
	if ctx.SellingPriceDiscount < minAcceptableDiscountPct {
		targetPrice := in.MSRP * (1 - targetDiscountPct/100)
		monthly := (in.SellingPrice - targetPrice) / term
		if monthly > priceTipFloor {
			detail := fmt.Sprintf(
				"You negotiated only %.1f%% off MSRP. A %.0f%% discount is realistic on most models; the gap costs you every month of the lease.",
				ctx.SellingPriceDiscount, targetDiscountPct)
			if ctx.SellingPriceDiscount < 0 {
				detail = fmt.Sprintf(
					"You are paying %.1f%% above MSRP. Leases price off the selling price, so this premium is financed for the whole term. Negotiate the price before anything else.",
					-ctx.SellingPriceDiscount)
			}
			tips = append(tips, domain.Tip{
				Priority:         domain.TipHigh,
				Title:            "Negotiate the selling price",
				Detail:           detail,
				PotentialSavings: roundTo2Decimals(monthly),
			})
		}
	}

	// Junk fees get one consolidated tip naming every offender.
	junkNames := []string{}
	negotiableTotal := 0.0
	for _, fa := range ctx.FeeAnalysis {
		switch fa.Legitimacy {
		case domain.FeeJunk:
			junkNames = append(junkNames, fa.Name)
		case domain.FeeNegotiable:
			negotiableTotal += fa.Amount
		}
	}
	if len(junkNames) > 0 {
		tips = append(tips, domain.Tip{
			Priority: domain.TipHigh,
			Title:    "Remove junk fees",
			Detail: fmt.Sprintf(
				"These charges add no value and should come off the contract entirely: %s. Total $%.2f.",
				strings.Join(junkNames, ", "), ctx.TotalJunkFees),
			PotentialSavings: roundTo2Decimals(ctx.TotalJunkFees / term),
		})
	}
	if negotiableTotal > 0 {
		savings := negotiableRecoveryRate * negotiableTotal / term
		if savings > negotiableTipFloor {
			tips = append(tips, domain.Tip{
				Priority: domain.TipMedium,
				Title:    "Push back on dealer fees",
				Detail: fmt.Sprintf(
					"$%.2f of the itemized fees are dealer charges with room to move. Recovering half of that is a realistic ask.",
					negotiableTotal),
				PotentialSavings: roundTo2Decimals(savings),
			})
		}
	}

	// Down payment on a lease is a risk warning, not a savings play: if
	// the car is totaled or stolen, that money goes to the insurer.
	if in.DownPayment > downPaymentRiskThreshold {
		tips = append(tips, domain.Tip{
			Priority: domain.TipHigh,
			Title:    "Reconsider the down payment",
			Detail: fmt.Sprintf(
				"You are putting $%.2f down on a lease. If the vehicle is totaled or stolen, that money is gone. Roll it into the monthly payment instead.",
				in.DownPayment),
			PotentialSavings: 0,
		})
	}

	// Catch-all benchmark check when nothing above said enough.
	if ctx.OnePercentRule > onePercentBenchmark && len(tips) < maxTipsBeforeFallback {
		tips = append(tips, domain.Tip{
			Priority: domain.TipMedium,
			Title:    "Shop this deal around",
			Detail: fmt.Sprintf(
				"Your normalized payment is %.2f%% of MSRP; a good lease sits near 1%%. Get quotes from other dealers before signing.",
				ctx.OnePercentRule),
			PotentialSavings: 0,
		})
	}

	sort.SliceStable(tips, func(i, j int) bool {
		ri, rj := tipPriorityRank[tips[i].Priority], tipPriorityRank[tips[j].Priority]
		if ri != rj {
			return ri < rj
		}
		return tips[i].PotentialSavings > tips[j].PotentialSavings
	})

	return tips
}
