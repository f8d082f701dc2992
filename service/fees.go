package service

import (
	"strings"

	"lease-agent/domain"
)

// feeRule maps trigger substrings to a classification. Rules are checked
// top to bottom and the first match wins, so order is a priority list: a
// name matching two rules resolves to whichever appears earlier.
type feeRule struct {
	patterns    []string
	legitimacy  domain.FeeLegitimacy
	explanation string
}

var feeRules = []feeRule{
	// Lessor and government charges come first so names like
	// "dealer registration" resolve as legitimate.
	{
		patterns:    []string{"acquisition", "bank fee"},
		legitimacy:  domain.FeeLegitimate,
		explanation: "Charged by the leasing company, not the dealer. Standard on nearly every lease and rarely removable.",
	},
	{
		patterns:    []string{"disposition"},
		legitimacy:  domain.FeeLegitimate,
		explanation: "End-of-lease charge from the leasing company for taking the vehicle back. Set by contract, not the dealer.",
	},
	{
		patterns:    []string{"registration", "title", "license", "plate"},
		legitimacy:  domain.FeeLegitimate,
		explanation: "Government charge passed through at cost. Verify the amount against your state's fee schedule.",
	},
	{
		patterns:    []string{"tax"},
		legitimacy:  domain.FeeLegitimate,
		explanation: "Sales or use tax required by law. The dealer has no discretion here.",
	},
	{
		patterns:    []string{"first payment", "first month"},
		legitimacy:  domain.FeeLegitimate,
		explanation: "Your first lease payment collected at signing. Not an extra charge, just timing.",
	},
	{
		patterns:    []string{"gap"},
		legitimacy:  domain.FeeNegotiable,
		explanation: "GAP coverage has real value on a lease but is often marked up heavily. Many lessors include it; your insurer may sell it for less.",
	},
	// Add-on products with little or no value.
	{
		patterns:    []string{"paint", "sealant", "protection package", "appearance"},
		legitimacy:  domain.FeeJunk,
		explanation: "Dealer add-on with minimal value. Modern factory paint does not need aftermarket sealant. Ask for it to be removed.",
	},
	{
		patterns:    []string{"etch", "vin"},
		legitimacy:  domain.FeeJunk,
		explanation: "VIN etching costs the dealer a few dollars and is sold for hundreds. Decline it.",
	},
	{
		patterns:    []string{"nitrogen"},
		legitimacy:  domain.FeeJunk,
		explanation: "Nitrogen tire fill has no measurable benefit over air. Pure profit for the dealer.",
	},
	{
		patterns:    []string{"fabric", "interior protect", "scotchgard"},
		legitimacy:  domain.FeeJunk,
		explanation: "A can of fabric protector sold at a huge markup. Decline it.",
	},
	{
		patterns:    []string{"market adjustment", "addendum", "markup"},
		legitimacy:  domain.FeeJunk,
		explanation: "Pure dealer markup above MSRP dressed up as a fee. Walk away or have it removed.",
	},
	{
		patterns:    []string{"wheel lock", "accessor"},
		legitimacy:  domain.FeeJunk,
		explanation: "Pre-installed accessories you did not ask for. The dealer chose to install them; you should not pay for them.",
	},
	// Dealer charges that are real but padded.
	{
		patterns:    []string{"doc", "processing", "paperwork"},
		legitimacy:  domain.FeeNegotiable,
		explanation: "Dealer paperwork charge. Capped by law in many states and frequently inflated; ask what the cap is.",
	},
	{
		patterns:    []string{"prep", "delivery", "destination"},
		legitimacy:  domain.FeeNegotiable,
		explanation: "Often already included in MSRP. Ask the dealer to show it is not being charged twice.",
	},
	{
		patterns:    []string{"advertising", "ad fee"},
		legitimacy:  domain.FeeNegotiable,
		explanation: "The dealer's own marketing cost passed on to you. Frequently waived when challenged.",
	},
	{
		patterns:    []string{"warranty", "service contract", "maintenance plan"},
		legitimacy:  domain.FeeNegotiable,
		explanation: "Extended coverage rarely pays off on a lease, where the factory warranty usually outlasts the term.",
	},
}

const defaultFeeExplanation = "Not a standard lease charge. Ask the dealer to justify this fee or remove it."

// ClassifyFee matches a fee name against the rule table. Matching is
// case-insensitive substring containment on the trimmed name. Unknown
// names default to negotiable so they get scrutiny rather than trust.
func ClassifyFee(name string) (domain.FeeLegitimacy, string) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, rule := range feeRules {
		for _, p := range rule.patterns {
			if strings.Contains(needle, p) {
				return rule.legitimacy, rule.explanation
			}
		}
	}
	return domain.FeeNegotiable, defaultFeeExplanation
}
