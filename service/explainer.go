package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"lease-agent/domain"
)

// Explainer produces a plain-language summary paragraph for an analysis.
// When OPENAI_API_KEY is set it asks the chat API; otherwise (or on any
// failure) it falls back to a deterministic template. The numeric output
// of the engine never depends on it.
type Explainer struct {
	apiKey     string
	apiURL     string
	model      string
	enabled    bool
	httpClient *http.Client
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewExplainer(model string) *Explainer {
	apiKey := os.Getenv("OPENAI_API_KEY")

	return &Explainer{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		model:   model,
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Explain returns a short consumer-facing summary of the analysis.
func (e *Explainer) Explain(input domain.LeaseInput, a domain.LeaseAnalysis) string {
	if !e.enabled {
		return e.fallbackExplanation(a)
	}

	prompt := fmt.Sprintf(`A consumer received this vehicle lease quote. Explain in plain language whether it is a good deal.

QUOTE:
- MSRP: $%.2f, negotiated selling price: $%.2f (%.1f%% discount)
- Payment: $%.2f %s over %d months
- Residual value: $%.2f (%.1f%% of MSRP)

ANALYSIS:
- Back-solved money factor: %.5f (effective APR %.2f%%)
- Overall grade: %s (%s)
- Normalized payment is %.2f%% of MSRP against the 1%% benchmark
- Junk fees on the contract: $%.2f
- Estimated negotiable savings: $%.2f per month

INSTRUCTIONS:
1. Say clearly whether this lease is worth signing as quoted.
2. Name the single biggest problem with the deal, if any.
3. Keep it to 3-4 sentences, no jargon, no markdown.`,
		input.MSRP, input.SellingPrice, a.SellingPriceDiscount,
		input.PaymentAmount, input.PaymentFrequency, input.LeaseTermMonths,
		input.ResidualValue, a.ResidualPercent,
		a.MoneyFactor, a.APR,
		a.OverallGrade.Letter, a.OverallGrade.Label,
		a.OnePercentRule, a.TotalJunkFees,
		a.PotentialSavingsPerPeriod)

	explanation, err := e.callLLM(prompt)
	if err != nil {
		zap.L().Warn("explainer: llm call failed", zap.Error(err))
		return e.fallbackExplanation(a)
	}

	return explanation
}

func (e *Explainer) callLLM(prompt string) (string, error) {
	reqBody := chatRequest{
		Model: e.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are a consumer advocate who explains vehicle lease math in plain English. You are precise with numbers, skeptical of dealer add-ons, and you never use jargon without explaining it.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", e.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", e.apiKey))

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}

	return chatResp.Choices[0].Message.Content, nil
}

func (e *Explainer) fallbackExplanation(a domain.LeaseAnalysis) string {
	junkNote := ""
	if a.TotalJunkFees > 0 {
		junkNote = fmt.Sprintf(" The contract carries $%.2f in junk fees that should come off entirely.", a.TotalJunkFees)
	}

	switch a.OverallGrade.Letter {
	case "A":
		return fmt.Sprintf("This is a strong lease: the effective APR works out to %.2f%% and the normalized payment is %.2f%% of MSRP, right around the 1%% benchmark.%s", a.APR, a.OnePercentRule, junkNote)
	case "B":
		return fmt.Sprintf("This is a solid lease overall. The effective APR is %.2f%% and the normalized payment is %.2f%% of MSRP; there is some room to improve but nothing alarming.%s", a.APR, a.OnePercentRule, junkNote)
	case "C":
		return fmt.Sprintf("This lease is average. The effective APR of %.2f%% and a normalized payment of %.2f%% of MSRP both have room to move; work the tips below before signing.%s", a.APR, a.OnePercentRule, junkNote)
	case "D":
		return fmt.Sprintf("This lease is below par: the effective APR is %.2f%% and the normalized payment is %.2f%% of MSRP. Negotiate the items below or shop the deal elsewhere.%s", a.APR, a.OnePercentRule, junkNote)
	default:
		return fmt.Sprintf("As quoted, this is a poor deal. The effective APR works out to %.2f%% and the normalized payment is %.2f%% of MSRP, well past the 1%% benchmark. Do not sign without major changes.%s", a.APR, a.OnePercentRule, junkNote)
	}
}
