package usecase

import (
	"encoding/json"
	"errors"
	"strings"
)

// Parsing the model response is a named fallible step: any failure here is
// absorbed by the fallback pricing in GenerateQuote and never propagates.
var (
	errNoJSONObject     = errors.New("no JSON object found in model response")
	errMalformedJSON    = errors.New("malformed JSON in model response")
	errMissingEstimates = errors.New("model response missing required estimate fields")
)

type estimateLine struct {
	Component     string  `json:"component"`
	EstimatedCost float64 `json:"estimated_cost"`
	CostRangeMin  float64 `json:"cost_range_min"`
	CostRangeMax  float64 `json:"cost_range_max"`
	Notes         string  `json:"notes"`
}

// estimateResult is the JSON shape the estimator persona is instructed to
// return. LLM-provided costs pass through unrounded.
type estimateResult struct {
	TotalCost  float64        `json:"total_cost"`
	Breakdown  []estimateLine `json:"breakdown"`
	Analysis   string         `json:"analysis"`
	Confidence string         `json:"confidence"`
}

// extractJSONObject pulls the first top-level JSON object out of free text by
// greedy brace matching: everything from the first '{' to the last '}'.
// Models routinely wrap the JSON in prose or code fences, so this is
// deliberately forgiving about the surroundings.
func extractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// parseEstimateResponse extracts and validates the estimate JSON from the raw
// model text. All four top-level keys must be present.
func parseEstimateResponse(raw string) (estimateResult, error) {
	blob, ok := extractJSONObject(raw)
	if !ok {
		return estimateResult{}, errNoJSONObject
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &fields); err != nil {
		return estimateResult{}, errMalformedJSON
	}
	for _, key := range []string{"total_cost", "breakdown", "analysis", "confidence"} {
		if _, ok := fields[key]; !ok {
			return estimateResult{}, errMissingEstimates
		}
	}

	var result estimateResult
	if err := json.Unmarshal([]byte(blob), &result); err != nil {
		return estimateResult{}, errMalformedJSON
	}
	return result, nil
}
