package classify

import (
	"encoding/json"
	"fmt"
	"strings"

	"sampahkupilah/api/internal/util"
)

// ExtractJSONCandidate returns the substring spanning the first '{' to the
// last '}' of the reply, after stripping code fences. ok is false when the
// text contains no object at all.
func ExtractJSONCandidate(s string) (string, bool) {
	s = util.StripCodeFences(s)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 {
		return "", false
	}
	if end > start {
		return s[start : end+1], true
	}
	// No closing brace at all: hand the tail to the repair step.
	return s[start:], true
}

// RepairTruncatedJSON balances an object that was cut off mid-reply by the
// model's token limit. If opens exceed closes, a closing quote is appended
// first (truncation usually happens inside a string value) and then enough
// closing braces to balance the count. Already-balanced input is returned
// unchanged.
func RepairTruncatedJSON(s string) string {
	opens := strings.Count(s, "{")
	closes := strings.Count(s, "}")
	if opens <= closes {
		return s
	}
	trimmed := strings.TrimRight(s, " \t\r\n")
	if !strings.HasSuffix(trimmed, `"`) && !strings.HasSuffix(trimmed, "}") {
		trimmed += `"`
	}
	return trimmed + strings.Repeat("}", opens-closes)
}

// DecodeDecision parses a raw model reply into a Decision. It never fails:
// when the reply is missing, malformed beyond repair, or carries wrongly
// typed fields, the defaults stay in place. The returned error reports what
// went wrong so callers can log it; the decision is valid either way.
func DecodeDecision(raw string) (Decision, error) {
	dec := DefaultDecision()

	candidate, ok := ExtractJSONCandidate(raw)
	if !ok {
		return dec, fmt.Errorf("decode decision: no JSON object in reply")
	}
	candidate = RepairTruncatedJSON(candidate)

	var fields map[string]any
	if err := json.Unmarshal([]byte(candidate), &fields); err != nil {
		return dec, fmt.Errorf("decode decision: bad JSON after repair: %w", err)
	}

	copyString(fields, "category", &dec.Category)
	copyString(fields, "dominant_class", &dec.DominantClass)
	copyString(fields, "bin_name", &dec.BinName)
	copyString(fields, "bin_color", &dec.BinColor)
	copyString(fields, "reason", &dec.Reason)
	copyString(fields, "fun_fact", &dec.FunFact)
	copyString(fields, "recycling_advice", &dec.RecyclingAdvice)
	copyString(fields, "youtube_query", &dec.YoutubeQuery)
	if v, ok := fields["confidence"].(float64); ok {
		dec.Confidence = v
	}
	dec.Confidence = ClampConfidence(dec.Confidence)
	return dec, nil
}

// ClampConfidence forces a confidence value into [0,1].
func ClampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func copyString(fields map[string]any, key string, dst *string) {
	if v, ok := fields[key].(string); ok && strings.TrimSpace(v) != "" {
		*dst = v
	}
}
