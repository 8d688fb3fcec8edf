package classify

import (
	"strings"
	"testing"
)

func TestExtractJSONCandidate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"commentary around", "Tentu! Ini hasilnya: {\"a\":1} Semoga membantu.", `{"a":1}`, true},
		{"code fences", "```json\n{\"a\":1}\n```", `{"a":1}`, true},
		{"no object", "maaf, tidak ada jawaban", "", false},
		{"unclosed object", `jawaban: {"a":"b`, `{"a":"b`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractJSONCandidate(tc.in)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRepairTruncatedJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"balanced untouched", `{"a":1}`, `{"a":1}`},
		{"cut mid string", `{"category":"kuning","reason":"plastik keras`, `{"category":"kuning","reason":"plastik keras"}`},
		{"cut after quote", `{"category":"kuning"`, `{"category":"kuning"}`},
		{"nested cut", `{"a":{"b":"x`, `{"a":{"b":"x"}}`},
		{"trailing whitespace", `{"a":"b` + "\n", `{"a":"b"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RepairTruncatedJSON(tc.in); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDecodeDecisionRoundTrip(t *testing.T) {
	raw := `{
		"category":"biru",
		"confidence":0.92,
		"bin_name":"Kertas",
		"bin_color":"biru",
		"dominant_class":"kardus",
		"reason":"kardus bekas kemasan",
		"fun_fact":"kardus bisa didaur ulang sampai 7 kali",
		"recycling_advice":"lipat dulu supaya hemat tempat",
		"youtube_query":"daur ulang kardus"
	}`
	d, err := DecodeDecision(raw)
	if err != nil {
		t.Fatalf("DecodeDecision: %v", err)
	}
	if d.Category != "biru" || d.BinName != "Kertas" || d.DominantClass != "kardus" {
		t.Fatalf("unexpected decision: %+v", d)
	}
	if d.Confidence != 0.92 {
		t.Fatalf("confidence = %v, want 0.92", d.Confidence)
	}
	if d.FunFact == "" || d.RecyclingAdvice == "" || d.YoutubeQuery == "" {
		t.Fatalf("optional fields dropped: %+v", d)
	}
}

func TestDecodeDecisionTruncated(t *testing.T) {
	// The exact truncation signature of a token-limited reply.
	raw := `{"category":"kuning","confidence":0.9,"reason":"plastik keras`
	d, err := DecodeDecision(raw)
	if err != nil {
		t.Fatalf("DecodeDecision: %v", err)
	}
	if d.Category != "kuning" {
		t.Fatalf("category = %q, want kuning", d.Category)
	}
	if d.Confidence != 0.9 {
		t.Fatalf("confidence = %v, want 0.9", d.Confidence)
	}
	if !strings.HasPrefix(d.Reason, "plastik keras") {
		t.Fatalf("reason = %q", d.Reason)
	}
}

func TestDecodeDecisionFallback(t *testing.T) {
	for _, raw := range []string{
		"",
		"tidak ada JSON sama sekali",
		"{{{{:::",
	} {
		d, err := DecodeDecision(raw)
		if err == nil {
			t.Fatalf("want decode issue for %q", raw)
		}
		if d.Category != DefaultCategory || d.Reason != DefaultReason || d.Confidence != DefaultConfidence {
			t.Fatalf("defaults not applied for %q: %+v", raw, d)
		}
	}
}

func TestDecodeDecisionWrongTypes(t *testing.T) {
	raw := `{"category":42,"confidence":"tinggi","reason":["a"]}`
	d, err := DecodeDecision(raw)
	if err != nil {
		t.Fatalf("DecodeDecision: %v", err)
	}
	// Wrongly typed fields keep the defaults.
	if d.Category != DefaultCategory || d.Reason != DefaultReason || d.Confidence != DefaultConfidence {
		t.Fatalf("unexpected decision: %+v", d)
	}
}

func TestDecodeDecisionClampsConfidence(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{`{"category":"hijau","confidence":1.5}`, 1},
		{`{"category":"hijau","confidence":-0.3}`, 0},
		{`{"category":"hijau","confidence":0.5}`, 0.5},
	}
	for _, tc := range cases {
		d, err := DecodeDecision(tc.in)
		if err != nil {
			t.Fatalf("DecodeDecision(%q): %v", tc.in, err)
		}
		if d.Confidence != tc.want {
			t.Fatalf("confidence = %v, want %v", d.Confidence, tc.want)
		}
	}
}

func TestClampConfidenceIdempotent(t *testing.T) {
	for _, v := range []float64{0, 0.25, 0.5, 1} {
		if got := ClampConfidence(ClampConfidence(v)); got != v {
			t.Fatalf("clamp not idempotent for %v: %v", v, got)
		}
	}
}
