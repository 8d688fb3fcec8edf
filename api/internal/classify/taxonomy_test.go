package classify

import "testing"

func TestResolveBin(t *testing.T) {
	cases := []struct {
		in       string
		category string
		binName  string
	}{
		{"hijau", "hijau", "Organik"},
		{"kuning", "kuning", "Anorganik"},
		{"merah", "merah", "B3"},
		{"biru", "biru", "Kertas"},
		{"abu-abu", "abu-abu", "Residu"},
		{"HIJAU", "hijau", "Organik"},
		{" biru ", "biru", "Kertas"},
		{"ungu", "abu-abu", "Residu"},
		{"organic", "abu-abu", "Residu"},
		{"", "abu-abu", "Residu"},
	}
	for _, tc := range cases {
		cat, name := ResolveBin(tc.in)
		if cat != tc.category || name != tc.binName {
			t.Fatalf("ResolveBin(%q) = (%q, %q), want (%q, %q)", tc.in, cat, name, tc.category, tc.binName)
		}
	}
}

func TestBinsCoverTaxonomy(t *testing.T) {
	bins := Bins()
	if len(bins) != 5 {
		t.Fatalf("len(Bins()) = %d, want 5", len(bins))
	}
	seen := map[string]bool{}
	for _, b := range bins {
		seen[b.Category] = true
		if _, name := ResolveBin(b.Category); name != b.BinName {
			t.Fatalf("bin %q resolves to %q, listed as %q", b.Category, name, b.BinName)
		}
	}
	for _, c := range []string{CategoryHijau, CategoryKuning, CategoryMerah, CategoryBiru, CategoryAbu} {
		if !seen[c] {
			t.Fatalf("category %q missing from Bins()", c)
		}
	}
}

func TestBuildResponse(t *testing.T) {
	d := Decision{
		DominantClass: "botol plastik",
		Category:      "Kuning",
		Confidence:    0.88,
		Reason:        "botol PET",
	}
	resp := BuildResponse(d)
	if resp.Decision.Category != "kuning" || resp.Decision.BinName != "Anorganik" || resp.Decision.BinColor != "kuning" {
		t.Fatalf("unexpected decision: %+v", resp.Decision)
	}
	if len(resp.Detections) != 1 {
		t.Fatalf("len(detections) = %d, want 1", len(resp.Detections))
	}
	det := resp.Detections[0]
	if det.ClassName != "Anorganik" || det.Confidence != 0.88 || det.Box != CenterBox {
		t.Fatalf("unexpected detection: %+v", det)
	}
}

func TestBuildResponseUnknownCategory(t *testing.T) {
	resp := BuildResponse(Decision{Category: "misterius", Confidence: 0.4})
	if resp.Decision.Category != CategoryAbu || resp.Decision.BinName != "Residu" {
		t.Fatalf("unexpected decision: %+v", resp.Decision)
	}
	if resp.Decision.DominantClass != "Residu" {
		t.Fatalf("dominant class fallback = %q", resp.Decision.DominantClass)
	}
}
