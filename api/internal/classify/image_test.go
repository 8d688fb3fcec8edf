package classify

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeImagesSingle(t *testing.T) {
	b64 := strings.Repeat("QUJD", 18) // plausible base64 payload
	out, err := NormalizeImages(b64, nil)
	if err != nil {
		t.Fatalf("NormalizeImages: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	if out[0] != "data:image/jpeg;base64,"+b64 {
		t.Fatalf("unexpected data URL: %q", out[0])
	}
}

func TestNormalizeImagesList(t *testing.T) {
	b64 := strings.Repeat("QUJD", 18)
	out, err := NormalizeImages("", []string{b64, "x", "", b64})
	if err != nil {
		t.Fatalf("NormalizeImages: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2 (short entries filtered)", len(out))
	}
}

func TestNormalizeImagesKeepsDataURL(t *testing.T) {
	dataURL := "data:image/png;base64," + strings.Repeat("QUJD", 18)
	out, err := NormalizeImages("", []string{dataURL})
	if err != nil {
		t.Fatalf("NormalizeImages: %v", err)
	}
	if out[0] != dataURL {
		t.Fatalf("data URL rewrapped: %q", out[0])
	}
}

func TestNormalizeImagesRejects(t *testing.T) {
	cases := []struct {
		name   string
		single string
		many   []string
	}{
		{"empty", "", nil},
		{"too short single", "abc", nil},
		{"all too short", "", []string{"a", "bb", "ccc"}},
		{"whitespace only", "   ", []string{"   "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NormalizeImages(tc.single, tc.many); !errors.Is(err, ErrNoImage) {
				t.Fatalf("err = %v, want ErrNoImage", err)
			}
		})
	}
}

func TestNormalizeImagesListOverridesSingle(t *testing.T) {
	b64 := strings.Repeat("QUJD", 18)
	out, err := NormalizeImages("ignored-when-list-present-0123456789", []string{b64})
	if err != nil {
		t.Fatalf("NormalizeImages: %v", err)
	}
	if len(out) != 1 || !strings.HasSuffix(out[0], b64) {
		t.Fatalf("unexpected result: %v", out)
	}
}
