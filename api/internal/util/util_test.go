package util

import "testing"

func TestStripCodeFences(t *testing.T) {
	cases := []struct{ in, want string }{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
	}
	for _, tc := range cases {
		if got := StripCodeFences(tc.in); got != tc.want {
			t.Fatalf("StripCodeFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDecodeBase64MaybeDataURL(t *testing.T) {
	b, mime, err := DecodeBase64MaybeDataURL("data:image/png;base64,QUJD")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(b) != "ABC" || mime != "image/png" {
		t.Fatalf("got %q, %q", b, mime)
	}

	b, mime, err = DecodeBase64MaybeDataURL("QUJD")
	if err != nil || string(b) != "ABC" || mime != "" {
		t.Fatalf("bare base64: %q, %q, %v", b, mime, err)
	}

	if _, _, err := DecodeBase64MaybeDataURL("!!!not-base64!!!"); err == nil {
		t.Fatal("want error for invalid base64")
	}
}

func TestPickMIME(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	if got := PickMIME("image/webp", "image/png", jpeg); got != "image/webp" {
		t.Fatalf("explicit: %q", got)
	}
	if got := PickMIME("", "image/png", jpeg); got != "image/png" {
		t.Fatalf("hint: %q", got)
	}
	if got := PickMIME("", "", nil); got != "image/jpeg" {
		t.Fatalf("default: %q", got)
	}
}

func TestMakeDataURL(t *testing.T) {
	if got := MakeDataURL("image/jpeg", "QUJD"); got != "data:image/jpeg;base64,QUJD" {
		t.Fatalf("got %q", got)
	}
}
