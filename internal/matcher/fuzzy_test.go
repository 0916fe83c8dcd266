// file: internal/matcher/fuzzy_test.go
// version: 2.1.0
// guid: b2c3d4e5-f6a7-8901-bcde-f23456789012

package matcher

import (
	"testing"
	"testing/quick"
	"unicode/utf8"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"", "日本語", 3},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"abc", "abc", 0},
		{"docker", "dcoker", 2},
		{"ABC", "abc", 3}, // callers normalize first
		{"将棋", "将棋アプリ", 3},
	}
	for _, tt := range tests {
		got := Distance(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDistanceSymmetric(t *testing.T) {
	f := func(a, b string) bool {
		return Distance(a, b) == Distance(b, a)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestDistanceIdentity(t *testing.T) {
	f := func(s string) bool {
		return Distance(s, s) == 0 && Distance("", s) == utf8.RuneCountInString(s)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"Ventus-Talk", "ventus talk"},
		{"  Hello, World!  ", "hello  world"},
		{"Café Crème", "cafe creme"},
		{"Ñandú", "nandu"},
		{"FCM (Firebase Cloud Messaging)", "fcm  firebase cloud messaging"},
		{"C++", "c"},
		{"0.05-0.15 second", "0 05 0 15 second"},
		{"将棋アプリ", ""},
		{"AI統合", "ai"},
		{"tab\tseparated\nlines", "tab\tseparated\nlines"},
		{"a\u0085b", "a b"},
		{"\u00a0pad\u3000", "pad"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	samples := []string{
		"Ventus-Talk", "Ünïcödé Tèxt", "将棋アプリ - CeConV2.31", "　wide　space　",
		"ﬁligature", "İstanbul", "ÅNGSTRÖM", "\ufeffbom",
	}
	for _, s := range samples {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", s, once, twice)
		}
	}

	f := func(s string) bool {
		once := Normalize(s)
		return Normalize(once) == once
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestIsSpace(t *testing.T) {
	for _, r := range []rune{'\t', '\n', '\v', '\f', '\r', ' ', 0xa0, 0x1680, 0x2000, 0x200a, 0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff} {
		if !isSpace(r) {
			t.Errorf("isSpace(%U) = false, want true", r)
		}
	}
	for _, r := range []rune{0x85, 0x200b, 0x180e, 'a', '_', 0x08} {
		if isSpace(r) {
			t.Errorf("isSpace(%U) = true, want false", r)
		}
	}
}

func TestWords(t *testing.T) {
	got := words(" real\ttime  chat ")
	want := []string{"real", "time", "chat"}
	if len(got) != len(want) {
		t.Fatalf("words() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("words()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
