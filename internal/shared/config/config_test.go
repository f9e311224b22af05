package config

import "testing"

func TestNormalizeEnv(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"prod", "production"},
		{"Production", "production"},
		{"staging", "staging"},
		{"local", "local"},
		{"", "dev"},
		{"anything", "dev"},
	}
	for _, tt := range tests {
		if got := normalizeEnv(tt.in); got != tt.want {
			t.Fatalf("normalizeEnv(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeProvider(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"gemini", "gemini"},
		{" Gemini ", "gemini"},
		{"openai", "openai"},
		{"", "openai"},
		{"other", "openai"},
	}
	for _, tt := range tests {
		if got := normalizeProvider(tt.in); got != tt.want {
			t.Fatalf("normalizeProvider(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(" http://a.example , , http://b.example ")
	if len(got) != 2 || got[0] != "http://a.example" || got[1] != "http://b.example" {
		t.Fatalf("unexpected result: %v", got)
	}
}
