package genai

import "testing"

func TestResolveBaseURL(t *testing.T) {
	cases := []struct {
		override string
		want     string
	}{
		{"", DefaultBaseURL},
		{"   ", DefaultBaseURL},
		{"http://localhost:8000", "http://localhost:8000"},
		{"http://localhost:8000/", "http://localhost:8000"},
	}
	for _, tc := range cases {
		if got := ResolveBaseURL(tc.override); got != tc.want {
			t.Errorf("ResolveBaseURL(%q) = %q, want %q", tc.override, got, tc.want)
		}
		if ResolveBaseURL(tc.override) == "" {
			t.Error("resolver must never return an empty URL")
		}
	}
}
