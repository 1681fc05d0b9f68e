package textutil_test

import (
	"testing"

	"courier/internal/textutil"
)

func TestLabel(t *testing.T) {
	cases := map[string]string{
		"sales":     "Sales",
		"email":     "Email",
		"financial": "Financial",
		"":          "",
	}
	for key, want := range cases {
		if got := textutil.Label(key); got != want {
			t.Fatalf("Label(%q) = %q, want %q", key, got, want)
		}
	}
}
