package report_test

import (
	"strings"
	"testing"

	"courier/internal/report"
)

func TestFormatsWrapContentUnchanged(t *testing.T) {
	cases := []struct {
		key    string
		prefix string
		suffix string
	}{
		{"pdf", "[PDF FORMAT]\n", "\n[END PDF]"},
		{"excel", "[EXCEL FORMAT]\n", "\n[END EXCEL]"},
		{"html", "<html><body><pre>\n", "\n</pre></body></html>"},
	}

	formats := report.NewFormatRegistry()
	const content = "Balance: $18000.00"

	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			format, err := formats.Create(tc.key)
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}

			got := format.Apply(content)
			if got != tc.prefix+content+tc.suffix {
				t.Fatalf("unexpected output: %q", got)
			}
			if !strings.Contains(got, content) {
				t.Fatalf("content altered: %q", got)
			}
		})
	}
}
