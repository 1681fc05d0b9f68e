// Package textutil holds small text helpers shared by CLI output.
package textutil

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// Label renders a lowercase registry key as a display label, e.g.
// "sales" becomes "Sales".
func Label(key string) string {
	return titleCaser.String(key)
}
