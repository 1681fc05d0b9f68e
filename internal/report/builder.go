// Package report implements the three-stage reporting pipeline: a report
// template produces text through a shared builder, a format strategy wraps
// the text, and a delivery strategy hands it off, with one history record
// appended per completed run.
package report

import "strings"

const ruleWidth = 60

// Builder accumulates report text as an ordered fragment list. It is
// sealed by Build; any append afterwards panics.
type Builder struct {
	parts  []string
	sealed bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Line appends text followed by a newline.
func (b *Builder) Line(text string) *Builder {
	b.append(text + "\n")
	return b
}

// Separator appends a fixed-width dashed rule.
func (b *Builder) Separator() *Builder {
	b.append(strings.Repeat("-", ruleWidth) + "\n")
	return b
}

// Header appends a banner block: rule, indented title, rule.
func (b *Builder) Header(title string) *Builder {
	rule := strings.Repeat("=", ruleWidth) + "\n"
	b.append(rule)
	b.append("           " + title + "\n")
	b.append(rule)
	return b
}

// Build seals the builder and returns the accumulated text.
func (b *Builder) Build() string {
	b.sealed = true
	return strings.Join(b.parts, "")
}

func (b *Builder) append(fragment string) {
	if b.sealed {
		panic("report builder: append after Build")
	}
	b.parts = append(b.parts, fragment)
}
