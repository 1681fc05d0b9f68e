package report

import (
	"time"

	"courier/internal/record"
)

// timestampLayout matches the human-readable timestamp printed in report
// headers and history output.
const timestampLayout = "2006-01-02 15:04:05"

// Template supplies the variable parts of a report. Generate owns the
// skeleton; implementations only provide a title and a body hook that
// appends domain content to the builder.
type Template interface {
	Title() string
	Body(b *Builder, data record.Record) error
}

// Generate runs the fixed report skeleton: header banner with the
// template's title, generation timestamp, then the template body.
func Generate(tpl Template, data record.Record, at time.Time) (string, error) {
	b := NewBuilder()
	b.Header(tpl.Title())
	b.Line("Fecha de generación: " + at.Format(timestampLayout))
	b.Line("")
	if err := tpl.Body(b, data); err != nil {
		return "", err
	}
	return b.Build(), nil
}
