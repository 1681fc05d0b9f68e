package report

import "courier/internal/registry"

// Known output format keys.
const (
	FormatPDF   = "pdf"
	FormatExcel = "excel"
	FormatHTML  = "html"
)

// Format wraps generated report text in an output format. Apply is a pure
// text transform; it never mutates or re-derives the content.
type Format interface {
	Apply(content string) string
}

// NewFormatRegistry builds the registry of output formats.
func NewFormatRegistry() *registry.Registry[Format] {
	formats := registry.New[Format]("format")
	formats.Register(FormatPDF, func() Format { return pdfFormat{} })
	formats.Register(FormatExcel, func() Format { return excelFormat{} })
	formats.Register(FormatHTML, func() Format { return htmlFormat{} })
	return formats
}

type pdfFormat struct{}

func (pdfFormat) Apply(content string) string {
	return "[PDF FORMAT]\n" + content + "\n[END PDF]"
}

type excelFormat struct{}

func (excelFormat) Apply(content string) string {
	return "[EXCEL FORMAT]\n" + content + "\n[END EXCEL]"
}

type htmlFormat struct{}

func (htmlFormat) Apply(content string) string {
	return "<html><body><pre>\n" + content + "\n</pre></body></html>"
}
