package valueobjects

import "fmt"

// TemplateFormat is the markup an email template body is authored in.
type TemplateFormat string

const (
	TemplateFormatHTML     TemplateFormat = "html"
	TemplateFormatMarkdown TemplateFormat = "markdown"
)

func (f TemplateFormat) String() string {
	return string(f)
}

func (f TemplateFormat) IsValid() bool {
	return f == TemplateFormatHTML || f == TemplateFormatMarkdown
}

// ParseTemplateFormat parses a body format, defaulting to html when empty.
func ParseTemplateFormat(s string) (TemplateFormat, error) {
	if s == "" {
		return TemplateFormatHTML, nil
	}
	f := TemplateFormat(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid template format %q", s)
	}
	return f, nil
}
