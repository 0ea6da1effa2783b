package services

import (
	"fmt"

	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
)

// MarkdownRenderer converts markdown bodies to HTML.
type MarkdownRenderer interface {
	ToHTML(markdown string) (string, error)
}

// BodyFormatter turns a rendered template body into the HTML handed to the sender.
type BodyFormatter struct {
	markdown MarkdownRenderer
}

func NewBodyFormatter(markdown MarkdownRenderer) *BodyFormatter {
	return &BodyFormatter{markdown: markdown}
}

// Format returns body unchanged for html templates and converts markdown ones.
func (f *BodyFormatter) Format(body string, format vo.TemplateFormat) (string, error) {
	if format != vo.TemplateFormatMarkdown {
		return body, nil
	}
	if f == nil || f.markdown == nil {
		return "", fmt.Errorf("markdown templates are not supported without a renderer")
	}
	return f.markdown.ToHTML(body)
}
