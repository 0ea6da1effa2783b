package reminder

import (
	"fmt"
	"strings"

	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
)

const maxSubjectLength = 255

// EmailTemplate is the subject and body a reminder type renders per recipient.
type EmailTemplate struct {
	subject string
	body    string
	format  vo.TemplateFormat
}

func NewEmailTemplate(subject, body string, format vo.TemplateFormat) (*EmailTemplate, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, fmt.Errorf("template subject is required")
	}
	if len(subject) > maxSubjectLength {
		return nil, fmt.Errorf("template subject exceeds maximum length of %d characters", maxSubjectLength)
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("template body is required")
	}
	if format == "" {
		format = vo.TemplateFormatHTML
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("invalid template format")
	}

	return &EmailTemplate{subject: subject, body: body, format: format}, nil
}

func (t *EmailTemplate) Subject() string {
	return t.subject
}

func (t *EmailTemplate) Body() string {
	return t.body
}

func (t *EmailTemplate) Format() vo.TemplateFormat {
	return t.format
}
