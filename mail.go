package mailtrap

import (
	"strings"
)

// Address is an email address with an optional display name.
type Address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitzero"`
}

// Disposition controls how an attachment is presented.
type Disposition string

// Attachment dispositions.
const (
	DispositionAttachment Disposition = "attachment"
	DispositionInline     Disposition = "inline"
)

// Attachment is a file sent with a message. Content holds the raw bytes and
// is base64-encoded when the request body is built.
type Attachment struct {
	Content     []byte      `json:"content"`
	Filename    string      `json:"filename"`
	Disposition Disposition `json:"disposition,omitzero"`
	Type        string      `json:"type,omitzero"`
	ContentID   string      `json:"content_id,omitzero"`
}

// SendableMail is a message accepted by Send. It is implemented by *Mail and
// *MailFromTemplate only.
type SendableMail interface {
	sendableMail()
	validate() error
}

// Mail is a message with inline content.
type Mail struct {
	From            Address           `json:"from"`
	To              []Address         `json:"to,omitzero"`
	Cc              []Address         `json:"cc,omitzero"`
	Bcc             []Address         `json:"bcc,omitzero"`
	Subject         string            `json:"subject"`
	Text            string            `json:"text,omitzero"`
	HTML            string            `json:"html,omitzero"`
	Category        string            `json:"category,omitzero"`
	Attachments     []Attachment      `json:"attachments,omitzero"`
	Headers         map[string]string `json:"headers,omitzero"`
	CustomVariables map[string]any    `json:"custom_variables,omitzero"`
	ReplyTo         *Address          `json:"reply_to,omitzero"`
}

// MailFromTemplate is a message rendered from a stored template.
type MailFromTemplate struct {
	From              Address           `json:"from"`
	To                []Address         `json:"to,omitzero"`
	Cc                []Address         `json:"cc,omitzero"`
	Bcc               []Address         `json:"bcc,omitzero"`
	TemplateUUID      string            `json:"template_uuid"`
	TemplateVariables map[string]any    `json:"template_variables,omitzero"`
	Attachments       []Attachment      `json:"attachments,omitzero"`
	Headers           map[string]string `json:"headers,omitzero"`
	CustomVariables   map[string]any    `json:"custom_variables,omitzero"`
	ReplyTo           *Address          `json:"reply_to,omitzero"`
}

func (*Mail) sendableMail()             {}
func (*MailFromTemplate) sendableMail() {}

func (m *Mail) validate() error {
	if m == nil {
		return &ValidationError{Errors: []string{"mail is required"}}
	}
	var problems []string
	problems = appendEnvelopeProblems(problems, m.From, m.To, m.Cc, m.Bcc)
	if m.Subject == "" {
		problems = append(problems, "subject is required")
	}
	if m.Text == "" && m.HTML == "" {
		problems = append(problems, "text or html is required")
	}
	return problemsError(problems)
}

func (m *MailFromTemplate) validate() error {
	if m == nil {
		return &ValidationError{Errors: []string{"mail is required"}}
	}
	var problems []string
	problems = appendEnvelopeProblems(problems, m.From, m.To, m.Cc, m.Bcc)
	if m.TemplateUUID == "" {
		problems = append(problems, "template_uuid is required")
	}
	return problemsError(problems)
}

func appendEnvelopeProblems(problems []string, from Address, to, cc, bcc []Address) []string {
	if strings.TrimSpace(from.Email) == "" {
		problems = append(problems, "from email is required")
	}
	if len(to)+len(cc)+len(bcc) == 0 {
		problems = append(problems, "at least one recipient is required")
	}
	return problems
}

func problemsError(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Errors: problems}
}

// SendResponse is the result of a single send.
type SendResponse struct {
	Success    bool     `json:"success"`
	MessageIDs []string `json:"message_ids"`
}
