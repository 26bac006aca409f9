package mailtrap

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
)

// BatchBase holds the fields shared by every message of a batch. It is
// implemented by *BatchMail and *BatchMailFromTemplate only.
type BatchBase interface {
	batchBase()
	isNil() bool
	asRequest() BatchEmailRequest
}

// BatchMail is a batch base with inline content. Recipients come from the
// individual requests.
type BatchMail struct {
	From            Address           `json:"from"`
	Subject         string            `json:"subject"`
	Text            string            `json:"text,omitzero"`
	HTML            string            `json:"html,omitzero"`
	Category        string            `json:"category,omitzero"`
	Attachments     []Attachment      `json:"attachments,omitzero"`
	Headers         map[string]string `json:"headers,omitzero"`
	CustomVariables map[string]any    `json:"custom_variables,omitzero"`
	ReplyTo         *Address          `json:"reply_to,omitzero"`
}

// BatchMailFromTemplate is a batch base rendered from a stored template.
type BatchMailFromTemplate struct {
	From              Address           `json:"from"`
	TemplateUUID      string            `json:"template_uuid"`
	TemplateVariables map[string]any    `json:"template_variables,omitzero"`
	Attachments       []Attachment      `json:"attachments,omitzero"`
	Headers           map[string]string `json:"headers,omitzero"`
	CustomVariables   map[string]any    `json:"custom_variables,omitzero"`
	ReplyTo           *Address          `json:"reply_to,omitzero"`
}

func (*BatchMail) batchBase()             {}
func (*BatchMailFromTemplate) batchBase() {}

func (b *BatchMail) isNil() bool             { return b == nil }
func (b *BatchMailFromTemplate) isNil() bool { return b == nil }

func (b *BatchMail) asRequest() BatchEmailRequest {
	if b == nil {
		return BatchEmailRequest{}
	}
	from := b.From
	return BatchEmailRequest{
		From:            &from,
		Subject:         b.Subject,
		Text:            b.Text,
		HTML:            b.HTML,
		Category:        b.Category,
		Attachments:     b.Attachments,
		Headers:         b.Headers,
		CustomVariables: b.CustomVariables,
		ReplyTo:         b.ReplyTo,
	}
}

func (b *BatchMailFromTemplate) asRequest() BatchEmailRequest {
	if b == nil {
		return BatchEmailRequest{}
	}
	from := b.From
	return BatchEmailRequest{
		From:              &from,
		TemplateUUID:      b.TemplateUUID,
		TemplateVariables: b.TemplateVariables,
		Attachments:       b.Attachments,
		Headers:           b.Headers,
		CustomVariables:   b.CustomVariables,
		ReplyTo:           b.ReplyTo,
	}
}

// BatchEmailRequest is one message of a batch. Set fields override the
// batch base; To is always required.
type BatchEmailRequest struct {
	From              *Address          `json:"from,omitzero"`
	To                []Address         `json:"to"`
	Cc                []Address         `json:"cc,omitzero"`
	Bcc               []Address         `json:"bcc,omitzero"`
	Subject           string            `json:"subject,omitzero"`
	Text              string            `json:"text,omitzero"`
	HTML              string            `json:"html,omitzero"`
	Category          string            `json:"category,omitzero"`
	TemplateUUID      string            `json:"template_uuid,omitzero"`
	TemplateVariables map[string]any    `json:"template_variables,omitzero"`
	Attachments       []Attachment      `json:"attachments,omitzero"`
	Headers           map[string]string `json:"headers,omitzero"`
	CustomVariables   map[string]any    `json:"custom_variables,omitzero"`
	ReplyTo           *Address          `json:"reply_to,omitzero"`
}

// overlay returns r with every field set in o replacing its counterpart.
func (r BatchEmailRequest) overlay(o BatchEmailRequest) BatchEmailRequest {
	if o.From != nil {
		r.From = o.From
	}
	if o.To != nil {
		r.To = o.To
	}
	if o.Cc != nil {
		r.Cc = o.Cc
	}
	if o.Bcc != nil {
		r.Bcc = o.Bcc
	}
	if o.Subject != "" {
		r.Subject = o.Subject
	}
	if o.Text != "" {
		r.Text = o.Text
	}
	if o.HTML != "" {
		r.HTML = o.HTML
	}
	if o.Category != "" {
		r.Category = o.Category
	}
	if o.TemplateUUID != "" {
		r.TemplateUUID = o.TemplateUUID
	}
	if o.TemplateVariables != nil {
		r.TemplateVariables = o.TemplateVariables
	}
	if o.Attachments != nil {
		r.Attachments = o.Attachments
	}
	if o.Headers != nil {
		r.Headers = o.Headers
	}
	if o.CustomVariables != nil {
		r.CustomVariables = o.CustomVariables
	}
	if o.ReplyTo != nil {
		r.ReplyTo = o.ReplyTo
	}
	return r
}

// BatchSendParams is the body of a batch send: an optional shared base and
// one request per message.
type BatchSendParams struct {
	Base     BatchBase           `json:"base,omitempty"`
	Requests []BatchEmailRequest `json:"requests"`
}

// Merged returns each request combined with the base, request fields taking
// precedence. The result describes the messages the server will build; the
// request body itself keeps the base and requests apart. The result shares
// no memory with p, so callers may modify it freely.
func (p BatchSendParams) Merged() []BatchEmailRequest {
	var base BatchEmailRequest
	if p.Base != nil {
		base = p.Base.asRequest()
	}
	out := make([]BatchEmailRequest, 0, len(p.Requests))
	for _, req := range p.Requests {
		m := base.overlay(req)
		if m.From != nil {
			from := *m.From
			m.From = &from
		}
		if m.ReplyTo != nil {
			replyTo := *m.ReplyTo
			m.ReplyTo = &replyTo
		}
		m.To = slices.Clone(m.To)
		m.Cc = slices.Clone(m.Cc)
		m.Bcc = slices.Clone(m.Bcc)
		m.Attachments = slices.Clone(m.Attachments)
		for i := range m.Attachments {
			m.Attachments[i].Content = bytes.Clone(m.Attachments[i].Content)
		}
		m.Headers = maps.Clone(m.Headers)
		m.CustomVariables = maps.Clone(m.CustomVariables)
		m.TemplateVariables = maps.Clone(m.TemplateVariables)
		out = append(out, m)
	}
	return out
}

// Validate checks that there is at least one request and that every merged
// message has a sender, a recipient and exactly one of inline content or a
// template.
func (p BatchSendParams) Validate() error {
	if p.Base != nil && p.Base.isNil() {
		return &ValidationError{Errors: []string{"base is required"}}
	}
	if len(p.Requests) == 0 {
		return &ValidationError{Errors: []string{"requests must not be empty"}}
	}

	var problems []string
	for i, m := range p.Merged() {
		prefix := fmt.Sprintf("requests[%d]: ", i)
		if m.From == nil || m.From.Email == "" {
			problems = append(problems, prefix+"from email is required")
		}
		if len(m.To) == 0 {
			problems = append(problems, prefix+"to is required")
		}
		inline := m.Subject != "" || m.Text != "" || m.HTML != ""
		template := m.TemplateUUID != ""
		switch {
		case inline && template:
			problems = append(problems, prefix+"inline content and template_uuid are mutually exclusive")
		case template:
		case m.Text == "" && m.HTML == "":
			problems = append(problems, prefix+"text, html or template_uuid is required")
		case m.Subject == "":
			problems = append(problems, prefix+"subject is required")
		}
	}
	return problemsError(problems)
}

// BatchSendResponse is the result of a batch send. Success reports whether
// the batch was accepted; each entry of Responses reports one message, so a
// successful batch may still contain failed messages.
type BatchSendResponse struct {
	Success   bool              `json:"success"`
	Responses []BatchSendResult `json:"responses"`
	Errors    []string          `json:"errors,omitzero"`
}

// BatchSendResult is the outcome of one message in a batch.
type BatchSendResult struct {
	Success    bool     `json:"success"`
	MessageIDs []string `json:"message_ids,omitzero"`
	Errors     []string `json:"errors,omitzero"`
}

// Failed returns the indexes of messages that were not sent.
func (r *BatchSendResponse) Failed() []int {
	var idx []int
	for i, res := range r.Responses {
		if !res.Success {
			idx = append(idx, i)
		}
	}
	return idx
}
