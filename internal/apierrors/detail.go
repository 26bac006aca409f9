package apierrors

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// FieldError holds the messages reported for one request field.
type FieldError struct {
	Field    string
	Messages []string
}

// ErrorDetail is the parsed "errors" payload of a failed response. Exactly
// one of List or Fields is populated.
type ErrorDetail struct {
	List   []string
	Fields []FieldError
}

// IsFieldMap reports whether the server sent a field -> message(s) mapping.
func (d ErrorDetail) IsFieldMap() bool {
	return d.Fields != nil
}

// Lines returns one rendered line per list item or field.
func (d ErrorDetail) Lines() []string {
	if d.Fields != nil {
		lines := make([]string, 0, len(d.Fields))
		for _, f := range d.Fields {
			lines = append(lines, f.String())
		}
		return lines
	}
	return append([]string(nil), d.List...)
}

// String joins Lines with "; ".
func (d ErrorDetail) String() string {
	return strings.Join(d.Lines(), "; ")
}

// String renders "field: msg" for a single message and
// "field: ['a', 'b']" for several.
func (f FieldError) String() string {
	if len(f.Messages) == 1 {
		return f.Field + ": " + f.Messages[0]
	}
	quoted := make([]string, len(f.Messages))
	for i, m := range f.Messages {
		quoted[i] = reprString(m)
	}
	return f.Field + ": [" + strings.Join(quoted, ", ") + "]"
}

// reprString quotes s the way error lists are conventionally printed:
// single quotes, switching to double quotes when s contains a single quote.
func reprString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

// FromResponse builds the APIError for a failed response.
func FromResponse(status int, body []byte) *APIError {
	kind := ClassifyStatus(status)
	raw := errorsValue(body)

	var detail ErrorDetail
	if raw != nil {
		d, err := ParseDetail(raw)
		if err == nil {
			detail = d
		}
	}
	if len(detail.List) == 0 && len(detail.Fields) == 0 {
		detail = ErrorDetail{List: []string{kind.String()}}
	}

	return &APIError{
		StatusCode: status,
		Kind:       kind,
		Detail:     detail,
		Raw:        raw,
		Message:    detail.String(),
	}
}

// errorsValue extracts the raw "errors" (or "error") value from a response
// body. A top-level JSON array is treated as the errors value itself.
func errorsValue(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return nil
	}
	if trimmed[0] == '[' {
		return json.RawMessage(trimmed)
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil
	}
	if v, ok := envelope["errors"]; ok && !isNull(v) {
		return v
	}
	if v, ok := envelope["error"]; ok && !isNull(v) {
		return v
	}
	return nil
}

// ParseDetail parses an "errors" value into its tagged form. Object keys
// keep the order in which the server sent them.
func ParseDetail(raw json.RawMessage) (ErrorDetail, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ErrorDetail{}, errors.New("empty errors value")
	}
	switch raw[0] {
	case '{':
		fields, err := parseFields(raw)
		if err != nil {
			return ErrorDetail{}, err
		}
		return ErrorDetail{Fields: fields}, nil
	default:
		items, err := flattenMessages(raw)
		if err != nil {
			return ErrorDetail{}, err
		}
		return ErrorDetail{List: items}, nil
	}
}

func parseFields(raw json.RawMessage) ([]FieldError, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, errors.Wrap(err, "read errors object")
	}

	fields := []FieldError{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "read field name")
		}
		name, ok := tok.(string)
		if !ok {
			return nil, errors.Errorf("unexpected field token %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, errors.Wrapf(err, "read messages for %q", name)
		}
		msgs, err := flattenMessages(value)
		if err != nil {
			return nil, err
		}
		fields = append(fields, FieldError{Field: name, Messages: msgs})
	}
	return fields, nil
}

// flattenMessages turns a string, an array (possibly nested) or any other
// JSON value into a flat list of message strings.
func flattenMessages(raw json.RawMessage) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, errors.Wrap(err, "decode message")
		}
		return []string{s}, nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, errors.Wrap(err, "decode message list")
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			msgs, err := flattenMessages(item)
			if err != nil {
				return nil, err
			}
			out = append(out, msgs...)
		}
		return out, nil
	default:
		return []string{string(raw)}, nil
	}
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
