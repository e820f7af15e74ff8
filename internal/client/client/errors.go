package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrBadResponse = errors.New("unexpected response")
)

// FieldError is one entry of a structured validation failure.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ErrorBody is the decoded body of a non-2xx response. Some gateways wrap the
// message as {"response":{"data":{"message":...}}}; that form is kept in
// Nested.
type ErrorBody struct {
	Status  string       `json:"status,omitempty"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"-"`
	Nested  string       `json:"-"`
}

// UnmarshalJSON takes each known field only when it has the expected type,
// so one odd field does not hide the others.
func (b *ErrorBody) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*b = ErrorBody{}
	b.Status = stringField(raw["status"])
	b.Message = stringField(raw["message"])

	var response struct {
		Data json.RawMessage `json:"data"`
	}
	if r := raw["response"]; len(r) > 0 && json.Unmarshal(r, &response) == nil {
		var data map[string]json.RawMessage
		if json.Unmarshal(response.Data, &data) == nil {
			b.Nested = stringField(data["message"])
		}
	}

	// "error" only counts as structured when it is an array of objects.
	if e := raw["error"]; len(e) > 0 && e[0] == '[' {
		var list []FieldError
		if err := json.Unmarshal(e, &list); err == nil {
			b.Errors = list
		}
	}
	return nil
}

// stringField returns v when it is a JSON string and "" otherwise.
func stringField(v json.RawMessage) string {
	var s string
	if len(v) == 0 || json.Unmarshal(v, &s) != nil {
		return ""
	}
	return s
}

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Body       ErrorBody
	// Raw holds the response text when it was not a JSON object.
	Raw string
}

func (e *APIError) Error() string {
	switch {
	case e.Body.Message != "":
		return e.Body.Message
	case len(e.Body.Errors) > 0:
		return e.Body.Errors[0].Message
	case e.Raw != "":
		return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Raw)
	default:
		return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
}

// Structured reports whether the body carried a field-level error list.
func (e *APIError) Structured() bool {
	return e.Body.Errors != nil
}
