package adapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/sterling-client/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &APIError{
		StatusCode: resp.StatusCode(),
		Message:    extractErrorMessage(resp.Body(), genericMessage(resp.StatusCode())),
	}
}

// extractErrorMessage reads the error text of a Sterling API body in this
// order: a non-blank "detail" string, the "msg" fields of a "detail" list
// joined with " | ", any other "detail" list or object as compact JSON text
// (an empty list reads "[]"), a non-blank top-level "message". fallback is
// returned otherwise.
func extractErrorMessage(body []byte, fallback string) string {
	var payload models.ErrorResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return fallback
	}

	detail := bytes.TrimSpace(payload.Detail)
	if len(detail) > 0 {
		switch detail[0] {
		case '"':
			var s string
			if err := json.Unmarshal(detail, &s); err == nil && strings.TrimSpace(s) != "" {
				return s
			}
		case '[':
			return validationMessages(detail)
		case '{':
			return compactJSON(detail)
		}
	}

	var message string
	if err := json.Unmarshal(payload.Message, &message); err == nil && strings.TrimSpace(message) != "" {
		return message
	}

	return fallback
}

// validationMessages joins the "msg" fields of a detail list. A list
// without usable messages, the empty one included, is returned as JSON text.
func validationMessages(detail json.RawMessage) string {
	var items []json.RawMessage
	if err := json.Unmarshal(detail, &items); err != nil {
		return compactJSON(detail)
	}

	msgs := make([]string, 0, len(items))
	for _, item := range items {
		var v models.ValidationError
		if err := json.Unmarshal(item, &v); err != nil {
			continue
		}
		if strings.TrimSpace(v.Msg) != "" {
			msgs = append(msgs, v.Msg)
		}
	}

	if len(msgs) == 0 {
		return compactJSON(detail)
	}
	return strings.Join(msgs, " | ")
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
