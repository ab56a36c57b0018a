package models

import "encoding/json"

// ErrorResponse is the error body produced by the Sterling API. Detail is
// either a plain string or a list of validation errors shaped like
// [ValidationError]; Message is an alternative top-level text some endpoints
// return instead.
type ErrorResponse struct {
	Detail  json.RawMessage `json:"detail"`
	Message json.RawMessage `json:"message"`
}

// ValidationError is one element of a validation-error Detail list.
type ValidationError struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}
