package utils

import (
	"bytes"
	"encoding/json"
)

// ObjectsOf returns the elements of the JSON array raw that are JSON objects.
// Anything that is not an array yields an empty, non-nil slice; null,
// scalar and array elements are dropped.
func ObjectsOf(raw []byte) []json.RawMessage {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []json.RawMessage{}
	}

	objects := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		trimmed := bytes.TrimSpace(item)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			continue
		}
		objects = append(objects, trimmed)
	}
	return objects
}

// DecodeObjects decodes the object elements of the JSON array raw into T.
// Elements that are not objects, or that do not decode into T, are skipped.
// The result is never nil.
func DecodeObjects[T any](raw []byte) []T {
	objects := ObjectsOf(raw)

	out := make([]T, 0, len(objects))
	for _, obj := range objects {
		var v T
		if err := json.Unmarshal(obj, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
