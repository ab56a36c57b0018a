package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestObjectsOf_DropsNonObjects(t *testing.T) {
	raw := []byte(`[{"id":1}, null, 3, "x", [1], {"id":2}, true]`)

	got := ObjectsOf(raw)

	require.Len(t, got, 2)
	assert.JSONEq(t, `{"id":1}`, string(got[0]))
	assert.JSONEq(t, `{"id":2}`, string(got[1]))
}

func TestObjectsOf_NotAnArray(t *testing.T) {
	for _, raw := range []string{`null`, `{"id":1}`, `"text"`, ``, `[{`} {
		got := ObjectsOf([]byte(raw))
		assert.NotNil(t, got, raw)
		assert.Empty(t, got, raw)
	}
}

func TestDecodeObjects(t *testing.T) {
	raw := []byte(`[{"id":1,"name":"a"}, null, {"id":"bad"}, {"id":3,"name":"c"}]`)

	got := DecodeObjects[item](raw)

	assert.Equal(t, []item{{ID: 1, Name: "a"}, {ID: 3, Name: "c"}}, got)
}

func TestDecodeObjects_Idempotent(t *testing.T) {
	raw := []byte(`[null, {"id":1,"name":"a"}, 7]`)

	first := DecodeObjects[item](raw)
	encoded, err := json.Marshal(first)
	require.NoError(t, err)
	second := DecodeObjects[item](encoded)

	assert.Equal(t, first, second)
}

func TestDecodeObjects_EmptyNeverNil(t *testing.T) {
	got := DecodeObjects[item]([]byte(`null`))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
