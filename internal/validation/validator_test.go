package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_PlainObject(t *testing.T) {
	text, ok := ExtractJSON(`{"a": 1}`)
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, text)
}

func TestExtractJSON_SurroundedByProseAndFences(t *testing.T) {
	raw := "Here is the summary:\n```json\n{\"purpose\": \"does X\"}\n```\nLet me know if you need more."
	text, ok := ExtractJSON(raw)
	require.True(t, ok)
	assert.Equal(t, `{"purpose": "does X"}`, text)
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	raw := `{"outer": {"inner": [1, 2, {"deep": true}]}}`
	text, ok := ExtractJSON(raw)
	require.True(t, ok)
	assert.Equal(t, raw, text)
}

func TestExtractJSON_BraceInsideString(t *testing.T) {
	raw := `{"note": "use { and } carefully"}`
	text, ok := ExtractJSON(raw)
	require.True(t, ok)
	assert.Equal(t, raw, text)
}

func TestExtractJSON_NoJSONPresent(t *testing.T) {
	_, ok := ExtractJSON("no json here at all")
	assert.False(t, ok)
}

func TestValidate_MissingRequiredFieldIsSchemaInvalid(t *testing.T) {
	var out map[string]any
	err := Validate(`{"purpose": "x"}`, Schema{RequiredFields: []string{"purpose", "implementation"}}, &out)
	require.Error(t, err)
	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, ErrorSchemaInvalid, verr.Kind)
}

func TestValidate_NoJSONIsBadContent(t *testing.T) {
	var out map[string]any
	err := Validate("not json", Schema{}, &out)
	require.Error(t, err)
	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, ErrorBadContent, verr.Kind)
}

func TestValidate_Success(t *testing.T) {
	type target struct {
		Purpose string `json:"purpose"`
	}
	var out target
	err := Validate(`{"purpose": "parses config files"}`, Schema{RequiredFields: []string{"purpose"}}, &out)
	require.NoError(t, err)
	assert.Equal(t, "parses config files", out.Purpose)
}
