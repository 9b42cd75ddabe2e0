package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_FencedJSON(t *testing.T) {
	raw := "```json\n{\"language\": \"Python\", \"lessons\": []}\n```"

	got, err := Object(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"language": "Python", "lessons": []}`, got)
}

func TestObject_FenceWithoutLanguageTag(t *testing.T) {
	raw := "```\n{\"a\": 1}\n```"

	got, err := Object(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, got)
}

func TestObject_TrailingProse(t *testing.T) {
	raw := "Here is the curriculum you asked for:\n{\"a\": 1}\nLet me know if you need anything else."

	got, err := Object(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, got)
}

func TestObject_NestedBraces(t *testing.T) {
	raw := `{"outer": {"inner": {"deep": 1}}, "b": 2} trailing`

	got, err := Object(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"outer": {"inner": {"deep": 1}}, "b": 2}`, got)
}

func TestObject_BareJSON(t *testing.T) {
	got, err := Object(`  {"questions": [{"q": "?"}]}  `)
	require.NoError(t, err)
	assert.Equal(t, `{"questions": [{"q": "?"}]}`, got)
}

func TestObject_TruncatedJSON(t *testing.T) {
	_, err := Object(`{"a": 1, "b": `)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, perr.Snippet, `{"a": 1`)
}

func TestObject_BalancedButInvalid(t *testing.T) {
	_, err := Object(`{not json at all}`)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
}

func TestObject_NoBraces(t *testing.T) {
	_, err := Object("I could not produce the requested output.")

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
}

func TestObject_Empty(t *testing.T) {
	_, err := Object("")

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
}

func TestObject_SnippetIsBounded(t *testing.T) {
	long := make([]byte, 2000)
	for i := range long {
		long[i] = 'x'
	}

	_, err := Object(string(long))

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.LessOrEqual(t, len(perr.Snippet), snippetLimit)
}
