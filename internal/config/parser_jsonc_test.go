package config

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeJSONCRemovesCommentsAndTrailingCommas(t *testing.T) {
	input := `
{
  // line comment
  "output": {
    "format": "json", /* block comment */
    "quiet": true,
  },
  "log": {
    "enable": true,
  },
}
`

	normalized, err := normalizeJSONC(input)
	require.NoError(t, err)
	require.NotContains(t, normalized, "//")
	require.NotContains(t, normalized, "/*")
	require.Len(t, normalized, len(input))

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(normalized), &payload))
}

func TestNormalizeJSONCRetainsCommentLikeTextInsideStrings(t *testing.T) {
	input := `{"value":"contains // and /* comment-like */ text, ]",}`
	normalized, err := normalizeJSONC(input)
	require.NoError(t, err)
	require.Contains(t, normalized, "// and /* comment-like */ text, ]")
}

func TestNormalizeJSONCHandlesEscapedQuotes(t *testing.T) {
	input := `{"value":"say \"hi\" // still text"} // gone`
	normalized, err := normalizeJSONC(input)
	require.NoError(t, err)
	require.Contains(t, normalized, `say \"hi\" // still text`)
	require.NotContains(t, normalized, "gone")
}

func TestNormalizeJSONCUnterminatedBlockCommentFails(t *testing.T) {
	_, err := normalizeJSONC("{ /* unterminated ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unterminated block comment")
}

func TestEnsureSingleJSONValueRejectsExtraPayload(t *testing.T) {
	decoder := json.NewDecoder(strings.NewReader(`{"one":1}{"two":2}`))
	var payload map[string]any
	require.NoError(t, decoder.Decode(&payload))

	err := ensureSingleJSONValue(decoder)
	require.Error(t, err)
	require.Contains(t, err.Error(), "multiple JSON values")
}

func TestOffsetToLineCol(t *testing.T) {
	content := "line1\nline2\nline3"
	line, col := offsetToLineCol(content, 1)
	require.Equal(t, 1, line)
	require.Equal(t, 1, col)

	line, col = offsetToLineCol(content, 8) // line2, col2
	require.Equal(t, 2, line)
	require.Equal(t, 2, col)

	line, col = offsetToLineCol(content, 999)
	require.Equal(t, 3, line)
	require.Equal(t, 5, col)
}

func TestParseJSONCNormalizesOutputAndLogFields(t *testing.T) {
	cfg, warnings, err := parseJSONC(`{
  "output": {"format": "  JSON ", "quiet": true},
  "log": {"level": " Debug "},
}`, Default())
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, "json", cfg.Output.Format)
	require.True(t, cfg.Output.Quiet)
	require.Equal(t, "debug", cfg.Log.Level)
	require.True(t, cfg.Log.Enable)
}

func TestParseJSONCRejectsUnknownField(t *testing.T) {
	_, _, err := parseJSONC(`{"output":{"colour":"red"}}`, Default())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown field")
}

func TestParseJSONCRejectsMultipleTopLevelValues(t *testing.T) {
	_, _, err := parseJSONC(`{"output":{"quiet":false}}{"output":{"quiet":true}}`, Default())
	require.Error(t, err)
	require.True(
		t,
		strings.Contains(err.Error(), "multiple JSON values") || strings.Contains(err.Error(), "unknown field"),
		"unexpected error: %v",
		err,
	)
}

func TestParseJSONCTypeErrorIncludesLocation(t *testing.T) {
	_, _, err := parseJSONC(`{
  // comments keep offsets stable
  "log": {"enable": "yes"}
}`, Default())
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 3")
	require.Contains(t, err.Error(), "column")
}
