package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

type jsoncConfig struct {
	Output *jsoncOutput `json:"output"`
	Log    *jsoncLog    `json:"log"`
}

type jsoncOutput struct {
	Format *string `json:"format"`
	Quiet  *bool   `json:"quiet"`
}

type jsoncLog struct {
	Enable *bool   `json:"enable"`
	Level  *string `json:"level"`
}

func parseJSONC(content string, base Config) (Config, []Warning, error) {
	normalized, err := normalizeJSONC(content)
	if err != nil {
		return Config{}, nil, err
	}

	decoder := json.NewDecoder(strings.NewReader(normalized))
	decoder.DisallowUnknownFields()

	var payload jsoncConfig
	if err := decoder.Decode(&payload); err != nil {
		return Config{}, nil, wrapJSONDecodeError(normalized, err)
	}
	if err := ensureSingleJSONValue(decoder); err != nil {
		return Config{}, nil, wrapJSONDecodeError(normalized, err)
	}

	cfg := base
	payload.applyTo(&cfg)

	warnings, err := Validate(cfg)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, warnings, nil
}

func (payload jsoncConfig) applyTo(cfg *Config) {
	if payload.Output != nil {
		if payload.Output.Format != nil {
			cfg.Output.Format = strings.ToLower(strings.TrimSpace(*payload.Output.Format))
		}
		if payload.Output.Quiet != nil {
			cfg.Output.Quiet = *payload.Output.Quiet
		}
	}

	if payload.Log != nil {
		if payload.Log.Enable != nil {
			cfg.Log.Enable = *payload.Log.Enable
		}
		if payload.Log.Level != nil {
			cfg.Log.Level = strings.ToLower(strings.TrimSpace(*payload.Log.Level))
		}
	}
}

// normalizeJSONC blanks out comments and trailing commas with spaces so
// decoder offsets still point at the original line and column.
func normalizeJSONC(content string) (string, error) {
	withoutComments, err := blankJSONCComments(content)
	if err != nil {
		return "", err
	}
	return blankTrailingCommas(withoutComments), nil
}

func blankJSONCComments(content string) (string, error) {
	out := []byte(content)
	const (
		code = iota
		str
		strEscape
		line
		block
	)
	state := code

	for i := 0; i < len(out); i++ {
		ch := out[i]
		switch state {
		case str:
			switch ch {
			case '\\':
				state = strEscape
			case '"':
				state = code
			}
		case strEscape:
			state = str
		case line:
			if ch == '\n' || ch == '\r' {
				state = code
				continue
			}
			out[i] = ' '
		case block:
			if ch == '*' && i+1 < len(out) && out[i+1] == '/' {
				out[i], out[i+1] = ' ', ' '
				i++
				state = code
				continue
			}
			if !isJSONWhitespace(ch) {
				out[i] = ' '
			}
		default:
			if ch == '"' {
				state = str
				continue
			}
			if ch == '/' && i+1 < len(out) {
				switch out[i+1] {
				case '/':
					state = line
				case '*':
					state = block
				default:
					continue
				}
				out[i], out[i+1] = ' ', ' '
				i++
			}
		}
	}

	if state == block {
		return "", fmt.Errorf("unterminated block comment in JSONC")
	}
	return string(out), nil
}

func blankTrailingCommas(content string) string {
	out := []byte(content)
	inString := false
	escape := false

	for i, ch := range out {
		if inString {
			switch {
			case escape:
				escape = false
			case ch == '\\':
				escape = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case ',':
			j := i + 1
			for j < len(out) && isJSONWhitespace(out[j]) {
				j++
			}
			if j < len(out) && (out[j] == '}' || out[j] == ']') {
				out[i] = ' '
			}
		}
	}

	return string(out)
}

func isJSONWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\n' || ch == '\r' || ch == '\t'
}

func ensureSingleJSONValue(decoder *json.Decoder) error {
	var extra struct{}
	err := decoder.Decode(&extra)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err == nil {
		return fmt.Errorf("multiple JSON values are not allowed")
	}
	return err
}

func wrapJSONDecodeError(content string, err error) error {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return err
	}

	line, col := offsetToLineCol(content, offset)
	return fmt.Errorf("line %d column %d: %w", line, col, err)
}

func offsetToLineCol(content string, offset int64) (int, int) {
	if offset <= 0 {
		return 1, 1
	}

	limit := min(int(offset), len(content))
	prefix := content[:max(limit-1, 0)]
	line := strings.Count(prefix, "\n") + 1
	col := len(prefix) - strings.LastIndex(prefix, "\n")
	return line, col
}
