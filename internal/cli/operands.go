package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNoOperands reports that no numbers were supplied.
	ErrNoOperands = errors.New("no numbers supplied")
	// ErrZeroOperand reports a number that parsed as zero.
	ErrZeroOperand = errors.New("number must be greater than zero")
)

// OperandError ties a rejected token to its 1-based position.
type OperandError struct {
	Position int
	Token    string
	Err      error
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("argument %d (%q): %v", e.Position, e.Token, e.Err)
}

func (e *OperandError) Unwrap() error {
	return e.Err
}

// ParseOperands converts raw tokens into positive base-10 integers.
func ParseOperands(tokens []string) ([]uint64, error) {
	if len(tokens) == 0 {
		return nil, ErrNoOperands
	}

	values := make([]uint64, 0, len(tokens))
	for i, token := range tokens {
		value, err := strconv.ParseUint(strings.TrimSpace(token), 10, 64)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				err = numErr.Err
			}
			return nil, &OperandError{Position: i + 1, Token: token, Err: fmt.Errorf("parse unsigned integer: %w", err)}
		}
		if value == 0 {
			return nil, &OperandError{Position: i + 1, Token: token, Err: ErrZeroOperand}
		}
		values = append(values, value)
	}

	return values, nil
}
