package cli

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOperandsValid(t *testing.T) {
	values, err := ParseOperands([]string{"12", " 18 ", "24", "18446744073709551615"})
	require.NoError(t, err)
	require.Equal(t, []uint64{12, 18, 24, 18446744073709551615}, values)
}

func TestParseOperandsEmpty(t *testing.T) {
	_, err := ParseOperands(nil)
	require.ErrorIs(t, err, ErrNoOperands)
}

func TestParseOperandsRejectsInvalidTokens(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		position int
		wantErr  error
	}{
		{name: "letters", tokens: []string{"12", "abc"}, position: 2, wantErr: strconv.ErrSyntax},
		{name: "empty token", tokens: []string{""}, position: 1, wantErr: strconv.ErrSyntax},
		{name: "sign prefix", tokens: []string{"+4"}, position: 1, wantErr: strconv.ErrSyntax},
		{name: "decimal point", tokens: []string{"4.0"}, position: 1, wantErr: strconv.ErrSyntax},
		{name: "overflow", tokens: []string{"18446744073709551616"}, position: 1, wantErr: strconv.ErrRange},
		{name: "zero", tokens: []string{"5", "10", "0"}, position: 3, wantErr: ErrZeroOperand},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseOperands(tc.tokens)
			require.Error(t, err)
			require.ErrorIs(t, err, tc.wantErr)

			var operandErr *OperandError
			require.True(t, errors.As(err, &operandErr))
			require.Equal(t, tc.position, operandErr.Position)
			require.Equal(t, tc.tokens[tc.position-1], operandErr.Token)
			require.Contains(t, err.Error(), "argument")
		})
	}
}
