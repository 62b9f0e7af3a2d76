// Package report renders a computed GCD for terminal or machine consumption.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Result pairs the validated inputs with their greatest common divisor.
type Result struct {
	Inputs []uint64 `json:"inputs"`
	GCD    uint64   `json:"gcd"`
}

// Options selects the rendering.
type Options struct {
	Format string
	Quiet  bool
}

// Write renders result to w in the requested format.
func Write(w io.Writer, opts Options, result Result) error {
	switch opts.Format {
	case "", "text":
		if opts.Quiet {
			_, err := fmt.Fprintln(w, result.GCD)
			return err
		}
		_, err := fmt.Fprintf(w, "The greatest common divisor of %s is %d\n", formatInputs(result.Inputs), result.GCD)
		return err
	case "json":
		payload := any(result)
		if opts.Quiet {
			payload = struct {
				GCD uint64 `json:"gcd"`
			}{GCD: result.GCD}
		}
		return json.NewEncoder(w).Encode(payload)
	default:
		return fmt.Errorf("unsupported output format %q", opts.Format)
	}
}

func formatInputs(inputs []uint64) string {
	parts := make([]string, 0, len(inputs))
	for _, v := range inputs {
		parts = append(parts, strconv.FormatUint(v, 10))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
