// Package doctor runs readiness diagnostics for config, the log sink, and the reducer.
package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rbright/gcd/internal/cli"
	"github.com/rbright/gcd/internal/config"
	"github.com/rbright/gcd/internal/gcd"
	"github.com/rbright/gcd/internal/logging"
)

// Check is one doctor assertion result.
type Check struct {
	Name    string
	Pass    bool
	Message string
}

// Report is the full doctor output contract.
type Report struct {
	Checks []Check
}

// OK returns true when all checks pass.
func (r Report) OK() bool {
	for _, check := range r.Checks {
		if !check.Pass {
			return false
		}
	}
	return true
}

// String renders the report as user-facing text output.
func (r Report) String() string {
	var b strings.Builder
	for _, check := range r.Checks {
		status := "OK"
		if !check.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "[%s] %s: %s\n", status, check.Name, check.Message)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Run executes config, log sink, and reducer checks for a loaded config.
func Run(cfg config.Loaded) Report {
	checks := []Check{checkConfig(cfg)}

	checks = append(checks, checkOutputFormat(cfg.Config.Output))

	checks = append(checks, checkLogSink(cfg.Config.Log))
	checks = append(checks, checkReducer())

	return Report{Checks: checks}
}

func checkConfig(cfg config.Loaded) Check {
	if !cfg.Exists {
		return Check{Name: "config", Pass: true, Message: fmt.Sprintf("%q not found; using defaults", cfg.Path)}
	}
	return Check{Name: "config", Pass: true, Message: fmt.Sprintf("loaded %q", cfg.Path)}
}

func checkOutputFormat(cfg config.OutputConfig) Check {
	switch cfg.Format {
	case cli.FormatText, cli.FormatJSON:
		return Check{Name: "output.format", Pass: true, Message: fmt.Sprintf("rendering as %s", cfg.Format)}
	default:
		return Check{Name: "output.format", Pass: false, Message: fmt.Sprintf("unsupported format %q (want %s or %s)", cfg.Format, cli.FormatText, cli.FormatJSON)}
	}
}

// checkLogSink confirms the JSONL log directory accepts new files.
func checkLogSink(cfg config.LogConfig) Check {
	if !cfg.Enable {
		return Check{Name: "log", Pass: true, Message: "disabled"}
	}

	path, err := logging.ResolvePath()
	if err != nil {
		return Check{Name: "log", Pass: false, Message: fmt.Sprintf("resolve log path: %v", err)}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return Check{Name: "log", Pass: false, Message: fmt.Sprintf("create %s: %v", dir, err)}
	}

	probe, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return Check{Name: "log", Pass: false, Message: fmt.Sprintf("%s is not writable: %v", dir, err)}
	}
	_ = probe.Close()
	_ = os.Remove(probe.Name())

	return Check{Name: "log", Pass: true, Message: fmt.Sprintf("writing %s at level %s", path, cfg.Level)}
}

// checkReducer runs known answers through the reducer.
func checkReducer() Check {
	if got := gcd.Pair[uint64](14, 15); got != 1 {
		return Check{Name: "reducer", Pass: false, Message: fmt.Sprintf("gcd(14, 15) = %d, want 1", got)}
	}
	if got := gcd.Fold([]uint64{12, 18, 24}); got != 6 {
		return Check{Name: "reducer", Pass: false, Message: fmt.Sprintf("gcd(12, 18, 24) = %d, want 6", got)}
	}
	return Check{Name: "reducer", Pass: true, Message: "known answers match"}
}
