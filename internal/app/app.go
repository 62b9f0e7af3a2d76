package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rbright/gcd/internal/cli"
	"github.com/rbright/gcd/internal/config"
	"github.com/rbright/gcd/internal/doctor"
	"github.com/rbright/gcd/internal/gcd"
	"github.com/rbright/gcd/internal/logging"
	"github.com/rbright/gcd/internal/report"
	"github.com/rbright/gcd/internal/version"
)

const binaryName = "gcd"

type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := Runner{Stdout: stdout, Stderr: stderr}
	return r.Execute(ctx, args)
}

func (r Runner) Execute(ctx context.Context, args []string) int {
	parsed, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n\n", err)
		fmt.Fprint(r.Stderr, cli.HelpText(binaryName))
		return 2
	}

	if parsed.ShowHelp {
		fmt.Fprint(r.Stdout, cli.HelpText(binaryName))
		return 0
	}

	if parsed.Command == cli.CommandVersion {
		fmt.Fprintln(r.Stdout, version.String())
		return 0
	}

	cfgLoaded, err := config.Load(parsed.ConfigPath)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	logRuntime, err := logging.New(cfgLoaded.Config.Log)
	if err != nil {
		// doctor reports the broken log sink itself.
		if parsed.Command != cli.CommandDoctor {
			fmt.Fprintf(r.Stderr, "error: setup logging: %v\n", err)
			return 1
		}
		logRuntime = logging.Runtime{Logger: slog.New(slog.DiscardHandler)}
	}
	defer func() { _ = logRuntime.Close() }()

	logger := r.Logger
	if logger == nil {
		logger = logRuntime.Logger
	}

	for _, w := range cfgLoaded.Warnings {
		// A missing file is the normal case and only goes to the log.
		if cfgLoaded.Exists {
			msg := w.Message
			if w.Line > 0 {
				msg = fmt.Sprintf("line %d: %s", w.Line, w.Message)
			}
			fmt.Fprintf(r.Stderr, "warning: %s\n", msg)
		}
		logger.Warn("config warning", "line", w.Line, "message", w.Message)
	}

	logger.Info("command start",
		"command", parsed.Command,
		"config", cfgLoaded.Path,
		"log", logRuntime.Path,
	)

	switch parsed.Command {
	case cli.CommandDoctor:
		rep := doctor.Run(cfgLoaded)
		fmt.Fprintln(r.Stdout, rep.String())
		if rep.OK() {
			return 0
		}
		return 1
	case cli.CommandCompute:
		return r.commandCompute(ctx, parsed, cfgLoaded.Config.Output, logger)
	default:
		fmt.Fprintf(r.Stderr, "error: unsupported command %q\n", parsed.Command)
		return 2
	}
}

func (r Runner) commandCompute(ctx context.Context, parsed cli.Parsed, output config.OutputConfig, logger *slog.Logger) int {
	operands, err := cli.ParseOperands(parsed.Operands)
	if errors.Is(err, cli.ErrNoOperands) {
		fmt.Fprintln(r.Stderr, cli.UsageLine(binaryName))
		logger.Error("no operands supplied")
		return 1
	}
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("invalid operand", "error", err.Error())
		return 1
	}

	if err := ctx.Err(); err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	result := report.Result{Inputs: operands, GCD: gcd.Fold(operands)}
	logger.Debug("gcd computed", "inputs", operands, "gcd", result.GCD)

	opts := report.Options{Format: output.Format, Quiet: output.Quiet || parsed.Quiet}
	if parsed.Format != "" {
		opts.Format = parsed.Format
	}
	if err := report.Write(r.Stdout, opts, result); err != nil {
		fmt.Fprintf(r.Stderr, "error: write result: %v\n", err)
		logger.Error("write result failed", "error", err.Error())
		return 1
	}

	logger.Info("command complete", "operand_count", len(operands), "gcd", result.GCD)
	return 0
}
