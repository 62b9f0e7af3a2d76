package cli

import (
	"errors"
	"fmt"
	"strings"
)

type Command string

const (
	CommandCompute Command = "compute"
	CommandDoctor  Command = "doctor"
	CommandVersion Command = "version"
	CommandHelp    Command = "help"
)

var commandWords = map[Command]struct{}{
	CommandDoctor:  {},
	CommandVersion: {},
	CommandHelp:    {},
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Parsed is the argv contract. An empty Format defers to the config file.
type Parsed struct {
	Command    Command
	ConfigPath string
	ShowHelp   bool
	Format     string
	Quiet      bool
	Operands   []string
}

func Parse(args []string) (Parsed, error) {
	parsed := Parsed{Command: CommandCompute}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case "-h", "--help":
			parsed.ShowHelp = true
			parsed.Command = CommandHelp
		case "--version":
			parsed.ShowHelp = false
			parsed.Command = CommandVersion
		case "--config":
			i++
			if i >= len(args) {
				return Parsed{}, errors.New("--config requires a path")
			}
			parsed.ConfigPath = args[i]
		case "--format":
			i++
			if i >= len(args) {
				return Parsed{}, errors.New("--format requires a value")
			}
			format := strings.ToLower(strings.TrimSpace(args[i]))
			if format != FormatText && format != FormatJSON {
				return Parsed{}, fmt.Errorf("--format must be one of: %s, %s", FormatText, FormatJSON)
			}
			parsed.Format = format
		case "-q", "--quiet":
			parsed.Quiet = true
		case "--":
			parsed.Operands = append(parsed.Operands, args[i+1:]...)
			return parsed, nil
		default:
			if strings.HasPrefix(arg, "-") {
				return Parsed{}, fmt.Errorf("unknown flag: %s", arg)
			}

			cmd := Command(arg)
			if _, ok := commandWords[cmd]; ok && len(parsed.Operands) == 0 {
				if parsed.Command == CommandCompute {
					parsed.Command = cmd
				}
				parsed.ShowHelp = parsed.ShowHelp || cmd == CommandHelp
				if i != len(args)-1 {
					return Parsed{}, fmt.Errorf("unexpected arguments after command %q", arg)
				}
				continue
			}

			parsed.Operands = append(parsed.Operands, arg)
		}
	}

	return parsed, nil
}

// UsageLine is the short message printed when no numbers are supplied.
func UsageLine(binaryName string) string {
	return fmt.Sprintf("usage: %s NUMBER...", binaryName)
}

func HelpText(binaryName string) string {
	return fmt.Sprintf(`Usage:
  %[1]s [flags] [--] NUMBER...
  %[1]s [flags] <command>

Prints the greatest common divisor of one or more positive integers.

Commands:
  doctor    Run configuration and environment checks
  version   Print version information
  help      Show this help

Flags:
  --config PATH     Config file path (default: $XDG_CONFIG_HOME/gcd/config.jsonc)
  --format FORMAT   Output format: text or json (default from config)
  -q, --quiet       Print only the result
  -h, --help        Show help
  --version         Show version
`, binaryName)
}
