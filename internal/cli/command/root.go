// Package command provides the command definitions of the cybertoken CLI.
package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/cybertoken-go/internal/cli/config"
	"github.com/yndnr/cybertoken-go/internal/cli/output"
	"github.com/yndnr/cybertoken-go/internal/infra/buildinfo"
	"github.com/yndnr/cybertoken-go/internal/telemetry/logger"
	"github.com/yndnr/cybertoken-go/internal/telemetry/metric"
	"github.com/yndnr/cybertoken-go/pkg/cybertoken"
)

const stateKey = "state"

// State is what Before prepares for every command.
type State struct {
	Config  *config.CLIConfig
	Codec   cybertoken.Config
	Metrics *metric.Registry
	Ctx     context.Context
}

// Log returns the run-scoped logger.
func (s *State) Log() logger.Logger {
	return logger.L(s.Ctx)
}

// Formatter returns the formatter for the configured output format.
func (s *State) Formatter() output.Formatter {
	return output.NewFormatter(output.Format(s.Config.Output.Format), !s.Config.Output.Headers)
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "cybertoken",
		Usage:   "Generate and check prefixed, checksummed API tokens",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			GenerateCommand(),
			InspectCommand(),
			ValidateCommand(),
			ConfigCommand(),
		},
		Before: before,
		After:  after,
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file (default ~/.cybertoken/config.yaml if present)",
		},
		&cli.StringFlag{
			Name:    "prefix",
			Aliases: []string{"p"},
			Usage:   "Token prefix, without underscore",
		},
		&cli.IntFlag{
			Name:  "token-version",
			Usage: "Version byte required when parsing (0-255)",
		},
		&cli.IntFlag{
			Name:    "entropy-bytes",
			Aliases: []string{"e"},
			Usage:   "Random bytes per token, including the marker byte",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.BoolFlag{
			Name:  "no-headers",
			Usage: "Omit the header row of table output",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
		&cli.StringFlag{
			Name:  "metrics-textfile",
			Usage: "Write Prometheus metrics to this file after the command",
		},
	}
}

// flagKeys maps global flags to configuration keys.
var flagKeys = []struct {
	flag  string
	key   string
	value func(c *cli.Context, flag string) any
}{
	{"prefix", "token.prefix", stringValue},
	{"token-version", "token.version", intValue},
	{"entropy-bytes", "token.entropy", intValue},
	{"output", "output.format", stringValue},
	{"no-headers", "output.headers", negatedBoolValue},
	{"log-level", "log.level", stringValue},
	{"log-format", "log.format", stringValue},
	{"metrics-textfile", "metrics.textfile", stringValue},
}

func stringValue(c *cli.Context, flag string) any { return c.String(flag) }
func intValue(c *cli.Context, flag string) any { return c.Int(flag) }
func negatedBoolValue(c *cli.Context, flag string) any { return !c.Bool(flag) }

// flagOverrides collects the global flags the user actually set.
func flagOverrides(c *cli.Context) map[string]any {
	overrides := make(map[string]any)
	for _, f := range flagKeys {
		if c.IsSet(f.flag) {
			overrides[f.key] = f.value(c, f.flag)
		}
	}
	return overrides
}

// skipsSetup reports whether the command line names a config subcommand
// that works on the config file itself. Those must run even when the file
// does not load or verify.
func skipsSetup(c *cli.Context) bool {
	args := c.Args()
	if args.First() != "config" {
		return false
	}
	switch args.Get(1) {
	case "path", "init":
		return true
	}
	return false
}

func before(c *cli.Context) error {
	if skipsSetup(c) {
		return nil
	}

	cfg, err := config.Load(c.String("config"), flagOverrides(c))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	logger.RegisterSensitivePrefix(cfg.Token.Prefix)

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithRunID(logger.WithLogger(ctx, log), ulid.Make().String())

	st := &State{
		Config:  cfg,
		Codec:   cfg.Codec(),
		Metrics: metric.NewRegistry(),
		Ctx:     ctx,
	}
	if cfg.Token.Version != 0 {
		st.Log().Warn("generated tokens always carry version 0 and will not parse under this configuration",
			"token_version", cfg.Token.Version)
	}
	st.Log().Debug("configuration loaded",
		"prefix", cfg.Token.Prefix,
		"entropy", cfg.Token.Entropy,
		"output", cfg.Output.Format)

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[stateKey] = st
	return nil
}

func after(c *cli.Context) error {
	st := GetState(c)
	if st == nil || st.Config.Metrics.Textfile == "" {
		return nil
	}
	if err := st.Metrics.WriteTextfile(st.Config.Metrics.Textfile); err != nil {
		st.Log().Error("write metrics textfile failed", "path", st.Config.Metrics.Textfile, "error", err)
		return fmt.Errorf("metrics: %w", err)
	}
	return nil
}

// GetState retrieves the state prepared by Before.
func GetState(c *cli.Context) *State {
	if st, ok := c.App.Metadata[stateKey].(*State); ok {
		return st
	}
	return nil
}

var errNoState = errors.New("internal: command run without setup")

func mustState(c *cli.Context) (*State, error) {
	st := GetState(c)
	if st == nil {
		return nil, errNoState
	}
	return st, nil
}

// readTokens returns the positional arguments, or the non-empty lines of
// stdin when there are none or the only argument is "-".
func readTokens(c *cli.Context) ([]string, error) {
	args := c.Args().Slice()
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return args, nil
	}
	return scanLines(c.App.Reader)
}

func scanLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read tokens: %w", err)
	}
	return lines, nil
}
