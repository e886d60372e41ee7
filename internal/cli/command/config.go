package command

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/yndnr/cybertoken-go/internal/cli/config"
	"github.com/yndnr/cybertoken-go/internal/cli/output"
)

// ConfigCommand returns the config command.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: configShowAction,
			},
			{
				Name:   "path",
				Usage:  "Print the config file path",
				Action: configPathAction,
			},
			{
				Name:      "init",
				Usage:     "Write a default config file",
				ArgsUsage: "[PATH]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Overwrite an existing file",
					},
				},
				Action: configInitAction,
			},
		},
	}
}

func configShowAction(c *cli.Context) error {
	st, err := mustState(c)
	if err != nil {
		return err
	}

	// Tables list the flat keys accepted by files, environment and flags.
	if output.Format(st.Config.Output.Format) == output.FormatTable {
		return st.Formatter().Format(c.App.Writer, st.Config.Keys())
	}
	return st.Formatter().Format(c.App.Writer, st.Config)
}

// configPath returns --config if set, otherwise the default path.
func configPath(c *cli.Context) string {
	if p := c.String("config"); p != "" {
		return p
	}
	return config.DefaultConfigPath()
}

func configPathAction(c *cli.Context) error {
	fmt.Fprintln(c.App.Writer, configPath(c))
	return nil
}

func configInitAction(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		path = configPath(c)
	}

	if !c.Bool("force") {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}
	}

	data, err := yaml.Marshal(config.Default())
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	if st := GetState(c); st != nil {
		st.Log().Info("config file written", "path", path)
	}
	fmt.Fprintf(c.App.Writer, "Config written to %s\n", path)
	return nil
}
