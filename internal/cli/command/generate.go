// Package command provides the command definitions of the cybertoken CLI.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/cybertoken-go/internal/cli/output"
	"github.com/yndnr/cybertoken-go/internal/infra/shutdown"
)

// GenerateResult is the structured output of generate.
type GenerateResult struct {
	Prefix string   `json:"prefix" yaml:"prefix"`
	Tokens []string `json:"tokens" yaml:"tokens"`
}

// GenerateCommand returns the generate command.
func GenerateCommand() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate new tokens",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "Number of tokens to generate",
				Value:   1,
			},
		},
		Action: generateAction,
	}
}

func generateAction(c *cli.Context) error {
	st, err := mustState(c)
	if err != nil {
		return err
	}

	n := c.Int("count")
	if n < 1 {
		return fmt.Errorf("count must be at least 1, got %d", n)
	}

	tokens := make([]string, n)
	for i := range tokens {
		if err := shutdown.Check(st.Ctx); err != nil {
			return err
		}
		tokens[i] = st.Codec.Generate()
		st.Log().Debug("token generated", "token", tokens[i])
	}
	st.Metrics.IncGenerated(n)
	st.Log().Info("tokens generated", "count", n, "prefix", st.Codec.Prefix())

	// Bare lines in table mode, so the output can be piped.
	if output.Format(st.Config.Output.Format) == output.FormatTable {
		for _, tok := range tokens {
			fmt.Fprintln(c.App.Writer, tok)
		}
		return nil
	}
	return st.Formatter().Format(c.App.Writer, GenerateResult{
		Prefix: st.Codec.Prefix(),
		Tokens: tokens,
	})
}
