// Package command provides the command definitions of the cybertoken CLI.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/cybertoken-go/internal/cli/output"
	"github.com/yndnr/cybertoken-go/internal/infra/shutdown"
	"github.com/yndnr/cybertoken-go/internal/telemetry/logger"
	"github.com/yndnr/cybertoken-go/internal/telemetry/metric"
)

// ValidateResult is the pass/fail view of one token.
type ValidateResult struct {
	Token string `json:"token" yaml:"token"`
	Valid bool   `json:"valid" yaml:"valid"`
}

// ValidateCommand returns the validate command.
func ValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"check"},
		Usage:     "Check tokens; exits with status 1 if any is invalid",
		ArgsUsage: "[TOKEN...|-]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Print nothing, only set the exit status",
			},
		},
		Action: validateAction,
	}
}

func validateAction(c *cli.Context) error {
	st, err := mustState(c)
	if err != nil {
		return err
	}

	tokens, err := readTokens(c)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return fmt.Errorf("no tokens given")
	}

	results := make([]ValidateResult, 0, len(tokens))
	invalid := 0
	for _, tok := range tokens {
		if err := shutdown.Check(st.Ctx); err != nil {
			return err
		}
		valid := st.Codec.IsTokenString(tok)
		if valid {
			st.Metrics.ObserveParse(metric.ResultValid, "")
		} else {
			invalid++
			// Parse again to record why the token failed.
			inspect(st, tok)
		}
		results = append(results, ValidateResult{Token: tok, Valid: valid})
	}
	st.Log().Info("tokens validated", "total", len(tokens), "invalid", invalid)

	if !c.Bool("quiet") {
		if err := renderValidate(c, st, results); err != nil {
			return err
		}
	}

	if invalid > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d tokens invalid", invalid, len(tokens)), 1)
	}
	return nil
}

func renderValidate(c *cli.Context, st *State, results []ValidateResult) error {
	if output.Format(st.Config.Output.Format) != output.FormatTable {
		return st.Formatter().Format(c.App.Writer, results)
	}

	table := &output.Table{Headers: []string{"TOKEN", "RESULT"}}
	for _, r := range results {
		result := "invalid"
		if r.Valid {
			result = "valid"
		}
		table.AddRow(logger.RedactString(r.Token), result)
	}
	return st.Formatter().Format(c.App.Writer, table)
}
