// Package command provides the command definitions of the cybertoken CLI.
package command

import (
	"encoding/hex"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/cybertoken-go/internal/cli/output"
	"github.com/yndnr/cybertoken-go/internal/infra/shutdown"
	"github.com/yndnr/cybertoken-go/internal/telemetry/metric"
	"github.com/yndnr/cybertoken-go/pkg/cybertoken"
)

// InspectResult is the decoded view of one token.
type InspectResult struct {
	Token            string `json:"token" yaml:"token"`
	Prefix           string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	PrefixMatch      bool   `json:"prefix_match" yaml:"prefix_match"`
	Secret           string `json:"secret,omitempty" yaml:"secret,omitempty"`
	Version          *int   `json:"version,omitempty" yaml:"version,omitempty"`
	SuppliedChecksum string `json:"supplied_checksum,omitempty" yaml:"supplied_checksum,omitempty"`
	ActualChecksum   string `json:"actual_checksum,omitempty" yaml:"actual_checksum,omitempty"`
	Valid            bool   `json:"valid" yaml:"valid"`
	ErrorCode        string `json:"error_code,omitempty" yaml:"error_code,omitempty"`
	Error            string `json:"error,omitempty" yaml:"error,omitempty"`
}

// InspectCommand returns the inspect command.
func InspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Aliases:   []string{"parse"},
		Usage:     "Decode tokens and show their contents",
		ArgsUsage: "[TOKEN...|-]",
		Action:    inspectAction,
	}
}

// inspect parses token and records the outcome.
func inspect(st *State, token string) InspectResult {
	res := InspectResult{Token: token}

	contents, err := st.Codec.Parse(token)
	if err != nil {
		res.ErrorCode = cybertoken.ErrorCode(err)
		res.Error = err.Error()
		st.Metrics.ObserveParse(metric.ResultError, res.ErrorCode)
		st.Log().Debug("token rejected", "token", token, "code", res.ErrorCode)
		return res
	}

	version := int(contents.Version)
	res.Prefix = contents.Prefix
	res.PrefixMatch = contents.Prefix == st.Codec.Prefix()
	res.Secret = hex.EncodeToString(contents.Secret)
	res.Version = &version
	res.SuppliedChecksum = hex.EncodeToString(contents.SuppliedChecksum)
	res.ActualChecksum = hex.EncodeToString(contents.ActualChecksum)
	res.Valid = contents.IsSyntacticallyValid

	if res.Valid {
		st.Metrics.ObserveParse(metric.ResultValid, "")
	} else {
		st.Metrics.ObserveParse(metric.ResultChecksumMismatch, "")
		st.Log().Debug("checksum mismatch", "token", token)
	}
	return res
}

func inspectAction(c *cli.Context) error {
	st, err := mustState(c)
	if err != nil {
		return err
	}

	tokens, err := readTokens(c)
	if err != nil {
		return err
	}

	results := make([]InspectResult, 0, len(tokens))
	for _, tok := range tokens {
		if err := shutdown.Check(st.Ctx); err != nil {
			return err
		}
		results = append(results, inspect(st, tok))
	}

	var data any = results
	if output.Format(st.Config.Output.Format) == output.FormatTable {
		data = inspectTable(results)
	}
	return st.Formatter().Format(c.App.Writer, data)
}

func inspectTable(results []InspectResult) *output.Table {
	table := &output.Table{
		Headers: []string{"PREFIX", "VERSION", "SECRET", "SUPPLIED", "ACTUAL", "VALID", "ERROR"},
	}
	for _, r := range results {
		if r.ErrorCode != "" {
			table.AddRow("-", "-", "-", "-", "-", "false", r.ErrorCode)
			continue
		}
		prefix := r.Prefix
		if !r.PrefixMatch {
			prefix += " (foreign)"
		}
		table.AddRow(prefix, strconv.Itoa(*r.Version), r.Secret,
			r.SuppliedChecksum, r.ActualChecksum, strconv.FormatBool(r.Valid), "-")
	}
	return table
}
