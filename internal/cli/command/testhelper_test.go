package command

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

const (
	goldenToken  = "zugriff_icnocrRLDoZ3uCPosLA0277hQ58ob379X43U"
	goldenSecret = "3ac1b0909df910f3c899ae6a7c58bc429615fb19d9d8"
	corruptToken = "zugriff_icnocrRLDoZ3uCPosLA0277hQ58ob379X43B"
)

// runResult captures one CLI invocation.
type runResult struct {
	stdout string
	stderr string
	err    error
}

// isolate points HOME at a fresh directory and clears CYBERTOKEN_ variables.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"CYBERTOKEN_TOKEN_PREFIX",
		"CYBERTOKEN_TOKEN_VERSION",
		"CYBERTOKEN_TOKEN_ENTROPY",
		"CYBERTOKEN_LOG_LEVEL",
		"CYBERTOKEN_LOG_FORMAT",
		"CYBERTOKEN_OUTPUT_FORMAT",
		"CYBERTOKEN_OUTPUT_HEADERS",
		"CYBERTOKEN_METRICS_TEXTFILE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return home
}

// runApp runs the CLI with args and stdin, without exiting the process.
func runApp(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := App()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.Reader = strings.NewReader(stdin)
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"cybertoken"}, args...))
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// exitCode extracts the exit status carried by err.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if ec, ok := err.(cli.ExitCoder); ok {
		return ec.ExitCode()
	}
	return 1
}
