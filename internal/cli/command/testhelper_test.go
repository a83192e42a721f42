package command

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

const addAlice = "add-student n/Alice Pauline p/94351253 e/alice@example.com a/123, Jurong West Ave 6"

// runResult is the captured outcome of one application run.
type runResult struct {
	stdout string
	stderr string
	err    error
}

// runApp runs the application with stdin and the given arguments.
func runApp(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()
	app := App()
	var out, errOut bytes.Buffer
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = &errOut

	err := app.Run(append([]string{"teachwhat"}, args...))
	return runResult{stdout: out.String(), stderr: errOut.String(), err: err}
}

// newWorkspace points HOME at a temporary directory and returns the data
// file path inside it.
func newWorkspace(t *testing.T) (home, dataFile string) {
	t.Helper()
	home = t.TempDir()
	t.Setenv("HOME", home)
	return home, filepath.Join(home, "data", "book.json")
}

// bookArgs selects dataFile and disables sample data.
func bookArgs(dataFile string, args ...string) []string {
	return append([]string{"--data-file", dataFile, "--sample=false"}, args...)
}
