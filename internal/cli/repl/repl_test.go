package repl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yndnr/teachwhat-go/internal/cli/output"
	"github.com/yndnr/teachwhat-go/internal/core/domain"
	"github.com/yndnr/teachwhat-go/internal/logic"
	"github.com/yndnr/teachwhat-go/internal/storage"
)

const addAlice = "add-student n/Alice Pauline p/94351253 e/alice@example.com a/123, Jurong West Ave 6"

func newTestManager(t *testing.T) *logic.Manager {
	t.Helper()
	store, err := storage.Open(storage.Config{File: filepath.Join(t.TempDir(), "book.json")})
	if err != nil {
		t.Fatal(err)
	}
	m := logic.NewManager(store)
	if err := m.Load(context.Background(), false); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { m.Close(context.Background()) })
	return m
}

func runREPL(t *testing.T, input string, opts ...Option) (stdout, stderr string, r *REPL) {
	t.Helper()
	var out, errOut bytes.Buffer
	opts = append([]Option{WithIO(strings.NewReader(input), &out, &errOut)}, opts...)
	r = New(newTestManager(t), opts...)
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String(), errOut.String(), r
}

func TestREPL_Run_Exit(t *testing.T) {
	stdout, _, _ := runREPL(t, "exit\nlist-students\n")
	if !strings.Contains(stdout, "Exiting Teach What! as requested ...") {
		t.Errorf("stdout = %q", stdout)
	}
	if strings.Contains(stdout, "Listed all students") {
		t.Error("lines after exit must not run")
	}
}

func TestREPL_Run_EOF(t *testing.T) {
	stdout, _, _ := runREPL(t, "")
	if stdout != DefaultPrompt+"\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestREPL_Run_CommandsAndHistory(t *testing.T) {
	stdout, stderr, r := runREPL(t, "\n  \n"+addAlice+"\nlist-students\n",
		WithHistory(NewHistory("", 10)))

	if stderr != "" {
		t.Errorf("stderr = %q", stderr)
	}
	for _, want := range []string{"New student added: Alice Pauline", "Listed all students", "Alice Pauline", "#  NAME"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
	if got := r.History().Entries(); len(got) != 2 || got[1] != "list-students" {
		t.Errorf("history = %q", got)
	}
}

func TestREPL_Run_Errors(t *testing.T) {
	_, stderr, _ := runREPL(t, "lst-students\ndelete-student 5\nadd-student n/Bob\n")

	for _, want := range []string{
		"Unknown command",
		`Did you mean "list-students"?`,
		"The student index provided is invalid",
		"Missing compulsory field(s): p/ e/ a/",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}

func TestREPL_Run_Help(t *testing.T) {
	stdout, _, _ := runREPL(t, "help\n")
	if !strings.Contains(stdout, "Commands:") || !strings.Contains(stdout, "Parameters: n/NAME p/PHONE") {
		t.Errorf("help output:\n%s", stdout)
	}
}

func TestREPL_Run_JSONKeepsStdoutClean(t *testing.T) {
	stdout, stderr, _ := runREPL(t, addAlice+"\nexit\n",
		WithPrompt(""), WithFormatter(output.NewFormatter(output.FormatJSON, false)))

	var rows []output.StudentRow
	if err := json.NewDecoder(strings.NewReader(stdout)).Decode(&rows); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout)
	}
	if len(rows) != 1 || rows[0].Name != "Alice Pauline" {
		t.Errorf("rows = %+v", rows)
	}
	if !strings.Contains(stderr, "New student added") {
		t.Errorf("feedback should go to stderr, got %q", stderr)
	}
}

func TestREPL_Run_ContextCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	r := New(newTestManager(t), WithIO(pr, &out, io.Discard))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestREPL_PrintError_WrappedDomainError(t *testing.T) {
	var out, errOut bytes.Buffer
	r := New(newTestManager(t), WithIO(strings.NewReader(""), &out, &errOut))

	r.PrintError(fmt.Errorf("delete: %w", domain.ErrStudentIndexOutOfRange.WithDetails("7")))
	if got := errOut.String(); got != "The student index provided is invalid: 7\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestREPL_PrintError_ParseErrorKeepsUsage(t *testing.T) {
	var out, errOut bytes.Buffer
	r := New(newTestManager(t), WithIO(strings.NewReader(""), &out, &errOut))

	_, err := r.Eval(context.Background(), "delete-student abc")
	if err == nil {
		t.Fatal("Eval() should fail on a non-numeric index")
	}
	r.PrintError(err)
	if got := errOut.String(); !strings.Contains(got, "Invalid command format!") || !strings.Contains(got, "Parameters: INDEX") {
		t.Errorf("stderr = %q", got)
	}
}
