package logic

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/yndnr/teachwhat-go/internal/core/domain"
	"github.com/yndnr/teachwhat-go/internal/logic/parser"
	"github.com/yndnr/teachwhat-go/internal/model"
	"github.com/yndnr/teachwhat-go/internal/storage"
	"github.com/yndnr/teachwhat-go/internal/telemetry/logger"
	"github.com/yndnr/teachwhat-go/internal/telemetry/metric"
)

// stubStore is an in-memory Store that can be told to fail.
type stubStore struct {
	snap    *domain.Snapshot
	saves   int
	saveErr error
	closed  bool
}

func (s *stubStore) Load(context.Context) (*domain.Snapshot, error) {
	if s.snap == nil {
		return nil, storage.ErrNotFound
	}
	return s.snap.Clone(), nil
}

func (s *stubStore) Save(_ context.Context, snap *domain.Snapshot) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.snap = snap.Clone()
	return nil
}

func (s *stubStore) Close() error {
	s.closed = true
	return nil
}

const addAlice = "add-student n/Alice Pauline p/94351253 e/alice@example.com a/123, Jurong West Ave 6"

func fixedClock() time.Time {
	return time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
}

func newTestManager(t *testing.T, store storage.Store) (*Manager, *metric.Registry) {
	t.Helper()
	reg := metric.NewRegistry()
	return NewManager(store, WithMetrics(reg), WithClock(fixedClock)), reg
}

func TestLoad_SampleOnMissing(t *testing.T) {
	store := &stubStore{}
	m, _ := newTestManager(t, store)
	ctx := context.Background()

	if err := m.Load(ctx, true); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	students := m.Model().FilteredStudents()
	if len(students) != 6 || students[0].Name != "Alex Yeoh" {
		t.Fatalf("sample students = %d, first = %v", len(students), students)
	}
	lessons := m.Model().FilteredLessons()
	if len(lessons) != 3 || lessons[0].Date != "2030-01-11" {
		t.Errorf("sample lessons = %d, first date = %q", len(lessons), lessons[0].Date)
	}

	// Sample data is saved by the first command.
	if _, err := m.Execute(ctx, "list-students"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if store.saves != 1 {
		t.Errorf("saves = %d, want 1", store.saves)
	}
}

func TestLoad_EmptyOnMissing(t *testing.T) {
	m, _ := newTestManager(t, &stubStore{})
	if err := m.Load(context.Background(), false); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if n := len(m.Model().FilteredStudents()); n != 0 {
		t.Errorf("students = %d, want 0", n)
	}
}

func TestLoad_Error(t *testing.T) {
	store := &stubStore{snap: &domain.Snapshot{
		Students: []*domain.Student{{ID: "tws-1", Name: ""}},
	}}
	m, _ := newTestManager(t, store)
	if err := m.Load(context.Background(), true); err == nil {
		t.Error("Load() of an invalid snapshot should fail")
	}
}

func TestExecute_SavesOnlyWhenChanged(t *testing.T) {
	store := &stubStore{}
	m, reg := newTestManager(t, store)
	ctx := context.Background()
	if err := m.Load(ctx, false); err != nil {
		t.Fatal(err)
	}

	res, err := m.Execute(ctx, addAlice)
	if err != nil {
		t.Fatalf("Execute(add) error = %v", err)
	}
	if res.Feedback == "" {
		t.Error("add-student should give feedback")
	}
	if _, err := m.Execute(ctx, "list-students"); err != nil {
		t.Fatalf("Execute(list) error = %v", err)
	}

	if store.saves != 1 {
		t.Errorf("saves = %d, want 1", store.saves)
	}
	if got := testutil.ToFloat64(reg.SavesTotal); got != 1 {
		t.Errorf("SavesTotal = %v, want 1", got)
	}
	if got := testutil.ToFloat64(reg.SavesSkipped); got != 1 {
		t.Errorf("SavesSkipped = %v, want 1", got)
	}
	if got := testutil.ToFloat64(reg.CommandsTotal.WithLabelValues("add-student", metric.OutcomeOK)); got != 1 {
		t.Errorf("CommandsTotal{add-student,ok} = %v, want 1", got)
	}
}

func TestExecute_ParseError(t *testing.T) {
	store := &stubStore{}
	m, reg := newTestManager(t, store)
	ctx := context.Background()

	tests := []struct {
		line string
		want error
		word string
	}{
		{"dance", parser.ErrUnknownCommand, "unknown"},
		{"add-student n/Alice", parser.ErrMissingField, "add-student"},
		{"   ", parser.ErrFormat, "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := m.Execute(ctx, tt.line)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Execute(%q) error = %v, want %v", tt.line, err, tt.want)
			}
			got := testutil.ToFloat64(reg.CommandsTotal.WithLabelValues(tt.word, metric.OutcomeParseError))
			if got < 1 {
				t.Errorf("CommandsTotal{%s,parse_error} = %v", tt.word, got)
			}
		})
	}

	if got := testutil.ToFloat64(reg.ParseErrors.WithLabelValues("unknown_command")); got != 1 {
		t.Errorf("ParseErrors{unknown_command} = %v, want 1", got)
	}
	if store.saves != 0 {
		t.Errorf("rejected lines must not save, saves = %d", store.saves)
	}
}

func TestExecute_CommandError(t *testing.T) {
	m, reg := newTestManager(t, &stubStore{})
	_, err := m.Execute(context.Background(), "delete-student 3")
	if !errors.Is(err, domain.ErrStudentIndexOutOfRange) {
		t.Fatalf("error = %v, want ErrStudentIndexOutOfRange", err)
	}
	if got := testutil.ToFloat64(reg.CommandsTotal.WithLabelValues("delete-student", metric.OutcomeExecError)); got != 1 {
		t.Errorf("CommandsTotal{delete-student,exec_error} = %v, want 1", got)
	}
}

func TestExecute_SaveError(t *testing.T) {
	diskFull := errors.New("disk full")
	store := &stubStore{saveErr: diskFull}
	m, reg := newTestManager(t, store)
	ctx := context.Background()

	res, err := m.Execute(ctx, addAlice)
	var saveErr *SaveError
	if !errors.As(err, &saveErr) || !errors.Is(err, diskFull) {
		t.Fatalf("error = %v, want *SaveError wrapping disk full", err)
	}
	if err.Error() != MsgSaveFailed+"disk full" {
		t.Errorf("Error() = %q", err.Error())
	}
	if res.Feedback == "" {
		t.Error("result should be returned with a save error")
	}
	if got := testutil.ToFloat64(reg.SaveErrorsTotal); got != 1 {
		t.Errorf("SaveErrorsTotal = %v, want 1", got)
	}

	// The change is retried on the next line.
	store.saveErr = nil
	if _, err := m.Execute(ctx, "list-students"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if store.saves != 1 {
		t.Errorf("saves = %d, want 1", store.saves)
	}
}

func TestExecute_ExitAndHelp(t *testing.T) {
	m, _ := newTestManager(t, &stubStore{})
	ctx := context.Background()

	res, err := m.Execute(ctx, "exit")
	if err != nil || !res.Exit {
		t.Errorf("exit: result = %+v, err = %v", res, err)
	}
	res, err = m.Execute(ctx, "help me please")
	if err != nil || !res.ShowHelp {
		t.Errorf("help: result = %+v, err = %v", res, err)
	}
}

func TestManager_JSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.json")
	ctx := context.Background()

	store, err := storage.Open(storage.Config{Engine: storage.EngineJSON, File: path})
	if err != nil {
		t.Fatal(err)
	}
	m := NewManager(store)
	if err := m.Load(ctx, false); err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{
		addAlice,
		"add-lesson l/Trial lesson s/Physics d/2030-01-10 h/2",
		"assign s/1 l/1",
	} {
		if _, err := m.Execute(ctx, line); err != nil {
			t.Fatalf("Execute(%q) error = %v", line, err)
		}
	}
	if err := m.Close(ctx); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	store, err = storage.Open(storage.Config{Engine: storage.EngineJSON, File: path})
	if err != nil {
		t.Fatal(err)
	}
	reopened := NewManager(store)
	defer reopened.Close(ctx)
	if err := reopened.Load(ctx, true); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	students := reopened.Model().FilteredStudents()
	if len(students) != 1 || len(students[0].LessonIDs) != 1 {
		t.Fatalf("students = %+v", students)
	}
}

func TestManager_Close(t *testing.T) {
	store := &stubStore{}
	m, _ := newTestManager(t, store)
	ctx := context.Background()
	if err := m.Load(ctx, true); err != nil {
		t.Fatal(err)
	}
	if err := m.Close(ctx); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !store.closed || store.saves != 1 {
		t.Errorf("closed = %v, saves = %d", store.closed, store.saves)
	}
}

func TestManager_Words(t *testing.T) {
	m, _ := newTestManager(t, &stubStore{})
	if len(m.Words()) != 17 {
		t.Errorf("len(Words()) = %d, want 17", len(m.Words()))
	}
}

func TestManager_Restore(t *testing.T) {
	store := &stubStore{}
	m, _ := newTestManager(t, store)
	ctx := context.Background()

	snap, err := model.SampleSnapshot(fixedClock())
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Restore(ctx, snap); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if store.saves != 1 || len(store.snap.Students) != 6 {
		t.Errorf("saves = %d, saved students = %d", store.saves, len(store.snap.Students))
	}

	bad := &domain.Snapshot{Students: []*domain.Student{{ID: "bogus"}}}
	if err := m.Restore(ctx, bad); err == nil {
		t.Error("Restore() of an invalid snapshot should fail")
	}
	if n := len(m.Model().FilteredStudents()); n != 6 {
		t.Errorf("failed restore changed the book, students = %d", n)
	}
}

func TestNewManager_SharedRegistryLogsCollectorConflict(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Config{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { logger.SetLevel("warn") })

	reg := metric.NewRegistry()
	NewManager(&stubStore{}, WithMetrics(reg), WithLogger(log))
	if buf.Len() != 0 {
		t.Fatalf("first manager logged %q", buf.String())
	}

	NewManager(&stubStore{}, WithMetrics(reg), WithLogger(log))
	if !strings.Contains(buf.String(), "book size metrics not registered") {
		t.Errorf("log = %q, want collector conflict", buf.String())
	}
}
