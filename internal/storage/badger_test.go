package storage

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
)

func TestBadgerStore_KeyLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")
	ctx := context.Background()

	s, err := NewBadgerStore(dir, slog.Default())
	if err != nil {
		t.Fatal(err)
	}
	snap := testSnapshot(t)
	if err := s.Save(ctx, snap); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	students, err := s.Keys(studentKeyPrefix)
	if err != nil {
		t.Fatal(err)
	}
	if len(students) != 2 {
		t.Errorf("student keys = %v, want 2", students)
	}

	// Removing a student must delete its key.
	snap.Students = snap.Students[1:]
	snap.Lessons[0].StudentIDs = []string{}
	if err := s.Save(ctx, snap); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	students, _ = s.Keys(studentKeyPrefix)
	if len(students) != 1 || students[0] != studentKeyPrefix+snap.Students[0].ID {
		t.Errorf("student keys = %v", students)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestBadgerStore_Reopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")
	ctx := context.Background()
	want := testSnapshot(t)

	s, err := NewBadgerStore(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, want); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = NewBadgerStore(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Students[0].Name != want.Students[0].Name || got.Lessons[0].ID != want.Lessons[0].ID {
		t.Errorf("Load() = %+v", got)
	}
}
