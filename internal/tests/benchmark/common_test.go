package benchmark

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"testing"
	"time"

	"github.com/yndnr/teachwhat-go/internal/core/domain"
	"github.com/yndnr/teachwhat-go/internal/logic"
	"github.com/yndnr/teachwhat-go/internal/storage"
	"github.com/yndnr/teachwhat-go/internal/telemetry/logger"
)

// BookSizes defines the student counts for benchmarking.
var BookSizes = []int{100, 1000, 5000}

// SmallBookSizes for quick benchmarks.
var SmallBookSizes = []int{100, 1000}

// lessonsPerStudents is the ratio of lessons to students in a generated book.
const lessonsPerStudents = 10

// newSnapshot builds a valid book with count students. Every student is
// assigned to one lesson.
func newSnapshot(b *testing.B, count int) *domain.Snapshot {
	b.Helper()
	snap := &domain.Snapshot{}

	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	lessons := max(count/lessonsPerStudents, 1)
	for i := 0; i < lessons; i++ {
		l, err := domain.NewLesson(
			domain.LessonTitle(fmt.Sprintf("Lesson %d", i)),
			"Mathematics",
			domain.LessonDateOf(start.AddDate(0, 0, i)),
			2,
		)
		if err != nil {
			b.Fatalf("NewLesson() error = %v", err)
		}
		snap.Lessons = append(snap.Lessons, l)
	}

	for i := 0; i < count; i++ {
		s, err := domain.NewStudent(
			domain.Name(fmt.Sprintf("Student %d", i)),
			domain.Phone(fmt.Sprintf("9%07d", i)),
			domain.Email(fmt.Sprintf("student%d@example.com", i)),
			domain.Address(fmt.Sprintf("%d Clementi Ave 2", i)),
			[]domain.Tag{"bench"},
		)
		if err != nil {
			b.Fatalf("NewStudent() error = %v", err)
		}
		l := snap.Lessons[i%lessons]
		s.LessonIDs = append(s.LessonIDs, l.ID)
		l.StudentIDs = append(l.StudentIDs, s.ID)
		snap.Students = append(snap.Students, s)
	}

	if err := snap.Validate(); err != nil {
		b.Fatalf("Validate() error = %v", err)
	}
	return snap
}

// newManager returns a manager over a JSON file prefilled with count
// students.
func newManager(b *testing.B, count int) *logic.Manager {
	b.Helper()
	store, err := storage.NewJSONStore(b.TempDir()+"/book.json", nil, nil)
	if err != nil {
		b.Fatalf("NewJSONStore() error = %v", err)
	}

	log, err := logger.New(logger.Config{Level: "error", Format: "text", Output: io.Discard})
	if err != nil {
		b.Fatalf("logger.New() error = %v", err)
	}
	m := logic.NewManager(store, logic.WithLogger(log))
	ctx := context.Background()
	if err := m.Load(ctx, false); err != nil {
		b.Fatalf("Load() error = %v", err)
	}
	if err := m.Restore(ctx, newSnapshot(b, count)); err != nil {
		b.Fatalf("Restore() error = %v", err)
	}
	b.Cleanup(func() { m.Close(ctx) })
	return m
}

// reportMemory reports memory usage.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	b.ReportMetric(float64(m.Alloc)/(1024*1024), prefix+"_MB")
	b.ReportMetric(float64(m.NumGC), prefix+"_GC")
}

// runWithBookSizes runs a benchmark function with various book sizes.
func runWithBookSizes(b *testing.B, sizes []int, benchFn func(b *testing.B, count int)) {
	for _, count := range sizes {
		b.Run(fmt.Sprintf("students_%d", count), func(b *testing.B) {
			benchFn(b, count)
		})
	}
}
