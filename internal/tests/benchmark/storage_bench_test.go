package benchmark

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/yndnr/teachwhat-go/internal/storage"
)

// BenchmarkStoreJSONSave benchmarks writing the data file.
func BenchmarkStoreJSONSave(b *testing.B) {
	runWithBookSizes(b, BookSizes, func(b *testing.B, count int) {
		store, err := storage.NewJSONStore(filepath.Join(b.TempDir(), "book.json"), nil, nil)
		if err != nil {
			b.Fatalf("NewJSONStore() error = %v", err)
		}
		defer store.Close()
		snap := newSnapshot(b, count)
		ctx := context.Background()

		b.ResetTimer()
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			if err := store.Save(ctx, snap); err != nil {
				b.Fatalf("Save failed: %v", err)
			}
		}
	})
}

// BenchmarkStoreJSONLoad benchmarks reading and validating the data file.
func BenchmarkStoreJSONLoad(b *testing.B) {
	runWithBookSizes(b, BookSizes, func(b *testing.B, count int) {
		store, err := storage.NewJSONStore(filepath.Join(b.TempDir(), "book.json"), nil, nil)
		if err != nil {
			b.Fatalf("NewJSONStore() error = %v", err)
		}
		defer store.Close()
		ctx := context.Background()
		if err := store.Save(ctx, newSnapshot(b, count)); err != nil {
			b.Fatalf("Save failed: %v", err)
		}

		b.ResetTimer()
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			if _, err := store.Load(ctx); err != nil {
				b.Fatalf("Load failed: %v", err)
			}
		}

		b.StopTimer()
		reportMemory(b, "mem")
	})
}

// BenchmarkStoreSealedSave benchmarks saving with a passphrase. Key
// derivation dominates.
func BenchmarkStoreSealedSave(b *testing.B) {
	store, err := storage.NewJSONStore(filepath.Join(b.TempDir(), "book.json"), []byte("correct horse"), nil)
	if err != nil {
		b.Fatalf("NewJSONStore() error = %v", err)
	}
	defer store.Close()
	snap := newSnapshot(b, 100)
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if err := store.Save(ctx, snap); err != nil {
			b.Fatalf("Save failed: %v", err)
		}
	}
}

// BenchmarkStoreBadgerSave benchmarks writing the book to badger.
func BenchmarkStoreBadgerSave(b *testing.B) {
	runWithBookSizes(b, SmallBookSizes, func(b *testing.B, count int) {
		store, err := storage.NewBadgerStore(b.TempDir(), nil)
		if err != nil {
			b.Fatalf("NewBadgerStore() error = %v", err)
		}
		defer store.Close()
		snap := newSnapshot(b, count)
		ctx := context.Background()

		b.ResetTimer()
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			if err := store.Save(ctx, snap); err != nil {
				b.Fatalf("Save failed: %v", err)
			}
		}
	})
}

// BenchmarkFingerprint benchmarks the change check run after every command.
func BenchmarkFingerprint(b *testing.B) {
	runWithBookSizes(b, BookSizes, func(b *testing.B, count int) {
		snap := newSnapshot(b, count)

		b.ResetTimer()
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			if _, err := storage.Fingerprint(snap); err != nil {
				b.Fatalf("Fingerprint failed: %v", err)
			}
		}
	})
}
