package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeWriter struct {
	mu      sync.Mutex
	entries []Entry
	failOn  string
	panicOn string
	block   chan struct{}
}

func (f *fakeWriter) Write(_ context.Context, e Entry) error {
	if f.block != nil {
		<-f.block
	}
	if e.Action == f.panicOn {
		panic("writer exploded")
	}
	if e.Action == f.failOn {
		return errors.New("insert audit_logs: connection refused")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeWriter) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e.Action)
	}
	return out
}

func TestAsyncSinkWritesInOrderAndSwallowsFailures(t *testing.T) {
	w := &fakeWriter{failOn: "gagal", panicOn: "panik"}
	s := NewAsyncSink(w, 16)

	ctx := context.Background()
	s.Record(ctx, Entry{UserID: 1, Action: "satu"})
	s.Record(ctx, Entry{UserID: 1, Action: "gagal"})
	s.Record(ctx, Entry{UserID: 1, Action: "panik"})
	s.Record(ctx, Entry{UserID: 1, Action: "dua"})

	closeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.Close(closeCtx); err != nil {
		t.Fatal(err)
	}

	got := w.actions()
	if len(got) != 2 || got[0] != "satu" || got[1] != "dua" {
		t.Fatalf("written = %v", got)
	}
}

func TestAsyncSinkDropsWhenFull(t *testing.T) {
	w := &fakeWriter{block: make(chan struct{})}
	s := NewAsyncSink(w, 1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			s.Record(context.Background(), Entry{UserID: 1, Action: "x"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Record blocked on a full buffer")
	}

	close(w.block)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Close(ctx); err != nil {
		t.Fatal(err)
	}
	if n := len(w.actions()); n == 0 || n > 2 {
		t.Fatalf("written %d entries, want 1 or 2", n)
	}
}

func TestAsyncSinkRecordAfterClose(t *testing.T) {
	w := &fakeWriter{}
	s := NewAsyncSink(w, 4)
	if err := s.Close(context.Background()); err != nil {
		t.Fatal(err)
	}
	s.Record(context.Background(), Entry{UserID: 1, Action: "telat"})
	if len(w.actions()) != 0 {
		t.Fatal("entry written after close")
	}
}

func TestSyncSinkSwallowsErrors(t *testing.T) {
	w := &fakeWriter{failOn: "gagal"}
	s := SyncSink{W: w}
	s.Record(context.Background(), Entry{UserID: 2, Action: "gagal"})
	s.Record(context.Background(), Entry{UserID: 2, Action: "ok"})
	if got := w.actions(); len(got) != 1 || got[0] != "ok" {
		t.Fatalf("written = %v", got)
	}
}
