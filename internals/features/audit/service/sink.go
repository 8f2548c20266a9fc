package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"halodkm_backend/internals/features/audit/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Entry adalah satu catatan "siapa melakukan apa".
type Entry struct {
	UserID int64
	Action string
	Meta   map[string]any
}

// Sink menerima entry audit. Record tidak pernah mengembalikan error:
// kegagalan audit tidak boleh menggagalkan operasi bisnis.
type Sink interface {
	Record(ctx context.Context, e Entry)
}

// Writer menulis entry ke storage.
type Writer interface {
	Write(ctx context.Context, e Entry) error
}

/* ===============================
   DB writer
=================================*/

type DBWriter struct {
	DB *gorm.DB
}

func NewDBWriter(db *gorm.DB) *DBWriter { return &DBWriter{DB: db} }

func (w *DBWriter) Write(ctx context.Context, e Entry) error {
	row := model.AuditLogModel{UserID: e.UserID, Action: e.Action}
	if len(e.Meta) > 0 {
		b, err := json.Marshal(e.Meta)
		if err != nil {
			return err
		}
		row.Meta = datatypes.JSON(b)
	}
	return w.DB.WithContext(ctx).Create(&row).Error
}

/* ===============================
   Sync sink
=================================*/

// SyncSink menulis inline dan menelan error.
type SyncSink struct {
	W Writer
}

func (s SyncSink) Record(ctx context.Context, e Entry) {
	if err := safeWrite(ctx, s.W, e); err != nil {
		log.Printf("[WARN] audit log gagal ditulis (user=%d): %v", e.UserID, err)
	}
}

/* ===============================
   Async sink
=================================*/

// AsyncSink mengirim entry ke channel dan satu worker menulisnya.
// Buffer penuh → entry dibuang dengan log; Record tidak pernah blocking.
type AsyncSink struct {
	w       Writer
	ch      chan Entry
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewAsyncSink(w Writer, buffer int) *AsyncSink {
	if buffer <= 0 {
		buffer = 256
	}
	s := &AsyncSink{
		w:       w,
		ch:      make(chan Entry, buffer),
		timeout: 5 * time.Second,
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *AsyncSink) Record(_ context.Context, e Entry) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		log.Printf("[WARN] audit sink sudah ditutup, entry dibuang: %s", e.Action)
		return
	}
	select {
	case s.ch <- e:
	default:
		log.Printf("[WARN] audit buffer penuh, entry dibuang: %s", e.Action)
	}
}

func (s *AsyncSink) run() {
	defer close(s.done)
	for e := range s.ch {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		if err := safeWrite(ctx, s.w, e); err != nil {
			log.Printf("[WARN] audit log gagal ditulis (user=%d): %v", e.UserID, err)
		}
		cancel()
	}
}

// Close berhenti menerima entry lalu menunggu buffer habis ditulis.
func (s *AsyncSink) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
	s.mu.Unlock()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func safeWrite(ctx context.Context, w Writer, e Entry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError{r}
		}
	}()
	return w.Write(ctx, e)
}

type panicError struct{ v any }

func (p panicError) Error() string { return "audit writer panic: " + toString(p.v) }

func toString(v any) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	if s, ok := v.(string); ok {
		return s
	}
	b, _ := json.Marshal(v)
	return string(b)
}
