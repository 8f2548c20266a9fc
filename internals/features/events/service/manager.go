// Package service implements the event lifecycle: event CRUD, the event
// transaction ledger, and the completion protocol that moves a finished
// event's surplus into the kas masjid ledger.
//
// Every mutating call takes the caller explicitly and fails with
// Unauthorized when it is missing. Mutual exclusion lives in the store
// (transaction + row lock + status compare-and-set), never in this process.
package service

import (
	"context"
	"errors"
	"log"
	"time"

	auditService "halodkm_backend/internals/features/audit/service"
	"halodkm_backend/internals/features/events/model"
	helper "halodkm_backend/internals/helpers"
	"halodkm_backend/internals/helpers/apperror"
	"halodkm_backend/internals/helpers/identity"

	"gorm.io/gorm"
)

type Manager struct {
	store Store
	audit auditService.Sink

	now                   func() time.Time
	loc                   *time.Location
	lockCompletedMetadata bool
}

type Option func(*Manager)

// WithClock mengganti sumber waktu (untuk test).
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithLockedCompletedMetadata: true → UpdateEvent pada event selesai ditolak (Conflict).
func WithLockedCompletedMetadata(locked bool) Option {
	return func(m *Manager) { m.lockCompletedMetadata = locked }
}

// WithLocation: zona waktu untuk tanggal selesai & tanggal transfer.
func WithLocation(loc *time.Location) Option {
	return func(m *Manager) {
		if loc != nil {
			m.loc = loc
		}
	}
}

func NewManager(store Store, sink auditService.Sink, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		audit: sink,
		now:   time.Now,
		loc:   helper.JakartaLocation(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// today: tanggal hari ini (zona Manager) sebagai nilai kolom date.
func (m *Manager) today() time.Time {
	t := m.now().In(m.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (m *Manager) record(ctx context.Context, caller identity.Caller, action string, meta map[string]any) {
	if m.audit == nil {
		return
	}
	m.audit.Record(ctx, auditService.Entry{UserID: caller.ID, Action: action, Meta: meta})
}

func (m *Manager) lockEvent(ctx context.Context, tx Store, id int64) (*model.EventModel, error) {
	ev, err := tx.LockEvent(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Event tidak ditemukan", "Gagal mengambil event")
	}
	return ev, nil
}

func (m *Manager) findEvent(ctx context.Context, id int64) (*model.EventModel, error) {
	ev, err := m.store.FindEvent(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Event tidak ditemukan", "Gagal mengambil event")
	}
	return ev, nil
}

// lookupErr: record-not-found → NotFound, sisanya lewat storeErr.
func lookupErr(err error, notFound, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFoundf("%s", notFound)
	}
	return storeErr(err, msg)
}

// storeErr: error yang sudah bertipe apperror diteruskan apa adanya,
// selain itu dicatat lalu dibungkus sebagai Internal.
func storeErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	var ae *apperror.Error
	if errors.As(err, &ae) {
		return err
	}
	log.Printf("[ERROR] %s: %v", msg, err)
	return apperror.Wrap(apperror.Internal, err, msg)
}
