// Package eventstest provides an in-memory service.Store for tests.
//
// WithinTx runs against a private copy of the data and swaps it in on
// success, so a failing callback leaves nothing behind. Transactions are
// serialized by one mutex, which stands in for the row lock a real store
// takes on the event.
package eventstest

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"halodkm_backend/internals/features/events/model"
	"halodkm_backend/internals/features/events/service"
	"halodkm_backend/internals/features/finance/balance"
	kasModel "halodkm_backend/internals/features/finance/kas/model"
	"halodkm_backend/internals/helpers/apperror"

	"gorm.io/gorm"
)

// Faults lets a test make individual store calls fail.
type Faults struct {
	CreateKasEntry error
	CreateEvent    error
	ListEvents     error
}

type dataset struct {
	seq        int64
	events     map[int64]model.EventModel
	trans      map[int64]model.EventKasModel
	kas        map[int64]kasModel.KasMasjidModel
	recipients map[int64]model.EventRecipientModel
	committee  map[int64]model.EventCommitteeModel
}

func newDataset() *dataset {
	return &dataset{
		events:     map[int64]model.EventModel{},
		trans:      map[int64]model.EventKasModel{},
		kas:        map[int64]kasModel.KasMasjidModel{},
		recipients: map[int64]model.EventRecipientModel{},
		committee:  map[int64]model.EventCommitteeModel{},
	}
}

func (d *dataset) clone() *dataset {
	c := newDataset()
	c.seq = d.seq
	for k, v := range d.events {
		c.events[k] = v
	}
	for k, v := range d.trans {
		c.trans[k] = v
	}
	for k, v := range d.kas {
		c.kas[k] = v
	}
	for k, v := range d.recipients {
		c.recipients[k] = v
	}
	for k, v := range d.committee {
		c.committee[k] = v
	}
	return c
}

func (d *dataset) nextID() int64 {
	d.seq++
	return d.seq
}

type Store struct {
	Faults Faults

	root  *Store // nil pada store utama
	mu    sync.Mutex
	d     *dataset
	calls atomic.Int64
}

func New() *Store {
	return &Store{d: newDataset()}
}

var _ service.Store = (*Store)(nil)

// Calls: jumlah pemanggilan method store sejauh ini.
func (s *Store) Calls() int64 {
	return s.base().calls.Load()
}

func (s *Store) base() *Store {
	if s.root != nil {
		return s.root
	}
	return s
}

func (s *Store) faults() Faults {
	return s.base().Faults
}

// enter menghitung pemanggilan dan, di luar transaksi, mengambil mutex.
func (s *Store) enter() func() {
	s.base().calls.Add(1)
	if s.root != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) WithinTx(ctx context.Context, fn func(tx service.Store) error) error {
	if s.root != nil {
		return fn(s)
	}
	s.calls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &Store{root: s, d: s.d.clone()}
	if err := fn(tx); err != nil {
		return err
	}
	s.d = tx.d
	return nil
}

/* ====================== EVENTS ====================== */

func (s *Store) ListEvents(_ context.Context, status string) ([]service.EventListItem, error) {
	defer s.enter()()
	if err := s.faults().ListEvents; err != nil {
		return nil, err
	}
	var out []service.EventListItem
	for _, ev := range s.d.events {
		if status != "" && ev.Status != status {
			continue
		}
		var recipients int64
		for _, r := range s.d.recipients {
			if r.EventID == ev.ID {
				recipients++
			}
		}
		out = append(out, service.EventListItem{
			Event:           ev,
			Summary:         s.d.summarize(ev.ID),
			TotalRecipients: recipients,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Event, out[j].Event
		if !a.TanggalMulai.Equal(b.TanggalMulai) {
			return a.TanggalMulai.After(b.TanggalMulai)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	return out, nil
}

func (s *Store) FindEvent(_ context.Context, id int64) (*model.EventModel, error) {
	defer s.enter()()
	ev, ok := s.d.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &ev, nil
}

func (s *Store) LockEvent(ctx context.Context, id int64) (*model.EventModel, error) {
	return s.FindEvent(ctx, id)
}

func (s *Store) CreateEvent(_ context.Context, e *model.EventModel) error {
	defer s.enter()()
	if err := s.faults().CreateEvent; err != nil {
		return err
	}
	e.ID = s.d.nextID()
	if e.Status == "" {
		e.Status = model.StatusActive
	}
	e.CreatedAt = time.Now()
	s.d.events[e.ID] = *e
	return nil
}

func (s *Store) UpdateEvent(_ context.Context, e *model.EventModel) (int64, error) {
	defer s.enter()()
	cur, ok := s.d.events[e.ID]
	if !ok {
		return 0, nil
	}
	cur.Nama = e.Nama
	cur.Deskripsi = e.Deskripsi
	cur.Tipe = e.Tipe
	cur.TanggalMulai = e.TanggalMulai
	s.d.events[e.ID] = cur
	return 1, nil
}

func (s *Store) DeleteEvent(_ context.Context, id int64) (int64, error) {
	defer s.enter()()
	if _, ok := s.d.events[id]; !ok {
		return 0, nil
	}
	for _, t := range s.d.trans {
		if t.EventID == id {
			return 0, apperror.Conflictf("event_kas masih mereferensikan event %d", id)
		}
	}
	for k, r := range s.d.recipients {
		if r.EventID == id {
			delete(s.d.recipients, k)
		}
	}
	for k, c := range s.d.committee {
		if c.EventID == id {
			delete(s.d.committee, k)
		}
	}
	delete(s.d.events, id)
	return 1, nil
}

func (s *Store) MarkEventCompleted(_ context.Context, id int64, at time.Time) (int64, error) {
	defer s.enter()()
	ev, ok := s.d.events[id]
	if !ok || ev.Status != model.StatusActive {
		return 0, nil
	}
	ev.Status = model.StatusCompleted
	ev.TanggalSelesai = &at
	s.d.events[id] = ev
	return 1, nil
}

/* ====================== TRANSAKSI ====================== */

func (d *dataset) summarize(eventID int64) balance.Summary {
	var entries []balance.Entry
	for _, t := range d.trans {
		if t.EventID == eventID {
			entries = append(entries, balance.Entry{Direction: balance.Direction(t.Type), Amount: t.Amount})
		}
	}
	return balance.Aggregate(entries)
}

func (s *Store) ListTransactions(_ context.Context, eventID int64) ([]model.EventKasModel, error) {
	defer s.enter()()
	var out []model.EventKasModel
	for _, t := range s.d.trans {
		if t.EventID == eventID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Tanggal.Equal(out[j].Tanggal) {
			return out[i].Tanggal.After(out[j].Tanggal)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Store) CountTransactions(_ context.Context, eventID int64) (int64, error) {
	defer s.enter()()
	var n int64
	for _, t := range s.d.trans {
		if t.EventID == eventID {
			n++
		}
	}
	return n, nil
}

func (s *Store) SummarizeTransactions(_ context.Context, eventID int64) (balance.Summary, error) {
	defer s.enter()()
	return s.d.summarize(eventID), nil
}

func (s *Store) FindTransaction(_ context.Context, eventID, id int64) (*model.EventKasModel, error) {
	defer s.enter()()
	t, ok := s.d.trans[id]
	if !ok || t.EventID != eventID {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (s *Store) CreateTransaction(_ context.Context, t *model.EventKasModel) error {
	defer s.enter()()
	if _, ok := s.d.events[t.EventID]; !ok {
		return errors.New("event_kas: foreign key violation")
	}
	t.ID = s.d.nextID()
	t.CreatedAt = time.Now()
	s.d.trans[t.ID] = *t
	return nil
}

func (s *Store) UpdateTransaction(_ context.Context, t *model.EventKasModel) (int64, error) {
	defer s.enter()()
	cur, ok := s.d.trans[t.ID]
	if !ok || cur.EventID != t.EventID {
		return 0, nil
	}
	cur.Type, cur.Amount, cur.Description, cur.Tanggal = t.Type, t.Amount, t.Description, t.Tanggal
	s.d.trans[t.ID] = cur
	return 1, nil
}

func (s *Store) DeleteTransaction(_ context.Context, eventID, id int64) (int64, error) {
	defer s.enter()()
	t, ok := s.d.trans[id]
	if !ok || t.EventID != eventID {
		return 0, nil
	}
	delete(s.d.trans, id)
	return 1, nil
}

/* ====================== KAS MASJID ====================== */

func (s *Store) CreateKasEntry(_ context.Context, k *kasModel.KasMasjidModel) error {
	defer s.enter()()
	if err := s.faults().CreateKasEntry; err != nil {
		return err
	}
	if k.EventID != nil {
		for _, existing := range s.d.kas {
			if existing.EventID != nil && *existing.EventID == *k.EventID {
				return apperror.Conflictf("Sisa dana event ini sudah ditransfer ke kas masjid")
			}
		}
	}
	k.ID = s.d.nextID()
	k.CreatedAt = time.Now()
	s.d.kas[k.ID] = *k
	return nil
}

// KasEntries: isi buku kas masjid, urut id.
func (s *Store) KasEntries() []kasModel.KasMasjidModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]kasModel.KasMasjidModel, 0, len(s.d.kas))
	for _, k := range s.d.kas {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

/* ====================== PENERIMA ====================== */

func (s *Store) ListRecipients(_ context.Context, eventID int64) ([]model.EventRecipientModel, error) {
	defer s.enter()()
	var out []model.EventRecipientModel
	for _, r := range s.d.recipients {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Nama != out[j].Nama {
			return out[i].Nama < out[j].Nama
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) FindRecipient(_ context.Context, eventID, id int64) (*model.EventRecipientModel, error) {
	defer s.enter()()
	r, ok := s.d.recipients[id]
	if !ok || r.EventID != eventID {
		return nil, gorm.ErrRecordNotFound
	}
	return &r, nil
}

func (s *Store) CreateRecipient(_ context.Context, r *model.EventRecipientModel) error {
	defer s.enter()()
	r.ID = s.d.nextID()
	r.CreatedAt = time.Now()
	s.d.recipients[r.ID] = *r
	return nil
}

func (s *Store) UpdateRecipient(_ context.Context, r *model.EventRecipientModel) (int64, error) {
	defer s.enter()()
	cur, ok := s.d.recipients[r.ID]
	if !ok || cur.EventID != r.EventID {
		return 0, nil
	}
	s.d.recipients[r.ID] = *r
	return 1, nil
}

func (s *Store) DeleteRecipient(_ context.Context, eventID, id int64) (int64, error) {
	defer s.enter()()
	r, ok := s.d.recipients[id]
	if !ok || r.EventID != eventID {
		return 0, nil
	}
	delete(s.d.recipients, id)
	return 1, nil
}

/* ====================== PANITIA ====================== */

func (s *Store) ListCommittee(_ context.Context, eventID int64) ([]model.EventCommitteeModel, error) {
	defer s.enter()()
	var out []model.EventCommitteeModel
	for _, c := range s.d.committee {
		if c.EventID == eventID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Nama != out[j].Nama {
			return out[i].Nama < out[j].Nama
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) FindCommitteeMember(_ context.Context, eventID, id int64) (*model.EventCommitteeModel, error) {
	defer s.enter()()
	c, ok := s.d.committee[id]
	if !ok || c.EventID != eventID {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (s *Store) CreateCommitteeMember(_ context.Context, c *model.EventCommitteeModel) error {
	defer s.enter()()
	c.ID = s.d.nextID()
	c.CreatedAt = time.Now()
	s.d.committee[c.ID] = *c
	return nil
}

func (s *Store) UpdateCommitteeMember(_ context.Context, c *model.EventCommitteeModel) (int64, error) {
	defer s.enter()()
	cur, ok := s.d.committee[c.ID]
	if !ok || cur.EventID != c.EventID {
		return 0, nil
	}
	s.d.committee[c.ID] = *c
	return 1, nil
}

func (s *Store) DeleteCommitteeMember(_ context.Context, eventID, id int64) (int64, error) {
	defer s.enter()()
	c, ok := s.d.committee[id]
	if !ok || c.EventID != eventID {
		return 0, nil
	}
	delete(s.d.committee, id)
	return 1, nil
}
