package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	auditService "halodkm_backend/internals/features/audit/service"
	"halodkm_backend/internals/features/finance/balance"
	"halodkm_backend/internals/features/finance/kas/model"
	"halodkm_backend/internals/helpers/apperror"
	"halodkm_backend/internals/helpers/identity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fakeStore struct {
	rows   map[int64]*model.KasMasjidModel
	nextID int64
	calls  int
	err    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[int64]*model.KasMasjidModel{}}
}

func (f *fakeStore) List(_ context.Context, flt Filter, limit, offset int) ([]model.KasMasjidModel, int64, error) {
	f.calls++
	var out []model.KasMasjidModel
	for _, r := range f.rows {
		if flt.Type != "" && r.Type != string(flt.Type) {
			continue
		}
		out = append(out, *r)
	}
	return out, int64(len(out)), f.err
}

func (f *fakeStore) Summary(context.Context) (balance.Summary, error) {
	var entries []balance.Entry
	for _, r := range f.rows {
		entries = append(entries, balance.Entry{Direction: balance.Direction(r.Type), Amount: r.Amount})
	}
	return balance.Aggregate(entries), f.err
}

func (f *fakeStore) Find(_ context.Context, id int64) (*model.KasMasjidModel, error) {
	f.calls++
	r, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeStore) Create(_ context.Context, m *model.KasMasjidModel) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.nextID++
	m.ID = f.nextID
	cp := *m
	f.rows[m.ID] = &cp
	return nil
}

func (f *fakeStore) Update(_ context.Context, m *model.KasMasjidModel) (int64, error) {
	f.calls++
	r, ok := f.rows[m.ID]
	if !ok || r.EventID != nil {
		return 0, nil
	}
	cp := *m
	f.rows[m.ID] = &cp
	return 1, nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) (int64, error) {
	f.calls++
	r, ok := f.rows[id]
	if !ok || r.EventID != nil {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

type recorder struct {
	mu      sync.Mutex
	entries []auditService.Entry
}

func (r *recorder) Record(_ context.Context, e auditService.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

var admin = identity.Caller{ID: 3, Role: "admin"}

func validInput() Input {
	return Input{
		Type:        "masuk",
		Amount:      decimal.NewFromInt(250000),
		Description: "Infaq Jumat",
		Tanggal:     time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{"empty type", func(in *Input) { in.Type = "" }},
		{"bad type", func(in *Input) { in.Type = "transfer" }},
		{"zero amount", func(in *Input) { in.Amount = decimal.Zero }},
		{"negative amount", func(in *Input) { in.Amount = decimal.NewFromInt(-5) }},
		{"sub-cent amount", func(in *Input) { in.Amount = decimal.RequireFromString("0.001") }},
		{"three decimals", func(in *Input) { in.Amount = decimal.RequireFromString("100.005") }},
		{"amount too large", func(in *Input) { in.Amount = decimal.RequireFromString("10000000000000") }},
		{"blank description", func(in *Input) { in.Description = "  " }},
		{"no date", func(in *Input) { in.Tanggal = time.Time{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			svc := NewService(store, &recorder{})
			in := validInput()
			tt.mutate(&in)
			_, err := svc.Create(context.Background(), admin, in)
			if !apperror.Is(err, apperror.InvalidInput) {
				t.Fatalf("err = %v, want InvalidInput", err)
			}
			if store.calls != 0 {
				t.Fatalf("store touched %d times", store.calls)
			}
		})
	}
}

func TestCreateRequiresCaller(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &recorder{})
	_, err := svc.Create(context.Background(), identity.Caller{}, validInput())
	if !apperror.Is(err, apperror.Unauthorized) {
		t.Fatalf("err = %v, want Unauthorized", err)
	}
	if store.calls != 0 {
		t.Fatal("store must not be touched")
	}
}

func TestCreateUpdateDeleteAudited(t *testing.T) {
	store := newFakeStore()
	rec := &recorder{}
	svc := NewService(store, rec)
	ctx := context.Background()

	row, err := svc.Create(ctx, admin, validInput())
	if err != nil {
		t.Fatal(err)
	}
	in := validInput()
	in.Type = "keluar"
	in.Amount = decimal.NewFromInt(50000)
	if _, err := svc.Update(ctx, admin, row.ID, in); err != nil {
		t.Fatal(err)
	}
	if got := store.rows[row.ID].Type; got != "keluar" {
		t.Fatalf("type = %q", got)
	}
	if err := svc.Delete(ctx, admin, row.ID); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"Menambah transaksi kas: masuk Rp 250.000 - Infaq Jumat",
		"Mengupdate transaksi kas ID 1: keluar Rp 50.000 - Infaq Jumat",
		"Menghapus transaksi kas: keluar Rp 50.000",
	}
	if len(rec.entries) != len(want) {
		t.Fatalf("audit entries = %d, want %d", len(rec.entries), len(want))
	}
	for i, w := range want {
		if rec.entries[i].Action != w || rec.entries[i].UserID != admin.ID {
			t.Errorf("entry %d = %+v, want %q", i, rec.entries[i], w)
		}
	}
}

func TestUnknownIDIsNotFound(t *testing.T) {
	svc := NewService(newFakeStore(), &recorder{})
	ctx := context.Background()
	if _, err := svc.Update(ctx, admin, 99, validInput()); !apperror.Is(err, apperror.NotFound) {
		t.Fatalf("update err = %v", err)
	}
	if err := svc.Delete(ctx, admin, 99); !apperror.Is(err, apperror.NotFound) {
		t.Fatalf("delete err = %v", err)
	}
}

func TestTransferRowsAreProtected(t *testing.T) {
	store := newFakeStore()
	eventID := int64(7)
	store.rows[1] = &model.KasMasjidModel{
		ID:          1,
		Type:        "masuk",
		Amount:      decimal.NewFromInt(800000),
		Description: "Sisa dana Event: Qurban",
		EventID:     &eventID,
	}
	rec := &recorder{}
	svc := NewService(store, rec)
	ctx := context.Background()

	if _, err := svc.Update(ctx, admin, 1, validInput()); !apperror.Is(err, apperror.Conflict) {
		t.Fatalf("update err = %v, want Conflict", err)
	}
	if err := svc.Delete(ctx, admin, 1); !apperror.Is(err, apperror.Conflict) {
		t.Fatalf("delete err = %v, want Conflict", err)
	}
	if _, ok := store.rows[1]; !ok {
		t.Fatal("transfer row removed")
	}
	if len(rec.entries) != 0 {
		t.Fatalf("unexpected audit entries: %+v", rec.entries)
	}
}

func TestListSummaryAndFilters(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &recorder{})
	ctx := context.Background()

	for _, in := range []Input{
		{Type: "masuk", Amount: decimal.RequireFromString("1000000"), Description: "a", Tanggal: time.Now()},
		{Type: "keluar", Amount: decimal.RequireFromString("250000.50"), Description: "b", Tanggal: time.Now()},
	} {
		if _, err := svc.Create(ctx, admin, in); err != nil {
			t.Fatal(err)
		}
	}

	res, err := svc.List(ctx, Filter{}, 50, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 2 || !res.Summary.Balance.Equal(decimal.RequireFromString("749999.50")) {
		t.Fatalf("got total=%d summary=%+v", res.Total, res.Summary)
	}

	if _, err := svc.List(ctx, Filter{Type: "lain"}, 50, 0); !apperror.Is(err, apperror.InvalidInput) {
		t.Fatalf("bad type err = %v", err)
	}
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.List(ctx, Filter{StartDate: &start, EndDate: &end}, 50, 0); !apperror.Is(err, apperror.InvalidInput) {
		t.Fatalf("inverted range err = %v", err)
	}
}

func TestStoreFailureIsInternal(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("connection reset")
	svc := NewService(store, &recorder{})
	_, err := svc.Create(context.Background(), admin, validInput())
	if apperror.KindOf(err) != apperror.Internal {
		t.Fatalf("err = %v, want Internal", err)
	}
}
