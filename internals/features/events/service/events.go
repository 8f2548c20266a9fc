package service

import (
	"context"
	"fmt"
	"strings"

	"halodkm_backend/internals/features/events/model"
	"halodkm_backend/internals/features/finance/balance"
	"halodkm_backend/internals/helpers/apperror"
	"halodkm_backend/internals/helpers/identity"
)

type EventDetail struct {
	Event        model.EventModel
	Transactions []model.EventKasModel
	Summary      balance.Summary
}

// ListEvents: status kosong → semua event
func (m *Manager) ListEvents(ctx context.Context, status string) ([]EventListItem, error) {
	status = strings.TrimSpace(status)
	if status != "" && !model.ValidStatus(status) {
		return nil, apperror.Invalid(`Status harus "%s" atau "%s"`, model.StatusActive, model.StatusCompleted)
	}
	items, err := m.store.ListEvents(ctx, status)
	if err != nil {
		return nil, storeErr(err, "Gagal mengambil daftar event")
	}
	return items, nil
}

func (m *Manager) GetEvent(ctx context.Context, id int64) (*EventDetail, error) {
	ev, err := m.findEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	trans, err := m.store.ListTransactions(ctx, id)
	if err != nil {
		return nil, storeErr(err, "Gagal mengambil transaksi event")
	}
	sum, err := m.store.SummarizeTransactions(ctx, id)
	if err != nil {
		return nil, storeErr(err, "Gagal menghitung saldo event")
	}
	return &EventDetail{Event: *ev, Transactions: trans, Summary: sum}, nil
}

func (m *Manager) CreateEvent(ctx context.Context, caller identity.Caller, in EventInput) (*model.EventModel, error) {
	if err := caller.Require(); err != nil {
		return nil, err
	}
	tipe, err := in.validate()
	if err != nil {
		return nil, err
	}
	if tipe == "" {
		tipe = model.TypeFundraising
	}

	ev := &model.EventModel{
		Nama:         strings.TrimSpace(in.Nama),
		Deskripsi:    optional(in.Deskripsi),
		Tipe:         tipe,
		TanggalMulai: in.TanggalMulai,
		Status:       model.StatusActive,
	}
	if err := m.store.CreateEvent(ctx, ev); err != nil {
		return nil, storeErr(err, "Gagal membuat event")
	}

	m.record(ctx, caller, fmt.Sprintf("Membuat event baru: %s", ev.Nama), map[string]any{"event_id": ev.ID})
	return ev, nil
}

// UpdateEvent mengubah metadata event. Status & tanggal selesai tidak pernah disentuh.
func (m *Manager) UpdateEvent(ctx context.Context, caller identity.Caller, id int64, in EventInput) (*model.EventModel, error) {
	if err := caller.Require(); err != nil {
		return nil, err
	}
	tipe, err := in.validate()
	if err != nil {
		return nil, err
	}

	var ev *model.EventModel
	err = m.store.WithinTx(ctx, func(tx Store) error {
		var err error
		if ev, err = m.lockEvent(ctx, tx, id); err != nil {
			return err
		}
		if m.lockCompletedMetadata && ev.IsCompleted() {
			return apperror.Conflictf("Event yang sudah selesai tidak dapat diubah")
		}

		ev.Nama = strings.TrimSpace(in.Nama)
		ev.Deskripsi = optional(in.Deskripsi)
		ev.TanggalMulai = in.TanggalMulai
		if tipe != "" {
			ev.Tipe = tipe
		}

		n, err := tx.UpdateEvent(ctx, ev)
		if err != nil {
			return storeErr(err, "Gagal memperbarui event")
		}
		if n == 0 {
			return apperror.NotFoundf("Event tidak ditemukan")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.record(ctx, caller, fmt.Sprintf("Mengupdate event ID %d: %s", id, ev.Nama), map[string]any{"event_id": id})
	return ev, nil
}

// DeleteEvent menolak (Conflict) event yang masih punya transaksi, apa pun statusnya.
func (m *Manager) DeleteEvent(ctx context.Context, caller identity.Caller, id int64) error {
	if err := caller.Require(); err != nil {
		return err
	}

	var ev *model.EventModel
	err := m.store.WithinTx(ctx, func(tx Store) error {
		var err error
		if ev, err = m.lockEvent(ctx, tx, id); err != nil {
			return err
		}
		count, err := tx.CountTransactions(ctx, id)
		if err != nil {
			return storeErr(err, "Gagal memeriksa transaksi event")
		}
		if count > 0 {
			return apperror.Conflictf("Event memiliki transaksi. Hapus semua transaksi terlebih dahulu atau selesaikan event.")
		}
		n, err := tx.DeleteEvent(ctx, id)
		if err != nil {
			return storeErr(err, "Gagal menghapus event")
		}
		if n == 0 {
			return apperror.NotFoundf("Event tidak ditemukan")
		}
		return nil
	})
	if err != nil {
		return err
	}

	m.record(ctx, caller, fmt.Sprintf("Menghapus event: %s", ev.Nama), map[string]any{"event_id": id})
	return nil
}
