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

// Transaksi event hanya boleh berubah selama event aktif. Semua operasi
// berjalan dalam transaksi storage yang mengunci baris event, sehingga
// berurutan terhadap CompleteEvent.

func (m *Manager) AddTransaction(ctx context.Context, caller identity.Caller, eventID int64, in TransactionInput) (*model.EventKasModel, error) {
	if err := caller.Require(); err != nil {
		return nil, err
	}
	dir, err := in.validate()
	if err != nil {
		return nil, err
	}

	row := &model.EventKasModel{
		EventID:     eventID,
		Type:        string(dir),
		Amount:      in.Amount,
		Description: strings.TrimSpace(in.Description),
		Tanggal:     in.Tanggal,
	}
	var ev *model.EventModel
	err = m.store.WithinTx(ctx, func(tx Store) error {
		var err error
		if ev, err = m.lockEvent(ctx, tx, eventID); err != nil {
			return err
		}
		if ev.IsCompleted() {
			return apperror.Conflictf("Tidak dapat menambah transaksi ke event yang sudah selesai")
		}
		return storeErr(tx.CreateTransaction(ctx, row), "Gagal menambah transaksi")
	})
	if err != nil {
		return nil, err
	}

	m.record(ctx, caller,
		fmt.Sprintf("Menambah transaksi event %s: %s %s", ev.Nama, row.Type, balance.FormatIDR(row.Amount)),
		map[string]any{"event_id": eventID, "transaction_id": row.ID},
	)
	return row, nil
}

func (m *Manager) UpdateTransaction(ctx context.Context, caller identity.Caller, eventID, transID int64, in TransactionInput) (*model.EventKasModel, error) {
	if err := caller.Require(); err != nil {
		return nil, err
	}
	dir, err := in.validate()
	if err != nil {
		return nil, err
	}

	var row *model.EventKasModel
	err = m.store.WithinTx(ctx, func(tx Store) error {
		ev, err := m.lockEvent(ctx, tx, eventID)
		if err != nil {
			return err
		}
		if ev.IsCompleted() {
			return apperror.Conflictf("Tidak dapat mengubah transaksi event yang sudah selesai")
		}
		if row, err = tx.FindTransaction(ctx, eventID, transID); err != nil {
			return lookupErr(err, "Transaksi tidak ditemukan", "Gagal mengambil transaksi")
		}

		row.Type = string(dir)
		row.Amount = in.Amount
		row.Description = strings.TrimSpace(in.Description)
		row.Tanggal = in.Tanggal

		n, err := tx.UpdateTransaction(ctx, row)
		if err != nil {
			return storeErr(err, "Gagal memperbarui transaksi")
		}
		if n == 0 {
			return apperror.NotFoundf("Transaksi tidak ditemukan")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.record(ctx, caller, fmt.Sprintf("Mengupdate transaksi event ID %d", transID),
		map[string]any{"event_id": eventID, "transaction_id": transID})
	return row, nil
}

func (m *Manager) DeleteTransaction(ctx context.Context, caller identity.Caller, eventID, transID int64) error {
	if err := caller.Require(); err != nil {
		return err
	}

	err := m.store.WithinTx(ctx, func(tx Store) error {
		ev, err := m.lockEvent(ctx, tx, eventID)
		if err != nil {
			return err
		}
		if ev.IsCompleted() {
			return apperror.Conflictf("Tidak dapat menghapus transaksi event yang sudah selesai")
		}
		n, err := tx.DeleteTransaction(ctx, eventID, transID)
		if err != nil {
			return storeErr(err, "Gagal menghapus transaksi")
		}
		if n == 0 {
			return apperror.NotFoundf("Transaksi tidak ditemukan")
		}
		return nil
	})
	if err != nil {
		return err
	}

	m.record(ctx, caller, fmt.Sprintf("Menghapus transaksi event ID %d", transID),
		map[string]any{"event_id": eventID, "transaction_id": transID})
	return nil
}
