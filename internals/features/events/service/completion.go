package service

import (
	"context"
	"fmt"

	"halodkm_backend/internals/features/events/model"
	"halodkm_backend/internals/features/finance/balance"
	kasModel "halodkm_backend/internals/features/finance/kas/model"
	"halodkm_backend/internals/helpers/apperror"
	"halodkm_backend/internals/helpers/identity"

	"github.com/shopspring/decimal"
)

// CompleteEvent menutup event dan memindahkan saldo positifnya ke kas masjid.
//
// Dalam satu transaksi storage: kunci event, tolak kalau sudah selesai,
// hitung saldo, tolak saldo negatif (InvalidState, event tidak berubah),
// ubah status aktif → selesai lewat compare-and-set, lalu kalau saldo > 0
// catat pemasukan "Transfer Event" di kas masjid. Gagal di langkah mana pun
// → tidak ada yang tersimpan. Mengembalikan nominal yang ditransfer.
func (m *Manager) CompleteEvent(ctx context.Context, caller identity.Caller, id int64) (decimal.Decimal, error) {
	if err := caller.Require(); err != nil {
		return decimal.Zero, err
	}

	var (
		ev    *model.EventModel
		saldo decimal.Decimal
	)
	err := m.store.WithinTx(ctx, func(tx Store) error {
		var err error
		if ev, err = m.lockEvent(ctx, tx, id); err != nil {
			return err
		}
		if ev.IsCompleted() {
			return apperror.Conflictf("Event sudah selesai")
		}

		sum, err := tx.SummarizeTransactions(ctx, id)
		if err != nil {
			return storeErr(err, "Gagal menghitung saldo event")
		}
		saldo = sum.Balance
		if saldo.IsNegative() {
			return apperror.New(apperror.InvalidState,
				"Saldo event negatif (%s). Tidak dapat menyelesaikan event dengan saldo negatif.",
				balance.FormatIDR(saldo))
		}

		today := m.today()
		n, err := tx.MarkEventCompleted(ctx, id, today)
		if err != nil {
			return storeErr(err, "Gagal menyelesaikan event")
		}
		if n == 0 {
			return apperror.Conflictf("Event sudah selesai")
		}

		if !saldo.IsPositive() {
			return nil
		}
		category := kasModel.CategoryTransferEvent
		eventID := id
		entry := &kasModel.KasMasjidModel{
			Type:        string(balance.In),
			Amount:      saldo,
			Description: fmt.Sprintf("Sisa dana Event: %s", ev.Nama),
			Category:    &category,
			Tanggal:     today,
			EventID:     &eventID,
		}
		return storeErr(tx.CreateKasEntry(ctx, entry), "Gagal mentransfer sisa dana ke kas masjid")
	})
	if err != nil {
		return decimal.Zero, err
	}

	m.record(ctx, caller,
		fmt.Sprintf("Menyelesaikan event \"%s\" dengan saldo %s ditransfer ke Kas Masjid", ev.Nama, balance.FormatIDR(saldo)),
		map[string]any{"event_id": id, "transferred_amount": saldo.String()},
	)
	return saldo, nil
}
