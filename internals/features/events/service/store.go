package service

import (
	"context"
	"time"

	"halodkm_backend/internals/features/events/model"
	"halodkm_backend/internals/features/finance/balance"
	kasModel "halodkm_backend/internals/features/finance/kas/model"
)

// EventListItem: event beserta ringkasan saldo & jumlah penerima
type EventListItem struct {
	Event           model.EventModel
	Summary         balance.Summary
	TotalRecipients int64
}

// Store adalah akses data yang dipakai Manager.
//
// Lookup yang tidak menemukan baris mengembalikan gorm.ErrRecordNotFound.
// Method Update*/Delete*/MarkEventCompleted mengembalikan jumlah baris yang
// terkena; 0 berarti baris tidak ada (atau syaratnya tidak terpenuhi).
type Store interface {
	// WithinTx menjalankan fn dalam satu transaksi storage. fn mengembalikan
	// error → seluruh perubahan di-rollback.
	WithinTx(ctx context.Context, fn func(tx Store) error) error

	ListEvents(ctx context.Context, status string) ([]EventListItem, error)
	FindEvent(ctx context.Context, id int64) (*model.EventModel, error)
	// LockEvent membaca event sambil mengunci barisnya sampai transaksi selesai.
	LockEvent(ctx context.Context, id int64) (*model.EventModel, error)
	CreateEvent(ctx context.Context, e *model.EventModel) error
	UpdateEvent(ctx context.Context, e *model.EventModel) (int64, error)
	// DeleteEvent ikut menghapus penerima & panitia event.
	DeleteEvent(ctx context.Context, id int64) (int64, error)
	// MarkEventCompleted: aktif → selesai, hanya kalau status masih aktif.
	MarkEventCompleted(ctx context.Context, id int64, at time.Time) (int64, error)

	ListTransactions(ctx context.Context, eventID int64) ([]model.EventKasModel, error)
	CountTransactions(ctx context.Context, eventID int64) (int64, error)
	SummarizeTransactions(ctx context.Context, eventID int64) (balance.Summary, error)
	FindTransaction(ctx context.Context, eventID, id int64) (*model.EventKasModel, error)
	CreateTransaction(ctx context.Context, t *model.EventKasModel) error
	UpdateTransaction(ctx context.Context, t *model.EventKasModel) (int64, error)
	DeleteTransaction(ctx context.Context, eventID, id int64) (int64, error)

	CreateKasEntry(ctx context.Context, k *kasModel.KasMasjidModel) error

	ListRecipients(ctx context.Context, eventID int64) ([]model.EventRecipientModel, error)
	FindRecipient(ctx context.Context, eventID, id int64) (*model.EventRecipientModel, error)
	CreateRecipient(ctx context.Context, r *model.EventRecipientModel) error
	UpdateRecipient(ctx context.Context, r *model.EventRecipientModel) (int64, error)
	DeleteRecipient(ctx context.Context, eventID, id int64) (int64, error)

	ListCommittee(ctx context.Context, eventID int64) ([]model.EventCommitteeModel, error)
	FindCommitteeMember(ctx context.Context, eventID, id int64) (*model.EventCommitteeModel, error)
	CreateCommitteeMember(ctx context.Context, m *model.EventCommitteeModel) error
	UpdateCommitteeMember(ctx context.Context, m *model.EventCommitteeModel) (int64, error)
	DeleteCommitteeMember(ctx context.Context, eventID, id int64) (int64, error)
}
