// internals/features/events/repository/event_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"halodkm_backend/internals/features/events/model"
	"halodkm_backend/internals/features/events/service"
	"halodkm_backend/internals/features/finance/balance"
	kasModel "halodkm_backend/internals/features/finance/kas/model"
	"halodkm_backend/internals/helpers/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventRepository: implementasi service.Store di atas gorm.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ service.Store = (*EventRepository)(nil)

func (r *EventRepository) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *EventRepository) WithinTx(ctx context.Context, fn func(tx service.Store) error) error {
	return r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&EventRepository{db: tx})
	})
}

/* ====================== EVENTS ====================== */

type eventListRow struct {
	model.EventModel
	TotalMasuk      decimal.Decimal `gorm:"column:total_masuk"`
	TotalKeluar     decimal.Decimal `gorm:"column:total_keluar"`
	TotalRecipients int64           `gorm:"column:total_recipients"`
}

func (r *EventRepository) ListEvents(ctx context.Context, status string) ([]service.EventListItem, error) {
	q := r.conn(ctx).
		Table("events AS e").
		Select("e.*, " + balance.SumColumns("ek.type", "ek.amount") +
			", (SELECT COUNT(*) FROM event_recipients er WHERE er.event_id = e.id) AS total_recipients").
		Joins("LEFT JOIN event_kas ek ON ek.event_id = e.id")
	if status != "" {
		q = q.Where("e.status = ?", status)
	}

	var rows []eventListRow
	err := q.Group("e.id").
		Order("e.tanggal_mulai DESC").
		Order("e.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]service.EventListItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, service.EventListItem{
			Event:           row.EventModel,
			Summary:         balance.FromTotals(row.TotalMasuk, row.TotalKeluar),
			TotalRecipients: row.TotalRecipients,
		})
	}
	return out, nil
}

func (r *EventRepository) FindEvent(ctx context.Context, id int64) (*model.EventModel, error) {
	var ev model.EventModel
	if err := r.conn(ctx).First(&ev, id).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

// LockEvent: SELECT ... FOR UPDATE. Hanya bermakna di dalam WithinTx.
func (r *EventRepository) LockEvent(ctx context.Context, id int64) (*model.EventModel, error) {
	var ev model.EventModel
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&ev, id).Error
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *EventRepository) CreateEvent(ctx context.Context, e *model.EventModel) error {
	return classify(r.conn(ctx).Create(e).Error)
}

func (r *EventRepository) UpdateEvent(ctx context.Context, e *model.EventModel) (int64, error) {
	res := r.conn(ctx).
		Model(&model.EventModel{}).
		Where("id = ?", e.ID).
		Updates(map[string]any{
			"nama":          e.Nama,
			"deskripsi":     e.Deskripsi,
			"tipe":          e.Tipe,
			"tanggal_mulai": e.TanggalMulai,
		})
	return res.RowsAffected, classify(res.Error)
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id int64) (int64, error) {
	db := r.conn(ctx)
	if err := db.Where("event_id = ?", id).Delete(&model.EventRecipientModel{}).Error; err != nil {
		return 0, err
	}
	if err := db.Where("event_id = ?", id).Delete(&model.EventCommitteeModel{}).Error; err != nil {
		return 0, err
	}
	res := db.Delete(&model.EventModel{}, id)
	return res.RowsAffected, classify(res.Error)
}

// MarkEventCompleted: compare-and-set status aktif → selesai
func (r *EventRepository) MarkEventCompleted(ctx context.Context, id int64, at time.Time) (int64, error) {
	res := r.conn(ctx).
		Model(&model.EventModel{}).
		Where("id = ? AND status = ?", id, model.StatusActive).
		Updates(map[string]any{
			"status":          model.StatusCompleted,
			"tanggal_selesai": at,
		})
	return res.RowsAffected, res.Error
}

/* ====================== TRANSAKSI EVENT ====================== */

func (r *EventRepository) ListTransactions(ctx context.Context, eventID int64) ([]model.EventKasModel, error) {
	var rows []model.EventKasModel
	err := r.conn(ctx).
		Where("event_id = ?", eventID).
		Order("tanggal DESC").
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}

func (r *EventRepository) CountTransactions(ctx context.Context, eventID int64) (int64, error) {
	var n int64
	err := r.conn(ctx).Model(&model.EventKasModel{}).Where("event_id = ?", eventID).Count(&n).Error
	return n, err
}

func (r *EventRepository) SummarizeTransactions(ctx context.Context, eventID int64) (balance.Summary, error) {
	var t balance.Totals
	err := r.conn(ctx).
		Model(&model.EventKasModel{}).
		Select(balance.SumColumns("type", "amount")).
		Where("event_id = ?", eventID).
		Scan(&t).Error
	if err != nil {
		return balance.Summary{}, err
	}
	return t.Summary(), nil
}

func (r *EventRepository) FindTransaction(ctx context.Context, eventID, id int64) (*model.EventKasModel, error) {
	var row model.EventKasModel
	if err := r.conn(ctx).Where("id = ? AND event_id = ?", id, eventID).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *EventRepository) CreateTransaction(ctx context.Context, t *model.EventKasModel) error {
	return classify(r.conn(ctx).Omit(clause.Associations).Create(t).Error)
}

func (r *EventRepository) UpdateTransaction(ctx context.Context, t *model.EventKasModel) (int64, error) {
	res := r.conn(ctx).
		Model(&model.EventKasModel{}).
		Where("id = ? AND event_id = ?", t.ID, t.EventID).
		Updates(map[string]any{
			"type":        t.Type,
			"amount":      t.Amount,
			"description": t.Description,
			"tanggal":     t.Tanggal,
		})
	return res.RowsAffected, res.Error
}

func (r *EventRepository) DeleteTransaction(ctx context.Context, eventID, id int64) (int64, error) {
	res := r.conn(ctx).Where("id = ? AND event_id = ?", id, eventID).Delete(&model.EventKasModel{})
	return res.RowsAffected, res.Error
}

/* ====================== KAS MASJID ====================== */

func (r *EventRepository) CreateKasEntry(ctx context.Context, k *kasModel.KasMasjidModel) error {
	err := r.conn(ctx).Create(k).Error
	if isUniqueViolation(err) {
		return apperror.Wrap(apperror.Conflict, err, "Sisa dana event ini sudah ditransfer ke kas masjid")
	}
	return err
}

/* ====================== PENERIMA ====================== */

func (r *EventRepository) ListRecipients(ctx context.Context, eventID int64) ([]model.EventRecipientModel, error) {
	var rows []model.EventRecipientModel
	err := r.conn(ctx).Where("event_id = ?", eventID).Order("nama ASC").Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *EventRepository) FindRecipient(ctx context.Context, eventID, id int64) (*model.EventRecipientModel, error) {
	var row model.EventRecipientModel
	if err := r.conn(ctx).Where("id = ? AND event_id = ?", id, eventID).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *EventRepository) CreateRecipient(ctx context.Context, m *model.EventRecipientModel) error {
	return classify(r.conn(ctx).Omit(clause.Associations).Create(m).Error)
}

func (r *EventRepository) UpdateRecipient(ctx context.Context, m *model.EventRecipientModel) (int64, error) {
	res := r.conn(ctx).
		Model(&model.EventRecipientModel{}).
		Where("id = ? AND event_id = ?", m.ID, m.EventID).
		Updates(map[string]any{
			"nama":          m.Nama,
			"alamat":        m.Alamat,
			"no_hp":         m.NoHP,
			"jenis_bantuan": m.JenisBantuan,
			"jumlah":        m.Jumlah,
			"keterangan":    m.Keterangan,
		})
	return res.RowsAffected, res.Error
}

func (r *EventRepository) DeleteRecipient(ctx context.Context, eventID, id int64) (int64, error) {
	res := r.conn(ctx).Where("id = ? AND event_id = ?", id, eventID).Delete(&model.EventRecipientModel{})
	return res.RowsAffected, res.Error
}

/* ====================== PANITIA ====================== */

func (r *EventRepository) ListCommittee(ctx context.Context, eventID int64) ([]model.EventCommitteeModel, error) {
	var rows []model.EventCommitteeModel
	err := r.conn(ctx).Where("event_id = ?", eventID).Order("nama ASC").Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *EventRepository) FindCommitteeMember(ctx context.Context, eventID, id int64) (*model.EventCommitteeModel, error) {
	var row model.EventCommitteeModel
	if err := r.conn(ctx).Where("id = ? AND event_id = ?", id, eventID).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *EventRepository) CreateCommitteeMember(ctx context.Context, m *model.EventCommitteeModel) error {
	return classify(r.conn(ctx).Omit(clause.Associations).Create(m).Error)
}

func (r *EventRepository) UpdateCommitteeMember(ctx context.Context, m *model.EventCommitteeModel) (int64, error) {
	res := r.conn(ctx).
		Model(&model.EventCommitteeModel{}).
		Where("id = ? AND event_id = ?", m.ID, m.EventID).
		Updates(map[string]any{
			"nama":    m.Nama,
			"jabatan": m.Jabatan,
			"no_hp":   m.NoHP,
		})
	return res.RowsAffected, res.Error
}

func (r *EventRepository) DeleteCommitteeMember(ctx context.Context, eventID, id int64) (int64, error) {
	res := r.conn(ctx).Where("id = ? AND event_id = ?", id, eventID).Delete(&model.EventCommitteeModel{})
	return res.RowsAffected, res.Error
}

/* ====================== PG ERROR ====================== */

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// classify: pelanggaran FK (event sudah hilang / masih direferensikan) → Conflict
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return apperror.Wrap(apperror.Conflict, err, "Data masih terkait dengan data lain")
	}
	return err
}
