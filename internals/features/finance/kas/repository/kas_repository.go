// internals/features/finance/kas/repository/kas_repository.go
package repository

import (
	"context"

	"halodkm_backend/internals/features/finance/balance"
	"halodkm_backend/internals/features/finance/kas/model"
	"halodkm_backend/internals/features/finance/kas/service"

	"gorm.io/gorm"
)

type KasRepository struct {
	db *gorm.DB
}

func NewKasRepository(db *gorm.DB) *KasRepository {
	return &KasRepository{db: db}
}

/* ====================== QUERY ====================== */

func (r *KasRepository) List(ctx context.Context, f service.Filter, limit, offset int) ([]model.KasMasjidModel, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.KasMasjidModel{})
	if f.StartDate != nil {
		q = q.Where("tanggal >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("tanggal <= ?", *f.EndDate)
	}
	if f.Type != "" {
		q = q.Where("type = ?", string(f.Type))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.KasMasjidModel
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Order("tanggal DESC").Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Summary: saldo seluruh buku kas, tanpa filter
func (r *KasRepository) Summary(ctx context.Context) (balance.Summary, error) {
	var t balance.Totals
	err := r.db.WithContext(ctx).
		Model(&model.KasMasjidModel{}).
		Select(balance.SumColumns("type", "amount")).
		Scan(&t).Error
	if err != nil {
		return balance.Summary{}, err
	}
	return t.Summary(), nil
}

func (r *KasRepository) Find(ctx context.Context, id int64) (*model.KasMasjidModel, error) {
	var row model.KasMasjidModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

/* ====================== MUTATION ====================== */

func (r *KasRepository) Create(ctx context.Context, m *model.KasMasjidModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *KasRepository) Update(ctx context.Context, m *model.KasMasjidModel) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.KasMasjidModel{}).
		Where("id = ? AND event_id IS NULL", m.ID).
		Updates(map[string]any{
			"type":        m.Type,
			"amount":      m.Amount,
			"description": m.Description,
			"category":    m.Category,
			"tanggal":     m.Tanggal,
		})
	return res.RowsAffected, res.Error
}

func (r *KasRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND event_id IS NULL", id).
		Delete(&model.KasMasjidModel{})
	return res.RowsAffected, res.Error
}

var _ service.Store = (*KasRepository)(nil)
