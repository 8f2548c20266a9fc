package repository

import (
	"context"
	"time"

	"halodkm_backend/internals/features/dashboard/service"
	eventModel "halodkm_backend/internals/features/events/model"
	"halodkm_backend/internals/features/finance/balance"
	kasModel "halodkm_backend/internals/features/finance/kas/model"

	"gorm.io/gorm"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

var _ service.Source = (*StatsRepository)(nil)

func (r *StatsRepository) KasTotals(ctx context.Context, from, to *time.Time) (balance.Summary, error) {
	q := r.db.WithContext(ctx).
		Model(&kasModel.KasMasjidModel{}).
		Select(balance.SumColumns("type", "amount"))
	if from != nil {
		q = q.Where("tanggal >= ?", *from)
	}
	if to != nil {
		q = q.Where("tanggal <= ?", *to)
	}
	var t balance.Totals
	if err := q.Scan(&t).Error; err != nil {
		return balance.Summary{}, err
	}
	return t.Summary(), nil
}

func (r *StatsRepository) CountEvents(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&eventModel.EventModel{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}
