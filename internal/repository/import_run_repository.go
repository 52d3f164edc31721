package repository

import (
	"context"

	"gorm.io/gorm"

	"ukpostcodes/internal/model"
)

type ImportRunRepository struct {
	db *gorm.DB
}

func NewImportRunRepository(db *gorm.DB) *ImportRunRepository {
	return &ImportRunRepository{db: db}
}

func (r *ImportRunRepository) Save(ctx context.Context, run *model.ImportRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

// ListBySource returns the most recent runs for source, newest first.
func (r *ImportRunRepository) ListBySource(ctx context.Context, source string, limit int) ([]model.ImportRun, error) {
	var runs []model.ImportRun
	err := r.db.WithContext(ctx).
		Where("source = ?", source).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	return runs, err
}
