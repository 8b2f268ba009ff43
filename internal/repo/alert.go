package repo

import (
	"context"

	"github.com/quillon/stocksentry/internal/entity"
	"gorm.io/gorm"
)

type AlertRepo interface {
	Create(ctx context.Context, alert entity.SentAlert) (int64, error)
	FindRecent(ctx context.Context, limit int) ([]entity.SentAlert, error)
	FindByUser(ctx context.Context, user string, limit int) ([]entity.SentAlert, error)
}

type alertRepo struct {
	db *gorm.DB
}

func NewAlertRepo(db *gorm.DB) AlertRepo {
	return &alertRepo{
		db: db,
	}
}

func (r *alertRepo) Create(ctx context.Context, alert entity.SentAlert) (int64, error) {
	err := r.db.WithContext(ctx).Create(&alert).Error
	if err != nil {
		return 0, err
	}
	return alert.Id, nil
}

func (r *alertRepo) FindRecent(ctx context.Context, limit int) ([]entity.SentAlert, error) {
	var alerts []entity.SentAlert
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *alertRepo) FindByUser(ctx context.Context, user string, limit int) ([]entity.SentAlert, error) {
	var alerts []entity.SentAlert
	err := r.db.WithContext(ctx).Where("user = ?", user).Order("created_at DESC").Limit(limit).Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}
