package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gobnb-backend/internal/domain"
)

type PropertyRepo struct{ db *gorm.DB }

func NewPropertyRepo(db *gorm.DB) *PropertyRepo { return &PropertyRepo{db: db} }

func (r *PropertyRepo) Create(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// ListAll 全表读取，无过滤无排序（存储自然序）
func (r *PropertyRepo) ListAll(ctx context.Context) ([]domain.Property, error) {
	var ps []domain.Property
	if err := r.db.WithContext(ctx).Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *PropertyRepo) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	var p domain.Property
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *PropertyRepo) List(ctx context.Context, offset, limit int) ([]domain.Property, int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Property{})
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ps []domain.Property
	if err := tx.Offset(offset).Limit(limit).Order("created_at desc").Find(&ps).Error; err != nil {
		return nil, 0, err
	}
	return ps, total, nil
}

func (r *PropertyRepo) CountByLandlord(ctx context.Context, landlordID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Property{}).
		Where("landlord_id = ?", landlordID).Count(&n).Error
	return n, err
}
