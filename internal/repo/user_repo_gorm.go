package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"gobnb-backend/internal/domain"
)

// ErrDuplicateEmail 唯一索引冲突，写入时检测，不做先查后写
var ErrDuplicateEmail = errors.New("email already registered")

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if err != nil && isDupKey(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) List(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.User{})
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []domain.User
	if err := tx.Offset(offset).Limit(limit).Order("date_joined desc").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepo) UpdateAvatar(ctx context.Context, id, avatar string) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).
		Update("avatar", avatar).Error
}

func (r *UserRepo) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).
		Update("last_login", at).Error
}

// Delete 硬删除；landlord 的房源由外键级联删除
func (r *UserRepo) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.User{})
	return res.RowsAffected, res.Error
}

// 不依赖 gorm.ErrDuplicatedKey，驱动间差异太大
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "unique failed")
}
