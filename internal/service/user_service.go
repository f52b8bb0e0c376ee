package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gobnb-backend/internal/domain"
	"gobnb-backend/internal/media"
	"gobnb-backend/internal/repo"
	"gobnb-backend/pkg/utils"
)

var (
	ErrEmailRequired      = errors.New("you have not specified a valid e-mail address")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserService struct {
	users *repo.UserRepo
	media media.Resolver
}

func NewUserService(users *repo.UserRepo, resolver media.Resolver) *UserService {
	return &UserService{users: users, media: resolver}
}

// NormalizeEmail 只小写 @ 之后的域名部分，本地部分保持原样
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

// CreateUser 普通账号：is_staff=false, is_superuser=false
func (s *UserService) CreateUser(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.create(ctx, name, email, password, false, false)
}

// CreateSuperuser 特权账号：两个角色位都置真
func (s *UserService) CreateSuperuser(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.create(ctx, name, email, password, true, true)
}

func (s *UserService) create(ctx context.Context, name, email, password string, staff, superuser bool) (*domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        NormalizeEmail(email),
		Name:         strings.TrimSpace(name),
		PasswordHash: utils.HashPassword(password),
		IsActive:     true,
		IsStaff:      staff,
		IsSuperuser:  superuser,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate 校验密码并刷新 last_login
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.users.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsActive || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	now := time.Now()
	if err := s.users.TouchLastLogin(ctx, u.ID, now); err != nil {
		return nil, err
	}
	u.LastLogin = &now
	return u, nil
}

func (s *UserService) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) SetAvatar(ctx context.Context, id, relPath string) error {
	return s.users.UpdateAvatar(ctx, id, relPath)
}

func (s *UserService) List(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	return s.users.List(ctx, offset, limit)
}

func (s *UserService) Delete(ctx context.Context, id string) (int64, error) {
	return s.users.Delete(ctx, id)
}

// AvatarURL 未设置头像时为空串
func (s *UserService) AvatarURL(u *domain.User) string {
	return s.media.URL(u.Avatar)
}
