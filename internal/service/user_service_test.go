package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gobnb-backend/internal/domain"
	"gobnb-backend/internal/media"
	"gobnb-backend/internal/repo"
	"gobnb-backend/pkg/utils"
)

func newServiceDBForTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Property{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newUserServiceForTest(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := newServiceDBForTest(t)
	resolver := media.NewResolver("http://localhost:8000", "/media/")
	return NewUserService(repo.NewUserRepo(db), resolver), db
}

func TestNormalizeEmailLowercasesDomainOnly(t *testing.T) {
	cases := map[string]string{
		"Foo@Example.com":  "Foo@example.com",
		"foo@example.com":  "foo@example.com",
		"FOO@EXAMPLE.COM":  "FOO@example.com",
		"  a@B.org  ":      "a@b.org",
		"no-at-sign":       "no-at-sign",
		"local@Sub.Dom.IO": "local@sub.dom.io",
	}
	for in, want := range cases {
		if got := NormalizeEmail(in); got != want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCreateUserMissingEmail(t *testing.T) {
	svc, db := newUserServiceForTest(t)

	for _, email := range []string{"", "   "} {
		if _, err := svc.CreateUser(context.Background(), "bob", email, "secret"); !errors.Is(err, ErrEmailRequired) {
			t.Fatalf("email=%q: expected ErrEmailRequired, got %v", email, err)
		}
	}
	var n int64
	if err := db.Model(&domain.User{}).Count(&n).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no persisted rows, got %d", n)
	}
}

func TestCreateUserDefaultsAndHashing(t *testing.T) {
	svc, db := newUserServiceForTest(t)

	u, err := svc.CreateUser(context.Background(), "Alice", "Alice@Example.com", "s3cret")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if u.ID == "" {
		t.Fatal("expected generated id")
	}
	if u.IsStaff || u.IsSuperuser {
		t.Fatalf("role flags must default to false: %+v", u)
	}
	if !u.IsActive {
		t.Fatal("new account must be active")
	}

	var stored domain.User
	if err := db.First(&stored, "id = ?", u.ID).Error; err != nil {
		t.Fatalf("load stored user: %v", err)
	}
	if stored.Email != "Alice@example.com" {
		t.Fatalf("stored email %q, want lowercased domain", stored.Email)
	}
	if stored.PasswordHash == "s3cret" || stored.PasswordHash == "" {
		t.Fatal("password must be stored hashed, never plaintext")
	}
	if !utils.CheckPassword("s3cret", stored.PasswordHash) {
		t.Fatal("hash does not verify against original password")
	}
}

func TestCreateSuperuserSetsBothFlags(t *testing.T) {
	svc, _ := newUserServiceForTest(t)

	u, err := svc.CreateSuperuser(context.Background(), "root", "root@example.com", "pw")
	if err != nil {
		t.Fatalf("create superuser: %v", err)
	}
	if !u.IsStaff || !u.IsSuperuser {
		t.Fatalf("expected both role flags true, got %+v", u)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc, db := newUserServiceForTest(t)

	if _, err := svc.CreateUser(context.Background(), "a", "dup@Example.com", "pw"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	// 域名大小写不同，规范化后相同
	if _, err := svc.CreateUser(context.Background(), "b", "dup@EXAMPLE.COM", "pw"); !errors.Is(err, repo.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	var n int64
	if err := db.Model(&domain.User{}).Count(&n).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected exactly one row, got %d", n)
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newUserServiceForTest(t)

	u, err := svc.CreateUser(context.Background(), "c", "c@example.com", "right")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if u.LastLogin != nil {
		t.Fatal("last_login must be unset before first login")
	}

	got, err := svc.Authenticate(context.Background(), "c@Example.COM", "right")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("authenticated wrong user: %s", got.ID)
	}
	if got.LastLogin == nil {
		t.Fatal("authenticate must set last_login")
	}

	if _, err := svc.Authenticate(context.Background(), "c@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "nobody@example.com", "x"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}
