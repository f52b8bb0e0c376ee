package domain

import "time"

// User 以邮箱为唯一登录凭证，avatar 存相对路径（如 uploads/avatars/x.jpg）
type User struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Email        string `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Name         string `gorm:"size:255" json:"name"`
	Avatar       string `gorm:"size:255" json:"-"`
	PasswordHash string `gorm:"size:191" json:"-"`

	IsActive    bool `gorm:"not null;default:true" json:"is_active"`
	IsStaff     bool `gorm:"not null;default:false" json:"is_staff"`
	IsSuperuser bool `gorm:"not null;default:false" json:"is_superuser"`

	DateJoined time.Time  `gorm:"autoCreateTime" json:"date_joined"`
	LastLogin  *time.Time `json:"last_login"`
}

func (User) TableName() string { return "users" }
