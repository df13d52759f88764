// internal/model/user.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User はユーザーの基本情報と学習ストリークを表します。
// Learned は "topic|mode|difficulty" エントリをカンマ区切りで保持します
// (順序付き・重複なし)。
type User struct {
	UserID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	Email        string         `gorm:"unique;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Name         string         `json:"name"`
	Streak       int            `gorm:"not null;default:0" json:"streak"`
	LastActive   *time.Time     `json:"last_active,omitempty"`
	Learned      string         `gorm:"type:text;not null;default:''" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// LearnedEntries は Learned カラムをエントリのスライスに分解します。
func (u *User) LearnedEntries() []string {
	parts := strings.Split(u.Learned, ",")
	entries := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			entries = append(entries, s)
		}
	}
	return entries
}

// SignupRequest は新規登録APIのリクエストボディの構造体 (DTO)
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UserResponse はクライアントに返すユーザー情報の構造体
type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Streak    int       `json:"streak"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *User) *UserResponse {
	return &UserResponse{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Streak:    u.Streak,
		CreatedAt: u.CreatedAt,
	}
}

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)
