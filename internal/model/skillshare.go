// internal/model/skillshare.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SkillPost はアップロードされたスキル共有動画の投稿です。
// 投稿を削除すると紐づく Like はDB制約でカスケード削除されます。
type SkillPost struct {
	PostID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"post_id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title         string    `gorm:"not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	VideoFilename string    `gorm:"not null" json:"video_filename"`
	CreatedAt     time.Time `json:"created_at"`

	// 関連 (Preload用)
	Likes []Like `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SkillPost) TableName() string {
	return "skill_posts"
}

// Like は (user, post) の「いいね」ペアです。
// (user_id, post_id) は複合ユニーク制約で高々1行に保たれます。
type Like struct {
	ID     uint      `gorm:"primaryKey" json:"-"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_post" json:"user_id"`
	PostID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_post" json:"post_id"`
}

func (Like) TableName() string {
	return "likes"
}

// SkillPostResponse は投稿一覧のレスポンスDTO
type SkillPostResponse struct {
	PostID        uuid.UUID `json:"post_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	VideoFilename string    `json:"video_filename"`
	CreatedAt     time.Time `json:"created_at"`
	LikeCount     int       `json:"like_count"`
	LikedByMe     bool      `json:"liked_by_me"`
}

// ToggleLikeResponse は「いいね」トグルの結果
type ToggleLikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}
