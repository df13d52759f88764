// internal/model/playlist.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// PlaylistItem は動画検索で採用された候補を永続化したものです。
// 挿入後は不変で、検索リクエストごとに best-effort で書き込まれます。
type PlaylistItem struct {
	ItemID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"item_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Topic      string    `gorm:"not null" json:"topic"`
	Difficulty string    `gorm:"not null" json:"difficulty"`
	Title      string    `gorm:"not null" json:"title"`
	URL        string    `gorm:"not null" json:"url"`
	Thumbnail  string    `json:"thumbnail"`
	Channel    string    `json:"channel"`
	SearchedAt time.Time `gorm:"not null" json:"searched_at"`
}

func (PlaylistItem) TableName() string {
	return "playlist_items"
}
