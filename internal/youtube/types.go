// internal/youtube/types.go
package youtube

import (
	"context"
	"errors"
)

// ErrTranscriptUnavailable は字幕が無効・未提供の場合に返されます。
// 呼び出し側はこのエラーをフォールバック(スコア0)として扱います。
var ErrTranscriptUnavailable = errors.New("transcript unavailable")

// SearchItem は検索プロバイダが返す候補動画1件です。採点前の状態。
type SearchItem struct {
	VideoID   string
	Title     string
	Channel   string
	Thumbnail string
}

// VideoStats は統計プロバイダが返す動画の統計情報です。
type VideoStats struct {
	Views        int64
	Likes        int64
	CommentCount int64
	DurationMin  float64 // ISO-8601 期間文字列を分に変換済み
}

// Comment は上位コメント1件です。
type Comment struct {
	Text      string
	LikeCount int64
}

//go:generate mockery --name SearchProvider --output ./mocks --outpkg mocks --case=underscore
type SearchProvider interface {
	// Search はクエリに一致する type=video の候補を最大 maxResults 件返します。
	Search(ctx context.Context, query string, maxResults int) ([]SearchItem, error)
}

//go:generate mockery --name StatsProvider --output ./mocks --outpkg mocks --case=underscore
type StatsProvider interface {
	// VideoStats は動画の統計と長さを返します。
	// 動画が存在しない場合は model.ErrNotFound を返します。
	VideoStats(ctx context.Context, videoID string) (*VideoStats, error)
}

//go:generate mockery --name CommentsProvider --output ./mocks --outpkg mocks --case=underscore
type CommentsProvider interface {
	// TopComments は関連度順の上位コメントを最大 max 件返します。
	TopComments(ctx context.Context, videoID string, max int) ([]Comment, error)
}

//go:generate mockery --name TranscriptProvider --output ./mocks --outpkg mocks --case=underscore
type TranscriptProvider interface {
	// Transcript は動画の字幕テキスト全文を返します。
	// 字幕が利用できない場合は ErrTranscriptUnavailable を返します。
	Transcript(ctx context.Context, videoID string) (string, error)
}
