// internal/model/video.go
package model

// VideoSignals はスコアリングエンジンへの正規化済み入力です。
// 各シグナルは独立に収集され、取得失敗はゼロ値(フォールバック)になります。
type VideoSignals struct {
	TranscriptScore    float64 // 字幕とトピックの一致度 [0,1]
	LikeRatio          float64 // いいね率(%) 使用前に上限でキャップ
	WatchHours         float64 // 視聴時間 = 再生数×分/60 使用前に上限でキャップ
	PositiveCommentPct float64 // 好意的コメント率(%) [0,100]
}

// VideoResult は検索パイプラインが返す採点済み動画1件です。
type VideoResult struct {
	Title                  string   `json:"title"`
	ID                     string   `json:"id"`
	Thumb                  string   `json:"thumb"`
	Channel                string   `json:"channel"`
	Views                  int64    `json:"views"`
	Likes                  int64    `json:"likes"`
	Duration               float64  `json:"duration"` // 分
	WatchHours             float64  `json:"watch_hours"`
	PositiveComments       []string `json:"positive_comments"`
	PositiveCommentPercent float64  `json:"positive_comment_percentage"`
	LikeRatio              float64  `json:"like_ratio"`
	TranscriptScore        float64  `json:"transcript_score"` // 0-100で返す
	Score                  float64  `json:"score"`
}

// CodeRunRequest はコード実行リクエストDTO
type CodeRunRequest struct {
	Code string `json:"code" validate:"required"`
	Lang string `json:"lang" validate:"omitempty,oneof=python javascript java c cpp"`
}

// CodeRunResponse は実行結果
type CodeRunResponse struct {
	Output string `json:"output"`
	Error  string `json:"error"`
}
