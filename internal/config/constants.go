// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "GoalVerse"
	AppVersion = "2.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort = ":8080"
	DefaultLogLevel   = "info"
	DefaultUploadDir  = "static/uploads"

	DefaultGeminiModel        = "gemini-2.5-flash"
	DefaultJudge0PollAttempts = 15
	DefaultJudge0PollInterval = 1 * time.Second
)

// 外部サービスのエンドポイント
const (
	YouTubeAPIEndpoint       = "https://www.googleapis.com/youtube/v3"
	YouTubeTimedTextEndpoint = "https://www.youtube.com/api/timedtext"
	GeminiAPIEndpoint        = "https://generativelanguage.googleapis.com/v1beta"
	Judge0APIEndpoint        = "https://ce.judge0.com"
)
