// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config はアプリケーション全体の設定を保持します。
// 外部コラボレータ(YouTube/Gemini/Judge0)の設定もここに集約し、
// 各クライアントへはコンストラクタ経由で明示的に渡します。
type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	JWT struct {
		SecretKey      string        `mapstructure:"secret_key"`
		AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
	} `mapstructure:"jwt"`
	Mailer struct {
		Type string `mapstructure:"type"` // "log", "smtp", "ses"
	} `mapstructure:"mailer"`
	SMTP  SMTPConfig `mapstructure:"smtp"`
	SES   SESConfig  `mapstructure:"ses"`
	Redis struct {
		Addr     string `mapstructure:"addr"` // 空ならインメモリのQuizStoreを使う
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Upload struct {
		Dir string `mapstructure:"dir"`
	} `mapstructure:"upload"`
	YouTube YouTubeConfig `mapstructure:"youtube"`
	Gemini  GeminiConfig  `mapstructure:"gemini"`
	Judge0  Judge0Config  `mapstructure:"judge0"`
	Ranking RankingConfig `mapstructure:"ranking"`
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	From            string `mapstructure:"from"`
	AuthType        string `mapstructure:"auth_type"` // "iam_role", "static_credentials"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

// YouTubeConfig は検索・統計・コメント・字幕プロバイダの接続設定です。
type YouTubeConfig struct {
	APIKey       string `mapstructure:"api_key"`
	BaseURL      string `mapstructure:"base_url"`
	TimedTextURL string `mapstructure:"timedtext_url"`
}

type GeminiConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

type Judge0Config struct {
	BaseURL      string        `mapstructure:"base_url"`
	PollAttempts int           `mapstructure:"poll_attempts"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// RankingConfig はスコアリングの重みとフィルタ閾値です。
// 値は設定で上書きできますが、式の形は service/scoring.go に固定です。
type RankingConfig struct {
	TranscriptWeight float64 `mapstructure:"transcript_weight"`
	LikeRatioWeight  float64 `mapstructure:"like_ratio_weight"`
	WatchHoursWeight float64 `mapstructure:"watch_hours_weight"`
	CommentWeight    float64 `mapstructure:"comment_weight"`
	LikeRatioCap     float64 `mapstructure:"like_ratio_cap"`
	WatchHoursCap    float64 `mapstructure:"watch_hours_cap"`
	MinViews         int64   `mapstructure:"min_views"`
	MinDurationMin   float64 `mapstructure:"min_duration_min"`
	MaxResults       int     `mapstructure:"max_results"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	// APIキー類は環境変数からの上書きを想定
	viper.BindEnv("youtube.api_key", "YOUTUBE_API_KEY")
	viper.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("database.url", "DATABASE_URL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	ApplyDefaults(&Cfg)

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Mailer Type: %s", Cfg.Mailer.Type)

	return nil
}

// ApplyDefaults は未設定項目にデフォルト値を入れます。
// ランキングの重み・閾値のデフォルトは元の設計定数と同じ値です。
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.JWT.AccessTokenTTL <= 0 {
		cfg.JWT.AccessTokenTTL = 24 * time.Hour
	}
	if cfg.Mailer.Type == "" {
		cfg.Mailer.Type = "log"
	}
	if cfg.Upload.Dir == "" {
		cfg.Upload.Dir = DefaultUploadDir
	}
	if cfg.YouTube.BaseURL == "" {
		cfg.YouTube.BaseURL = YouTubeAPIEndpoint
	}
	if cfg.YouTube.TimedTextURL == "" {
		cfg.YouTube.TimedTextURL = YouTubeTimedTextEndpoint
	}
	if cfg.Gemini.BaseURL == "" {
		cfg.Gemini.BaseURL = GeminiAPIEndpoint
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = DefaultGeminiModel
	}
	if cfg.Judge0.BaseURL == "" {
		cfg.Judge0.BaseURL = Judge0APIEndpoint
	}
	if cfg.Judge0.PollAttempts <= 0 {
		cfg.Judge0.PollAttempts = DefaultJudge0PollAttempts
	}
	if cfg.Judge0.PollInterval <= 0 {
		cfg.Judge0.PollInterval = DefaultJudge0PollInterval
	}

	r := &cfg.Ranking
	if r.TranscriptWeight <= 0 {
		r.TranscriptWeight = 0.5
	}
	if r.LikeRatioWeight <= 0 {
		r.LikeRatioWeight = 0.2
	}
	if r.WatchHoursWeight <= 0 {
		r.WatchHoursWeight = 0.15
	}
	if r.CommentWeight <= 0 {
		r.CommentWeight = 0.15
	}
	if r.LikeRatioCap <= 0 {
		r.LikeRatioCap = 100
	}
	if r.WatchHoursCap <= 0 {
		r.WatchHoursCap = 1000
	}
	if r.MinViews <= 0 {
		r.MinViews = 20
	}
	if r.MinDurationMin <= 0 {
		r.MinDurationMin = 1
	}
	if r.MaxResults <= 0 {
		r.MaxResults = 30
	}

	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set. Using insecure dev default.")
		cfg.JWT.SecretKey = "dev-secret-change-me"
	}
}
