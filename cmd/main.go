// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/lmittmann/tint"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"go_5_goalverse/internal/config"
	"go_5_goalverse/internal/gemini"
	"go_5_goalverse/internal/handlers"
	"go_5_goalverse/internal/judge0"
	"go_5_goalverse/internal/middleware"
	"go_5_goalverse/internal/repository"
	"go_5_goalverse/internal/service"
	"go_5_goalverse/internal/youtube"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	log.Println("Log Config Loaded...")

	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 3. External collaborators
	ytClient := youtube.NewClient(config.Cfg.YouTube, nil)
	transcriptClient := youtube.NewTimedTextClient(config.Cfg.YouTube, nil)
	geminiClient := gemini.NewClient(config.Cfg.Gemini, nil)
	judge0Client := judge0.NewClient(config.Cfg.Judge0, nil)

	fileStore, err := service.NewLocalFileStore(config.Cfg.Upload.Dir)
	if err != nil {
		slog.Error("Error initializing upload directory", slog.Any("error", err))
		os.Exit(1)
	}

	// 保留クイズの置き場。Redisが設定されていれば複数台構成に対応できる
	var quizStore service.QuizStore
	if config.Cfg.Redis.Addr != "" {
		slog.Info("Using Redis quiz store", slog.String("addr", config.Cfg.Redis.Addr))
		quizStore = service.NewRedisQuizStore(redis.NewClient(&redis.Options{
			Addr:     config.Cfg.Redis.Addr,
			Password: config.Cfg.Redis.Password,
			DB:       config.Cfg.Redis.DB,
		}))
	} else {
		slog.Info("Using in-memory quiz store")
		quizStore = service.NewMemoryQuizStore()
	}

	mailer := service.NewMailer(&config.Cfg)

	// 4. Dependency Injection
	userRepo := repository.NewGormUserRepository()
	playlistRepo := repository.NewGormPlaylistRepository()
	docRepo := repository.NewGormDocumentationRepository()
	skillRepo := repository.NewGormSkillShareRepository()

	trackerService := service.NewTrackerService(db, userRepo)
	authService := service.NewAuthService(db, userRepo, mailer, &config.Cfg)
	searchService := service.NewSearchService(db, playlistRepo, trackerService, ytClient, ytClient, ytClient, transcriptClient, config.Cfg.Ranking)
	quizService := service.NewQuizService(geminiClient, quizStore, trackerService)
	docsService := service.NewDocsService(db, docRepo, geminiClient, trackerService)
	codeService := service.NewCodeService(judge0Client, trackerService, config.Cfg.Judge0)
	skillService := service.NewSkillShareService(db, skillRepo, fileStore)
	dashboardService := service.NewDashboardService(db, userRepo, playlistRepo, docRepo)

	authHandler := handlers.NewAuthHandler(authService, logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, logger)
	videoHandler := handlers.NewVideoHandler(searchService, logger)
	docsHandler := handlers.NewDocsHandler(docsService, logger)
	quizHandler := handlers.NewQuizHandler(quizService, logger)
	codeHandler := handlers.NewCodeHandler(codeService, logger)
	skillHandler := handlers.NewSkillShareHandler(skillService, logger)

	// 5. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/signup", authHandler.Signup)
		r.Post("/auth/login", authHandler.Login)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Get("/dashboard", dashboardHandler.GetDashboard)

			r.Route("/videos", func(r chi.Router) {
				// 外部プロバイダを叩く検索はユーザー単位でレート制限する
				r.With(httprate.LimitByIP(10, time.Minute)).Get("/search", videoHandler.SearchVideos)
				r.Get("/playlists", videoHandler.GetPlaylists)
			})

			r.Route("/docs", func(r chi.Router) {
				r.With(httprate.LimitByIP(10, time.Minute)).Post("/generate", docsHandler.GenerateDocs)
				r.Get("/", docsHandler.GetDocs)
			})

			r.Route("/quiz", func(r chi.Router) {
				r.With(httprate.LimitByIP(10, time.Minute)).Post("/generate", quizHandler.GenerateQuiz)
				r.Post("/submit", quizHandler.SubmitQuiz)
			})

			r.With(httprate.LimitByIP(10, time.Minute)).Post("/code/run", codeHandler.RunCode)

			r.Route("/skillshare", func(r chi.Router) {
				r.Get("/posts", skillHandler.ListPosts)
				r.Post("/posts", skillHandler.UploadPost)
				r.Post("/posts/{post_id}/like", skillHandler.ToggleLike)
			})
		})
	})

	// アップロード済み動画の配信
	uploadServer := http.StripPrefix("/static/uploads/", http.FileServer(http.Dir(config.Cfg.Upload.Dir)))
	r.Get("/static/uploads/*", uploadServer.ServeHTTP)

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 6. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second, // コード実行のポーリング(最大15秒)を考慮
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
