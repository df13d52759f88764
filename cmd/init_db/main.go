// cmd/init_db/main.go
// 全テーブルを作成する管理用コマンド。デプロイ時に一度だけ実行する。
package main

import (
	"log"
	"log/slog"
	"os"

	"go_5_goalverse/internal/config"
	"go_5_goalverse/internal/model"
	"go_5_goalverse/internal/repository"
)

func main() {
	if err := config.LoadConfig("./configs"); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	// Like の (user_id, post_id) 複合ユニーク制約と SkillPost→Like の
	// カスケード削除はモデルのタグから生成される
	err = db.AutoMigrate(
		&model.User{},
		&model.PlaylistItem{},
		&model.Documentation{},
		&model.SkillPost{},
		&model.Like{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	log.Println("Database schema created successfully")
}
