// internal/service/tracker_service.go
package service

import (
	"context"
	"strings"
	"time"

	"go_5_goalverse/internal/middleware"
	"go_5_goalverse/internal/model"
	"go_5_goalverse/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackerService は学習アクション (検索・ドキュメント生成・クイズ・コード実行)
// の記録とストリーク更新を担います。
type TrackerService interface {
	Record(ctx context.Context, userID uuid.UUID, topic, mode, difficulty string) error
}

type trackerService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
}

func NewTrackerService(db *gorm.DB, userRepo repository.UserRepository) TrackerService {
	return &trackerService{
		db:       db,
		userRepo: userRepo,
	}
}

// Record は学習済みエントリ "topic|mode|difficulty" を重複なしで追記し、
// 日付の隣接ルールに従ってストリークを更新します。
func (s *trackerService) Record(ctx context.Context, userID uuid.UUID, topic, mode, difficulty string) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByID(ctx, tx, userID)
		if err != nil {
			return err
		}

		now := time.Now()
		entry := topic + "|" + mode + "|" + difficulty
		user.Learned = appendLearnedEntry(user.Learned, entry)
		user.Streak = calculateNextStreak(user.Streak, user.LastActive, now)
		user.LastActive = &now

		if err := s.userRepo.UpdateLearning(ctx, tx, user); err != nil {
			logger.Error("Failed to update learning activity", "error", err, "user_id", userID)
			return model.ErrInternalServer
		}

		logger.Debug("Learning activity recorded", "user_id", userID, "entry", entry, "streak", user.Streak)
		return nil
	})
}

// appendLearnedEntry はエントリを末尾に追加します。既存なら何もしない
// (順序付き・重複なしの不変条件を守る)。
func appendLearnedEntry(learned, entry string) string {
	for _, e := range strings.Split(learned, ",") {
		if strings.TrimSpace(e) == entry {
			return learned
		}
	}
	if learned == "" {
		return entry
	}
	return learned + "," + entry
}

// calculateNextStreak はストリーク更新の純粋ロジックです。
//   - last_active が今日     → 変化なし (同日の再トリガーは冪等)
//   - last_active が昨日     → +1
//   - それ以外 (null含む)    → 1 にリセット
func calculateNextStreak(current int, lastActive *time.Time, now time.Time) int {
	if lastActive == nil {
		return 1
	}

	today := truncateToDate(now)
	last := truncateToDate(*lastActive)

	switch {
	case last.Equal(today):
		if current < 1 {
			return 1
		}
		return current
	case last.Equal(today.AddDate(0, 0, -1)):
		return current + 1
	default:
		return 1
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
