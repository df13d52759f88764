// internal/service/quiz_store.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go_5_goalverse/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// 出題から回答までの猶予。期限切れの保留クイズは未生成と同じ扱いになる
const quizTTL = 30 * time.Minute

// QuizStore は「生成→回答」の間だけ保持する保留クイズの置き場です。
// ユーザーIDをキーに最新の1件のみ保持します (再生成は上書き)。
type QuizStore interface {
	Put(ctx context.Context, userID uuid.UUID, quiz *model.Quiz) error
	Get(ctx context.Context, userID uuid.UUID) (*model.Quiz, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// --- MemoryQuizStore ---
// 単一プロセス向けのデフォルト実装。
type MemoryQuizStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID]memoryQuizEntry
}

type memoryQuizEntry struct {
	quiz      *model.Quiz
	expiresAt time.Time
}

func NewMemoryQuizStore() *MemoryQuizStore {
	return &MemoryQuizStore{
		entries: make(map[uuid.UUID]memoryQuizEntry),
	}
}

func (s *MemoryQuizStore) Put(_ context.Context, userID uuid.UUID, quiz *model.Quiz) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[userID] = memoryQuizEntry{
		quiz:      quiz,
		expiresAt: time.Now().Add(quizTTL),
	}
	return nil
}

func (s *MemoryQuizStore) Get(_ context.Context, userID uuid.UUID) (*model.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[userID]
	if !ok {
		return nil, model.ErrNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, userID)
		return nil, model.ErrNotFound
	}
	return entry.quiz, nil
}

func (s *MemoryQuizStore) Delete(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
	return nil
}

// --- RedisQuizStore ---
// 水平スケール構成向け。アプリを複数台並べる場合はこちらを使う。
type RedisQuizStore struct {
	client *redis.Client
}

func NewRedisQuizStore(client *redis.Client) *RedisQuizStore {
	return &RedisQuizStore{client: client}
}

func quizKey(userID uuid.UUID) string {
	return fmt.Sprintf("quiz:pending:%s", userID)
}

func (s *RedisQuizStore) Put(ctx context.Context, userID uuid.UUID, quiz *model.Quiz) error {
	data, err := json.Marshal(quiz)
	if err != nil {
		return fmt.Errorf("failed to marshal quiz: %w", err)
	}
	if err := s.client.Set(ctx, quizKey(userID), data, quizTTL).Err(); err != nil {
		return fmt.Errorf("failed to store quiz in redis: %w", err)
	}
	return nil
}

func (s *RedisQuizStore) Get(ctx context.Context, userID uuid.UUID) (*model.Quiz, error) {
	data, err := s.client.Get(ctx, quizKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load quiz from redis: %w", err)
	}

	var quiz model.Quiz
	if err := json.Unmarshal(data, &quiz); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quiz: %w", err)
	}
	return &quiz, nil
}

func (s *RedisQuizStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, quizKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete quiz from redis: %w", err)
	}
	return nil
}
