// internal/repository/skillshare_repository_integ_test.go
package repository_test

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"go_5_goalverse/internal/model"
	"go_5_goalverse/internal/repository"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDB *gorm.DB

// TestMain はdockertestでPostgreSQLコンテナを起動し、マイグレーション済みの
// テストDBを用意します。Dockerが利用できない環境ではパッケージごと失敗します。
func TestMain(m *testing.M) {
	testLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(testLogger)

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=goalverse_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start PostgreSQL resource: %s", err)
	}

	dsn := fmt.Sprintf("host=localhost port=%s user=user password=secret dbname=goalverse_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	if err = pool.Retry(func() error {
		var errRetry error
		testDB, errRetry = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
			TranslateError: true,
		})
		if errRetry != nil {
			return errRetry
		}
		sqlDB, errRetry := testDB.DB()
		if errRetry != nil {
			return errRetry
		}
		return sqlDB.Ping()
	}); err != nil {
		if pErr := pool.Purge(resource); pErr != nil {
			log.Printf("Warning: Could not purge resource: %s", pErr)
		}
		log.Fatalf("Could not connect to PostgreSQL container: %s", err)
	}

	if err = testDB.AutoMigrate(&model.SkillPost{}, &model.Like{}); err != nil {
		log.Fatalf("Could not migrate database: %s", err)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge PostgreSQL resource: %s", err)
	}
	os.Exit(code)
}

func clearSkillShareTables(t *testing.T) {
	t.Helper()
	require.NoError(t, testDB.Exec("TRUNCATE TABLE likes, skill_posts RESTART IDENTITY CASCADE").Error)
}

func createTestPost(t *testing.T, createdAt time.Time) *model.SkillPost {
	t.Helper()
	post := &model.SkillPost{
		PostID:        uuid.New(),
		UserID:        uuid.New(),
		Title:         "integ-post-" + uuid.NewString()[:8],
		VideoFilename: uuid.NewString()[:8] + ".mp4",
		CreatedAt:     createdAt,
	}
	require.NoError(t, testDB.Create(post).Error)
	return post
}

func TestGormSkillShareRepository_Likes_Integration(t *testing.T) {
	clearSkillShareTables(t)
	ctx := context.Background()
	repo := repository.NewGormSkillShareRepository()

	post := createTestPost(t, time.Now())
	userID := uuid.New()

	t.Run("正常系: いいね作成→取得→件数→削除", func(t *testing.T) {
		like := &model.Like{UserID: userID, PostID: post.PostID}
		require.NoError(t, repo.CreateLike(ctx, testDB, like))

		found, err := repo.FindLike(ctx, testDB, userID, post.PostID)
		require.NoError(t, err)
		assert.Equal(t, userID, found.UserID)
		assert.Equal(t, post.PostID, found.PostID)

		count, err := repo.CountLikes(ctx, testDB, post.PostID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)

		require.NoError(t, repo.DeleteLike(ctx, testDB, userID, post.PostID))

		_, err = repo.FindLike(ctx, testDB, userID, post.PostID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: 複合ユニーク制約で二重いいねはErrConflict", func(t *testing.T) {
		like := &model.Like{UserID: userID, PostID: post.PostID}
		require.NoError(t, repo.CreateLike(ctx, testDB, like))

		dup := &model.Like{UserID: userID, PostID: post.PostID}
		err := repo.CreateLike(ctx, testDB, dup)
		assert.ErrorIs(t, err, model.ErrConflict)

		// DB上は高々1行のまま
		count, err := repo.CountLikes(ctx, testDB, post.PostID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("異常系: 存在しないいいねの削除はErrNotFound", func(t *testing.T) {
		err := repo.DeleteLike(ctx, testDB, uuid.New(), post.PostID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestGormSkillShareRepository_ListPosts_Integration(t *testing.T) {
	clearSkillShareTables(t)
	ctx := context.Background()
	repo := repository.NewGormSkillShareRepository()

	older := createTestPost(t, time.Now().Add(-time.Hour))
	newer := createTestPost(t, time.Now())

	liker := uuid.New()
	require.NoError(t, repo.CreateLike(ctx, testDB, &model.Like{UserID: liker, PostID: older.PostID}))
	require.NoError(t, repo.CreateLike(ctx, testDB, &model.Like{UserID: uuid.New(), PostID: older.PostID}))

	posts, err := repo.ListPosts(ctx, testDB)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	// 新しい順で、いいねがPreloadされていること
	assert.Equal(t, newer.PostID, posts[0].PostID)
	assert.Equal(t, older.PostID, posts[1].PostID)
	assert.Empty(t, posts[0].Likes)
	assert.Len(t, posts[1].Likes, 2)
}

func TestGormSkillShareRepository_FindPostByID_Integration(t *testing.T) {
	clearSkillShareTables(t)
	ctx := context.Background()
	repo := repository.NewGormSkillShareRepository()

	post := createTestPost(t, time.Now())

	found, err := repo.FindPostByID(ctx, testDB, post.PostID)
	require.NoError(t, err)
	assert.Equal(t, post.Title, found.Title)

	_, err = repo.FindPostByID(ctx, testDB, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}
