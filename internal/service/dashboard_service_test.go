// internal/service/dashboard_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"go_5_goalverse/internal/model"
	repomocks "go_5_goalverse/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDashboardServiceForTest(t *testing.T) (DashboardService, *repomocks.UserRepository, *repomocks.PlaylistRepository, *repomocks.DocumentationRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	userRepo := new(repomocks.UserRepository)
	playlistRepo := new(repomocks.PlaylistRepository)
	docRepo := new(repomocks.DocumentationRepository)
	return NewDashboardService(db, userRepo, playlistRepo, docRepo), userRepo, playlistRepo, docRepo
}

func Test_dashboardService_GetDashboard(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("正常系: ユーザー・学習済みエントリ・直近データをまとめて返す", func(t *testing.T) {
		svc, userRepo, playlistRepo, docRepo := newDashboardServiceForTest(t)

		user := &model.User{
			UserID:  userID,
			Name:    "testuser",
			Email:   "test@example.com",
			Streak:  4,
			Learned: "recursion|video|basic,sorting|quiz|",
		}
		playlists := []*model.PlaylistItem{
			{ItemID: uuid.New(), UserID: userID, Topic: "recursion"},
		}
		docs := []*model.Documentation{
			{DocID: uuid.New(), UserID: userID, Topic: "sorting"},
		}

		userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(user, nil).Once()
		playlistRepo.On("FindRecentByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID, 6).
			Return(playlists, nil).Once()
		docRepo.On("FindRecentByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID, 5).
			Return(docs, nil).Once()

		res, err := svc.GetDashboard(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, userID, res.User.UserID)
		assert.Equal(t, 4, res.User.Streak)
		assert.Equal(t, []string{"recursion|video|basic", "sorting|quiz|"}, res.Learned)
		assert.Len(t, res.RecentPlaylists, 1)
		assert.Len(t, res.RecentDocs, 1)
	})

	t.Run("異常系: ユーザーが存在しない", func(t *testing.T) {
		svc, userRepo, _, _ := newDashboardServiceForTest(t)

		userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(nil, model.ErrNotFound).Once()

		_, err := svc.GetDashboard(ctx, userID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: プレイリスト取得失敗は内部エラー", func(t *testing.T) {
		svc, userRepo, playlistRepo, _ := newDashboardServiceForTest(t)

		userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(&model.User{UserID: userID}, nil).Once()
		playlistRepo.On("FindRecentByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID, 6).
			Return(nil, errors.New("db down")).Once()

		_, err := svc.GetDashboard(ctx, userID)
		assert.ErrorIs(t, err, model.ErrInternalServer)
	})
}
