// internal/service/dashboard_service.go
package service

import (
	"context"

	"go_5_goalverse/internal/middleware"
	"go_5_goalverse/internal/model"
	"go_5_goalverse/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	dashboardPlaylistLimit = 6
	dashboardDocsLimit     = 5
)

type DashboardService interface {
	GetDashboard(ctx context.Context, userID uuid.UUID) (*model.DashboardResponse, error)
}

type dashboardService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	playlistRepo repository.PlaylistRepository
	docRepo      repository.DocumentationRepository
}

func NewDashboardService(db *gorm.DB, userRepo repository.UserRepository, playlistRepo repository.PlaylistRepository, docRepo repository.DocumentationRepository) DashboardService {
	return &dashboardService{
		db:           db,
		userRepo:     userRepo,
		playlistRepo: playlistRepo,
		docRepo:      docRepo,
	}
}

// GetDashboard はユーザー情報・学習済みエントリ・直近のプレイリストと
// ドキュメントをまとめて返します。
func (s *dashboardService) GetDashboard(ctx context.Context, userID uuid.UUID) (*model.DashboardResponse, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	playlists, err := s.playlistRepo.FindRecentByUser(ctx, s.db, userID, dashboardPlaylistLimit)
	if err != nil {
		logger.Error("Failed to load recent playlists", "error", err, "user_id", userID)
		return nil, model.ErrInternalServer
	}

	docs, err := s.docRepo.FindRecentByUser(ctx, s.db, userID, dashboardDocsLimit)
	if err != nil {
		logger.Error("Failed to load recent docs", "error", err, "user_id", userID)
		return nil, model.ErrInternalServer
	}

	return &model.DashboardResponse{
		User:            model.NewUserResponse(user),
		Learned:         user.LearnedEntries(),
		RecentPlaylists: playlists,
		RecentDocs:      docs,
	}, nil
}
