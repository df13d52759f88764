//go:generate mockery --name PlaylistRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_5_goalverse/internal/middleware"
	"go_5_goalverse/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlaylistRepository インターフェース
type PlaylistRepository interface {
	Create(ctx context.Context, tx *gorm.DB, item *model.PlaylistItem) error
	FindRecentByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.PlaylistItem, error)
}

type gormPlaylistRepository struct{}

func NewGormPlaylistRepository() PlaylistRepository {
	return &gormPlaylistRepository{}
}

func (r *gormPlaylistRepository) Create(ctx context.Context, tx *gorm.DB, item *model.PlaylistItem) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(item)
	if result.Error != nil {
		logger.Error("Error creating playlist item in DB",
			"error", result.Error,
			"user_id", item.UserID.String(),
			"title", item.Title,
		)
		return fmt.Errorf("gormPlaylistRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormPlaylistRepository) FindRecentByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.PlaylistItem, error) {
	logger := middleware.GetLogger(ctx)
	var items []*model.PlaylistItem
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("searched_at DESC").
		Limit(limit).
		Find(&items)
	if result.Error != nil {
		logger.Error("Error finding recent playlist items in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormPlaylistRepository.FindRecentByUser: %w", result.Error)
	}
	return items, nil
}
