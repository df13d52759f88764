//go:generate mockery --name DocumentationRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_5_goalverse/internal/middleware"
	"go_5_goalverse/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentationRepository インターフェース
type DocumentationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, doc *model.Documentation) error
	FindRecentByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.Documentation, error)
}

type gormDocumentationRepository struct{}

func NewGormDocumentationRepository() DocumentationRepository {
	return &gormDocumentationRepository{}
}

func (r *gormDocumentationRepository) Create(ctx context.Context, tx *gorm.DB, doc *model.Documentation) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(doc)
	if result.Error != nil {
		logger.Error("Error creating documentation in DB",
			"error", result.Error,
			"user_id", doc.UserID.String(),
			"topic", doc.Topic,
		)
		return fmt.Errorf("gormDocumentationRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormDocumentationRepository) FindRecentByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.Documentation, error) {
	logger := middleware.GetLogger(ctx)
	var docs []*model.Documentation
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("generated_at DESC").
		Limit(limit).
		Find(&docs)
	if result.Error != nil {
		logger.Error("Error finding recent documentations in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormDocumentationRepository.FindRecentByUser: %w", result.Error)
	}
	return docs, nil
}
