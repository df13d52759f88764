//go:generate mockery --name SkillShareRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_goalverse/internal/middleware"
	"go_5_goalverse/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillShareRepository は投稿と「いいね」の永続化を担います。
type SkillShareRepository interface {
	CreatePost(ctx context.Context, tx *gorm.DB, post *model.SkillPost) error
	FindPostByID(ctx context.Context, db *gorm.DB, postID uuid.UUID) (*model.SkillPost, error)
	ListPosts(ctx context.Context, db *gorm.DB) ([]*model.SkillPost, error)
	FindLike(ctx context.Context, db *gorm.DB, userID, postID uuid.UUID) (*model.Like, error)
	CreateLike(ctx context.Context, tx *gorm.DB, like *model.Like) error
	DeleteLike(ctx context.Context, tx *gorm.DB, userID, postID uuid.UUID) error
	CountLikes(ctx context.Context, db *gorm.DB, postID uuid.UUID) (int64, error)
}

type gormSkillShareRepository struct{}

func NewGormSkillShareRepository() SkillShareRepository {
	return &gormSkillShareRepository{}
}

func (r *gormSkillShareRepository) CreatePost(ctx context.Context, tx *gorm.DB, post *model.SkillPost) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(post)
	if result.Error != nil {
		logger.Error("Error creating skill post in DB",
			"error", result.Error,
			"user_id", post.UserID.String(),
			"title", post.Title,
		)
		return fmt.Errorf("gormSkillShareRepository.CreatePost: %w", result.Error)
	}
	return nil
}

func (r *gormSkillShareRepository) FindPostByID(ctx context.Context, db *gorm.DB, postID uuid.UUID) (*model.SkillPost, error) {
	logger := middleware.GetLogger(ctx)
	var post model.SkillPost
	result := db.WithContext(ctx).Where("post_id = ?", postID).First(&post)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding skill post by ID in DB",
			"error", result.Error,
			"post_id", postID.String(),
		)
		return nil, fmt.Errorf("gormSkillShareRepository.FindPostByID: %w", result.Error)
	}
	return &post, nil
}

func (r *gormSkillShareRepository) ListPosts(ctx context.Context, db *gorm.DB) ([]*model.SkillPost, error) {
	logger := middleware.GetLogger(ctx)
	var posts []*model.SkillPost
	result := db.WithContext(ctx).
		Preload("Likes").
		Order("created_at DESC").
		Find(&posts)
	if result.Error != nil {
		logger.Error("Error listing skill posts in DB", "error", result.Error)
		return nil, fmt.Errorf("gormSkillShareRepository.ListPosts: %w", result.Error)
	}
	return posts, nil
}

func (r *gormSkillShareRepository) FindLike(ctx context.Context, db *gorm.DB, userID, postID uuid.UUID) (*model.Like, error) {
	logger := middleware.GetLogger(ctx)
	var like model.Like
	result := db.WithContext(ctx).Where("user_id = ? AND post_id = ?", userID, postID).First(&like)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding like in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"post_id", postID.String(),
		)
		return nil, fmt.Errorf("gormSkillShareRepository.FindLike: %w", result.Error)
	}
	return &like, nil
}

func (r *gormSkillShareRepository) CreateLike(ctx context.Context, tx *gorm.DB, like *model.Like) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(like)
	if result.Error != nil {
		// 複合ユニーク制約 uq_user_post 違反は競合として扱う
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating like in DB",
			"error", result.Error,
			"user_id", like.UserID.String(),
			"post_id", like.PostID.String(),
		)
		return fmt.Errorf("gormSkillShareRepository.CreateLike: %w", result.Error)
	}
	return nil
}

func (r *gormSkillShareRepository) DeleteLike(ctx context.Context, tx *gorm.DB, userID, postID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.Like{})
	if result.Error != nil {
		logger.Error("Error deleting like in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"post_id", postID.String(),
		)
		return fmt.Errorf("gormSkillShareRepository.DeleteLike: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormSkillShareRepository) CountLikes(ctx context.Context, db *gorm.DB, postID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Like{}).Where("post_id = ?", postID).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting likes in DB",
			"error", result.Error,
			"post_id", postID.String(),
		)
		return 0, fmt.Errorf("gormSkillShareRepository.CountLikes: %w", result.Error)
	}
	return count, nil
}
