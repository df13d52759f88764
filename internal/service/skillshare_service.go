// internal/service/skillshare_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go_5_goalverse/internal/middleware"
	"go_5_goalverse/internal/model"
	"go_5_goalverse/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// アップロードを許可する動画拡張子 (小文字)
var allowedVideoExtensions = map[string]struct{}{
	"mp4": {},
	"mov": {},
	"avi": {},
}

type SkillShareService interface {
	Upload(ctx context.Context, userID uuid.UUID, title, description, filename string, file io.Reader) (*model.SkillPost, error)
	ListPosts(ctx context.Context, viewerID uuid.UUID) ([]*model.SkillPostResponse, error)
	ToggleLike(ctx context.Context, userID, postID uuid.UUID) (*model.ToggleLikeResponse, error)
}

type skillShareService struct {
	db    *gorm.DB
	repo  repository.SkillShareRepository
	files FileStore
}

func NewSkillShareService(db *gorm.DB, repo repository.SkillShareRepository, files FileStore) SkillShareService {
	return &skillShareService{
		db:    db,
		repo:  repo,
		files: files,
	}
}

// Upload は動画ファイルを検証・保存し、投稿レコードを作成します。
// 保存名は衝突しないようUUIDから生成し、元の拡張子のみ引き継ぎます。
func (s *skillShareService) Upload(ctx context.Context, userID uuid.UUID, title, description, filename string, file io.Reader) (*model.SkillPost, error) {
	logger := middleware.GetLogger(ctx)

	if strings.TrimSpace(title) == "" || file == nil {
		return nil, model.NewAppError("MISSING_FIELDS", "タイトルと動画ファイルは必須です。", "title,video", model.ErrInvalidInput)
	}

	ext, err := videoExtension(filename)
	if err != nil {
		logger.Warn("Rejected upload with disallowed extension", "filename", filename)
		return nil, model.NewAppError("INVALID_FILE_TYPE", "MP4 / MOV / AVI のみアップロードできます。", "video", model.ErrInvalidInput)
	}

	storedName := fmt.Sprintf("%s.%s", strings.ReplaceAll(uuid.New().String(), "-", ""), ext)
	if err := s.files.Save(ctx, storedName, file); err != nil {
		logger.Error("Failed to store uploaded video", "error", err, "stored_name", storedName)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "動画の保存に失敗しました。", "", err)
	}

	post := &model.SkillPost{
		PostID:        uuid.New(),
		UserID:        userID,
		Title:         title,
		Description:   description,
		VideoFilename: storedName,
		CreatedAt:     time.Now(),
	}
	if err := s.repo.CreatePost(ctx, s.db, post); err != nil {
		logger.Error("Failed to create skill post", "error", err, "user_id", userID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "投稿の作成に失敗しました。", "", err)
	}

	logger.Info("Skill post uploaded", "post_id", post.PostID, "user_id", userID)
	return post, nil
}

// ListPosts は投稿を新しい順に返します。閲覧者の「いいね」状態も含めます。
func (s *skillShareService) ListPosts(ctx context.Context, viewerID uuid.UUID) ([]*model.SkillPostResponse, error) {
	logger := middleware.GetLogger(ctx)

	posts, err := s.repo.ListPosts(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list skill posts", "error", err)
		return nil, model.ErrInternalServer
	}

	responses := make([]*model.SkillPostResponse, 0, len(posts))
	for _, p := range posts {
		likedByMe := false
		for _, l := range p.Likes {
			if l.UserID == viewerID {
				likedByMe = true
				break
			}
		}
		responses = append(responses, &model.SkillPostResponse{
			PostID:        p.PostID,
			Title:         p.Title,
			Description:   p.Description,
			VideoFilename: p.VideoFilename,
			CreatedAt:     p.CreatedAt,
			LikeCount:     len(p.Likes),
			LikedByMe:     likedByMe,
		})
	}
	return responses, nil
}

// ToggleLike は (user, post) の「いいね」をトグルします。
// 既にあれば削除、なければ作成。クリックごとに冪等なトグルであり、
// like/unlike の別エンドポイントは持たない。
func (s *skillShareService) ToggleLike(ctx context.Context, userID, postID uuid.UUID) (*model.ToggleLikeResponse, error) {
	logger := middleware.GetLogger(ctx)

	var resp *model.ToggleLikeResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.repo.FindPostByID(ctx, tx, postID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("POST_NOT_FOUND", "指定された投稿が見つかりません。", "post_id", model.ErrNotFound)
			}
			logger.Error("Failed to find skill post", "error", err, "post_id", postID)
			return model.ErrInternalServer
		}

		liked := false
		_, err := s.repo.FindLike(ctx, tx, userID, postID)
		switch {
		case err == nil:
			if err := s.repo.DeleteLike(ctx, tx, userID, postID); err != nil {
				logger.Error("Failed to delete like", "error", err, "post_id", postID)
				return model.ErrInternalServer
			}
		case errors.Is(err, model.ErrNotFound):
			like := &model.Like{UserID: userID, PostID: postID}
			if err := s.repo.CreateLike(ctx, tx, like); err != nil {
				// ユニーク制約違反は同時トグルの負け側。いいね済み扱いにする
				if !errors.Is(err, model.ErrConflict) {
					logger.Error("Failed to create like", "error", err, "post_id", postID)
					return model.ErrInternalServer
				}
			}
			liked = true
		default:
			logger.Error("Failed to look up like", "error", err, "post_id", postID)
			return model.ErrInternalServer
		}

		count, err := s.repo.CountLikes(ctx, tx, postID)
		if err != nil {
			logger.Error("Failed to count likes", "error", err, "post_id", postID)
			return model.ErrInternalServer
		}

		resp = &model.ToggleLikeResponse{
			Liked:     liked,
			LikeCount: int(count),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Like toggled", "post_id", postID, "user_id", userID, "liked", resp.Liked)
	return resp, nil
}

// videoExtension は許可済みの拡張子 (小文字) を返します。
func videoExtension(filename string) (string, error) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return "", fmt.Errorf("file name %q has no extension", filename)
	}
	ext := strings.ToLower(filename[idx+1:])
	if _, ok := allowedVideoExtensions[ext]; !ok {
		return "", fmt.Errorf("extension %q is not allowed", ext)
	}
	return ext, nil
}
