// internal/handlers/skillshare_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_goalverse/internal/middleware"
	"go_5_goalverse/internal/model"
	"go_5_goalverse/internal/service"
	"go_5_goalverse/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// multipart/form-data のメモリ上限 (超過分は一時ファイルへ)
const maxUploadMemory = 32 << 20

type SkillShareHandler struct {
	service service.SkillShareService
	logger  *slog.Logger
}

func NewSkillShareHandler(s service.SkillShareService, logger *slog.Logger) *SkillShareHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SkillShareHandler{
		service: s,
		logger:  logger,
	}
}

// ListPosts はスキル共有投稿の一覧を返すハンドラ
func (h *SkillShareHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListPosts"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	posts, err := h.service.ListPosts(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing skill posts in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, posts, logger)
}

// UploadPost は動画アップロード (multipart/form-data) のハンドラ。
// フィールド: title, description, video(ファイル)
func (h *SkillShareHandler) UploadPost(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UploadPost"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		logger.Warn("Failed to parse multipart form", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	title := r.FormValue("title")
	description := r.FormValue("description")

	file, header, err := r.FormFile("video")
	if err != nil {
		logger.Warn("Video file missing in upload", slog.String("error", err.Error()))
		appErr := model.NewAppError("MISSING_FIELDS", "タイトルと動画ファイルは必須です。", "video", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	defer file.Close()

	post, err := h.service.Upload(r.Context(), userID, title, description, header.Filename, file)
	if err != nil {
		logger.Error("Error uploading skill post in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Skill post uploaded successfully", slog.String("post_id", post.PostID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, post, logger)
}

// ToggleLike は投稿への「いいね」をトグルするハンドラ
func (h *SkillShareHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ToggleLike"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	postID, err := uuid.Parse(chi.URLParam(r, "post_id"))
	if err != nil {
		logger.Warn("Invalid post ID in path", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_POST_ID", "投稿IDの形式が正しくありません。", "post_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	result, err := h.service.ToggleLike(r.Context(), userID, postID)
	if err != nil {
		logger.Error("Error toggling like in service", slog.Any("error", err), slog.String("post_id", postID.String()))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Like toggled", slog.String("post_id", postID.String()), slog.Bool("liked", result.Liked))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
