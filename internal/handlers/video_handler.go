// internal/handlers/video_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"go_5_goalverse/internal/middleware"
	"go_5_goalverse/internal/model"
	"go_5_goalverse/internal/service"
	"go_5_goalverse/internal/webutil"
)

const defaultPlaylistLimit = 20

type VideoHandler struct {
	service service.SearchService
	logger  *slog.Logger
}

func NewVideoHandler(s service.SearchService, logger *slog.Logger) *VideoHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &VideoHandler{
		service: s,
		logger:  logger,
	}
}

// SearchVideos は動画検索パイプラインを実行するハンドラ。
// クエリパラメータ: q (トピック), level (basic / medium / hard)
func (h *VideoHandler) SearchVideos(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SearchVideos"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	topic := r.URL.Query().Get("q")
	level := r.URL.Query().Get("level")
	if level == "" {
		level = "medium"
	}

	results, err := h.service.SearchVideos(r.Context(), userID, topic, level)
	if err != nil {
		logger.Error("Error searching videos in service", slog.Any("error", err), slog.String("topic", topic))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Video search completed", slog.String("topic", topic), slog.Int("results", len(results)))
	webutil.RespondWithJSON(w, http.StatusOK, results, logger)
}

// GetPlaylists は保存済みプレイリストを新しい順に返すハンドラ
func (h *VideoHandler) GetPlaylists(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetPlaylists"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	limit := defaultPlaylistLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	items, err := h.service.RecentPlaylists(r.Context(), userID, limit)
	if err != nil {
		logger.Error("Error listing playlists in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, items, logger)
}
