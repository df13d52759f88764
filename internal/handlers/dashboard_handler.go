// internal/handlers/dashboard_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_goalverse/internal/middleware"
	"go_5_goalverse/internal/model"
	"go_5_goalverse/internal/service"
	"go_5_goalverse/internal/webutil"
)

type DashboardHandler struct {
	service service.DashboardService
	logger  *slog.Logger
}

func NewDashboardHandler(s service.DashboardService, logger *slog.Logger) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardHandler{
		service: s,
		logger:  logger,
	}
}

// GetDashboard はダッシュボード集約情報を返すハンドラ
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDashboard"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	dashboard, err := h.service.GetDashboard(r.Context(), userID)
	if err != nil {
		logger.Error("Error getting dashboard in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, dashboard, logger)
}
