// internal/handlers/docs_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_goalverse/internal/middleware"
	"go_5_goalverse/internal/model"
	"go_5_goalverse/internal/service"
	"go_5_goalverse/internal/webutil"

	"github.com/go-playground/validator/v10"
)

const defaultDocsLimit = 20

type DocsHandler struct {
	service service.DocsService
	logger  *slog.Logger
}

func NewDocsHandler(s service.DocsService, logger *slog.Logger) *DocsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocsHandler{
		service: s,
		logger:  logger,
	}
}

// GenerateDocs は学習ドキュメント生成のハンドラ
func (h *DocsHandler) GenerateDocs(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GenerateDocs"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.GenerateDocsRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))

			firstErr := validationErrors[0]
			translatedMsg := firstErr.Translate(webutil.Trans)
			appErr := model.NewAppError("VALIDATION_ERROR", translatedMsg, firstErr.Field(), model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	resp, err := h.service.Generate(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error generating docs in service", slog.Any("error", err), slog.String("topic", req.Topic))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Docs generated successfully", slog.String("topic", req.Topic))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetDocs は生成済みドキュメントを新しい順に返すハンドラ
func (h *DocsHandler) GetDocs(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDocs"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	docs, err := h.service.RecentDocs(r.Context(), userID, defaultDocsLimit)
	if err != nil {
		logger.Error("Error listing docs in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, docs, logger)
}
