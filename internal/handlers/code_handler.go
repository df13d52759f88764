// internal/handlers/code_handler.go
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

type CodeHandler struct {
	service service.CodeService
	logger  *slog.Logger
}

func NewCodeHandler(s service.CodeService, logger *slog.Logger) *CodeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CodeHandler{
		service: s,
		logger:  logger,
	}
}

// RunCode はコード実行のハンドラ。
// サンドボックスのポーリングが完了するまでブロックする。
func (h *CodeHandler) RunCode(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RunCode"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.CodeRunRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if req.Lang == "" {
		req.Lang = "python"
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

	result, err := h.service.Run(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error running code in service", slog.Any("error", err), slog.String("lang", req.Lang))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Code executed", slog.String("lang", req.Lang))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
