// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"log"
	"net/http"

	"go_5_goalverse/internal/model"
	"go_5_goalverse/internal/webutil"

	"github.com/google/uuid"
)

// DevUserContextMiddleware は開発・テスト用ミドルウェアです。
// X-User-ID ヘッダーからUUIDを抽出し、JWT検証なしでコンテキストに設定します。
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			log.Println("[DEV AUTH] Failed: X-User-ID header missing")
			webutil.RespondWithJSON(w, http.StatusUnauthorized, model.APIErrorResponse{
				Error: model.ErrorDetail{Code: "UNAUTHORIZED", Message: "[DEV] Missing X-User-ID header"},
			}, nil)
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			log.Printf("[DEV AUTH] Failed: Invalid X-User-ID format: %s", userIDStr)
			webutil.RespondWithJSON(w, http.StatusUnauthorized, model.APIErrorResponse{
				Error: model.ErrorDetail{Code: "UNAUTHORIZED", Message: "[DEV] Invalid X-User-ID format"},
			}, nil)
			return
		}

		// DB検証はスキップ
		ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
