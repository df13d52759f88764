// internal/handlers/video_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_5_goalverse/internal/handlers"
	"go_5_goalverse/internal/middleware"
	"go_5_goalverse/internal/model"
	"go_5_goalverse/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestVideoHandler_SearchVideos(t *testing.T) {
	testUserID := uuid.New()

	mockSearchService := mocks.NewSearchService(t)
	videoHandler := handlers.NewVideoHandler(mockSearchService, nil)
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Get("/api/v1/videos/search", videoHandler.SearchVideos)

	sampleResults := []model.VideoResult{
		{ID: "v1", Title: "Recursion Explained", Score: 72.5},
		{ID: "v2", Title: "Recursion Basics", Score: 55.0},
	}

	tests := []struct {
		name           string
		userID         *uuid.UUID
		url            string
		setupMock      func()
		expectedStatus int
		expectedCount  int
	}{
		{
			name:   "正常系: 検索結果を返す",
			userID: &testUserID,
			url:    "/api/v1/videos/search?q=recursion&level=basic",
			setupMock: func() {
				mockSearchService.On("SearchVideos", mock.AnythingOfType("*context.valueCtx"), testUserID, "recursion", "basic").
					Return(sampleResults, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:   "正常系: level未指定はmediumにフォールバック",
			userID: &testUserID,
			url:    "/api/v1/videos/search?q=recursion",
			setupMock: func() {
				mockSearchService.On("SearchVideos", mock.AnythingOfType("*context.valueCtx"), testUserID, "recursion", "medium").
					Return(sampleResults, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:   "正常系: トピック空は空リスト",
			userID: &testUserID,
			url:    "/api/v1/videos/search",
			setupMock: func() {
				mockSearchService.On("SearchVideos", mock.AnythingOfType("*context.valueCtx"), testUserID, "", "medium").
					Return([]model.VideoResult{}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "異常系: 認証ヘッダーなし",
			userID:         nil,
			url:            "/api/v1/videos/search?q=recursion",
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "GET", tc.url, nil, tc.userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var results []model.VideoResult
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &results))
				assert.Len(t, results, tc.expectedCount)
			}
			mockSearchService.AssertExpectations(t)
		})
	}
}

func TestVideoHandler_GetPlaylists(t *testing.T) {
	testUserID := uuid.New()

	mockSearchService := mocks.NewSearchService(t)
	videoHandler := handlers.NewVideoHandler(mockSearchService, nil)
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Get("/api/v1/videos/playlists", videoHandler.GetPlaylists)

	items := []*model.PlaylistItem{
		{ItemID: uuid.New(), UserID: testUserID, Topic: "recursion", Title: "Recursion Explained"},
	}

	tests := []struct {
		name           string
		userID         *uuid.UUID
		url            string
		setupMock      func()
		expectedStatus int
	}{
		{
			name:   "正常系: limit未指定はデフォルト20件",
			userID: &testUserID,
			url:    "/api/v1/videos/playlists",
			setupMock: func() {
				mockSearchService.On("RecentPlaylists", mock.AnythingOfType("*context.valueCtx"), testUserID, 20).
					Return(items, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "正常系: limit指定",
			userID: &testUserID,
			url:    "/api/v1/videos/playlists?limit=5",
			setupMock: func() {
				mockSearchService.On("RecentPlaylists", mock.AnythingOfType("*context.valueCtx"), testUserID, 5).
					Return(items, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "正常系: 上限超過のlimitはデフォルトに戻す",
			userID: &testUserID,
			url:    "/api/v1/videos/playlists?limit=500",
			setupMock: func() {
				mockSearchService.On("RecentPlaylists", mock.AnythingOfType("*context.valueCtx"), testUserID, 20).
					Return(items, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: 認証ヘッダーなし",
			userID:         nil,
			url:            "/api/v1/videos/playlists",
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "GET", tc.url, nil, tc.userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			mockSearchService.AssertExpectations(t)
		})
	}
}
