// internal/handlers/code_handler_test.go
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

func TestCodeHandler_RunCode(t *testing.T) {
	testUserID := uuid.New()

	mockCodeService := mocks.NewCodeService(t)
	codeHandler := handlers.NewCodeHandler(mockCodeService, nil)
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Post("/api/v1/code/run", codeHandler.RunCode)

	tests := []struct {
		name           string
		userID         *uuid.UUID
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectedCode   string
		expectedOutput string
	}{
		{
			name:   "正常系: 実行成功",
			userID: &testUserID,
			body:   model.CodeRunRequest{Code: "print('hi')", Lang: "python"},
			setupMock: func() {
				expected := &model.CodeRunRequest{Code: "print('hi')", Lang: "python"}
				mockCodeService.On("Run", mock.AnythingOfType("*context.valueCtx"), testUserID, expected).
					Return(&model.CodeRunResponse{Output: "hi\n"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedOutput: "hi\n",
		},
		{
			name:   "正常系: 言語未指定はpython扱い",
			userID: &testUserID,
			body:   model.CodeRunRequest{Code: "print(1)"},
			setupMock: func() {
				expected := &model.CodeRunRequest{Code: "print(1)", Lang: "python"}
				mockCodeService.On("Run", mock.AnythingOfType("*context.valueCtx"), testUserID, expected).
					Return(&model.CodeRunResponse{Output: "1\n"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedOutput: "1\n",
		},
		{
			name:           "異常系: コードなしはバリデーションエラー",
			userID:         &testUserID,
			body:           model.CodeRunRequest{Lang: "python"},
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: サポート外の言語",
			userID:         &testUserID,
			body:           model.CodeRunRequest{Code: "x", Lang: "cobol"},
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:   "異常系: 実行タイムアウトは504",
			userID: &testUserID,
			body:   model.CodeRunRequest{Code: "while True: pass", Lang: "python"},
			setupMock: func() {
				expected := &model.CodeRunRequest{Code: "while True: pass", Lang: "python"}
				mockCodeService.On("Run", mock.AnythingOfType("*context.valueCtx"), testUserID, expected).
					Return(nil, model.NewAppError("EXECUTION_TIMEOUT", "コードの実行がタイムアウトしました。", "", model.ErrExecTimeout)).Once()
			},
			expectedStatus: http.StatusGatewayTimeout,
			expectedCode:   "EXECUTION_TIMEOUT",
		},
		{
			name:           "異常系: 認証ヘッダーなし",
			userID:         nil,
			body:           model.CodeRunRequest{Code: "print(1)"},
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "POST", "/api/v1/code/run", tc.body, tc.userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp model.CodeRunResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tc.expectedOutput, resp.Output)
			} else if tc.expectedCode != "" {
				verifyErrorCode(t, rr.Body.Bytes(), tc.expectedCode)
			}
			mockCodeService.AssertExpectations(t)
		})
	}
}
