// internal/handlers/auth_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_5_goalverse/internal/handlers"
	"go_5_goalverse/internal/model"
	"go_5_goalverse/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthHandler_Signup(t *testing.T) {
	mockAuthService := mocks.NewAuthService(t)
	authHandler := handlers.NewAuthHandler(mockAuthService, nil)
	router := chi.NewRouter()
	router.Post("/api/v1/auth/signup", authHandler.Signup)

	validReqBody := model.SignupRequest{Name: "testuser", Email: "test@example.com", Password: "password123"}
	createdUser := &model.User{
		UserID: uuid.New(),
		Name:   validReqBody.Name,
		Email:  validReqBody.Email,
		Streak: 0,
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: 登録成功",
			body: validReqBody,
			setupMock: func() {
				mockAuthService.On("Signup", mock.Anything, &validReqBody).
					Return(createdUser, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: メールアドレス形式不正",
			body:           model.SignupRequest{Name: "testuser", Email: "not-an-email", Password: "password123"},
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: パスワードが短い",
			body:           model.SignupRequest{Name: "testuser", Email: "test@example.com", Password: "short"},
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: 不正なJSON",
			body:           `{"name": "bad json`,
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name: "異常系: メールアドレス重複は409",
			body: validReqBody,
			setupMock: func() {
				mockAuthService.On("Signup", mock.Anything, &validReqBody).
					Return(nil, model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "DUPLICATE_EMAIL",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "POST", "/api/v1/auth/signup", tc.body, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusCreated {
				var resp model.UserResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, createdUser.UserID, resp.UserID)
				assert.Equal(t, createdUser.Email, resp.Email)
				// パスワードハッシュはレスポンスに含まれない
				assert.NotContains(t, rr.Body.String(), "password")
			} else if tc.expectedCode != "" {
				verifyErrorCode(t, rr.Body.Bytes(), tc.expectedCode)
			}
			mockAuthService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	mockAuthService := mocks.NewAuthService(t)
	authHandler := handlers.NewAuthHandler(mockAuthService, nil)
	router := chi.NewRouter()
	router.Post("/api/v1/auth/login", authHandler.Login)

	validReqBody := model.LoginRequest{Email: "test@example.com", Password: "password123"}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: ログイン成功でトークンを返す",
			body: validReqBody,
			setupMock: func() {
				mockAuthService.On("Login", mock.Anything, &validReqBody).
					Return(&model.LoginResponse{AccessToken: "header.payload.signature"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "異常系: 認証情報不一致は400",
			body: validReqBody,
			setupMock: func() {
				mockAuthService.On("Login", mock.Anything, &validReqBody).
					Return(nil, model.NewAppError("INVALID_CREDENTIALS", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrInvalidInput)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_CREDENTIALS",
		},
		{
			name:           "異常系: パスワードなし",
			body:           model.LoginRequest{Email: "test@example.com"},
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "POST", "/api/v1/auth/login", tc.body, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp model.LoginResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.AccessToken)
			} else if tc.expectedCode != "" {
				verifyErrorCode(t, rr.Body.Bytes(), tc.expectedCode)
			}
			mockAuthService.AssertExpectations(t)
		})
	}
}
