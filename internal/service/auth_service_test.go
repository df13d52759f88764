// internal/service/auth_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_5_goalverse/internal/config"
	"go_5_goalverse/internal/model"
	repomocks "go_5_goalverse/internal/repository/mocks"
	servicemocks "go_5_goalverse/internal/service/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAuthServiceForTest(t *testing.T) (AuthService, *repomocks.UserRepository, *servicemocks.Mailer) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	userRepo := new(repomocks.UserRepository)
	mailer := new(servicemocks.Mailer)
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key"
	cfg.JWT.AccessTokenTTL = time.Hour
	return NewAuthService(db, userRepo, mailer, cfg), userRepo, mailer
}

func Test_authService_Signup(t *testing.T) {
	ctx := context.Background()
	req := &model.SignupRequest{Name: "testuser", Email: "test@example.com", Password: "password123"}

	t.Run("正常系: 登録成功でハッシュ化済みパスワードが保存される", func(t *testing.T) {
		svc, userRepo, mailer := newAuthServiceForTest(t)

		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), req.Email).
			Return(nil, model.ErrNotFound).Once()

		var created *model.User
		userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
			Run(func(args mock.Arguments) {
				created = args.Get(2).(*model.User)
			}).Return(nil).Once()

		mailer.On("Send", ctx, req.Email, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
			Return(nil).Once()

		user, err := svc.Signup(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.Email, user.Email)
		assert.Equal(t, req.Name, user.Name)
		assert.NotEqual(t, uuid.Nil, user.UserID)

		require.NotNil(t, created)
		assert.NotEqual(t, req.Password, created.PasswordHash, "平文パスワードは保存しない")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte(req.Password)))

		userRepo.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("正常系: ウェルカムメール失敗でも登録は成功", func(t *testing.T) {
		svc, userRepo, mailer := newAuthServiceForTest(t)

		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), req.Email).
			Return(nil, model.ErrNotFound).Once()
		userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
			Return(nil).Once()
		mailer.On("Send", ctx, req.Email, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
			Return(errors.New("smtp unreachable")).Once()

		_, err := svc.Signup(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("異常系: メールアドレス重複", func(t *testing.T) {
		svc, userRepo, _ := newAuthServiceForTest(t)

		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), req.Email).
			Return(&model.User{UserID: uuid.New(), Email: req.Email}, nil).Once()

		_, err := svc.Signup(ctx, req)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "DUPLICATE_EMAIL", appErr.Detail.Code)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: Create時の競合 (レースコンディション) も重複扱い", func(t *testing.T) {
		svc, userRepo, _ := newAuthServiceForTest(t)

		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), req.Email).
			Return(nil, model.ErrNotFound).Once()
		userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
			Return(model.ErrConflict).Once()

		_, err := svc.Signup(ctx, req)
		require.Error(t, err)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "DUPLICATE_EMAIL", appErr.Detail.Code)
	})
}

func Test_authService_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	password := "password123"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	storedUser := &model.User{UserID: userID, Email: "test@example.com", PasswordHash: string(hash)}

	t.Run("正常系: ログイン成功でJWTが発行される", func(t *testing.T) {
		svc, userRepo, _ := newAuthServiceForTest(t)

		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), storedUser.Email).
			Return(storedUser, nil).Once()

		res, err := svc.Login(ctx, &model.LoginRequest{Email: storedUser.Email, Password: password})
		require.NoError(t, err)
		require.NotEmpty(t, res.AccessToken)

		// 発行されたトークンの中身を検証
		claims := &model.JWTCustomClaims{}
		token, err := jwt.ParseWithClaims(res.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
			return []byte("test-secret-key"), nil
		})
		require.NoError(t, err)
		assert.True(t, token.Valid)
		assert.Equal(t, userID.String(), claims.Subject)
		assert.Equal(t, config.AppName, claims.Issuer)
	})

	t.Run("異常系: パスワード不一致", func(t *testing.T) {
		svc, userRepo, _ := newAuthServiceForTest(t)

		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), storedUser.Email).
			Return(storedUser, nil).Once()

		_, err := svc.Login(ctx, &model.LoginRequest{Email: storedUser.Email, Password: "wrong-password"})
		require.Error(t, err)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_CREDENTIALS", appErr.Detail.Code)
	})

	t.Run("異常系: 未登録メールも同じエラーコード (存在有無を漏らさない)", func(t *testing.T) {
		svc, userRepo, _ := newAuthServiceForTest(t)

		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "unknown@example.com").
			Return(nil, model.ErrNotFound).Once()

		_, err := svc.Login(ctx, &model.LoginRequest{Email: "unknown@example.com", Password: password})
		require.Error(t, err)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_CREDENTIALS", appErr.Detail.Code)
	})
}

func Test_authService_GetUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("正常系", func(t *testing.T) {
		svc, userRepo, _ := newAuthServiceForTest(t)
		userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(&model.User{UserID: userID, Name: "testuser"}, nil).Once()

		user, err := svc.GetUser(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "testuser", user.Name)
	})

	t.Run("異常系: 存在しないユーザー", func(t *testing.T) {
		svc, userRepo, _ := newAuthServiceForTest(t)
		userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(nil, model.ErrNotFound).Once()

		_, err := svc.GetUser(ctx, userID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
