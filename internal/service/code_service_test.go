// internal/service/code_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_5_goalverse/internal/config"
	"go_5_goalverse/internal/judge0"
	judge0mocks "go_5_goalverse/internal/judge0/mocks"
	"go_5_goalverse/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ポーリング待ちでテストが遅くならないよう間隔を短くする
func testJudge0Config() config.Judge0Config {
	return config.Judge0Config{
		BaseURL:      "http://judge0.test",
		PollAttempts: 3,
		PollInterval: time.Millisecond,
	}
}

func Test_codeService_Run(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("正常系: 実行完了で標準出力を返す", func(t *testing.T) {
		runner := judge0mocks.NewRunner(t)
		tracker := &trackerRecorder{}
		svc := NewCodeService(runner, tracker, testJudge0Config())

		runner.On("Submit", ctx, "print('hi')", 71).Return("tok-1", nil).Once()
		runner.On("Result", ctx, "tok-1").
			Return(&judge0.Submission{StatusID: judge0.StatusAccepted, Stdout: "hi\n"}, nil).Once()

		res, err := svc.Run(ctx, userID, &model.CodeRunRequest{Lang: "python", Code: "print('hi')"})
		require.NoError(t, err)
		assert.Equal(t, "hi\n", res.Output)
		assert.Empty(t, res.Error)

		require.Len(t, tracker.calls, 1)
		assert.Equal(t, "python|code|", tracker.calls[0])
	})

	t.Run("正常系: 未知の言語はPythonとして実行", func(t *testing.T) {
		runner := judge0mocks.NewRunner(t)
		svc := NewCodeService(runner, &trackerRecorder{}, testJudge0Config())

		runner.On("Submit", ctx, mock.Anything, 71).Return("tok-2", nil).Once()
		runner.On("Result", ctx, "tok-2").
			Return(&judge0.Submission{StatusID: judge0.StatusAccepted}, nil).Once()

		_, err := svc.Run(ctx, userID, &model.CodeRunRequest{Lang: "brainfuck", Code: "+"})
		require.NoError(t, err)
	})

	t.Run("正常系: 処理中ステータスはポーリング継続", func(t *testing.T) {
		runner := judge0mocks.NewRunner(t)
		svc := NewCodeService(runner, &trackerRecorder{}, testJudge0Config())

		runner.On("Submit", ctx, mock.Anything, 63).Return("tok-3", nil).Once()
		runner.On("Result", ctx, "tok-3").
			Return(&judge0.Submission{StatusID: 2}, nil).Once() // Processing
		runner.On("Result", ctx, "tok-3").
			Return(&judge0.Submission{StatusID: judge0.StatusAccepted, Stdout: "done"}, nil).Once()

		res, err := svc.Run(ctx, userID, &model.CodeRunRequest{Lang: "javascript", Code: "console.log('done')"})
		require.NoError(t, err)
		assert.Equal(t, "done", res.Output)
	})

	t.Run("正常系: 一時的な取得失敗は次のポーリングで回復", func(t *testing.T) {
		runner := judge0mocks.NewRunner(t)
		svc := NewCodeService(runner, &trackerRecorder{}, testJudge0Config())

		runner.On("Submit", ctx, mock.Anything, 71).Return("tok-4", nil).Once()
		runner.On("Result", ctx, "tok-4").
			Return(nil, errors.New("connection reset")).Once()
		runner.On("Result", ctx, "tok-4").
			Return(&judge0.Submission{StatusID: judge0.StatusWrongAnswer, Stderr: "Traceback"}, nil).Once()

		res, err := svc.Run(ctx, userID, &model.CodeRunRequest{Lang: "python", Code: "1/0"})
		require.NoError(t, err)
		assert.Equal(t, "Traceback", res.Error)
	})

	t.Run("異常系: 送信失敗はCODE_SUBMIT_FAILED", func(t *testing.T) {
		runner := judge0mocks.NewRunner(t)
		svc := NewCodeService(runner, &trackerRecorder{}, testJudge0Config())

		runner.On("Submit", ctx, mock.Anything, 71).
			Return("", errors.New("judge0 unreachable")).Once()

		_, err := svc.Run(ctx, userID, &model.CodeRunRequest{Lang: "python", Code: "print(1)"})
		require.Error(t, err)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "CODE_SUBMIT_FAILED", appErr.Detail.Code)
	})

	t.Run("異常系: 規定回数で完了しなければタイムアウト", func(t *testing.T) {
		runner := judge0mocks.NewRunner(t)
		tracker := &trackerRecorder{}
		svc := NewCodeService(runner, tracker, testJudge0Config())

		runner.On("Submit", ctx, mock.Anything, 71).Return("tok-5", nil).Once()
		runner.On("Result", ctx, "tok-5").
			Return(&judge0.Submission{StatusID: 2}, nil).Times(3)

		_, err := svc.Run(ctx, userID, &model.CodeRunRequest{Lang: "python", Code: "while True: pass"})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrExecTimeout)
		assert.Empty(t, tracker.calls, "未完了の実行はアクティビティに記録しない")
	})

	t.Run("異常系: コンテキストキャンセルで中断", func(t *testing.T) {
		runner := judge0mocks.NewRunner(t)
		svc := NewCodeService(runner, &trackerRecorder{}, testJudge0Config())

		cancelCtx, cancel := context.WithCancel(ctx)
		runner.On("Submit", cancelCtx, mock.Anything, 71).
			Run(func(mock.Arguments) { cancel() }).Return("tok-6", nil).Once()

		_, err := svc.Run(cancelCtx, userID, &model.CodeRunRequest{Lang: "python", Code: "print(1)"})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
