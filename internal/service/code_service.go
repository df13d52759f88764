// internal/service/code_service.go
package service

import (
	"context"
	"time"

	"go_5_goalverse/internal/config"
	"go_5_goalverse/internal/judge0"
	"go_5_goalverse/internal/middleware"
	"go_5_goalverse/internal/model"

	"github.com/google/uuid"
)

// 言語名 → Judge0 language_id の対応。未知の言語はPythonとして実行する
var languageIDs = map[string]int{
	"python":     71,
	"javascript": 63,
	"java":       62,
	"c":          50,
	"cpp":        54,
}

const defaultLanguageID = 71 // python

type CodeService interface {
	Run(ctx context.Context, userID uuid.UUID, req *model.CodeRunRequest) (*model.CodeRunResponse, error)
}

type codeService struct {
	runner  judge0.Runner
	tracker TrackerService
	cfg     config.Judge0Config
}

func NewCodeService(runner judge0.Runner, tracker TrackerService, cfg config.Judge0Config) CodeService {
	return &codeService{
		runner:  runner,
		tracker: tracker,
		cfg:     cfg,
	}
}

// Run はコードをサンドボックスに送信し、完了までポーリングします。
// 規定回数 (デフォルト15回×1秒) で完了しなければ ErrExecTimeout。
func (s *codeService) Run(ctx context.Context, userID uuid.UUID, req *model.CodeRunRequest) (*model.CodeRunResponse, error) {
	logger := middleware.GetLogger(ctx)

	langID, ok := languageIDs[req.Lang]
	if !ok {
		langID = defaultLanguageID
	}

	token, err := s.runner.Submit(ctx, req.Code, langID)
	if err != nil {
		logger.Error("Code submission failed", "error", err, "lang", req.Lang)
		return nil, model.NewAppError("CODE_SUBMIT_FAILED", "コードの送信に失敗しました。時間をおいて再度お試しください。", "", err)
	}

	for i := 0; i < s.cfg.PollAttempts; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.cfg.PollInterval):
		}

		sub, err := s.runner.Result(ctx, token)
		if err != nil {
			// 一時的な取得失敗は次のポーリングに任せる
			logger.Warn("Result poll failed", "error", err, "token", token, "attempt", i+1)
			continue
		}

		if sub.Done() {
			if err := s.tracker.Record(ctx, userID, req.Lang, "code", ""); err != nil {
				logger.Warn("Failed to record learning activity", "error", err, "user_id", userID)
			}
			return &model.CodeRunResponse{
				Output: sub.Stdout,
				Error:  sub.Stderr,
			}, nil
		}
	}

	logger.Warn("Code execution polling exhausted", "token", token, "attempts", s.cfg.PollAttempts)
	return nil, model.NewAppError("EXECUTION_TIMEOUT", "コードの実行がタイムアウトしました。", "", model.ErrExecTimeout)
}
