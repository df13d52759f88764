// internal/service/quiz_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"go_5_goalverse/internal/gemini"
	"go_5_goalverse/internal/middleware"
	"go_5_goalverse/internal/model"

	"github.com/google/uuid"
)

const defaultQuizQuestions = 5

// quizSchema は生成側に強制する構造化出力スキーマです。
// 選択肢は "A: ..." の形式で4つ、correct は正解の文字。
var quizSchema = map[string]interface{}{
	"type":        "array",
	"description": "An array of multiple-choice questions.",
	"items": map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"question": map[string]interface{}{
				"type":        "string",
				"description": "The quiz question.",
			},
			"options": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type":        "string",
					"description": "A single option, starting with its letter (e.g., 'A: ...').",
				},
			},
			"correct": map[string]interface{}{
				"type":        "string",
				"description": "The letter corresponding to the correct option (e.g., 'A', 'B', 'C', or 'D').",
			},
		},
		"required": []string{"question", "options", "correct"},
	},
}

type QuizService interface {
	Generate(ctx context.Context, userID uuid.UUID, req *model.GenerateQuizRequest) (*model.Quiz, error)
	Submit(ctx context.Context, userID uuid.UUID, req *model.SubmitQuizRequest) (*model.SubmitQuizResponse, error)
}

type quizService struct {
	generator gemini.Generator
	store     QuizStore
	tracker   TrackerService
}

func NewQuizService(generator gemini.Generator, store QuizStore, tracker TrackerService) QuizService {
	return &quizService{
		generator: generator,
		store:     store,
		tracker:   tracker,
	}
}

// Generate はN問の多肢選択クイズを生成し、採点に備えてストアに保存します。
// プロバイダ失敗・パース失敗は呼び出し元にエラーとして返す (空クイズへの
// フォールバックはしない)。
func (s *quizService) Generate(ctx context.Context, userID uuid.UUID, req *model.GenerateQuizRequest) (*model.Quiz, error) {
	logger := middleware.GetLogger(ctx)

	num := req.Num
	if num <= 0 {
		num = defaultQuizQuestions
	}

	prompt := fmt.Sprintf("Generate %d multiple-choice questions on the topic: '%s'.", num, req.Topic)

	var questions []model.QuizQuestion
	if err := s.generator.GenerateJSON(ctx, prompt, quizSchema, &questions); err != nil {
		logger.Error("Quiz generation failed", "error", err, "topic", req.Topic)
		return nil, model.NewAppError("QUIZ_GENERATION_FAILED", "クイズの生成に失敗しました。時間をおいて再度お試しください。", "", err)
	}

	quiz := &model.Quiz{
		Topic:     req.Topic,
		Questions: questions,
	}

	if err := s.store.Put(ctx, userID, quiz); err != nil {
		logger.Error("Failed to store pending quiz", "error", err, "user_id", userID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "クイズの保存に失敗しました。", "", err)
	}

	logger.Info("Quiz generated", "user_id", userID, "topic", req.Topic, "questions", len(questions))
	return quiz, nil
}

// Submit は保留中のクイズと回答を突き合わせて採点します。
// 保留クイズが無い(期限切れ含む)場合は total=0 で返します。
// スコアに関わらず学習アクティビティは記録される。
func (s *quizService) Submit(ctx context.Context, userID uuid.UUID, req *model.SubmitQuizRequest) (*model.SubmitQuizResponse, error) {
	logger := middleware.GetLogger(ctx)

	quiz, err := s.store.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to load pending quiz", "error", err, "user_id", userID)
			return nil, model.ErrInternalServer
		}
		quiz = &model.Quiz{}
	}

	score := 0
	for _, q := range quiz.Questions {
		if req.Answers[q.Question] == q.Correct {
			score++
		}
	}

	if err := s.tracker.Record(ctx, userID, quiz.Topic, "quiz", ""); err != nil {
		logger.Warn("Failed to record learning activity", "error", err, "user_id", userID)
	}

	return &model.SubmitQuizResponse{
		Score: score,
		Total: len(quiz.Questions),
	}, nil
}
