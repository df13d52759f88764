// internal/service/docs_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go_5_goalverse/internal/gemini"
	"go_5_goalverse/internal/middleware"
	"go_5_goalverse/internal/model"
	"go_5_goalverse/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocsService interface {
	Generate(ctx context.Context, userID uuid.UUID, req *model.GenerateDocsRequest) (*model.GenerateDocsResponse, error)
	RecentDocs(ctx context.Context, userID uuid.UUID, limit int) ([]*model.Documentation, error)
}

type docsService struct {
	db        *gorm.DB
	docRepo   repository.DocumentationRepository
	generator gemini.Generator
	tracker   TrackerService
}

func NewDocsService(db *gorm.DB, docRepo repository.DocumentationRepository, generator gemini.Generator, tracker TrackerService) DocsService {
	return &docsService{
		db:        db,
		docRepo:   docRepo,
		generator: generator,
		tracker:   tracker,
	}
}

// Generate はトピックの学習ドキュメント(Markdown)を生成して保存します。
// 生成プロバイダの出力が本体なので、失敗は呼び出し元へそのまま返す。
func (s *docsService) Generate(ctx context.Context, userID uuid.UUID, req *model.GenerateDocsRequest) (*model.GenerateDocsResponse, error) {
	logger := middleware.GetLogger(ctx)

	prompt := fmt.Sprintf("Write a concise learning document for %q in Markdown.\nInclude: definition, key points, one code example, common pitfalls. Under 800 words.", req.Topic)

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		logger.Error("Document generation failed", "error", err, "topic", req.Topic)
		return nil, model.NewAppError("DOC_GENERATION_FAILED", "ドキュメントの生成に失敗しました。時間をおいて再度お試しください。", "", err)
	}
	markdown := strings.TrimSpace(text)

	doc := &model.Documentation{
		DocID:       uuid.New(),
		UserID:      userID,
		Topic:       req.Topic,
		Markdown:    markdown,
		GeneratedAt: time.Now(),
	}
	if err := s.docRepo.Create(ctx, s.db, doc); err != nil {
		logger.Error("Failed to persist documentation", "error", err, "user_id", userID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ドキュメントの保存に失敗しました。", "", err)
	}

	if err := s.tracker.Record(ctx, userID, req.Topic, "docs", ""); err != nil {
		logger.Warn("Failed to record learning activity", "error", err, "user_id", userID)
	}

	logger.Info("Documentation generated", "user_id", userID, "topic", req.Topic)
	return &model.GenerateDocsResponse{Markdown: markdown}, nil
}

func (s *docsService) RecentDocs(ctx context.Context, userID uuid.UUID, limit int) ([]*model.Documentation, error) {
	docs, err := s.docRepo.FindRecentByUser(ctx, s.db, userID, limit)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list documentations", "error", err, "user_id", userID)
		return nil, model.ErrInternalServer
	}
	return docs, nil
}
