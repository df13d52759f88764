// internal/model/documentation.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Documentation は生成された学習ドキュメントです。生成後は不変。
type Documentation struct {
	DocID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"doc_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Topic       string    `gorm:"not null" json:"topic"`
	Markdown    string    `gorm:"type:text;not null" json:"markdown"`
	GeneratedAt time.Time `gorm:"not null" json:"generated_at"`
}

func (Documentation) TableName() string {
	return "documentations"
}

// GenerateDocsRequest はドキュメント生成リクエストDTO
type GenerateDocsRequest struct {
	Topic string `json:"topic" validate:"required,min=1,max=200"`
}

// GenerateDocsResponse は生成結果のレスポンスDTO
type GenerateDocsResponse struct {
	Markdown string `json:"markdown"`
}
