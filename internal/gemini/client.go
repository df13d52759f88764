// internal/gemini/client.go
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go_5_goalverse/internal/config"
	"go_5_goalverse/internal/model"
)

//go:generate mockery --name Generator --output ./mocks --outpkg mocks --case=underscore

// Generator はテキスト生成プロバイダのインターフェースです。
type Generator interface {
	// GenerateText は自由形式のテキスト(Markdown等)を生成します。
	GenerateText(ctx context.Context, prompt string) (string, error)
	// GenerateJSON はスキーマ制約付きの構造化JSONを生成し、dst にデコードします。
	GenerateJSON(ctx context.Context, prompt string, schema map[string]interface{}, dst interface{}) error
}

// Client は Gemini generateContent REST API のHTTPクライアントです。
type Client struct {
	cfg        config.GeminiConfig
	httpClient *http.Client
}

func NewClient(cfg config.GeminiConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{cfg: cfg, httpClient: httpClient}
}

var _ Generator = (*Client)(nil)

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string                 `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]interface{} `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, prompt, nil)
}

func (c *Client) GenerateJSON(ctx context.Context, prompt string, schema map[string]interface{}, dst interface{}) error {
	text, err := c.generate(ctx, prompt, &generationConfig{
		ResponseMimeType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), dst); err != nil {
		// スキーマ制約下でもパースに失敗したら上流エラーとして扱う
		return fmt.Errorf("%w: failed to parse structured response: %v", model.ErrUpstream, err)
	}
	return nil
}

func (c *Client) generate(ctx context.Context, prompt string, genCfg *generationConfig) (string, error) {
	reqBody := generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: genCfg,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("gemini.Client.generate: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("gemini.Client.generate: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: gemini call failed: %v", model.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: gemini returned status %d", model.ErrUpstream, resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("%w: failed to decode gemini response: %v", model.ErrUpstream, err)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: gemini returned no candidates", model.ErrUpstream)
	}
	return genResp.Candidates[0].Content.Parts[0].Text, nil
}
