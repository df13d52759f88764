// internal/judge0/client.go
package judge0

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"go_5_goalverse/internal/config"
	"go_5_goalverse/internal/model"
)

// 実行ステータスID (Judge0 の status.id)
const (
	StatusAccepted    = 3
	StatusWrongAnswer = 4
)

//go:generate mockery --name Runner --output ./mocks --outpkg mocks --case=underscore

// Runner はコード実行サンドボックスのインターフェースです。
type Runner interface {
	// Submit はソースコードを送信し、結果取得用のトークンを返します。
	Submit(ctx context.Context, sourceCode string, languageID int) (string, error)
	// Result はトークンに対応する実行結果を返します。
	Result(ctx context.Context, token string) (*Submission, error)
}

// Submission は実行結果です。Stdout/Stderr はデコード済みです。
type Submission struct {
	StatusID int
	Stdout   string
	Stderr   string
}

// Done は実行が完了状態 (成功または出力不一致) かどうかを返します。
func (s *Submission) Done() bool {
	return s.StatusID == StatusAccepted || s.StatusID == StatusWrongAnswer
}

// Client は Judge0 submissions API のHTTPクライアントです。
type Client struct {
	cfg        config.Judge0Config
	httpClient *http.Client
}

func NewClient(cfg config.Judge0Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{cfg: cfg, httpClient: httpClient}
}

var _ Runner = (*Client)(nil)

type submitRequest struct {
	SourceCode string `json:"source_code"`
	LanguageID int    `json:"language_id"`
	Stdin      string `json:"stdin"`
}

type submitResponse struct {
	Token string `json:"token"`
}

type resultResponse struct {
	Status struct {
		ID int `json:"id"`
	} `json:"status"`
	Stdout *string `json:"stdout"`
	Stderr *string `json:"stderr"`
}

func (c *Client) Submit(ctx context.Context, sourceCode string, languageID int) (string, error) {
	payload, err := json.Marshal(submitRequest{
		SourceCode: base64.StdEncoding.EncodeToString([]byte(sourceCode)),
		LanguageID: languageID,
	})
	if err != nil {
		return "", fmt.Errorf("judge0.Client.Submit: %w", err)
	}

	endpoint := c.cfg.BaseURL + "/submissions?base64_encoded=true&fields=*"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("judge0.Client.Submit: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: judge0 submit failed: %v", model.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: judge0 submit returned status %d", model.ErrUpstream, resp.StatusCode)
	}

	var sr submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return "", fmt.Errorf("%w: failed to decode judge0 submit response: %v", model.ErrUpstream, err)
	}
	if sr.Token == "" {
		return "", fmt.Errorf("%w: judge0 returned empty token", model.ErrUpstream)
	}
	return sr.Token, nil
}

func (c *Client) Result(ctx context.Context, token string) (*Submission, error) {
	endpoint := c.cfg.BaseURL + "/submissions/" + token + "?base64_encoded=true&fields=*"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("judge0.Client.Result: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: judge0 result poll failed: %v", model.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: judge0 result returned status %d", model.ErrUpstream, resp.StatusCode)
	}

	var rr resultResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return nil, fmt.Errorf("%w: failed to decode judge0 result response: %v", model.ErrUpstream, err)
	}

	return &Submission{
		StatusID: rr.Status.ID,
		Stdout:   decodeBase64(rr.Stdout),
		Stderr:   decodeBase64(rr.Stderr),
	}, nil
}

func decodeBase64(s *string) string {
	if s == nil || *s == "" {
		return ""
	}
	decoded, err := base64.StdEncoding.DecodeString(*s)
	if err != nil {
		// デコード不能な出力はそのまま返す
		return *s
	}
	return string(decoded)
}
