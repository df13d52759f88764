// internal/youtube/transcript.go
package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go_5_goalverse/internal/config"
)

// TimedTextClient は YouTube の timedtext エンドポイントから字幕を取得する
// TranscriptProvider 実装です。字幕が無効な動画には空のボディが返るため、
// それを ErrTranscriptUnavailable に変換します。
type TimedTextClient struct {
	cfg        config.YouTubeConfig
	httpClient *http.Client
}

func NewTimedTextClient(cfg config.YouTubeConfig, httpClient *http.Client) *TimedTextClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &TimedTextClient{cfg: cfg, httpClient: httpClient}
}

var _ TranscriptProvider = (*TimedTextClient)(nil)

type timedTextResponse struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Body string `xml:",chardata"`
	} `xml:"text"`
}

func (c *TimedTextClient) Transcript(ctx context.Context, videoID string) (string, error) {
	params := url.Values{}
	params.Set("v", videoID)
	params.Set("lang", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.TimedTextURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("youtube.TimedTextClient.Transcript: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("youtube.TimedTextClient.Transcript: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrTranscriptUnavailable
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("youtube.TimedTextClient.Transcript: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("youtube.TimedTextClient.Transcript: %w", err)
	}
	// 字幕が無効な動画では 200 + 空ボディが返る
	if len(strings.TrimSpace(string(body))) == 0 {
		return "", ErrTranscriptUnavailable
	}

	var tt timedTextResponse
	if err := xml.Unmarshal(body, &tt); err != nil {
		return "", fmt.Errorf("youtube.TimedTextClient.Transcript: %w", err)
	}
	if len(tt.Texts) == 0 {
		return "", ErrTranscriptUnavailable
	}

	parts := make([]string, 0, len(tt.Texts))
	for _, t := range tt.Texts {
		parts = append(parts, t.Body)
	}
	return strings.Join(parts, " "), nil
}
