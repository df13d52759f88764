// internal/youtube/client.go
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go_5_goalverse/internal/config"
	"go_5_goalverse/internal/middleware"
	"go_5_goalverse/internal/model"
)

// Client は YouTube Data API v3 を呼び出すHTTPクライアントです。
// SearchProvider / StatsProvider / CommentsProvider を実装します。
// APIキーとベースURLはコンストラクタで渡された設定から取ります。
type Client struct {
	cfg        config.YouTubeConfig
	httpClient *http.Client
}

func NewClient(cfg config.YouTubeConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{cfg: cfg, httpClient: httpClient}
}

var (
	_ SearchProvider   = (*Client)(nil)
	_ StatsProvider    = (*Client)(nil)
	_ CommentsProvider = (*Client)(nil)
)

// --- APIレスポンスの構造体 (必要なフィールドのみ) ---

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

type videosResponse struct {
	Items []struct {
		Statistics struct {
			ViewCount    string `json:"viewCount"`
			LikeCount    string `json:"likeCount"`
			CommentCount string `json:"commentCount"`
		} `json:"statistics"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type commentThreadsResponse struct {
	Items []struct {
		Snippet struct {
			TopLevelComment struct {
				Snippet struct {
					TextDisplay string `json:"textDisplay"`
					LikeCount   int64  `json:"likeCount"`
				} `json:"snippet"`
			} `json:"topLevelComment"`
		} `json:"snippet"`
	} `json:"items"`
}

func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]SearchItem, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("key", c.cfg.APIKey)

	var res searchResponse
	if err := c.getJSON(ctx, "/search", params, &res); err != nil {
		return nil, fmt.Errorf("youtube.Client.Search: %w", err)
	}

	items := make([]SearchItem, 0, len(res.Items))
	for _, it := range res.Items {
		items = append(items, SearchItem{
			VideoID:   it.ID.VideoID,
			Title:     it.Snippet.Title,
			Channel:   it.Snippet.ChannelTitle,
			Thumbnail: it.Snippet.Thumbnails.Medium.URL,
		})
	}
	return items, nil
}

func (c *Client) VideoStats(ctx context.Context, videoID string) (*VideoStats, error) {
	params := url.Values{}
	params.Set("part", "statistics,contentDetails")
	params.Set("id", videoID)
	params.Set("key", c.cfg.APIKey)

	var res videosResponse
	if err := c.getJSON(ctx, "/videos", params, &res); err != nil {
		return nil, fmt.Errorf("youtube.Client.VideoStats: %w", err)
	}
	if len(res.Items) == 0 {
		return nil, model.ErrNotFound
	}

	item := res.Items[0]
	durationMin, err := ParseISODurationMinutes(item.ContentDetails.Duration)
	if err != nil {
		// 壊れた期間文字列は0分として扱う (候補はゲートで落ちる)
		middleware.GetLogger(ctx).Warn("Failed to parse video duration",
			"video_id", videoID,
			"duration", item.ContentDetails.Duration,
			"error", err,
		)
		durationMin = 0
	}

	return &VideoStats{
		Views:        parseCount(item.Statistics.ViewCount),
		Likes:        parseCount(item.Statistics.LikeCount),
		CommentCount: parseCount(item.Statistics.CommentCount),
		DurationMin:  durationMin,
	}, nil
}

func (c *Client) TopComments(ctx context.Context, videoID string, max int) ([]Comment, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("videoId", videoID)
	params.Set("maxResults", strconv.Itoa(max))
	params.Set("order", "relevance")
	params.Set("textFormat", "plainText")
	params.Set("key", c.cfg.APIKey)

	var res commentThreadsResponse
	if err := c.getJSON(ctx, "/commentThreads", params, &res); err != nil {
		return nil, fmt.Errorf("youtube.Client.TopComments: %w", err)
	}

	comments := make([]Comment, 0, len(res.Items))
	for _, it := range res.Items {
		sn := it.Snippet.TopLevelComment.Snippet
		comments = append(comments, Comment{
			Text:      sn.TextDisplay,
			LikeCount: sn.LikeCount,
		})
	}
	return comments, nil
}

// getJSON は GET リクエストを送り、JSONレスポンスをデコードする共通処理です。
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d from %s", model.ErrUpstream, resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

// parseCount は統計値の文字列を int64 に変換します。欠損・不正値は0。
func parseCount(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
