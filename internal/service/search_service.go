// internal/service/search_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"go_5_goalverse/internal/config"
	"go_5_goalverse/internal/middleware"
	"go_5_goalverse/internal/model"
	"go_5_goalverse/internal/repository"
	"go_5_goalverse/internal/youtube"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// 教育的価値の低いコンテンツを示すタイトル語 (小文字で比較)
var blacklistWords = []string{
	"strategy", "motivational", "tips", "hack", "vlog", "challenge", "story", "reaction",
}

var baseKeywords = []string{
	"tutorial", "course", "lesson", "study", "explained", "step-by-step", "project",
}

var levelKeywords = map[string][]string{
	"basic":  {"beginner", "intro", "basics", "starter", "easy"},
	"medium": {"intermediate", "example", "practice", "implementation", "real-world"},
	"hard":   {"advanced", "expert", "in-depth", "masterclass", "complete guide"},
}

// 候補ごとのシグナル収集を並列実行する際の上限
const maxCollectorConcurrency = 8

const maxPositiveComments = 3

type SearchService interface {
	SearchVideos(ctx context.Context, userID uuid.UUID, topic, difficulty string) ([]model.VideoResult, error)
	RecentPlaylists(ctx context.Context, userID uuid.UUID, limit int) ([]*model.PlaylistItem, error)
}

type searchService struct {
	db           *gorm.DB
	playlistRepo repository.PlaylistRepository
	tracker      TrackerService
	search       youtube.SearchProvider
	stats        youtube.StatsProvider
	comments     youtube.CommentsProvider
	transcripts  youtube.TranscriptProvider
	ranking      config.RankingConfig
}

func NewSearchService(
	db *gorm.DB,
	playlistRepo repository.PlaylistRepository,
	tracker TrackerService,
	search youtube.SearchProvider,
	stats youtube.StatsProvider,
	comments youtube.CommentsProvider,
	transcripts youtube.TranscriptProvider,
	ranking config.RankingConfig,
) SearchService {
	return &searchService{
		db:           db,
		playlistRepo: playlistRepo,
		tracker:      tracker,
		search:       search,
		stats:        stats,
		comments:     comments,
		transcripts:  transcripts,
		ranking:      ranking,
	}
}

// BuildQuery はトピックに基本キーワードと難易度別キーワードを連結した
// 検索クエリを組み立てます。未知の難易度は追加キーワードなし。
func BuildQuery(topic, difficulty string) string {
	keywords := make([]string, 0, len(baseKeywords)+5)
	keywords = append(keywords, baseKeywords...)
	keywords = append(keywords, levelKeywords[difficulty]...)
	return topic + " " + strings.Join(keywords, " ")
}

// SearchVideos はランキングパイプライン本体です。
// 検索 → 候補ごとの除外判定とシグナル収集 → 採点 → 永続化(best-effort) →
// スコア降順ソート、の順で進みます。候補単位の失敗はバッチを中断しません。
func (s *searchService) SearchVideos(ctx context.Context, userID uuid.UUID, topic, difficulty string) ([]model.VideoResult, error) {
	logger := middleware.GetLogger(ctx)

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return []model.VideoResult{}, nil
	}

	query := BuildQuery(topic, difficulty)
	candidates, err := s.search.Search(ctx, query, s.ranking.MaxResults)
	if err != nil {
		// 検索自体の失敗は空リストで返す (ログのみ)
		logger.Error("Search provider failed", "error", err, "query", query)
		return []model.VideoResult{}, nil
	}

	// 重複IDとブラックリストの除外はプロバイダの返却順で逐次判定する
	unique := make([]youtube.SearchItem, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if c.VideoID == "" {
			continue
		}
		if _, ok := seen[c.VideoID]; ok {
			continue
		}
		seen[c.VideoID] = struct{}{}

		if containsBlacklistedWord(c.Title) {
			logger.Debug("Candidate excluded by blacklist", "video_id", c.VideoID, "title", c.Title)
			continue
		}
		unique = append(unique, c)
	}

	// 候補ごとのシグナル収集は相互に独立なので並列化する。
	// slots をプロバイダ順に埋めることで、スコアが同点のときの
	// 安定ソートが完了順に依存しないようにする。
	slots := make([]*model.VideoResult, len(unique))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxCollectorConcurrency)

	for i, c := range unique {
		i, c := i, c
		g.Go(func() error {
			slots[i] = s.collectCandidate(gctx, userID, topic, difficulty, c)
			return nil // 候補単位の失敗は伝播させない
		})
	}
	// ワーカーはerrorを返さないためWaitのerrは常にnil
	_ = g.Wait()

	results := make([]model.VideoResult, 0, len(unique))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	// 学習アクティビティの記録もbest-effort
	if err := s.tracker.Record(ctx, userID, topic, "video", difficulty); err != nil {
		logger.Warn("Failed to record learning activity", "error", err, "user_id", userID)
	}

	return results, nil
}

// collectCandidate は候補1件の統計取得・ゲート判定・シグナル収集・採点・
// 永続化を行います。除外された場合は nil を返します。
// コレクター個別の失敗はフォールバック値(ゼロ)に吸収されます。
func (s *searchService) collectCandidate(ctx context.Context, userID uuid.UUID, topic, difficulty string, c youtube.SearchItem) *model.VideoResult {
	logger := middleware.GetLogger(ctx)

	stats, err := s.stats.VideoStats(ctx, c.VideoID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Warn("Stats lookup failed, candidate dropped", "error", err, "video_id", c.VideoID)
		}
		return nil
	}

	// 長さ・再生数のハードフィルタ
	if stats.DurationMin < s.ranking.MinDurationMin || stats.Views < s.ranking.MinViews {
		return nil
	}

	likeRatio := round1(LikeRatio(stats.Likes, stats.Views))
	watchHours := round1(WatchHours(stats.Views, stats.DurationMin))
	positiveComments := s.positiveComments(ctx, c.VideoID)
	positivePct := round1(PositiveCommentPercent(len(positiveComments), stats.CommentCount))
	transcriptScore := s.transcriptScore(ctx, c.VideoID, topic)

	score := ScoreVideo(model.VideoSignals{
		TranscriptScore:    transcriptScore,
		LikeRatio:          likeRatio,
		WatchHours:         watchHours,
		PositiveCommentPct: positivePct,
	}, s.ranking)

	// 採用候補はプレイリストに書き込む。失敗してもレスポンスからは落とさない
	item := &model.PlaylistItem{
		ItemID:     uuid.New(),
		UserID:     userID,
		Topic:      topic,
		Difficulty: difficulty,
		Title:      c.Title,
		URL:        fmt.Sprintf("https://www.youtube.com/watch?v=%s", c.VideoID),
		Thumbnail:  c.Thumbnail,
		Channel:    c.Channel,
		SearchedAt: time.Now(),
	}
	if err := s.playlistRepo.Create(ctx, s.db, item); err != nil {
		logger.Warn("Failed to persist playlist item", "error", err, "video_id", c.VideoID)
	}

	return &model.VideoResult{
		Title:                  c.Title,
		ID:                     c.VideoID,
		Thumb:                  c.Thumbnail,
		Channel:                c.Channel,
		Views:                  stats.Views,
		Likes:                  stats.Likes,
		Duration:               round1(stats.DurationMin),
		WatchHours:             watchHours,
		PositiveComments:       positiveComments,
		PositiveCommentPercent: positivePct,
		LikeRatio:              likeRatio,
		TranscriptScore:        round1(transcriptScore * 100),
		Score:                  round1(score),
	}
}

// positiveComments は関連度上位コメントのうち、1件以上のいいねが付いた
// 空でないものを返します。取得失敗は空スライス (エラーは伝播させない)。
func (s *searchService) positiveComments(ctx context.Context, videoID string) []string {
	logger := middleware.GetLogger(ctx)

	comments, err := s.comments.TopComments(ctx, videoID, maxPositiveComments)
	if err != nil {
		logger.Debug("Comments lookup failed, falling back to empty", "error", err, "video_id", videoID)
		return []string{}
	}

	positive := make([]string, 0, len(comments))
	for _, c := range comments {
		if c.LikeCount > 0 && strings.TrimSpace(c.Text) != "" {
			positive = append(positive, c.Text)
		}
	}
	return positive
}

// transcriptScore は字幕一致度 [0,1] を返します。字幕が無い・取得に失敗した
// 場合は 0 (エラーは伝播させない)。
func (s *searchService) transcriptScore(ctx context.Context, videoID, topic string) float64 {
	logger := middleware.GetLogger(ctx)

	transcript, err := s.transcripts.Transcript(ctx, videoID)
	if err != nil {
		if !errors.Is(err, youtube.ErrTranscriptUnavailable) {
			logger.Debug("Transcript lookup failed, falling back to zero", "error", err, "video_id", videoID)
		}
		return 0
	}
	return TranscriptMatchScore(transcript, topic)
}

func (s *searchService) RecentPlaylists(ctx context.Context, userID uuid.UUID, limit int) ([]*model.PlaylistItem, error) {
	items, err := s.playlistRepo.FindRecentByUser(ctx, s.db, userID, limit)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list playlist items", "error", err, "user_id", userID)
		return nil, model.ErrInternalServer
	}
	return items, nil
}

func containsBlacklistedWord(title string) bool {
	lower := strings.ToLower(title)
	for _, w := range blacklistWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
