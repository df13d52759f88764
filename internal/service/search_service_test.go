// internal/service/search_service_test.go
package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go_5_goalverse/internal/model"
	repomocks "go_5_goalverse/internal/repository/mocks"
	"go_5_goalverse/internal/youtube"
	ytmocks "go_5_goalverse/internal/youtube/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type searchServiceMocks struct {
	playlistRepo *repomocks.PlaylistRepository
	tracker      *trackerRecorder
	search       *ytmocks.SearchProvider
	stats        *ytmocks.StatsProvider
	comments     *ytmocks.CommentsProvider
	transcripts  *ytmocks.TranscriptProvider
}

// trackerRecorder は呼び出しを記録するだけの軽量スタブ
type trackerRecorder struct {
	calls []string
	err   error
}

func (r *trackerRecorder) Record(_ context.Context, _ uuid.UUID, topic, mode, difficulty string) error {
	r.calls = append(r.calls, topic+"|"+mode+"|"+difficulty)
	return r.err
}

func newSearchServiceForTest(t *testing.T) (SearchService, *searchServiceMocks) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	m := &searchServiceMocks{
		playlistRepo: new(repomocks.PlaylistRepository),
		tracker:      &trackerRecorder{},
		search:       new(ytmocks.SearchProvider),
		stats:        new(ytmocks.StatsProvider),
		comments:     new(ytmocks.CommentsProvider),
		transcripts:  new(ytmocks.TranscriptProvider),
	}
	svc := NewSearchService(db, m.playlistRepo, m.tracker, m.search, m.stats, m.comments, m.transcripts, defaultRankingConfig())
	return svc, m
}

func Test_BuildQuery(t *testing.T) {
	base := []string{"tutorial", "course", "lesson", "study", "explained", "step-by-step", "project"}

	t.Run("正常系: トピックと基本キーワードを常に含む", func(t *testing.T) {
		for _, level := range []string{"basic", "medium", "hard", "unknown", ""} {
			q := BuildQuery("recursion", level)
			assert.Contains(t, q, "recursion")
			for _, kw := range base {
				assert.Contains(t, q, kw)
			}
		}
	})

	t.Run("正常系: 難易度別キーワードは該当difficultyのみ付与される", func(t *testing.T) {
		assert.Contains(t, BuildQuery("recursion", "basic"), "beginner")
		assert.Contains(t, BuildQuery("recursion", "medium"), "intermediate")
		assert.Contains(t, BuildQuery("recursion", "hard"), "masterclass")

		q := BuildQuery("recursion", "unknown")
		for _, kw := range []string{"beginner", "intermediate", "masterclass"} {
			assert.NotContains(t, q, kw)
		}
	})
}

func Test_searchService_SearchVideos_EmptyTopic(t *testing.T) {
	svc, m := newSearchServiceForTest(t)

	results, err := svc.SearchVideos(context.Background(), uuid.New(), "   ", "basic")
	require.NoError(t, err)
	assert.Empty(t, results)
	// 検索プロバイダは呼ばれない
	m.search.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func Test_searchService_SearchVideos_SearchFailure(t *testing.T) {
	svc, m := newSearchServiceForTest(t)

	m.search.On("Search", mock.Anything, mock.Anything, 30).
		Return(nil, errors.New("quota exceeded")).Once()

	// 検索自体の失敗は空リスト (エラーにしない)
	results, err := svc.SearchVideos(context.Background(), uuid.New(), "recursion", "basic")
	require.NoError(t, err)
	assert.Empty(t, results)
	m.search.AssertExpectations(t)
}

func Test_searchService_SearchVideos_Blacklist(t *testing.T) {
	svc, m := newSearchServiceForTest(t)

	m.search.On("Search", mock.Anything, mock.Anything, 30).
		Return([]youtube.SearchItem{
			{VideoID: "bad1", Title: "My Motivational Story", Channel: "ch", Thumbnail: "t"},
		}, nil).Once()

	results, err := svc.SearchVideos(context.Background(), uuid.New(), "recursion", "basic")
	require.NoError(t, err)
	assert.Empty(t, results, "ブラックリスト語を含むタイトルはシグナルに関わらず除外")
	m.stats.AssertNotCalled(t, "VideoStats", mock.Anything, mock.Anything)
}

func Test_searchService_SearchVideos_Dedupe(t *testing.T) {
	svc, m := newSearchServiceForTest(t)

	item := youtube.SearchItem{VideoID: "dup", Title: "Recursion Tutorial", Channel: "ch", Thumbnail: "t"}
	m.search.On("Search", mock.Anything, mock.Anything, 30).
		Return([]youtube.SearchItem{item, item}, nil).Once()

	m.stats.On("VideoStats", mock.Anything, "dup").
		Return(&youtube.VideoStats{Views: 1000, Likes: 50, CommentCount: 0, DurationMin: 5}, nil).Once()
	m.comments.On("TopComments", mock.Anything, "dup", 3).
		Return([]youtube.Comment{}, nil).Once()
	m.transcripts.On("Transcript", mock.Anything, "dup").
		Return("", youtube.ErrTranscriptUnavailable).Once()
	m.playlistRepo.On("Create", mock.Anything, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.PlaylistItem")).
		Return(nil).Once()

	results, err := svc.SearchVideos(context.Background(), uuid.New(), "recursion", "basic")
	require.NoError(t, err)
	assert.Len(t, results, 1, "同一IDが2回返されても結果は1件")
	m.stats.AssertExpectations(t)
}

func Test_searchService_SearchVideos_EndToEnd(t *testing.T) {
	svc, m := newSearchServiceForTest(t)
	userID := uuid.New()

	m.search.On("Search", mock.Anything, mock.Anything, 30).
		Return([]youtube.SearchItem{
			{VideoID: "low", Title: "Recursion Basics", Channel: "ch1", Thumbnail: "t1"},
			{VideoID: "good", Title: "Recursion Explained", Channel: "ch2", Thumbnail: "t2"},
		}, nil).Once()

	// 再生数10 (< MIN_VIEWS=20) は除外
	m.stats.On("VideoStats", mock.Anything, "low").
		Return(&youtube.VideoStats{Views: 10, Likes: 1, CommentCount: 0, DurationMin: 10}, nil).Once()

	// 採用候補: views=1000, 5分, likes=50, 字幕は全トークン一致
	m.stats.On("VideoStats", mock.Anything, "good").
		Return(&youtube.VideoStats{Views: 1000, Likes: 50, CommentCount: 0, DurationMin: 5}, nil).Once()
	m.comments.On("TopComments", mock.Anything, "good", 3).
		Return(nil, errors.New("comments disabled")).Once()
	m.transcripts.On("Transcript", mock.Anything, "good").
		Return("in this video we cover recursion step by step", nil).Once()

	var persisted []*model.PlaylistItem
	m.playlistRepo.On("Create", mock.Anything, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.PlaylistItem")).
		Run(func(args mock.Arguments) {
			persisted = append(persisted, args.Get(2).(*model.PlaylistItem))
		}).Return(nil).Once()

	results, err := svc.SearchVideos(context.Background(), userID, "recursion", "basic")
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, "good", r.ID)
	assert.Equal(t, int64(1000), r.Views)
	assert.InDelta(t, 100.0, r.TranscriptScore, 0.0001, "字幕一致度は0-100スケールで返す")
	assert.InDelta(t, 5.0, r.LikeRatio, 0.0001)
	assert.InDelta(t, 83.3, r.WatchHours, 0.0001)
	assert.InDelta(t, 0.0, r.PositiveCommentPercent, 0.0001, "コメント取得失敗はフォールバックで0")
	// score = 100*(0.5*1.0 + 0.2*(5/100) + 0.15*(83.3/1000) + 0.15*0) = 52.2495 → 52.2
	assert.InDelta(t, 52.2, r.Score, 0.0001)

	// 永続化は採用候補の1件のみ
	require.Len(t, persisted, 1)
	assert.Equal(t, userID, persisted[0].UserID)
	assert.Equal(t, "recursion", persisted[0].Topic)
	assert.Equal(t, "basic", persisted[0].Difficulty)
	assert.Equal(t, "https://www.youtube.com/watch?v=good", persisted[0].URL)

	// 学習アクティビティも記録される
	require.Len(t, m.tracker.calls, 1)
	assert.Equal(t, "recursion|video|basic", m.tracker.calls[0])
}

func Test_searchService_SearchVideos_SortedByScore(t *testing.T) {
	svc, m := newSearchServiceForTest(t)

	m.search.On("Search", mock.Anything, mock.Anything, 30).
		Return([]youtube.SearchItem{
			{VideoID: "weak", Title: "Sorting Overview", Channel: "c", Thumbnail: "t"},
			{VideoID: "strong", Title: "Sorting Deep Dive", Channel: "c", Thumbnail: "t"},
		}, nil).Once()

	// weak: 字幕なし
	m.stats.On("VideoStats", mock.Anything, "weak").
		Return(&youtube.VideoStats{Views: 500, Likes: 5, CommentCount: 0, DurationMin: 5}, nil).Once()
	m.transcripts.On("Transcript", mock.Anything, "weak").
		Return("", youtube.ErrTranscriptUnavailable).Once()

	// strong: 字幕が全トークン一致
	m.stats.On("VideoStats", mock.Anything, "strong").
		Return(&youtube.VideoStats{Views: 500, Likes: 5, CommentCount: 0, DurationMin: 5}, nil).Once()
	m.transcripts.On("Transcript", mock.Anything, "strong").
		Return("all about sorting", nil).Once()

	m.comments.On("TopComments", mock.Anything, mock.Anything, 3).
		Return([]youtube.Comment{}, nil).Twice()
	m.playlistRepo.On("Create", mock.Anything, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.PlaylistItem")).
		Return(nil).Twice()

	results, err := svc.SearchVideos(context.Background(), uuid.New(), "sorting", "medium")
	require.NoError(t, err)
	require.Len(t, results, 2)

	// プロバイダの返却順に関わらずスコア降順
	assert.Equal(t, "strong", results[0].ID)
	assert.Equal(t, "weak", results[1].ID)
	assert.GreaterOrEqual(t, results[0].Score, results[1].Score)
}

func Test_containsBlacklistedWord(t *testing.T) {
	assert.True(t, containsBlacklistedWord("10 TIPS to learn faster"))
	assert.True(t, containsBlacklistedWord("my coding VLOG"))
	assert.False(t, containsBlacklistedWord("Recursion Tutorial for Beginners"))
}

func Test_searchService_PersistFailureDoesNotDropResult(t *testing.T) {
	svc, m := newSearchServiceForTest(t)

	m.search.On("Search", mock.Anything, mock.Anything, 30).
		Return([]youtube.SearchItem{
			{VideoID: "v1", Title: "Recursion Guide", Channel: "c", Thumbnail: "t"},
		}, nil).Once()
	m.stats.On("VideoStats", mock.Anything, "v1").
		Return(&youtube.VideoStats{Views: 100, Likes: 10, CommentCount: 0, DurationMin: 3}, nil).Once()
	m.comments.On("TopComments", mock.Anything, "v1", 3).
		Return([]youtube.Comment{}, nil).Once()
	m.transcripts.On("Transcript", mock.Anything, "v1").
		Return(strings.Repeat("recursion ", 3), nil).Once()
	m.playlistRepo.On("Create", mock.Anything, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.PlaylistItem")).
		Return(errors.New("db down")).Once()

	results, err := svc.SearchVideos(context.Background(), uuid.New(), "recursion", "basic")
	require.NoError(t, err)
	assert.Len(t, results, 1, "永続化失敗はbest-effortなのでレスポンスから落とさない")
}
