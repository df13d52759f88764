// internal/service/scoring.go
package service

import (
	"regexp"
	"strings"

	"go_5_goalverse/internal/config"
	"go_5_goalverse/internal/model"
)

var wordTokenPattern = regexp.MustCompile(`\w+`)

// ScoreVideo は正規化済みシグナルを 0-100 のスコアに合成する純関数です。
// 重みは設定値 (デフォルト: 字幕0.5 / いいね率0.2 / 視聴時間0.15 / コメント0.15)。
// 各項は比率に変換したうえで1.0にキャップするため、スコアは常に [0,100] に収まります。
func ScoreVideo(s model.VideoSignals, cfg config.RankingConfig) float64 {
	likeTerm := capRatio(s.LikeRatio, cfg.LikeRatioCap)
	watchTerm := capRatio(s.WatchHours, cfg.WatchHoursCap)
	commentTerm := capRatio(s.PositiveCommentPct, 100)

	score := cfg.TranscriptWeight*s.TranscriptScore +
		cfg.LikeRatioWeight*likeTerm +
		cfg.WatchHoursWeight*watchTerm +
		cfg.CommentWeight*commentTerm

	return score * 100
}

// capRatio は value/cap を計算し1.0にキャップします。cap<=0 は0を返します。
func capRatio(value, cap float64) float64 {
	if cap <= 0 {
		return 0
	}
	r := value / cap
	if r > 1 {
		return 1
	}
	if r < 0 {
		return 0
	}
	return r
}

// LikeRatio は いいね数/再生数 をパーセントで返します。再生数0は0。
func LikeRatio(likes, views int64) float64 {
	if views == 0 {
		return 0
	}
	return float64(likes) / float64(views) * 100
}

// WatchHours は 再生数×長さ(分)/60 の概算視聴時間を返します。
func WatchHours(views int64, durationMin float64) float64 {
	return float64(views) * durationMin / 60
}

// PositiveCommentPercent は総コメント数に対する好意的コメントの割合(%)です。
// 総コメント数0のときは0 (ゼロ除算回避)。
func PositiveCommentPercent(positive int, totalComments int64) float64 {
	if totalComments == 0 {
		return 0
	}
	return float64(positive) / float64(totalComments) * 100
}

// TranscriptMatchScore は字幕テキストに含まれるトピック語の割合 [0,1] を返します。
// トピックが語に分解できない場合は0 (ゼロ除算回避)。
func TranscriptMatchScore(transcript, topic string) float64 {
	tokens := wordTokenPattern.FindAllString(strings.ToLower(topic), -1)
	if len(tokens) == 0 {
		return 0
	}

	text := strings.ToLower(transcript)
	matched := 0
	for _, token := range tokens {
		if strings.Contains(text, token) {
			matched++
		}
	}
	return float64(matched) / float64(len(tokens))
}
