// internal/youtube/duration.go
package youtube

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseISODurationMinutes は YouTube API が返す ISO-8601 形式の期間文字列
// (例: "PT1H2M30S", "P1DT4H") を分に変換します。
// 動画の長さに現れる日・時・分・秒のみをサポートします。
func ParseISODurationMinutes(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	if !strings.HasPrefix(s, "P") {
		return 0, fmt.Errorf("invalid duration %q: missing P prefix", s)
	}

	rest := s[1:]
	var totalSeconds float64
	inTime := false
	num := ""

	for _, r := range rest {
		switch {
		case r >= '0' && r <= '9' || r == '.':
			num += string(r)
		case r == 'T':
			if num != "" {
				return 0, fmt.Errorf("invalid duration %q: dangling number before T", s)
			}
			inTime = true
		default:
			if num == "" {
				return 0, fmt.Errorf("invalid duration %q: designator %q without value", s, r)
			}
			v, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return 0, fmt.Errorf("invalid duration %q: %w", s, err)
			}
			num = ""
			switch {
			case r == 'D' && !inTime:
				totalSeconds += v * 24 * 3600
			case r == 'H' && inTime:
				totalSeconds += v * 3600
			case r == 'M' && inTime:
				totalSeconds += v * 60
			case r == 'S' && inTime:
				totalSeconds += v
			default:
				return 0, fmt.Errorf("invalid duration %q: unsupported designator %q", s, r)
			}
		}
	}
	if num != "" {
		return 0, fmt.Errorf("invalid duration %q: trailing number", s)
	}

	return totalSeconds / 60, nil
}
