// internal/model/dashboard.go
package model

// DashboardResponse はダッシュボード表示用の集約レスポンスです。
type DashboardResponse struct {
	User            *UserResponse    `json:"user"`
	Learned         []string         `json:"learned"`
	RecentPlaylists []*PlaylistItem  `json:"recent_playlists"`
	RecentDocs      []*Documentation `json:"recent_docs"`
}
