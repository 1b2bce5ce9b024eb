package entity

// Article は整形済みのニュース記事です。整形後は不変として扱います。
type Article struct {
	Title       string `json:"title"`        // 記事タイトル（媒体名サフィックス除去済み）
	Description string `json:"description"`  // 300文字に切り詰めた概要
	URL         string `json:"url"`          // 記事URL
	PublishedAt string `json:"published_at"` // 公開日時（UTC表記の固定フォーマット）
	Source      string `json:"source"`       // 媒体名
	Image       string `json:"image"`        // 画像URL（無ければ固定プールから選択）
	ScrapedAt   string `json:"scraped_at"`   // 取り込み日時
}

// DebugInfo はNewsResultに付与するデバッグ用メタデータです。
type DebugInfo struct {
	RequestCount     int     `json:"request_count"`
	FetchTimeSeconds float64 `json:"fetch_time_seconds,omitempty"`
	FromCache        bool    `json:"from_cache"`
	CachedAt         string  `json:"cached_at,omitempty"`
	ErrorOccurred    bool    `json:"error_occurred,omitempty"`
}

// NewsResult はカテゴリごとのニュース取得結果です。
type NewsResult struct {
	Articles    []Article `json:"articles"`
	Summary     string    `json:"summary"`
	LastUpdated string    `json:"last_updated"`
	TotalFound  int       `json:"total_found"`
	Category    string    `json:"category"`
	APISource   string    `json:"api_source"` // "NewsAPI" または "Fallback"
	Error       string    `json:"error,omitempty"`
	Debug       DebugInfo `json:"debug_info"`
}
