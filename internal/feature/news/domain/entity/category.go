// Package entity はnewsフィーチャーのドメインモデルを定義します。
package entity

// Category はニュース検索クエリを組み立てるためのカテゴリ設定です。
// キーワード・優先ソース・優先ドメインは検索時のみ参照され、永続化しません。
type Category struct {
	Name     string   // カテゴリ名（例: "finance"）
	Keywords []string // 検索キーワード（優先順）
	Sources  string   // プロバイダのソースID（カンマ区切り）
	Domains  string   // 優先ドメイン（カンマ区切り）
}

// CategoryNames は有効なカテゴリ名の固定リストです（表示順）。
var CategoryNames = []string{"accounting", "finance", "investing", "cybersecurity", "worldnews"}

// Categories はカテゴリ名からカテゴリ設定への固定マッピングです。
var Categories = map[string]Category{
	"accounting": {
		Name:     "accounting",
		Keywords: []string{"accounting", "audit", "bookkeeping", "CPA", "financial reporting", "tax"},
		Sources:  "bloomberg,reuters,financial-times,the-wall-street-journal",
		Domains:  "bloomberg.com,reuters.com,ft.com,wsj.com,accountingtoday.com",
	},
	"finance": {
		Name:     "finance",
		Keywords: []string{"finance", "banking", "fintech", "financial services", "monetary policy", "economy"},
		Sources:  "bloomberg,reuters,financial-times,the-wall-street-journal,cnbc",
		Domains:  "bloomberg.com,reuters.com,ft.com,wsj.com,cnbc.com",
	},
	"investing": {
		Name:     "investing",
		Keywords: []string{"investing", "stocks", "portfolio", "trading", "market analysis", "investment"},
		Sources:  "bloomberg,reuters,financial-times,the-wall-street-journal",
		Domains:  "bloomberg.com,reuters.com,ft.com,wsj.com,marketwatch.com",
	},
	"cybersecurity": {
		Name:     "cybersecurity",
		Keywords: []string{"cybersecurity", "data breach", "hacking", "cyber attack", "information security"},
		Sources:  "ars-technica,techcrunch,wired,the-verge",
		Domains:  "arstechnica.com,techcrunch.com,wired.com,theverge.com",
	},
	"worldnews": {
		Name:     "worldnews",
		Keywords: []string{"international", "global", "world politics", "diplomacy", "international relations"},
		Sources:  "bbc-news,reuters,cnn,associated-press,al-jazeera-english",
		Domains:  "bbc.com,reuters.com,cnn.com,apnews.com,aljazeera.com",
	},
}

// IsValidCategory はカテゴリ名が有効かどうかを返します。
func IsValidCategory(name string) bool {
	_, ok := Categories[name]
	return ok
}
