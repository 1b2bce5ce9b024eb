package usecase

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"smartledger_backend/internal/feature/news/domain/entity"
)

// summaryDateFormat は要約文に埋め込む日付表記です。
const summaryDateFormat = "January 02, 2006"

// summaryTheme はカテゴリ固有のテーマ検出キーワードと文脈ラベルです。
type summaryTheme struct {
	keywords []string
	context  string
}

var summaryThemes = map[string]summaryTheme{
	"finance": {
		keywords: []string{"federal reserve", "interest rate", "inflation", "banking", "monetary policy",
			"economic growth", "gdp", "recession", "market", "financial services"},
		context: "financial sector",
	},
	"investing": {
		keywords: []string{"stock market", "portfolio", "earnings", "dividend", "bull market", "bear market",
			"rally", "sell-off", "investor", "trading", "shares", "equity"},
		context: "investment markets",
	},
	"cybersecurity": {
		keywords: []string{"data breach", "cyberattack", "ransomware", "vulnerability", "hacking",
			"security threat", "malware", "phishing", "encryption", "zero-day"},
		context: "cybersecurity landscape",
	},
	"accounting": {
		keywords: []string{"audit", "financial reporting", "gaap", "ifrs", "compliance", "tax reform",
			"accounting standard", "disclosure", "revenue recognition", "fasb"},
		context: "accounting profession",
	},
	"worldnews": {
		keywords: []string{"government", "policy", "international", "diplomatic", "trade agreement",
			"sanctions", "treaty", "election", "global", "geopolitical"},
		context: "global developments",
	},
}

// BuildSummary は整形済み記事からカテゴリの短い要約文を組み立てます。
// 現在日付の埋め込みを除けば決定的な純粋関数です。組み立て中に万一パニックが
// 起きた場合は記事数と先頭タイトルだけの簡易要約に切り替えます。
func BuildSummary(articles []entity.Article, category string, now time.Time) (summary string) {
	date := now.Format(summaryDateFormat)

	if len(articles) == 0 {
		return fmt.Sprintf("No recent %s news available for %s.", category, date)
	}

	defer func() {
		if r := recover(); r != nil {
			n := len(articles)
			word := "articles"
			if n == 1 {
				word = "article"
			}
			summary = fmt.Sprintf("Latest %s news from %s: %s. %d %s available below.",
				category, date, articles[0].Title, n, word)
		}
	}()

	head := articles
	if len(head) > 5 {
		head = head[:5]
	}

	// 先頭5件のタイトルと概要を連結した小文字コーパスを作る
	var corpusParts []string
	var sources []string
	seen := map[string]bool{}
	for _, a := range head {
		corpusParts = append(corpusParts, a.Title)
		if !seen[a.Source] {
			seen[a.Source] = true
			sources = append(sources, a.Source)
		}
	}
	for _, a := range head {
		corpusParts = append(corpusParts, truncateRunes(a.Description, 200))
	}
	corpus := strings.ToLower(strings.Join(corpusParts, " "))

	theme := summaryThemes[category]
	themeContext := theme.context
	if themeContext == "" {
		themeContext = category
	}

	// リスト順にテーマ語を探し、最大3件まで採用する
	var found []string
	for _, kw := range theme.keywords {
		if strings.Contains(corpus, kw) {
			found = append(found, kw)
			if len(found) == 3 {
				break
			}
		}
	}

	var parts []string

	if len(found) > 0 {
		parts = append(parts, fmt.Sprintf("Today's %s news on %s centers on %s.",
			category, date, strings.Join(found, ", ")))
	} else {
		parts = append(parts, fmt.Sprintf("%s news for %s highlights key industry developments.",
			upperFirst(category), date))
	}

	// トップ記事
	lead := articles[0]
	parts = append(parts, fmt.Sprintf("%s reports that %s", lead.Source, lowerLead(lead.Title)))
	if leadDesc := truncateRunes(lead.Description, 150); leadDesc != "" {
		sentences := strings.Split(leadDesc, ".")
		if len(sentences) > 0 {
			parts = append(parts, fmt.Sprintf("— %s.", strings.TrimSpace(sentences[0])))
		}
	}

	// 2件目
	if len(articles) > 1 {
		second := articles[1]
		if second.Title != "" {
			parts = append(parts, fmt.Sprintf("Additionally, %s covers %s.",
				second.Source, lowerLead(second.Title)))
		}
	}

	// 3件目
	if len(articles) > 2 {
		if thirdDesc := truncateRunes(articles[2].Description, 120); thirdDesc != "" {
			parts = append(parts, fmt.Sprintf("Further analysis reveals %s.", strings.ToLower(thirdDesc)))
		}
	}

	// 締めの一文
	if len(articles) > 3 {
		remaining := len(articles) - 3
		sourcesText := sources[0]
		if len(sources) > 1 {
			sourcesText = strings.Join(sources[:minInt(3, len(sources))], ", ")
		}
		word := "perspectives"
		if remaining == 1 {
			word = "perspective"
		}
		parts = append(parts, fmt.Sprintf("Coverage from %s and others provides %d additional %s on today's %s.",
			sourcesText, remaining, word, themeContext))
	} else if len(sources) > 1 {
		parts = append(parts, fmt.Sprintf("Analysis from %s provides comprehensive coverage of today's %s.",
			strings.Join(sources[:minInt(3, len(sources))], ", "), themeContext))
	}

	return strings.Join(parts, " ")
}

// lowerLead は文中に埋め込むタイトルの先頭を小文字にします。
// 先頭が大文字なら先頭の1文字だけ、そうでなければ全体を小文字化します。
func lowerLead(title string) string {
	runes := []rune(title)
	if len(runes) == 0 {
		return title
	}
	if unicode.IsUpper(runes[0]) {
		runes[0] = unicode.ToLower(runes[0])
		return string(runes)
	}
	return strings.ToLower(title)
}

// upperFirst は先頭の1文字を大文字にします。
func upperFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// truncateRunes は文字数単位で切り詰めます（省略記号は付けません）。
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
