package usecase

import (
	"strings"
	"time"

	"smartledger_backend/internal/feature/news/domain/entity"
)

const (
	// maxDescriptionLen は概要の最大文字数です。超過分は省略記号付きで切り詰めます。
	maxDescriptionLen = 300
	// maxArticleAge はこれより古い記事を除外する閾値です。
	maxArticleAge = 5 * 24 * time.Hour
	// publishedAtFormat は整形後の公開日時フォーマットです。
	publishedAtFormat = "2006-01-02 15:04:05 UTC"
)

// spamTerms はタイトルまたは概要に含まれていたら除外する語です（小文字比較）。
var spamTerms = []string{"[removed]", "[deleted]", "error", "page not found", "subscribe now"}

// sourceSuffixes はタイトル末尾から取り除く既知の媒体名サフィックスです。
var sourceSuffixes = []string{" - Reuters", " | CNN"}

// isValidArticle は未整形の記事が採用条件を満たすか判定します。
//   - タイトル・概要・URL・公開日時がすべて存在すること
//   - スパム語を含まないこと
//   - 5日以内の記事であること（日時が解析不能な場合はこの条件では除外しない）
func isValidArticle(raw RawArticle, now time.Time) bool {
	if raw.Title == "" || raw.Description == "" || raw.URL == "" || raw.PublishedAt == "" {
		return false
	}

	title := strings.ToLower(raw.Title)
	desc := strings.ToLower(raw.Description)
	for _, term := range spamTerms {
		if strings.Contains(title, term) || strings.Contains(desc, term) {
			return false
		}
	}

	if t, err := time.Parse(time.RFC3339, raw.PublishedAt); err == nil {
		if now.Sub(t) > maxArticleAge {
			return false
		}
	}
	return true
}

// formatArticle は未整形の記事を正規化済みのArticleに変換します。純粋変換であり、
// 日時の解析エラーは現在時刻へのフォールバックで吸収します。
func formatArticle(raw RawArticle, now time.Time, pickImage ImagePicker) entity.Article {
	published := now.UTC().Format(publishedAtFormat)
	if t, err := time.Parse(time.RFC3339, raw.PublishedAt); err == nil {
		published = t.UTC().Format(publishedAtFormat)
	}

	title := raw.Title
	for _, suffix := range sourceSuffixes {
		title = strings.ReplaceAll(title, suffix, "")
	}

	desc := raw.Description
	if runes := []rune(desc); len(runes) > maxDescriptionLen {
		desc = string(runes[:maxDescriptionLen]) + "..."
	}

	image := raw.ImageURL
	if image == "" {
		image = pickImage()
	}

	source := raw.SourceName
	if source == "" {
		source = "Unknown"
	}

	return entity.Article{
		Title:       title,
		Description: desc,
		URL:         raw.URL,
		PublishedAt: published,
		Source:      source,
		Image:       image,
		ScrapedAt:   now.Format(time.RFC3339),
	}
}
