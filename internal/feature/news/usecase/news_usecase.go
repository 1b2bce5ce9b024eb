// Package usecase はニュース取得・整形・要約のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"
	"time"

	"smartledger_backend/internal/feature/news/domain/entity"
)

const (
	// MaxArticles は1カテゴリあたりの記事数の上限です。
	MaxArticles = 6
	// searchWindowDays は検索対象とする過去日数です。
	searchWindowDays = 3
	// strategyDelay は検索ストラテジー間に挟む待機時間です（プロバイダへの配慮）。
	strategyDelay = 500 * time.Millisecond
)

// 取得結果のソースタグ。フォールバックと実データを呼び出し側で区別できるようにします。
const (
	SourceLive     = "NewsAPI"
	SourceFallback = "Fallback"
)

// ErrInvalidCategory は未知のカテゴリが指定されたことを示します。
var ErrInvalidCategory = errors.New("invalid category")

// ErrRateLimited はプロバイダのレートリミット（HTTP 429）を示します。
var ErrRateLimited = errors.New("news provider rate limit exceeded")

// RawArticle はプロバイダから返る未整形の記事レコードです。
type RawArticle struct {
	Title       string
	Description string
	URL         string
	PublishedAt string
	SourceName  string
	ImageURL    string
}

// SearchQuery は1回の検索リクエストのクエリ形状です。
type SearchQuery struct {
	Query   string
	Sources string
	Domains string
	Language string
	From    string
	SortBy  string
}

// SearchProvider はニュース検索プロバイダを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SearchProvider interface {
	// CheckStatus はプロバイダへの軽量な疎通確認を行います。
	CheckStatus(ctx context.Context) error
	// Search は1ストラテジー分の検索を実行し、未整形の記事を返します。
	// HTTP 429を受けた場合はErrRateLimitedを返します。
	Search(ctx context.Context, q SearchQuery) ([]RawArticle, error)
}

// ImagePicker は記事に画像が無い場合の代替画像を選びます。
// テストでは固定値を返す実装に差し替えられます。
type ImagePicker func() string

// NewsUsecase はカテゴリごとのニュース取得を調停します。
type NewsUsecase struct {
	provider  SearchProvider
	pickImage ImagePicker
	now       func() time.Time
	sleep     func(time.Duration)

	mu           sync.Mutex
	requestCount int
	lastReset    time.Time
}

// NewNewsUsecase はNewsUsecaseの新しいインスタンスを生成します。
func NewNewsUsecase(provider SearchProvider) *NewsUsecase {
	return &NewsUsecase{
		provider:  provider,
		pickImage: RandomImage,
		now:       time.Now,
		sleep:     time.Sleep,
		lastReset: time.Now(),
	}
}

// WithClock は時刻源を差し替えます（テスト用）。
func (u *NewsUsecase) WithClock(clock func() time.Time) *NewsUsecase {
	u.now = clock
	return u
}

// WithSleep はストラテジー間の待機処理を差し替えます（テスト用）。
func (u *NewsUsecase) WithSleep(sleep func(time.Duration)) *NewsUsecase {
	u.sleep = sleep
	return u
}

// WithImagePicker は代替画像の選択処理を差し替えます（テスト用）。
func (u *NewsUsecase) WithImagePicker(pick ImagePicker) *NewsUsecase {
	u.pickImage = pick
	return u
}

// GetCategoryNews は指定カテゴリのニュース取得結果を組み立てて返します。
// プロバイダ由来の失敗はフォールバックで吸収するため、エラーを返すのは
// カテゴリが未知の場合のみです。
func (u *NewsUsecase) GetCategoryNews(ctx context.Context, category string) (*entity.NewsResult, error) {
	cat, ok := entity.Categories[category]
	if !ok {
		return nil, ErrInvalidCategory
	}

	start := u.now()
	articles, source := u.fetchArticles(ctx, cat)
	summary := BuildSummary(articles, category, u.now())
	fetchTime := u.now().Sub(start).Seconds()

	slog.Info("news fetch completed",
		"category", category, "articles", len(articles), "source", source,
		"fetch_time_seconds", fetchTime)

	return &entity.NewsResult{
		Articles:    articles,
		Summary:     summary,
		LastUpdated: u.now().Format(time.RFC3339),
		TotalFound:  len(articles),
		Category:    category,
		APISource:   source,
		Debug: entity.DebugInfo{
			RequestCount:     u.RequestCount(),
			FetchTimeSeconds: math.Round(fetchTime*100) / 100,
			FromCache:        false,
		},
	}, nil
}

// fetchArticles は最大3つの検索ストラテジーを順に試し、整形済み記事を集めます。
// 疎通確認に失敗した場合と有効な記事が1件も集まらなかった場合はフォールバックを返します。
func (u *NewsUsecase) fetchArticles(ctx context.Context, cat entity.Category) ([]entity.Article, string) {
	if err := u.provider.CheckStatus(ctx); err != nil {
		slog.Warn("news provider status check failed, using fallback articles",
			"category", cat.Name, "error", err)
		return fallbackArticles(cat.Name, u.now(), u.pickImage), SourceFallback
	}

	from := u.now().AddDate(0, 0, -searchWindowDays).Format("2006-01-02")
	var articles []entity.Article

	for i, q := range buildStrategies(cat, from) {
		if len(articles) >= MaxArticles {
			break
		}

		u.countRequest()
		raws, err := u.provider.Search(ctx, q)
		switch {
		case errors.Is(err, ErrRateLimited):
			// 残りのストラテジーを即座に打ち切る。バックオフやRetry-Afterの
			// 処理は行わない（既知のギャップとしてそのまま残している）。
			slog.Error("news provider rate limit hit, aborting remaining strategies",
				"strategy", i+1, "request_count", u.RequestCount())
			return u.finishFetch(articles, cat)
		case err != nil:
			slog.Warn("news search strategy failed", "strategy", i+1, "error", err)
		default:
			for _, raw := range raws {
				if len(articles) >= MaxArticles {
					break
				}
				if !isValidArticle(raw, u.now()) {
					continue
				}
				a := formatArticle(raw, u.now(), u.pickImage)
				if !containsArticle(articles, a) {
					articles = append(articles, a)
				}
			}
		}

		u.sleep(strategyDelay)
	}

	return u.finishFetch(articles, cat)
}

// finishFetch は集まった記事が1件未満の場合にフォールバックへ切り替えます。
func (u *NewsUsecase) finishFetch(articles []entity.Article, cat entity.Category) ([]entity.Article, string) {
	if len(articles) >= 1 {
		return articles, SourceLive
	}
	slog.Warn("insufficient articles from provider, using fallback", "category", cat.Name)
	return fallbackArticles(cat.Name, u.now(), u.pickImage), SourceFallback
}

// buildStrategies は固定順の3ストラテジーを組み立てます。
//  1. キーワード2語のOR検索 + 優先ソース
//  2. 先頭キーワード + ドメイン制限
//  3. カテゴリ名そのもの + 言語フィルタ
func buildStrategies(cat entity.Category, from string) []SearchQuery {
	pair := cat.Keywords[0]
	if len(cat.Keywords) > 1 {
		pair = cat.Keywords[0] + " OR " + cat.Keywords[1]
	}
	return []SearchQuery{
		{Query: pair, Sources: cat.Sources, From: from, SortBy: "publishedAt"},
		{Query: cat.Keywords[0], Domains: cat.Domains, From: from, SortBy: "publishedAt"},
		{Query: cat.Name, Language: "en", From: from, SortBy: "publishedAt"},
	}
}

// containsArticle は完全一致による重複チェックです。
func containsArticle(articles []entity.Article, a entity.Article) bool {
	for _, x := range articles {
		if x == a {
			return true
		}
	}
	return false
}

func (u *NewsUsecase) countRequest() {
	u.mu.Lock()
	u.requestCount++
	u.mu.Unlock()
}

// RequestCount はプロバイダへの累計リクエスト数を返します。
func (u *NewsUsecase) RequestCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.requestCount
}

// LastReset はカウンタを最後にリセットした時刻を返します。
func (u *NewsUsecase) LastReset() time.Time {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lastReset
}

// ResetCounter はリクエストカウンタをゼロに戻します（/api/refresh用）。
func (u *NewsUsecase) ResetCounter() {
	u.mu.Lock()
	u.requestCount = 0
	u.lastReset = u.now()
	u.mu.Unlock()
}
