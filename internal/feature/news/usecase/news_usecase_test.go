package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartledger_backend/internal/feature/news/domain/entity"
)

// mockSearchProvider はSearchProviderのテスト用実装です。
type mockSearchProvider struct {
	checkStatusFn func(ctx context.Context) error
	searchFn      func(ctx context.Context, q SearchQuery) ([]RawArticle, error)

	searchCalls []SearchQuery
}

func (m *mockSearchProvider) CheckStatus(ctx context.Context) error {
	if m.checkStatusFn != nil {
		return m.checkStatusFn(ctx)
	}
	return nil
}

func (m *mockSearchProvider) Search(ctx context.Context, q SearchQuery) ([]RawArticle, error) {
	m.searchCalls = append(m.searchCalls, q)
	if m.searchFn != nil {
		return m.searchFn(ctx, q)
	}
	return nil, nil
}

func newTestUsecase(provider SearchProvider) *NewsUsecase {
	return NewNewsUsecase(provider).
		WithClock(func() time.Time { return filterNow }).
		WithSleep(func(time.Duration) {}).
		WithImagePicker(func() string { return "https://images.example.com/stock.jpg" })
}

// rawWithTitle はテスト用の有効な記事を生成します。
func rawWithTitle(title string) RawArticle {
	raw := validRaw()
	raw.Title = title
	return raw
}

func TestGetCategoryNews_InvalidCategory(t *testing.T) {
	t.Parallel()

	uc := newTestUsecase(&mockSearchProvider{})
	result, err := uc.GetCategoryNews(context.Background(), "sports")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

// TestGetCategoryNews_ProbeFailure は疎通確認失敗時に検索を行わず
// フォールバック記事へ切り替えることを検証します。
func TestGetCategoryNews_ProbeFailure(t *testing.T) {
	t.Parallel()

	provider := &mockSearchProvider{
		checkStatusFn: func(ctx context.Context) error {
			return errors.New("connection refused")
		},
	}
	uc := newTestUsecase(provider)

	result, err := uc.GetCategoryNews(context.Background(), "finance")
	require.NoError(t, err)

	assert.Empty(t, provider.searchCalls)
	assert.Equal(t, SourceFallback, result.APISource)
	assert.Len(t, result.Articles, 3)
	assert.Equal(t, "finance", result.Category)
	assert.Zero(t, uc.RequestCount())
}

func TestGetCategoryNews_Success(t *testing.T) {
	t.Parallel()

	provider := &mockSearchProvider{
		searchFn: func(ctx context.Context, q SearchQuery) ([]RawArticle, error) {
			if q.Sources != "" {
				return []RawArticle{rawWithTitle("Fed Holds Rates"), rawWithTitle("Banks Rally")}, nil
			}
			return nil, nil
		},
	}
	uc := newTestUsecase(provider)

	result, err := uc.GetCategoryNews(context.Background(), "finance")
	require.NoError(t, err)

	assert.Equal(t, SourceLive, result.APISource)
	assert.Len(t, result.Articles, 2)
	assert.Equal(t, 2, result.TotalFound)
	assert.Equal(t, "Fed Holds Rates", result.Articles[0].Title)
	assert.False(t, result.Debug.FromCache)
	assert.NotEmpty(t, result.Summary)

	// 上限未満なので3ストラテジーすべてを試す
	require.Len(t, provider.searchCalls, 3)
	assert.Equal(t, 3, result.Debug.RequestCount)
	for _, q := range provider.searchCalls {
		assert.Equal(t, "2024-05-07", q.From)
		assert.Equal(t, "publishedAt", q.SortBy)
	}
	assert.Equal(t, "finance OR banking", provider.searchCalls[0].Query)
	assert.Equal(t, "bloomberg.com,reuters.com,ft.com,wsj.com,cnbc.com", provider.searchCalls[1].Domains)
	assert.Equal(t, "finance", provider.searchCalls[2].Query)
	assert.Equal(t, "en", provider.searchCalls[2].Language)
}

// TestGetCategoryNews_RateLimitAborts はHTTP 429で残りのストラテジーを
// 即座に打ち切ることを検証します。
func TestGetCategoryNews_RateLimitAborts(t *testing.T) {
	t.Parallel()

	provider := &mockSearchProvider{}
	provider.searchFn = func(ctx context.Context, q SearchQuery) ([]RawArticle, error) {
		if len(provider.searchCalls) == 1 {
			return []RawArticle{rawWithTitle("Fed Holds Rates")}, nil
		}
		return nil, fmt.Errorf("newsapi http 429: %w", ErrRateLimited)
	}
	uc := newTestUsecase(provider)

	result, err := uc.GetCategoryNews(context.Background(), "finance")
	require.NoError(t, err)

	// 2回目の検索でレートリミットに当たり、3回目は呼ばれない
	assert.Len(t, provider.searchCalls, 2)
	assert.Equal(t, SourceLive, result.APISource)
	assert.Len(t, result.Articles, 1)
}

// TestGetCategoryNews_RateLimitWithoutArticles は記事ゼロ件のまま
// レートリミットに当たった場合のフォールバックを検証します。
func TestGetCategoryNews_RateLimitWithoutArticles(t *testing.T) {
	t.Parallel()

	provider := &mockSearchProvider{
		searchFn: func(ctx context.Context, q SearchQuery) ([]RawArticle, error) {
			return nil, fmt.Errorf("newsapi http 429: %w", ErrRateLimited)
		},
	}
	uc := newTestUsecase(provider)

	result, err := uc.GetCategoryNews(context.Background(), "investing")
	require.NoError(t, err)

	assert.Len(t, provider.searchCalls, 1)
	assert.Equal(t, SourceFallback, result.APISource)
	assert.Len(t, result.Articles, 2)
}

func TestGetCategoryNews_CapsAtMaxArticles(t *testing.T) {
	t.Parallel()

	provider := &mockSearchProvider{
		searchFn: func(ctx context.Context, q SearchQuery) ([]RawArticle, error) {
			var raws []RawArticle
			for i := 0; i < 10; i++ {
				raws = append(raws, rawWithTitle(fmt.Sprintf("Headline %d", i)))
			}
			return raws, nil
		},
	}
	uc := newTestUsecase(provider)

	result, err := uc.GetCategoryNews(context.Background(), "finance")
	require.NoError(t, err)

	assert.Len(t, result.Articles, MaxArticles)
	// 上限に達した時点で残りのストラテジーは実行しない
	assert.Len(t, provider.searchCalls, 1)
}

func TestGetCategoryNews_DeduplicatesAcrossStrategies(t *testing.T) {
	t.Parallel()

	provider := &mockSearchProvider{
		searchFn: func(ctx context.Context, q SearchQuery) ([]RawArticle, error) {
			return []RawArticle{rawWithTitle("Fed Holds Rates")}, nil
		},
	}
	uc := newTestUsecase(provider)

	result, err := uc.GetCategoryNews(context.Background(), "finance")
	require.NoError(t, err)

	assert.Len(t, provider.searchCalls, 3)
	assert.Len(t, result.Articles, 1)
}

// TestGetCategoryNews_AllStrategiesFail は全ストラテジー失敗時に
// フォールバックへ切り替えることを検証します。
func TestGetCategoryNews_AllStrategiesFail(t *testing.T) {
	t.Parallel()

	provider := &mockSearchProvider{
		searchFn: func(ctx context.Context, q SearchQuery) ([]RawArticle, error) {
			return nil, errors.New("upstream timeout")
		},
	}
	uc := newTestUsecase(provider)

	result, err := uc.GetCategoryNews(context.Background(), "cybersecurity")
	require.NoError(t, err)

	assert.Len(t, provider.searchCalls, 3)
	assert.Equal(t, SourceFallback, result.APISource)
	assert.Len(t, result.Articles, 1)
}

func TestGetCategoryNews_InvalidArticlesFiltered(t *testing.T) {
	t.Parallel()

	spam := validRaw()
	spam.Title = "[Removed]"
	provider := &mockSearchProvider{
		searchFn: func(ctx context.Context, q SearchQuery) ([]RawArticle, error) {
			return []RawArticle{spam}, nil
		},
	}
	uc := newTestUsecase(provider)

	result, err := uc.GetCategoryNews(context.Background(), "finance")
	require.NoError(t, err)

	assert.Equal(t, SourceFallback, result.APISource)
}

func TestRequestCounter(t *testing.T) {
	t.Parallel()

	provider := &mockSearchProvider{
		searchFn: func(ctx context.Context, q SearchQuery) ([]RawArticle, error) {
			return []RawArticle{rawWithTitle("Fed Holds Rates")}, nil
		},
	}
	uc := newTestUsecase(provider)

	_, err := uc.GetCategoryNews(context.Background(), "finance")
	require.NoError(t, err)
	assert.Equal(t, 3, uc.RequestCount())

	uc.ResetCounter()
	assert.Zero(t, uc.RequestCount())
	assert.Equal(t, filterNow, uc.LastReset())
}

// TestBuildStrategies_SingleKeyword はキーワードが1語しか無い場合に
// OR結合を省くことを検証します。
func TestBuildStrategies_SingleKeyword(t *testing.T) {
	t.Parallel()

	cat := entity.Category{Name: "audit", Keywords: []string{"audit"}}
	queries := buildStrategies(cat, "2024-05-07")

	require.Len(t, queries, 3)
	assert.Equal(t, "audit", queries[0].Query)
	assert.Equal(t, "2024-05-07", queries[0].From)
}
