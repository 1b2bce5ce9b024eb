package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stocksNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

// mockMarketRepository はMarketRepositoryのテスト用実装です。
type mockMarketRepository struct {
	getQuoteFn func(ctx context.Context, symbol string) (*MarketQuote, error)
	calls      []string
}

func (m *mockMarketRepository) GetQuote(ctx context.Context, symbol string) (*MarketQuote, error) {
	m.calls = append(m.calls, symbol)
	if m.getQuoteFn != nil {
		return m.getQuoteFn(ctx, symbol)
	}
	return nil, errors.New("not configured")
}

func newTestStocksUsecase(market MarketRepository) *StocksUsecase {
	return NewStocksUsecase(market).WithClock(func() time.Time { return stocksNow })
}

func TestGetStockData_Success(t *testing.T) {
	t.Parallel()

	market := &mockMarketRepository{
		getQuoteFn: func(ctx context.Context, symbol string) (*MarketQuote, error) {
			return &MarketQuote{
				Price:         210.503,
				PreviousClose: 200.0,
				Volume:        89_200_000,
				MarketCap:     2_900_000_000_000,
				Name:          "Apple Inc.",
			}, nil
		},
	}
	uc := newTestStocksUsecase(market)

	quotes := uc.GetStockData(context.Background(), []string{"AAPL"})
	require.Contains(t, quotes, "AAPL")

	q := quotes["AAPL"]
	assert.Equal(t, "AAPL", q.Symbol)
	assert.Equal(t, 210.50, q.Price)
	assert.Equal(t, 5.25, q.Change)
	assert.Equal(t, "89.2M", q.Volume)
	assert.Equal(t, "2.9T", q.MarketCap)
	assert.Equal(t, "Apple Inc.", q.Name)
	assert.Equal(t, stocksNow.Format(time.RFC3339), q.LastUpdated)
}

// TestGetStockData_PerSymbolFallback は失敗した銘柄だけが
// フォールバックに差し替わることを検証します。
func TestGetStockData_PerSymbolFallback(t *testing.T) {
	t.Parallel()

	market := &mockMarketRepository{
		getQuoteFn: func(ctx context.Context, symbol string) (*MarketQuote, error) {
			if symbol == "TSLA" {
				return nil, errors.New("upstream timeout")
			}
			return &MarketQuote{Price: 100, PreviousClose: 100, Volume: 1e6, MarketCap: 1e9}, nil
		},
	}
	uc := newTestStocksUsecase(market)

	quotes := uc.GetStockData(context.Background(), []string{"AAPL", "TSLA", "MSFT"})
	require.Len(t, quotes, 3)
	assert.Equal(t, []string{"AAPL", "TSLA", "MSFT"}, market.calls)

	// TSLAだけ定型クオート
	assert.Equal(t, 267.34, quotes["TSLA"].Price)
	assert.Equal(t, "849.2B", quotes["TSLA"].MarketCap)
	assert.Equal(t, "Tesla Inc.", quotes["TSLA"].Name)
	assert.Equal(t, 100.0, quotes["AAPL"].Price)
}

func TestGetStockData_UnknownSymbolFallback(t *testing.T) {
	t.Parallel()

	uc := newTestStocksUsecase(&mockMarketRepository{})

	quotes := uc.GetStockData(context.Background(), []string{"ZZZZ"})
	q := quotes["ZZZZ"]
	assert.Equal(t, 100.00, q.Price)
	assert.Equal(t, 0.0, q.Change)
	assert.Equal(t, "1.0B", q.MarketCap)
	assert.Equal(t, "10.0M", q.Volume)
	assert.Equal(t, "ZZZZ", q.Name)
	assert.Equal(t, stocksNow.Format(time.RFC3339), q.LastUpdated)
}

// TestFormatQuote_ZeroPreviousClose は前日終値ゼロでの変化率計算を検証します。
func TestFormatQuote_ZeroPreviousClose(t *testing.T) {
	t.Parallel()

	uc := newTestStocksUsecase(&mockMarketRepository{})
	q := uc.formatQuote("AAPL", &MarketQuote{Price: 189.45, PreviousClose: 0})
	assert.Equal(t, 0.0, q.Change)
	// 会社名が空ならシンボルで埋める
	assert.Equal(t, "AAPL", q.Name)
}

func TestFormatMarketCap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cap  int64
		want string
	}{
		{cap: 2_900_000_000_000, want: "2.9T"},
		{cap: 1_000_000_000_000, want: "1.0T"},
		{cap: 849_200_000_000, want: "849.2B"},
		{cap: 1_000_000_000, want: "1.0B"},
		{cap: 10_000_000, want: "10.0M"},
		{cap: 250_000_000, want: "250.0M"},
		{cap: 999_999, want: "999,999"},
		{cap: 0, want: "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMarketCap(tt.cap), "cap=%d", tt.cap)
	}
}

func TestFormatVolume(t *testing.T) {
	t.Parallel()

	tests := []struct {
		volume int64
		want   string
	}{
		{volume: 1_500_000_000, want: "1.5B"},
		{volume: 89_200_000, want: "89.2M"},
		{volume: 15_300, want: "15.3K"},
		{volume: 999, want: "999"},
		{volume: 0, want: "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatVolume(tt.volume), "volume=%d", tt.volume)
	}
}
