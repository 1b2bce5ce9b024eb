// Package usecase はウォッチリスト銘柄のクオート取得ロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
	"math"
	"time"

	"smartledger_backend/internal/feature/stocks/domain/entity"
)

// Watchlist は固定のウォッチリスト銘柄です。
var Watchlist = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA", "NVDA", "META", "NFLX"}

// MarketQuote はマーケットデータプロバイダから返る1銘柄分の生データです。
type MarketQuote struct {
	Price         float64 // 直近の取引価格
	PreviousClose float64 // 前日終値
	Volume        int64
	MarketCap     int64
	Name          string
}

// MarketRepository はリアルタイムクオートの取得レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	GetQuote(ctx context.Context, symbol string) (*MarketQuote, error)
}

// StocksUsecase はウォッチリスト銘柄のクオート取得を調停します。
type StocksUsecase struct {
	market MarketRepository
	now    func() time.Time
}

// NewStocksUsecase はStocksUsecaseの新しいインスタンスを生成します。
func NewStocksUsecase(market MarketRepository) *StocksUsecase {
	return &StocksUsecase{market: market, now: time.Now}
}

// WithClock は時刻源を差し替えます（テスト用）。
func (u *StocksUsecase) WithClock(clock func() time.Time) *StocksUsecase {
	u.now = clock
	return u
}

// GetStockData は各銘柄のクオートを取得して表示用に整形します。
// 銘柄ごとに独立して処理し、失敗した銘柄だけフォールバックに差し替えます。
func (u *StocksUsecase) GetStockData(ctx context.Context, symbols []string) map[string]entity.Quote {
	quotes := make(map[string]entity.Quote, len(symbols))
	for _, symbol := range symbols {
		mq, err := u.market.GetQuote(ctx, symbol)
		if err != nil {
			slog.Error("failed to fetch quote, using fallback", "symbol", symbol, "error", err)
			quotes[symbol] = u.fallbackQuote(symbol)
			continue
		}
		quotes[symbol] = u.formatQuote(symbol, mq)
	}
	return quotes
}

// formatQuote は生のクオートを表示用Quoteに変換します。
// 前日終値が0以下の場合は変化率を0%として扱います（ゼロ除算ガード）。
func (u *StocksUsecase) formatQuote(symbol string, mq *MarketQuote) entity.Quote {
	change := 0.0
	if mq.PreviousClose > 0 {
		change = (mq.Price - mq.PreviousClose) / mq.PreviousClose * 100
	}

	name := mq.Name
	if name == "" {
		name = symbol
	}

	return entity.Quote{
		Symbol:      symbol,
		Price:       round2(mq.Price),
		Change:      round2(change),
		Volume:      FormatVolume(mq.Volume),
		MarketCap:   FormatMarketCap(mq.MarketCap),
		Name:        name,
		LastUpdated: u.now().Format(time.RFC3339),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
