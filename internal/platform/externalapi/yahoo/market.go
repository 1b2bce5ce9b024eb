// Package yahoo はYahoo Financeから株価データを取得するリポジトリ実装です。
// HTTP呼び出しにはfinance-go SDKを利用します。
package yahoo

import (
	"context"
	"fmt"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/shopspring/decimal"

	chartsusecase "smartledger_backend/internal/feature/charts/usecase"
	stocksusecase "smartledger_backend/internal/feature/stocks/usecase"
)

// YahooMarket はリアルタイムクオートと日足系列の両方を提供します。
type YahooMarket struct {
	now func() time.Time
}

// YahooMarketが両リポジトリを実装していることをコンパイル時に検証します。
var (
	_ stocksusecase.MarketRepository = (*YahooMarket)(nil)
	_ chartsusecase.SeriesRepository = (*YahooMarket)(nil)
)

// NewYahooMarket はYahooMarketの新しいインスタンスを生成します。
func NewYahooMarket() *YahooMarket {
	return &YahooMarket{now: time.Now}
}

// GetQuote は1銘柄のリアルタイムクオートを取得します。
// equity.GetはContextを受け取らないため、呼び出し前にキャンセルだけ確認します。
func (y *YahooMarket) GetQuote(ctx context.Context, symbol string) (*stocksusecase.MarketQuote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	eq, err := equity.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("yahoo quote %s: %w", symbol, err)
	}
	if eq == nil || eq.RegularMarketPrice == 0 {
		return nil, fmt.Errorf("yahoo quote %s: empty result", symbol)
	}

	return &stocksusecase.MarketQuote{
		Price:         eq.RegularMarketPrice,
		PreviousClose: eq.RegularMarketPreviousClose,
		Volume:        int64(eq.RegularMarketVolume),
		MarketCap:     eq.MarketCap,
		Name:          eq.LongName,
	}, nil
}

// GetDailySeries は直近1ヶ月の日足終値の系列を取得します。
func (y *YahooMarket) GetDailySeries(ctx context.Context, symbol string) ([]chartsusecase.Point, error) {
	end := y.now()
	start := end.AddDate(0, -1, 0)

	iter := chart.Get(&chart.Params{
		Params:   finance.Params{Context: &ctx},
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	})

	var points []chartsusecase.Point
	for iter.Next() {
		b := iter.Bar()
		t := time.Unix(int64(b.Timestamp), 0).UTC()
		points = append(points, chartsusecase.Point{
			Label: t.Format("Jan 02"),
			Price: closePrice(b.Close),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, err)
	}
	return points, nil
}

// closePrice は終値を小数2桁のfloat64に変換します。
func closePrice(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
