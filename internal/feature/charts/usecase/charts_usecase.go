// Package usecase はヒストリカルチャートの取得ロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
	"math"
	"time"

	"smartledger_backend/internal/feature/charts/domain/entity"
)

// Period は取得する固定の期間です（直近1ヶ月の日足）。
const Period = "1mo"

// チャートデータのソースタグ。
const (
	SourceLive     = "yahoo_finance"
	SourceFallback = "fallback"
)

// Point はチャートの1ポイント（日付ラベルと終値）です。
type Point struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// SeriesRepository は日足の価格系列の取得レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SeriesRepository interface {
	GetDailySeries(ctx context.Context, symbol string) ([]Point, error)
}

// ChartsUsecase はチャートデータの取得を調停します。
type ChartsUsecase struct {
	market SeriesRepository
	now    func() time.Time
}

// NewChartsUsecase はChartsUsecaseの新しいインスタンスを生成します。
func NewChartsUsecase(market SeriesRepository) *ChartsUsecase {
	return &ChartsUsecase{market: market, now: time.Now}
}

// WithClock は時刻源を差し替えます（テスト用）。
func (u *ChartsUsecase) WithClock(clock func() time.Time) *ChartsUsecase {
	u.now = clock
	return u
}

// GetChartSeries は指定銘柄の1ヶ月分の日足系列を返します。
// 取得に失敗した場合や空の場合は、シンボルから決定的に生成した
// 合成系列に切り替えます。
func (u *ChartsUsecase) GetChartSeries(ctx context.Context, symbol string) *entity.ChartSeries {
	points, err := u.market.GetDailySeries(ctx, symbol)
	if err != nil || len(points) == 0 {
		if err != nil {
			slog.Error("failed to fetch chart data, using fallback", "symbol", symbol, "error", err)
		} else {
			slog.Warn("no historical data found, using fallback", "symbol", symbol)
		}
		labels, data := fallbackSeries(symbol, u.now())
		return u.assemble(symbol, labels, data, SourceFallback)
	}

	labels := make([]string, 0, len(points))
	data := make([]float64, 0, len(points))
	for _, p := range points {
		labels = append(labels, p.Label)
		data = append(data, round2(p.Price))
	}
	return u.assemble(symbol, labels, data, SourceLive)
}

func (u *ChartsUsecase) assemble(symbol string, labels []string, data []float64, source string) *entity.ChartSeries {
	return &entity.ChartSeries{
		Labels:      labels,
		Data:        data,
		Symbol:      symbol,
		Period:      Period,
		Source:      source,
		LastUpdated: u.now().Format(time.RFC3339),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
