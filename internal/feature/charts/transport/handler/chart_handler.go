// Package handler はchartsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"smartledger_backend/internal/feature/charts/domain/entity"
	"smartledger_backend/internal/platform/cache"
)

// ChartsUsecase はチャート取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ChartsUsecase interface {
	GetChartSeries(ctx context.Context, symbol string) *entity.ChartSeries
}

// ChartHandler はヒストリカルチャートのHTTPリクエストを処理します。
type ChartHandler struct {
	uc    ChartsUsecase
	store *cache.TTLStore[entity.ChartSeries]
}

// NewChartHandler は指定されたusecaseとキャッシュストアでChartHandlerを生成します。
func NewChartHandler(uc ChartsUsecase, store *cache.TTLStore[entity.ChartSeries]) *ChartHandler {
	return &ChartHandler{uc: uc, store: store}
}

// GetChart は銘柄の1ヶ月分チャートデータを返します。シンボルは大文字に正規化します。
//
// エンドポイント例:
// GET /api/chart/aapl
func (h *ChartHandler) GetChart(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))

	if data, _, ok := h.store.Get(symbol); ok {
		slog.Info("returning cached chart data", "symbol", symbol)
		c.JSON(http.StatusOK, data)
		return
	}

	slog.Info("fetching fresh chart data", "symbol", symbol)
	data := h.uc.GetChartSeries(c.Request.Context(), symbol)
	h.store.Set(symbol, *data)

	c.JSON(http.StatusOK, data)
}
