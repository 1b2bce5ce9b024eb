// Package handler はstocksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smartledger_backend/internal/feature/stocks/domain/entity"
	"smartledger_backend/internal/feature/stocks/transport/http/dto"
	"smartledger_backend/internal/feature/stocks/usecase"
	"smartledger_backend/internal/platform/cache"
)

// cacheKey はウォッチリスト全体で1エントリのため固定キーを使います。
const cacheKey = "stocks"

// StocksUsecase はクオート取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type StocksUsecase interface {
	GetStockData(ctx context.Context, symbols []string) map[string]entity.Quote
}

// StocksHandler はウォッチリスト銘柄のHTTPリクエストを処理します。
type StocksHandler struct {
	uc    StocksUsecase
	store *cache.TTLStore[dto.StocksResponse]
}

// NewStocksHandler は指定されたusecaseとキャッシュストアでStocksHandlerを生成します。
func NewStocksHandler(uc StocksUsecase, store *cache.TTLStore[dto.StocksResponse]) *StocksHandler {
	return &StocksHandler{uc: uc, store: store}
}

// GetStocks は固定ウォッチリストのクオート一覧を返します。
//
// エンドポイント例:
// GET /api/stocks
func (h *StocksHandler) GetStocks(c *gin.Context) {
	if data, _, ok := h.store.Get(cacheKey); ok {
		slog.Info("returning cached stock data")
		c.JSON(http.StatusOK, data)
		return
	}

	slog.Info("fetching fresh stock data")
	stocks := h.uc.GetStockData(c.Request.Context(), usecase.Watchlist)

	res := dto.StocksResponse{
		Stocks:      stocks,
		LastUpdated: time.Now().Format(time.RFC3339),
		Status:      "success",
	}
	h.store.Set(cacheKey, res)

	c.JSON(http.StatusOK, res)
}
