package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	newsentity "smartledger_backend/internal/feature/news/domain/entity"
)

// NewsProbe はニュースプロバイダの疎通状態とキー設定を照会します。
type NewsProbe interface {
	CheckStatus(ctx context.Context) error
	KeyConfigured() bool
	KeyPreview() string
}

// RequestCounter はプロバイダへのリクエスト数の統計を照会します。
type RequestCounter interface {
	RequestCount() int
	LastReset() time.Time
}

// CacheSizer はキャッシュストアのエントリ数を照会します。
type CacheSizer interface {
	Len() int
}

// StatusHandler はサービスステータスとデバッグ情報のエンドポイントを処理します。
type StatusHandler struct {
	probe      NewsProbe
	counter    RequestCounter
	newsCache  CacheSizer
	stockCache CacheSizer
	chartCache CacheSizer
	newsTTL    time.Duration
}

// NewStatusHandler はStatusHandlerの新しいインスタンスを生成します。
func NewStatusHandler(probe NewsProbe, counter RequestCounter,
	newsCache, stockCache, chartCache CacheSizer, newsTTL time.Duration) *StatusHandler {
	return &StatusHandler{
		probe:      probe,
		counter:    counter,
		newsCache:  newsCache,
		stockCache: stockCache,
		chartCache: chartCache,
		newsTTL:    newsTTL,
	}
}

// Home はサービスの稼働状態と設定の概要を返します。
//
// エンドポイント例:
// GET /
func (h *StatusHandler) Home(c *gin.Context) {
	apiStatus := "Active"
	if !h.probe.KeyConfigured() {
		apiStatus = "Not Configured (Using Fallback)"
	}

	c.JSON(200, gin.H{
		"status":            "Smart Ledger NewsAPI Backend is running!",
		"version":           "3.2.0",
		"current_time":      time.Now().Format(time.RFC3339),
		"newsapi_status":    apiStatus,
		"api_request_count": h.counter.RequestCount(),
		"categories":        newsentity.CategoryNames,
		"cache_info": gin.H{
			"news_entries":           h.newsCache.Len(),
			"cache_duration_minutes": h.newsTTL.Minutes(),
		},
		"features": []string{
			"Real NewsAPI integration",
			"Enhanced error tracking",
			"Reduced cache duration (10 min)",
			"API status monitoring",
			"Real-time stock data",
			"Real historical stock charts",
		},
		"endpoints": gin.H{
			"news":    "/api/news/<category>",
			"stocks":  "/api/stocks",
			"chart":   "/api/chart/<symbol>",
			"refresh": "/api/refresh/<category>",
			"debug":   "/api/debug",
			"health":  "/",
		},
	})
}

// Debug はニュースプロバイダの疎通確認結果とキャッシュの内訳を返します。
//
// エンドポイント例:
// GET /api/debug
func (h *StatusHandler) Debug(c *gin.Context) {
	working := h.probe.CheckStatus(c.Request.Context()) == nil

	c.JSON(200, gin.H{
		"newsapi_working":    working,
		"api_key_configured": h.probe.KeyConfigured(),
		"api_key_preview":    h.probe.KeyPreview(),
		"request_count":      h.counter.RequestCount(),
		"last_reset":         h.counter.LastReset().Format(time.RFC3339),
		"cache_entries": gin.H{
			"news":   h.newsCache.Len(),
			"stocks": h.stockCache.Len(),
			"charts": h.chartCache.Len(),
		},
		"cache_duration_minutes": h.newsTTL.Minutes(),
		"current_time":           time.Now().Format(time.RFC3339),
		"recommendations": []string{
			"Check if NewsAPI key is valid at https://newsapi.org/account",
			"Ensure you haven't exceeded the monthly request limit",
			"Try clearing cache by calling /api/refresh/<category>",
			"Check backend logs for detailed error messages",
		},
	})
}
