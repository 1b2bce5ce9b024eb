package main

import (
	"context"
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"smartledger_backend/internal/app/di"
	"smartledger_backend/internal/app/router"
	chartsentity "smartledger_backend/internal/feature/charts/domain/entity"
	chartshandler "smartledger_backend/internal/feature/charts/transport/handler"
	chartsusecase "smartledger_backend/internal/feature/charts/usecase"
	newsentity "smartledger_backend/internal/feature/news/domain/entity"
	newshandler "smartledger_backend/internal/feature/news/transport/handler"
	newsusecase "smartledger_backend/internal/feature/news/usecase"
	stockshandler "smartledger_backend/internal/feature/stocks/transport/handler"
	stocksdto "smartledger_backend/internal/feature/stocks/transport/http/dto"
	stocksusecase "smartledger_backend/internal/feature/stocks/usecase"
	"smartledger_backend/internal/platform/cache"
	"smartledger_backend/internal/platform/externalapi/yahoo"
	"smartledger_backend/internal/platform/http/handler"
	infraredis "smartledger_backend/internal/platform/redis"
)

// 各キャッシュの鮮度ウィンドウ。ニュースは更新頻度重視で短め、チャートは長め。
const (
	newsCacheTTL  = 10 * time.Minute
	stockCacheTTL = 5 * time.Minute
	chartCacheTTL = 60 * time.Minute
)

func main() {
	// Redis（チャート系列の共有キャッシュ層。未構成ならプロセス内キャッシュのみで動く）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without shared chart cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Provider
	newsProvider := di.NewNewsProvider()
	market := yahoo.NewYahooMarket()

	// Redisキャッシュでラップ
	cachedSeries := cache.NewCachingSeriesRepository(rdb, chartCacheTTL, market, "charts")

	// Usecase
	newsUC := newsusecase.NewNewsUsecase(newsProvider)
	stocksUC := stocksusecase.NewStocksUsecase(market)
	chartsUC := chartsusecase.NewChartsUsecase(cachedSeries)

	// リクエストハンドラに注入するTTLストア（ニュース・株価・チャートで独立）
	newsStore := cache.NewTTLStore[newsentity.NewsResult](newsCacheTTL)
	stockStore := cache.NewTTLStore[stocksdto.StocksResponse](stockCacheTTL)
	chartStore := cache.NewTTLStore[chartsentity.ChartSeries](chartCacheTTL)

	// Handler
	newsH := newshandler.NewNewsHandler(newsUC, newsStore)
	stocksH := stockshandler.NewStocksHandler(stocksUC, stockStore)
	chartsH := chartshandler.NewChartHandler(chartsUC, chartStore)
	statusH := handler.NewStatusHandler(newsProvider, newsUC, newsStore, stockStore, chartStore, newsCacheTTL)

	// 起動時にプロバイダの疎通を確認しておく（失敗してもフォールバックで稼働する）
	func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := newsProvider.CheckStatus(ctx); err != nil {
			log.Println("[WARN] NewsAPI issues detected - check /api/debug:", err)
		} else {
			log.Println("NewsAPI is working properly")
		}
	}()

	// ルータ生成
	router := router.NewRouter(statusH, newsH, stocksH, chartsH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
