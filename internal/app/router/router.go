package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	chartshandler "smartledger_backend/internal/feature/charts/transport/handler"
	newshandler "smartledger_backend/internal/feature/news/transport/handler"
	stockshandler "smartledger_backend/internal/feature/stocks/transport/handler"
	"smartledger_backend/internal/platform/http/handler"
)

func NewRouter(status *handler.StatusHandler, news *newshandler.NewsHandler,
	stocks *stockshandler.StocksHandler, charts *chartshandler.ChartHandler) *gin.Engine {
	r := gin.Default()

	// フロントエンドは別オリジンで配信されるため全オリジンを許可
	r.Use(cors.Default())

	// ステータス確認用
	r.GET("/", status.Home)
	// 導通確認用
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	{
		api.GET("/debug", status.Debug)
		api.GET("/news/:category", news.GetNews)
		api.GET("/refresh/:category", news.RefreshNews)
		api.GET("/stocks", stocks.GetStocks)
		api.GET("/chart/:symbol", charts.GetChart)
	}

	return r
}
