package usecase

import (
	"time"

	"smartledger_backend/internal/feature/stocks/domain/entity"
)

// fallbackQuotes は取得失敗時に返す既知銘柄の定型クオートです。
var fallbackQuotes = map[string]entity.Quote{
	"AAPL":  {Price: 189.45, Change: 2.15, MarketCap: "2.9T", Volume: "89.2M", Name: "Apple Inc."},
	"MSFT":  {Price: 412.73, Change: 1.89, MarketCap: "3.1T", Volume: "42.1M", Name: "Microsoft Corporation"},
	"GOOGL": {Price: 142.87, Change: -0.45, MarketCap: "1.8T", Volume: "28.5M", Name: "Alphabet Inc."},
	"AMZN":  {Price: 156.92, Change: 1.67, MarketCap: "1.6T", Volume: "55.3M", Name: "Amazon.com Inc."},
	"TSLA":  {Price: 267.34, Change: 3.21, MarketCap: "849.2B", Volume: "127.4M", Name: "Tesla Inc."},
	"NVDA":  {Price: 478.92, Change: 2.78, MarketCap: "1.2T", Volume: "91.8M", Name: "NVIDIA Corporation"},
	"META":  {Price: 324.56, Change: -1.12, MarketCap: "825.4B", Volume: "23.7M", Name: "Meta Platforms Inc."},
	"NFLX":  {Price: 445.89, Change: 0.93, MarketCap: "198.3B", Volume: "15.2M", Name: "Netflix Inc."},
}

// fallbackQuote は既知銘柄なら定型クオート、未知の銘柄なら汎用プレースホルダを返します。
func (u *StocksUsecase) fallbackQuote(symbol string) entity.Quote {
	q, ok := fallbackQuotes[symbol]
	if !ok {
		q = entity.Quote{Price: 100.00, Change: 0.0, MarketCap: "1.0B", Volume: "10.0M", Name: symbol}
	}
	q.Symbol = symbol
	q.LastUpdated = u.now().Format(time.RFC3339)
	return q
}
