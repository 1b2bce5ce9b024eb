package dto

import "smartledger_backend/internal/feature/stocks/domain/entity"

// StocksResponse はウォッチリスト全銘柄のクオートレスポンスです。
type StocksResponse struct {
	Stocks      map[string]entity.Quote `json:"stocks"`
	LastUpdated string                  `json:"last_updated"`
	Status      string                  `json:"status"`
}
