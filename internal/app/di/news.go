// Package di provides dependency injection factories for creating application components.
package di

import (
	"smartledger_backend/internal/feature/news/adapters/newsapi"
	infrahttp "smartledger_backend/internal/platform/http"
)

// NewNewsProvider creates a fully configured NewsAPI client with HTTP client.
func NewNewsProvider() *newsapi.Client {
	cfg := newsapi.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return newsapi.NewClient(cfg, httpClient)
}
