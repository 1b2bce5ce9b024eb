// Package newsapi はNewsAPIからニュース記事を取得するSearchProvider実装です。
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"smartledger_backend/internal/feature/news/adapters/newsapi/dto"
	"smartledger_backend/internal/feature/news/usecase"
)

// defaultPageSize は1リクエストあたりの記事取得件数です。
const defaultPageSize = 20

// Client はNewsAPIの /v2/everything エンドポイントを呼び出すクライアントです。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがSearchProviderを実装していることをコンパイル時に検証します。
var _ usecase.SearchProvider = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// CheckStatus はAPIキーが有効で疎通できるかを軽量なリクエストで確認します。
func (c *Client) CheckStatus(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.ProbeTimeout)
	defer cancel()

	q := url.Values{}
	q.Set("apiKey", c.cfg.APIKey)
	q.Set("q", "test")
	q.Set("pageSize", "1")
	q.Set("language", "en")

	body, err := c.get(ctx, q)
	if err != nil {
		return err
	}
	if body.Status != "ok" {
		return fmt.Errorf("newsapi status %q: %s", body.Status, body.Message)
	}
	return nil
}

// Search は1ストラテジー分の検索を実行します。HTTP 429はErrRateLimitedとして返します。
func (c *Client) Search(ctx context.Context, query usecase.SearchQuery) ([]usecase.RawArticle, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	q := url.Values{}
	q.Set("apiKey", c.cfg.APIKey)
	q.Set("language", "en")
	q.Set("pageSize", strconv.Itoa(defaultPageSize))
	q.Set("q", query.Query)
	if query.Sources != "" {
		q.Set("sources", query.Sources)
	}
	if query.Domains != "" {
		q.Set("domains", query.Domains)
	}
	if query.Language != "" {
		q.Set("language", query.Language)
	}
	if query.From != "" {
		q.Set("from", query.From)
	}
	if query.SortBy != "" {
		q.Set("sortBy", query.SortBy)
	}

	body, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}
	if body.Status != "ok" {
		return nil, fmt.Errorf("newsapi status %q: %s", body.Status, body.Message)
	}

	slog.Info("newsapi search succeeded", "query", query.Query, "found", len(body.Articles), "total", body.TotalResults)

	raws := make([]usecase.RawArticle, 0, len(body.Articles))
	for _, a := range body.Articles {
		raws = append(raws, usecase.RawArticle{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			SourceName:  a.Source.Name,
			ImageURL:    a.URLToImage,
		})
	}
	return raws, nil
}

// get は /everything へのGETリクエストを実行し、レスポンスをデコードします。
func (c *Client) get(ctx context.Context, q url.Values) (*dto.EverythingResponse, error) {
	u := fmt.Sprintf("%s/everything?%s", c.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	switch {
	case res.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("newsapi http %d: %w", res.StatusCode, usecase.ErrRateLimited)
	case res.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("newsapi http %d: invalid api key", res.StatusCode)
	case res.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("newsapi http %d", res.StatusCode)
	}

	var body dto.EverythingResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	return &body, nil
}

// KeyConfigured はAPIキーが設定されているかを返します。
func (c *Client) KeyConfigured() bool {
	return c.cfg.APIKey != ""
}

// KeyPreview はデバッグ表示用にAPIキーの先頭8文字だけを返します。
func (c *Client) KeyPreview() string {
	if len(c.cfg.APIKey) < 8 {
		return "Not set"
	}
	return c.cfg.APIKey[:8] + "..."
}
