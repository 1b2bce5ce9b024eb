// Package handler はnewsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smartledger_backend/internal/api"
	"smartledger_backend/internal/feature/news/domain/entity"
	"smartledger_backend/internal/platform/cache"
)

// NewsUsecase はニュース取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type NewsUsecase interface {
	GetCategoryNews(ctx context.Context, category string) (*entity.NewsResult, error)
	ResetCounter()
}

// NewsHandler はニュース関連のHTTPリクエストを処理します。
// カテゴリごとの取得結果をTTLストアに保持し、ウィンドウ内はキャッシュから返します。
type NewsHandler struct {
	uc    NewsUsecase
	store *cache.TTLStore[entity.NewsResult]
}

// NewNewsHandler は指定されたusecaseとキャッシュストアでNewsHandlerを生成します。
func NewNewsHandler(uc NewsUsecase, store *cache.TTLStore[entity.NewsResult]) *NewsHandler {
	return &NewsHandler{uc: uc, store: store}
}

// GetNews はカテゴリのニュースを返します。
//
// エンドポイント例:
// GET /api/news/finance
func (h *NewsHandler) GetNews(c *gin.Context) {
	category := c.Param("category")
	if !entity.IsValidCategory(category) {
		c.JSON(http.StatusBadRequest, api.InvalidCategoryResponse{
			Error:           "Invalid category",
			ValidCategories: entity.CategoryNames,
		})
		return
	}

	// キャッシュが新しければそのまま返す（キャッシュ由来であることを付記する）
	if data, cachedAt, ok := h.store.Get(category); ok {
		slog.Info("returning cached news", "category", category)
		data.Debug.FromCache = true
		data.Debug.CachedAt = cachedAt.Format(time.RFC3339)
		c.JSON(http.StatusOK, data)
		return
	}

	slog.Info("fetching fresh news", "category", category)
	data, err := h.uc.GetCategoryNews(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    "Failed to fetch news",
			"message":  err.Error(),
			"category": category,
		})
		return
	}

	h.store.Set(category, *data)
	c.JSON(http.StatusOK, data)
}

// RefreshNews はカテゴリのキャッシュを破棄し、リクエストカウンタをリセットした上で
// GetNewsと同じレスポンスを返します。
//
// エンドポイント例:
// GET /api/refresh/finance
func (h *NewsHandler) RefreshNews(c *gin.Context) {
	category := c.Param("category")
	if !entity.IsValidCategory(category) {
		c.JSON(http.StatusBadRequest, api.InvalidCategoryResponse{
			Error:           "Invalid category",
			ValidCategories: entity.CategoryNames,
		})
		return
	}

	h.store.Delete(category)
	h.uc.ResetCounter()
	slog.Info("cleared news cache", "category", category)

	h.GetNews(c)
}
