// Package api は各ハンドラーで共有するHTTPレスポンスの型を定義します。
package api

// ErrorResponse はエラーレスポンスの共通エンベロープです。
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// InvalidCategoryResponse は不正なカテゴリ指定時のレスポンスです。
// 有効なカテゴリの一覧を添えて返します。
type InvalidCategoryResponse struct {
	Error           string   `json:"error"`
	ValidCategories []string `json:"valid_categories"`
}
