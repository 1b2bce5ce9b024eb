// Package entity はstocksフィーチャーのドメインモデルを定義します。
package entity

// Quote は1銘柄分の表示用クオートです。
type Quote struct {
	Symbol      string  `json:"symbol"`       // ティッカーシンボル
	Price       float64 `json:"price"`        // 現在値（小数2桁）
	Change      float64 `json:"change"`       // 前日終値比の変化率（%）
	Volume      string  `json:"volume"`       // 出来高の略記表記（例 "89.2M"）
	MarketCap   string  `json:"marketCap"`    // 時価総額の略記表記（例 "2.9T"）
	Name        string  `json:"name"`         // 表示名
	LastUpdated string  `json:"last_updated"` // 取得日時
}
