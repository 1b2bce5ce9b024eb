// Package entity はchartsフィーチャーのドメインモデルを定義します。
package entity

// ChartSeries は1銘柄分の時系列チャートデータです。
// labels/dataはフロントエンドのChart.jsがそのまま描画できる形にしています。
type ChartSeries struct {
	Labels      []string  `json:"labels"`       // 各ポイントの日付ラベル（例 "Jan 02"）
	Data        []float64 `json:"data"`         // 終値の系列
	Symbol      string    `json:"symbol"`       // ティッカーシンボル
	Period      string    `json:"period"`       // 取得期間（固定 "1mo"）
	Source      string    `json:"source"`       // "yahoo_finance" または "fallback"
	LastUpdated string    `json:"last_updated"` // 取得日時
}
