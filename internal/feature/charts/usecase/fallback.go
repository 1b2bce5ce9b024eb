package usecase

import (
	"crypto/md5"
	"encoding/hex"
	"math/rand"
	"strconv"
	"time"
)

const (
	// fallbackDays は合成系列の日数です。
	fallbackDays = 30
	// fallbackBasePrice はランダムウォークの起点価格です。
	fallbackBasePrice = 100.0
)

// fallbackSeries はシンボルのハッシュをシードにした決定的な合成系列を生成します。
// 同じシンボルなら何度呼んでも（プロセスをまたいでも）同一の30点を返します。
// 1日あたりの変化率は±5%の一様乱数です。
func fallbackSeries(symbol string, now time.Time) (labels []string, data []float64) {
	sum := md5.Sum([]byte(symbol))
	seed, _ := strconv.ParseInt(hex.EncodeToString(sum[:])[:8], 16, 64)
	r := rand.New(rand.NewSource(seed))

	price := fallbackBasePrice
	for i := 0; i < fallbackDays; i++ {
		date := now.AddDate(0, 0, -(fallbackDays - i))
		labels = append(labels, date.Format("Jan 02"))

		change := -0.05 + r.Float64()*0.10
		price *= 1 + change
		data = append(data, round2(price))
	}
	return labels, data
}
