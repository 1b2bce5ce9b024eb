package usecase

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatMarketCap は時価総額を桁に応じたT/B/M付きの略記にします。
// 閾値に満たない値はカンマ区切りの素の数値を返します。
func FormatMarketCap(cap int64) string {
	v := float64(cap)
	switch {
	case v >= 1e12:
		return fmt.Sprintf("%.1fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("%.1fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	default:
		return humanize.Comma(cap)
	}
}

// FormatVolume は出来高を桁に応じたB/M/K付きの略記にします。
func FormatVolume(volume int64) string {
	v := float64(volume)
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.1fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	default:
		return humanize.Comma(volume)
	}
}
