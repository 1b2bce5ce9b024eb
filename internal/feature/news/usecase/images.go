package usecase

import "math/rand"

// stockImages は画像の無い記事に割り当てる固定プールです。
var stockImages = []string{
	"https://images.unsplash.com/photo-1504711434969-e33886168f5c?w=400&h=200&fit=crop",
	"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=200&fit=crop",
	"https://images.unsplash.com/photo-1554224155-6726b3ff858f?w=400&h=200&fit=crop",
	"https://images.unsplash.com/photo-1559526324-4b87b5e36e44?w=400&h=200&fit=crop",
	"https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=400&h=200&fit=crop",
}

// RandomImage は固定プールからランダムに1枚選びます。デフォルトのImagePickerです。
func RandomImage() string {
	return stockImages[rand.Intn(len(stockImages))]
}
