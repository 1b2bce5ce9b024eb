package newsapi

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config はNewsAPIクライアントの設定です。
type Config struct {
	APIKey       string
	BaseURL      string
	Timeout      time.Duration // 検索リクエストのタイムアウト
	ProbeTimeout time.Duration // 疎通確認のタイムアウト
}

// LoadConfig は環境変数からNewsAPIの設定を読み込みます。
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env ファイルが見つかりませんでした")
	}

	baseURL := os.Getenv("NEWS_API_BASE_URL")
	if baseURL == "" {
		baseURL = "https://newsapi.org/v2"
	}

	return Config{
		APIKey:       os.Getenv("NEWS_API_KEY"),
		BaseURL:      baseURL,
		Timeout:      15 * time.Second,
		ProbeTimeout: 10 * time.Second,
	}
}
