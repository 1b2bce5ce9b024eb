package usecase

import (
	"time"

	"smartledger_backend/internal/feature/news/domain/entity"
)

// fallbackSeed はフォールバック記事の静的な元データです。
type fallbackSeed struct {
	title       string
	description string
	url         string
	source      string
}

// fallbackSeeds はカテゴリごとの定型記事です。ライブ取得が失敗した場合や
// 有効な記事が集まらなかった場合に現在時刻を付与して返します。
var fallbackSeeds = map[string][]fallbackSeed{
	"finance": {
		{
			title:       "Federal Reserve Signals Continued Monetary Policy Adjustments",
			description: "The Federal Reserve continues to monitor economic indicators and adjust monetary policy to support sustainable growth and price stability.",
			url:         "https://www.federalreserve.gov/monetarypolicy/fomccalendars.htm",
			source:      "Federal Reserve",
		},
		{
			title:       "Financial Markets Show Mixed Signals Amid Economic Uncertainty",
			description: "Market analysts report mixed signals as investors navigate changing economic conditions and geopolitical developments.",
			url:         "https://www.bloomberg.com/markets",
			source:      "Bloomberg",
		},
		{
			title:       "Digital Banking Innovation Continues to Transform Financial Services",
			description: "Financial technology companies continue to drive innovation in digital banking, mobile payments, and customer experience.",
			url:         "https://techcrunch.com/category/fintech/",
			source:      "TechCrunch",
		},
	},
	"investing": {
		{
			title:       "Technology Stocks Lead Market Performance in Current Quarter",
			description: "Technology sector stocks continue to show strong performance as investors focus on innovation and growth opportunities.",
			url:         "https://www.marketwatch.com/investing",
			source:      "MarketWatch",
		},
		{
			title:       "ESG Investing Trends Shape Portfolio Strategies",
			description: "Environmental, social, and governance factors increasingly influence investment decisions and portfolio construction.",
			url:         "https://www.morningstar.com/funds",
			source:      "Morningstar",
		},
	},
	"accounting": {
		{
			title:       "FASB Updates Accounting Standards for Modern Business Practices",
			description: "The Financial Accounting Standards Board continues to update accounting standards to address evolving business models and practices.",
			url:         "https://www.fasb.org/home",
			source:      "FASB",
		},
	},
	"cybersecurity": {
		{
			title:       "Cybersecurity Threats Evolve as Organizations Strengthen Defenses",
			description: "Security professionals report new threat vectors while organizations implement advanced cybersecurity measures.",
			url:         "https://www.cisa.gov/news-events/cybersecurity-advisories",
			source:      "CISA",
		},
	},
	"worldnews": {
		{
			title:       "Global Economic Cooperation Continues Through International Forums",
			description: "International organizations work together to address global economic challenges and promote sustainable development.",
			url:         "https://www.reuters.com/world/",
			source:      "Reuters",
		},
	},
}

// fallbackArticles は指定カテゴリの定型記事を現在時刻付きで組み立てます。
// 未知のカテゴリはfinanceの定型記事で代用します。
func fallbackArticles(category string, now time.Time, pickImage ImagePicker) []entity.Article {
	seeds, ok := fallbackSeeds[category]
	if !ok {
		seeds = fallbackSeeds["finance"]
	}

	out := make([]entity.Article, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, entity.Article{
			Title:       s.title,
			Description: s.description,
			URL:         s.url,
			PublishedAt: now.UTC().Format(publishedAtFormat),
			Source:      s.source,
			Image:       pickImage(),
			ScrapedAt:   now.Format(time.RFC3339),
		})
	}
	return out
}
