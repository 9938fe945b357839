package platform

import "time"

var stablecoins = []Stablecoin{
	{
		ID:              "vltusd",
		Name:            "USD",
		Symbol:          "vltUSD",
		Description:     "Fiat-backed stablecoin pegged to USD with full transparency",
		Type:            "fiat-backed",
		ContractAddress: "0x1234567890123456789012345678901234567890",
		ReserveStatus:   "healthy",
		ReserveAmount:   125000000,
	},
	{
		ID:              "vltusdy",
		Name:            "Yield",
		Symbol:          "vltUSDy",
		Description:     "Yield-bearing stablecoin with automated yield generation",
		Type:            "yield-bearing",
		TargetYield:     8.5,
		ContractAddress: "0x2345678901234567890123456789012345678901",
		ReserveStatus:   "healthy",
		ReserveAmount:   87500000,
	},
	{
		ID:              "vltusde",
		Name:            "Ethereum",
		Symbol:          "vltUSDe",
		Description:     "Crypto-native stablecoin with algorithmic stability",
		Type:            "crypto-native",
		ContractAddress: "0x3456789012345678901234567890123456789012",
		ReserveStatus:   "warning",
		ReserveAmount:   45000000,
	},
}

var tokenizedAssets = []TokenizedAsset{
	{
		ID:              "tsla",
		Name:            "Tesla Inc.",
		Symbol:          "tTSLA",
		Type:            "stock",
		Description:     "Tokenized Tesla stock with real-time price tracking",
		ContractAddress: "0x4567890123456789012345678901234567890123",
		CurrentPrice:    245.67,
		Change24h:       2.34,
		Volume24h:       125000000,
		MarketCap:       780000000000,
		Category:        "Technology",
	},
	{
		ID:              "aapl",
		Name:            "Apple Inc.",
		Symbol:          "tAAPL",
		Type:            "stock",
		Description:     "Tokenized Apple stock with dividend distribution",
		ContractAddress: "0x5678901234567890123456789012345678901234",
		CurrentPrice:    189.23,
		Change24h:       -1.12,
		Volume24h:       89000000,
		MarketCap:       2950000000000,
		Category:        "Technology",
	},
	{
		ID:              "gold",
		Name:            "Gold Token",
		Symbol:          "tGOLD",
		Type:            "commodity",
		Description:     "Tokenized gold with physical backing",
		ContractAddress: "0x6789012345678901234567890123456789012345",
		CurrentPrice:    1987.45,
		Change24h:       0.87,
		Volume24h:       45000000,
		Category:        "Precious Metals",
	},
	{
		ID:              "oil",
		Name:            "Crude Oil Token",
		Symbol:          "tOIL",
		Type:            "commodity",
		Description:     "Tokenized WTI crude oil futures",
		ContractAddress: "0x7890123456789012345678901234567890123456",
		CurrentPrice:    78.92,
		Change24h:       -2.15,
		Volume24h:       32000000,
		Category:        "Energy",
	},
	{
		ID:              "openai",
		Name:            "OpenAI",
		Symbol:          "tOPENAI",
		Type:            "private-company",
		Description:     "Pre-IPO tokenized shares of OpenAI",
		ContractAddress: "0x8901234567890123456789012345678901234567",
		CurrentPrice:    125.50,
		Change24h:       5.67,
		Volume24h:       15000000,
		MarketCap:       80000000000,
		Category:        "AI/Technology",
	},
	{
		ID:              "stripe",
		Name:            "Stripe",
		Symbol:          "tSTRIPE",
		Type:            "private-company",
		Description:     "Pre-IPO tokenized shares of Stripe",
		ContractAddress: "0x9012345678901234567890123456789012345678",
		CurrentPrice:    89.75,
		Change24h:       1.23,
		Volume24h:       12000000,
		MarketCap:       95000000000,
		Category:        "Fintech",
	},
	{
		ID:              "anthropic",
		Name:            "Anthropic",
		Symbol:          "tANTHROPIC",
		Type:            "startup",
		Description:     "Early-stage AI safety company developing Claude AI",
		ContractAddress: "0xa123456789012345678901234567890123456789",
		CurrentPrice:    12.45,
		Change24h:       8.92,
		Volume24h:       8500000,
		MarketCap:       15000000000,
		Category:        "AI/Safety",
	},
	{
		ID:              "perplexity",
		Name:            "Perplexity AI",
		Symbol:          "tPERPLEXITY",
		Type:            "startup",
		Description:     "AI-powered search engine and research assistant",
		ContractAddress: "0xe567890123456789012345678901234567890123",
		CurrentPrice:    22.10,
		Change24h:       4.56,
		Volume24h:       7500000,
		MarketCap:       18000000000,
		Category:        "AI/Search",
	},
	{
		ID:              "hugging-face",
		Name:            "Hugging Face",
		Symbol:          "tHUGGING",
		Type:            "startup",
		Description:     "Open-source AI model platform and community",
		ContractAddress: "0xf678901234567890123456789012345678901234",
		CurrentPrice:    18.75,
		Change24h:       7.89,
		Volume24h:       6800000,
		MarketCap:       14000000000,
		Category:        "AI/Open Source",
	},
}

var vaults = []Vault{
	{
		ID:               "yield-vault",
		Name:             "Yield Optimizer",
		Symbol:           "YIELD-VAULT",
		Description:      "Professional yield farming strategy across multiple DeFi protocols with automated rebalancing",
		Strategy:         "Multi-protocol yield farming with risk-adjusted allocation",
		RiskLevel:        "medium",
		TargetReturn:     12.5,
		CurrentReturn:    14.2,
		TotalValueLocked: 2500000,
		MinimumDeposit:   1000,
		ManagementFee:    0.5,
		PerformanceFee:   10,
		Assets:           []string{"ETH", "USDC", "DAI", "WETH"},
		PerformanceHistory: []PerformancePoint{
			{Period: "1M", Return: 1.2},
			{Period: "3M", Return: 3.8},
			{Period: "6M", Return: 7.1},
			{Period: "1Y", Return: 14.2},
		},
		Status: "active",
	},
	{
		ID:               "ai-growth-vault",
		Name:             "AI Growth Fund",
		Symbol:           "AI-GROWTH",
		Description:      "Concentrated portfolio of AI and technology tokens with active management",
		Strategy:         "AI sector focus with momentum and fundamental analysis",
		RiskLevel:        "high",
		TargetReturn:     25.0,
		CurrentReturn:    28.7,
		TotalValueLocked: 1800000,
		MinimumDeposit:   5000,
		ManagementFee:    1.0,
		PerformanceFee:   15,
		Assets:           []string{"ETH", "ARB", "OP", "MATIC", "LINK"},
		PerformanceHistory: []PerformancePoint{
			{Period: "1M", Return: 2.8},
			{Period: "3M", Return: 8.4},
			{Period: "6M", Return: 18.2},
			{Period: "1Y", Return: 28.7},
		},
		Status: "active",
	},
	{
		ID:               "stable-income-vault",
		Name:             "Stable Income",
		Symbol:           "STABLE-INCOME",
		Description:      "Low-risk strategy focused on stablecoin yield and conservative DeFi positions",
		Strategy:         "Conservative yield generation with capital preservation focus",
		RiskLevel:        "low",
		TargetReturn:     8.0,
		CurrentReturn:    8.3,
		TotalValueLocked: 4200000,
		MinimumDeposit:   500,
		ManagementFee:    0.3,
		PerformanceFee:   5,
		Assets:           []string{"USDC", "USDT", "DAI", "FRAX"},
		PerformanceHistory: []PerformancePoint{
			{Period: "1M", Return: 0.7},
			{Period: "3M", Return: 2.1},
			{Period: "6M", Return: 4.2},
			{Period: "1Y", Return: 8.3},
		},
		Status: "active",
	},
}

var predictionMarkets = []PredictionMarket{
	{
		ID:          "btc-100k-2024",
		Title:       "Bitcoin reaches $100,000 by end of 2024",
		Description: "Will Bitcoin price reach or exceed $100,000 USD by December 31, 2024?",
		Category:    "price",
		EndDate:     time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
		Status:      "active",
		TotalVolume: 2450000,
		Liquidity:   1800000,
		Outcomes: []Outcome{
			{ID: "yes", Name: "Yes", Probability: 0.68, Odds: 1.47, Volume: 1650000, LastPrice: 0.68},
			{ID: "no", Name: "No", Probability: 0.32, Odds: 3.13, Volume: 800000, LastPrice: 0.32},
		},
		MarketMaker:      "Polymarket",
		ResolutionSource: "CoinGecko",
		Tags:             []string{"Bitcoin", "Price", "2024"},
	},
	{
		ID:          "eth-etf-approval",
		Title:       "Ethereum ETF approved by SEC in 2024",
		Description: "Will the SEC approve a spot Ethereum ETF before December 31, 2024?",
		Category:    "regulation",
		EndDate:     time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
		Status:      "active",
		TotalVolume: 3200000,
		Liquidity:   2500000,
		Outcomes: []Outcome{
			{ID: "yes", Name: "Yes", Probability: 0.45, Odds: 2.22, Volume: 1800000, LastPrice: 0.45},
			{ID: "no", Name: "No", Probability: 0.55, Odds: 1.82, Volume: 1400000, LastPrice: 0.55},
		},
		MarketMaker:      "Polymarket",
		ResolutionSource: "SEC.gov",
		Tags:             []string{"Ethereum", "ETF", "SEC", "Regulation"},
	},
	{
		ID:          "solana-200-2024",
		Title:       "Solana reaches $200 by end of 2024",
		Description: "Will Solana (SOL) price reach or exceed $200 USD by December 31, 2024?",
		Category:    "price",
		EndDate:     time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
		Status:      "active",
		TotalVolume: 1200000,
		Liquidity:   900000,
		Outcomes: []Outcome{
			{ID: "yes", Name: "Yes", Probability: 0.38, Odds: 2.63, Volume: 456000, LastPrice: 0.38},
			{ID: "no", Name: "No", Probability: 0.62, Odds: 1.61, Volume: 744000, LastPrice: 0.62},
		},
		MarketMaker:      "Polymarket",
		ResolutionSource: "CoinGecko",
		Tags:             []string{"Solana", "Price", "2024"},
	},
}

var marketInsights = []MarketInsight{
	{
		ID:          "insight-1",
		MarketID:    "btc-100k-2024",
		Type:        "technical",
		Title:       "Bitcoin Technical Analysis: Bullish Breakout Pattern",
		Description: "BTC has broken above key resistance at $75,000 with strong volume. RSI showing bullish divergence and MACD crossing above signal line.",
		Impact:      "positive",
		Confidence:  0.78,
		Source:      "TradingView",
		Timestamp:   time.Now().Add(-30 * time.Minute),
	},
	{
		ID:          "insight-2",
		MarketID:    "eth-etf-approval",
		Type:        "news",
		Title:       "SEC Commissioner Signals Openness to Ethereum ETF",
		Description: "Recent comments from SEC Commissioner suggest growing institutional acceptance of Ethereum as a commodity, potentially easing ETF approval process.",
		Impact:      "positive",
		Confidence:  0.65,
		Source:      "CoinDesk",
		Timestamp:   time.Now().Add(-time.Hour),
	},
	{
		ID:          "insight-3",
		MarketID:    "solana-200-2024",
		Type:        "fundamental",
		Title:       "Solana Ecosystem Growth Accelerating",
		Description: "Monthly active addresses on Solana increased 40% in Q4 2024, with significant growth in DeFi and NFT activity. Network upgrades improving scalability.",
		Impact:      "positive",
		Confidence:  0.82,
		Source:      "Solana Foundation",
		Timestamp:   time.Now().Add(-90 * time.Minute),
	},
}
