// Package platform holds the demo platform's mock catalog. Everything here
// is hard-coded display data for the Vaulto frontend; nothing touches a
// chain or a price feed.
package platform

import "time"

type Stablecoin struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Symbol          string  `json:"symbol"`
	Description     string  `json:"description"`
	Type            string  `json:"type"` // fiat-backed, yield-bearing, crypto-native
	TargetYield     float64 `json:"targetYield,omitempty"`
	ContractAddress string  `json:"contractAddress"`
	ReserveStatus   string  `json:"reserveStatus"` // healthy, warning, critical
	ReserveAmount   int64   `json:"reserveAmount"`
}

type TokenizedAsset struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Symbol          string  `json:"symbol"`
	Type            string  `json:"type"` // stock, commodity, private-company, startup
	Description     string  `json:"description"`
	ContractAddress string  `json:"contractAddress"`
	CurrentPrice    float64 `json:"currentPrice"`
	Change24h       float64 `json:"change24h"`
	Volume24h       int64   `json:"volume24h,omitempty"`
	MarketCap       int64   `json:"marketCap,omitempty"`
	Category        string  `json:"category"`
}

type PerformancePoint struct {
	Period string  `json:"period"`
	Return float64 `json:"return"`
}

type Vault struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Symbol             string             `json:"symbol"`
	Description        string             `json:"description"`
	Strategy           string             `json:"strategy"`
	RiskLevel          string             `json:"riskLevel"` // low, medium, high
	TargetReturn       float64            `json:"targetReturn"`
	CurrentReturn      float64            `json:"currentReturn"`
	TotalValueLocked   int64              `json:"totalValueLocked"`
	MinimumDeposit     int64              `json:"minimumDeposit"`
	ManagementFee      float64            `json:"managementFee"`
	PerformanceFee     float64            `json:"performanceFee"`
	Assets             []string           `json:"assets"`
	PerformanceHistory []PerformancePoint `json:"performanceHistory"`
	Status             string             `json:"status"` // active, paused, closed
}

type Outcome struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
	Odds        float64 `json:"odds"`
	Volume      int64   `json:"volume"`
	LastPrice   float64 `json:"lastPrice"`
}

type PredictionMarket struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Category         string    `json:"category"` // price, regulation, adoption, technology, macro
	EndDate          time.Time `json:"endDate"`
	Status           string    `json:"status"`
	TotalVolume      int64     `json:"totalVolume"`
	Liquidity        int64     `json:"liquidity"`
	Outcomes         []Outcome `json:"outcomes"`
	MarketMaker      string    `json:"marketMaker"`
	ResolutionSource string    `json:"resolutionSource,omitempty"`
	Tags             []string  `json:"tags"`
}

type MarketInsight struct {
	ID          string    `json:"id"`
	MarketID    string    `json:"marketId"`
	Type        string    `json:"type"` // sentiment, technical, fundamental, news
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Impact      string    `json:"impact"` // positive, negative, neutral
	Confidence  float64   `json:"confidence"`
	Source      string    `json:"source"`
	Timestamp   time.Time `json:"timestamp"`
}

// Stablecoins returns the platform's mock stablecoin lineup.
func Stablecoins() []Stablecoin {
	return stablecoins
}

// Assets returns the mock tokenized asset catalog, optionally filtered by
// type. An empty assetType returns everything.
func Assets(assetType string) []TokenizedAsset {
	if assetType == "" {
		return tokenizedAssets
	}
	out := make([]TokenizedAsset, 0, len(tokenizedAssets))
	for _, a := range tokenizedAssets {
		if a.Type == assetType {
			out = append(out, a)
		}
	}
	return out
}

func Vaults() []Vault {
	return vaults
}

func PredictionMarkets() []PredictionMarket {
	return predictionMarkets
}

func MarketInsights() []MarketInsight {
	return marketInsights
}
