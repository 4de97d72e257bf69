package service

import (
	"time"

	"github.com/spec-kit/omnimindia-api/internal/domain"
)

// marketData is the compiled-in market data set, served verbatim.
var marketData = map[string]domain.MarketStatistic{
	"cloudAI2024": {
		Value:    77.0,
		Unit:     "billion USD",
		Year:     2024,
		Label:    "Cloud AI Market",
		Source:   "Market Research Reports",
		URL:      "https://www.marketresearchfuture.com/reports/cloud-ai-market",
		Citation: "Cloud AI market valued at $77.0B in 2024",
	},
	"edgeAI2024": {
		Value:    18.3,
		Unit:     "billion USD",
		Year:     2024,
		Label:    "Edge AI Market",
		Source:   "Allied Market Research",
		URL:      "https://www.alliedmarketresearch.com/edge-ai-market",
		Citation: "Edge AI market size $18.3B in 2024",
	},
	"edgeForecast2033": {
		Value:    163.0,
		Unit:     "billion USD",
		Year:     2033,
		Label:    "Edge AI Forecast",
		Source:   "Allied Market Research",
		URL:      "https://www.alliedmarketresearch.com/edge-ai-market",
		Citation: "Edge AI projected to reach $163B by 2033",
	},
	"edgeSoftware2024": {
		Value:    1.92,
		Unit:     "billion USD",
		Year:     2024,
		Label:    "Edge AI Software",
		Source:   "Market.us",
		URL:      "https://market.us/report/edge-ai-software-market/",
		Citation: "Edge AI Software market $1.92B in 2024",
	},
	"edgeSoftware2030": {
		Value:    7.19,
		Unit:     "billion USD",
		Year:     2030,
		Label:    "Edge AI Software Forecast",
		Source:   "Market.us",
		URL:      "https://market.us/report/edge-ai-software-market/",
		Citation: "Edge AI Software forecast $7.19B by 2030",
	},
	"aiRobotics2032": {
		Value:    89.6,
		Unit:     "billion USD",
		Year:     2032,
		Label:    "AI Robotics Market",
		Source:   "Precedence Research",
		URL:      "https://www.precedenceresearch.com/ai-in-robotics-market",
		Citation: "AI Robotics market projected ~$89.6B by 2032",
	},
}

// MarketSnapshot is the full static data set plus a generation timestamp.
type MarketSnapshot struct {
	Data        map[string]domain.MarketStatistic
	Count       int
	GeneratedAt time.Time
}

// MarketService serves the static market statistics.
type MarketService struct{}

// NewMarketService constructs the service.
func NewMarketService() *MarketService {
	return &MarketService{}
}

// Snapshot returns every statistic with a count and the current UTC time.
// The timestamp is computed per call, not stored.
func (s *MarketService) Snapshot() MarketSnapshot {
	return MarketSnapshot{
		Data:        marketData,
		Count:       len(marketData),
		GeneratedAt: time.Now().UTC(),
	}
}
