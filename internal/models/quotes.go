package models

import (
	"time"
)

// Quote represents a synthesized stock quote for API responses
type Quote struct {
	Symbol      string    `json:"symbol"`
	Price       float64   `json:"price"`
	Change24h   float64   `json:"change_24h"`
	Volume      int64     `json:"volume"`
	Volatility  float64   `json:"volatility"`
	LastUpdated time.Time `json:"last_updated"`
	Trend       string    `json:"trend"`
}

// QuotesResponse represents the full watchlist snapshot
type QuotesResponse struct {
	Stocks         []Quote   `json:"stocks"`
	TotalMonitored int       `json:"total_monitored"`
	LastUpdated    time.Time `json:"last_updated"`
}

// PricePoint represents a single point in a price history series
type PricePoint struct {
	Timestamp int64   `json:"timestamp"`
	Price     float64 `json:"price"`
	Volume    int64   `json:"volume"`
}

// PriceHistory represents an hourly price series for one symbol
type PriceHistory struct {
	Symbol         string       `json:"symbol"`
	TimeframeHours int          `json:"timeframe_hours"`
	DataPoints     int          `json:"data_points"`
	PriceHistory   []PricePoint `json:"price_history"`
}

// Trend values reported on quotes.
const (
	TrendUp   = "up"
	TrendDown = "down"
	TrendFlat = "flat"
)
