package models

import (
	"time"
)

// PortfolioMetrics represents the portfolio P&L snapshot
type PortfolioMetrics struct {
	Timestamp            time.Time `json:"timestamp"`
	TotalCapital         float64   `json:"total_capital"`
	AvailableCapital     float64   `json:"available_capital"`
	TotalPnL             float64   `json:"total_pnl"`
	UnrealizedPnL        float64   `json:"unrealized_pnl"`
	RealizedPnL          float64   `json:"realized_pnl"`
	TotalReturnPct       float64   `json:"total_return_pct"`
	PositionsCount       int       `json:"positions_count"`
	ActivePositionsCount int       `json:"active_positions_count"`
	TotalTrades          int       `json:"total_trades"`
	WinningTrades        int       `json:"winning_trades"`
	LosingTrades         int       `json:"losing_trades"`
	WinRate              float64   `json:"win_rate"`
	AvgWin               float64   `json:"avg_win"`
	AvgLoss              float64   `json:"avg_loss"`
	MaxDrawdown          float64   `json:"max_drawdown"`
	SharpeRatio          float64   `json:"sharpe_ratio"`
}

// SignalMetrics represents aggregate trading-signal statistics
type SignalMetrics struct {
	Timestamp          time.Time        `json:"timestamp"`
	SignalsProcessed   int64            `json:"signals_processed"`
	SignalsPerMinute   float64          `json:"signals_per_minute"`
	AvgConfidence      float64          `json:"avg_confidence"`
	AvgUrgency         float64          `json:"avg_urgency"`
	SignalDistribution map[string]int64 `json:"signal_distribution"`
	PatternStrengthAvg float64          `json:"pattern_strength_avg"`
	SpikeCountAvg      float64          `json:"spike_count_avg"`
	VolatilityAvg      float64          `json:"volatility_avg"`
	MarketRegimes      map[string]int64 `json:"market_regimes"`
}

// PositionMetrics represents one open position
type PositionMetrics struct {
	Timestamp        time.Time `json:"timestamp"`
	Symbol           string    `json:"symbol"`
	PositionID       string    `json:"position_id"`
	Size             float64   `json:"size"`
	EntryPrice       float64   `json:"entry_price"`
	CurrentPrice     float64   `json:"current_price"`
	UnrealizedPnL    float64   `json:"unrealized_pnl"`
	UnrealizedPnLPct float64   `json:"unrealized_pnl_pct"`
	DurationMinutes  int       `json:"duration_minutes"`
	IsLong           bool      `json:"is_long"`
}

// MarketMetrics represents per-symbol market telemetry
type MarketMetrics struct {
	Timestamp         time.Time `json:"timestamp"`
	Symbol            string    `json:"symbol"`
	Price             float64   `json:"price"`
	Volume24h         float64   `json:"volume_24h"`
	PriceChange24h    float64   `json:"price_change_24h"`
	PriceChangePct24h float64   `json:"price_change_pct_24h"`
	Volatility        float64   `json:"volatility"`
	LastUpdate        time.Time `json:"last_update"`
}

// RiskMetrics represents portfolio-level risk measures
type RiskMetrics struct {
	Timestamp          time.Time `json:"timestamp"`
	PortfolioVaR95     float64   `json:"portfolio_var_95"`
	PortfolioVaR99     float64   `json:"portfolio_var_99"`
	MaxPositionSizePct float64   `json:"max_position_size_pct"`
	CurrentLeverage    float64   `json:"current_leverage"`
	CorrelationBTC     float64   `json:"correlation_btc"`
	CorrelationETH     float64   `json:"correlation_eth"`
	ConcentrationRisk  float64   `json:"concentration_risk"`
	DailyVolatility    float64   `json:"daily_volatility"`
}

// CombinedMetrics represents the composite served by /api/v1/metrics/all
type CombinedMetrics struct {
	Portfolio  PortfolioMetrics  `json:"portfolio"`
	Signals    SignalMetrics     `json:"signals"`
	Positions  []PositionMetrics `json:"positions"`
	MarketData []MarketMetrics   `json:"market_data"`
	Risk       RiskMetrics       `json:"risk"`
}

// TimeseriesSeries represents one series in a timeseries query response.
// Datapoints are [value, unix milliseconds] pairs.
type TimeseriesSeries struct {
	Target     string       `json:"target"`
	Datapoints [][2]float64 `json:"datapoints"`
}
