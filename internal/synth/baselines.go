package synth

// stockBaseline anchors a symbol's synthesized prices.
type stockBaseline struct {
	Symbol     string
	BasePrice  float64
	Volatility float64
}

// Watchlist table. Order is the API contract for /stocks.
var stockBaselines = []stockBaseline{
	{Symbol: "AAPL", BasePrice: 175.50, Volatility: 0.02},
	{Symbol: "MSFT", BasePrice: 342.80, Volatility: 0.015},
	{Symbol: "GOOGL", BasePrice: 138.45, Volatility: 0.025},
	{Symbol: "TSLA", BasePrice: 242.80, Volatility: 0.04},
	{Symbol: "NVDA", BasePrice: 465.20, Volatility: 0.03},
	{Symbol: "META", BasePrice: 298.75, Volatility: 0.025},
	{Symbol: "AMZN", BasePrice: 127.35, Volatility: 0.02},
	{Symbol: "NFLX", BasePrice: 445.60, Volatility: 0.035},
}

// Unknown symbols still get a history, anchored here. Intentional: the
// dashboards this feeds query arbitrary symbols and expect a series back.
const defaultBasePrice = 100.0

func baselineFor(symbol string) (stockBaseline, bool) {
	for _, s := range stockBaselines {
		if s.Symbol == symbol {
			return s, true
		}
	}
	return stockBaseline{Symbol: symbol, BasePrice: defaultBasePrice}, false
}

// Portfolio baselines. All percentages are on the 0-100 scale and avg_loss
// is a positive magnitude.
const (
	baseTotalCapital     = 102500.0
	baseAvailableCapital = 95000.0
	baseTotalPnL         = 2500.0
	baseUnrealizedPnL    = 1200.0
	baseRealizedPnL      = 1300.0
	baseTotalReturnPct   = 2.5
	basePositionsCount   = 5
	baseActivePositions  = 3
	baseTotalTrades      = 15
	baseWinningTrades    = 9
	baseLosingTrades     = 6
	baseWinRate          = 60.0
	baseAvgWin           = 400.0
	baseAvgLoss          = 200.0
	baseMaxDrawdown      = 5.0
	baseSharpeRatio      = 1.2
)

// Signal baselines.
const (
	baseSignalsProcessed = 127
	baseSignalsPerMinute = 2.1
	baseAvgConfidence    = 72.0
	baseAvgUrgency       = 58.0
	basePatternStrength  = 78.0
	baseSpikeCount       = 145.0
	baseVolatilityAvg    = 3.2
)

// LabelCount is an ordered categorical gauge value. Order is the exposition
// contract, so these are slices rather than maps.
type LabelCount struct {
	Label string
	Count int64
}

var signalDistribution = []LabelCount{
	{Label: "buy", Count: 45},
	{Label: "sell", Count: 32},
	{Label: "hold", Count: 35},
	{Label: "close", Count: 15},
}

var marketRegimes = []LabelCount{
	{Label: "strong_uptrend", Count: 25},
	{Label: "mild_uptrend", Count: 18},
	{Label: "consolidation", Count: 40},
	{Label: "weak_downtrend", Count: 12},
	{Label: "risk_off", Count: 8},
}

// Risk baselines with their jitter spans.
const (
	baseVaR95             = 2.1
	baseVaR99             = 3.4
	baseMaxPositionSize   = 10.0
	baseLeverage          = 1.8
	baseCorrelationBTC    = 0.42
	baseCorrelationETH    = 0.38
	baseConcentrationRisk = 0.25
	baseDailyVolatility   = 2.8

	spanVaR95             = 0.3
	spanVaR99             = 0.4
	spanLeverage          = 0.2
	spanCorrelationBTC    = 0.05
	spanCorrelationETH    = 0.05
	spanConcentrationRisk = 0.03
	spanDailyVolatility   = 0.3
)

// positionBaseline anchors one synthesized open position.
type positionBaseline struct {
	Symbol     string
	Size       float64
	EntryPrice float64
	IsLong     bool
}

var positionBaselines = []positionBaseline{
	{Symbol: "AAPL", Size: 100, EntryPrice: 172.30, IsLong: true},
	{Symbol: "NVDA", Size: 25, EntryPrice: 450.10, IsLong: true},
	{Symbol: "TSLA", Size: 40, EntryPrice: 251.20, IsLong: false},
}
