package synth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Delfictus/neuromorphic-demo-feed/internal/models"
)

// Timeseries metrics understood by the Grafana-style query endpoint.
const (
	MetricPortfolioPnL     = "portfolio_pnl"
	MetricPortfolioCapital = "portfolio_capital"
	MetricSignalsPerMinute = "signals_per_minute"
	MetricSignalConfidence = "signal_confidence"
)

// ErrUnknownMetric is returned for timeseries names outside the fixed set.
var ErrUnknownMetric = errors.New("unknown timeseries metric")

// Generator synthesizes all served snapshots from the baseline tables.
// Safe for concurrent use; snapshots never depend on earlier snapshots.
type Generator struct {
	mu    sync.Mutex // guards rand
	rand  Rand
	clock Clock
}

// NewGenerator wires a random source and clock. Handlers share one
// generator per listener.
func NewGenerator(r Rand, c Clock) *Generator {
	return &Generator{rand: r, clock: c}
}

func (g *Generator) uniform(lo, hi float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rand.Float64()*(hi-lo)
}

// uniformInt draws from [lo, hi] inclusive.
func (g *Generator) uniformInt(lo, hi int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rand.Intn(hi-lo+1)
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Quotes synthesizes a full watchlist snapshot in baseline table order.
func (g *Generator) Quotes() models.QuotesResponse {
	now := g.clock.Now()
	stocks := make([]models.Quote, 0, len(stockBaselines))
	for _, b := range stockBaselines {
		delta := g.uniform(-0.05, 0.05)
		change := round2(delta * 100)
		// Trend follows the served change figure, so a change that rounds
		// to zero reads as flat.
		trend := models.TrendFlat
		if change > 0 {
			trend = models.TrendUp
		} else if change < 0 {
			trend = models.TrendDown
		}
		stocks = append(stocks, models.Quote{
			Symbol:      b.Symbol,
			Price:       round2(b.BasePrice * (1 + delta)),
			Change24h:   change,
			Volume:      int64(g.uniformInt(5_000_000, 25_000_000)),
			Volatility:  round2(b.Volatility * 100),
			LastUpdated: now,
			Trend:       trend,
		})
	}
	return models.QuotesResponse{
		Stocks:         stocks,
		TotalMonitored: len(stocks),
		LastUpdated:    now,
	}
}

// History synthesizes an hourly price series ending at the current hour.
// The series is a bounded random walk around the symbol's base price with a
// seven-hour sawtooth so charts show structure instead of pure noise.
func (g *Generator) History(symbol string, hours int) models.PriceHistory {
	now := g.clock.Now()
	base, _ := baselineFor(symbol)
	points := make([]models.PricePoint, 0, hours)
	for i := 0; i < hours; i++ {
		ts := now.Add(-time.Duration(hours-1-i) * time.Hour)
		variation := g.uniform(-0.02, 0.02) + float64(i%7-3)*0.005
		points = append(points, models.PricePoint{
			Timestamp: ts.UnixMilli(),
			Price:     round2(base.BasePrice * (1 + variation)),
			Volume:    int64(g.uniformInt(1_000_000, 5_000_000)),
		})
	}
	return models.PriceHistory{
		Symbol:         symbol,
		TimeframeHours: hours,
		DataPoints:     len(points),
		PriceHistory:   points,
	}
}

// Portfolio synthesizes the P&L snapshot. Only the correlated strategy
// animates portfolio numbers; the independent strategy leaves them at
// baseline, matching the feeds this replaces.
func (g *Generator) Portfolio(strategy Strategy) models.PortfolioMetrics {
	p := models.PortfolioMetrics{
		Timestamp:            g.clock.Now(),
		TotalCapital:         baseTotalCapital,
		AvailableCapital:     baseAvailableCapital,
		TotalPnL:             baseTotalPnL,
		UnrealizedPnL:        baseUnrealizedPnL,
		RealizedPnL:          baseRealizedPnL,
		TotalReturnPct:       baseTotalReturnPct,
		PositionsCount:       basePositionsCount,
		ActivePositionsCount: baseActivePositions,
		TotalTrades:          baseTotalTrades,
		WinningTrades:        baseWinningTrades,
		LosingTrades:         baseLosingTrades,
		WinRate:              baseWinRate,
		AvgWin:               baseAvgWin,
		AvgLoss:              baseAvgLoss,
		MaxDrawdown:          baseMaxDrawdown,
		SharpeRatio:          baseSharpeRatio,
	}
	if strategy == StrategyCorrelated {
		v := g.uniform(-0.1, 0.1)
		p.TotalCapital = round2(baseTotalCapital + v*1000)
		p.AvailableCapital = round2(baseAvailableCapital + v*1000)
		p.TotalPnL = round2(baseTotalPnL + v*500)
		p.UnrealizedPnL = round2(baseUnrealizedPnL + v*200)
		p.RealizedPnL = round2(baseRealizedPnL + v*300)
		p.TotalReturnPct = round2(baseTotalReturnPct + v*0.5)
		p.WinRate = round2(baseWinRate + v*5)
		p.SharpeRatio = round2(baseSharpeRatio + v*0.2)
	}
	return p
}

// Signals synthesizes aggregate signal statistics.
func (g *Generator) Signals(strategy Strategy) models.SignalMetrics {
	now := g.clock.Now()
	s := models.SignalMetrics{
		Timestamp:          now,
		SignalsProcessed:   baseSignalsProcessed,
		SignalsPerMinute:   baseSignalsPerMinute,
		AvgConfidence:      baseAvgConfidence,
		AvgUrgency:         baseAvgUrgency,
		SignalDistribution: distributionMap(),
		PatternStrengthAvg: basePatternStrength,
		SpikeCountAvg:      baseSpikeCount,
		VolatilityAvg:      baseVolatilityAvg,
		MarketRegimes:      regimeMap(),
	}
	switch strategy {
	case StrategyIndependent:
		s.SignalsProcessed += int64(g.uniformInt(0, 10))
		s.SignalsPerMinute = round2(baseSignalsPerMinute + g.uniform(-0.5, 0.5))
		s.AvgConfidence = round2(baseAvgConfidence + g.uniform(-10, 10))
		s.AvgUrgency = round2(baseAvgUrgency + g.uniform(-10, 10))
		s.PatternStrengthAvg = round2(basePatternStrength + g.uniform(-5, 5))
		s.SpikeCountAvg = round2(baseSpikeCount + g.uniform(-20, 20))
		s.VolatilityAvg = round2(baseVolatilityAvg + g.uniform(-0.5, 0.5))
	case StrategyCorrelated:
		v := g.uniform(-0.1, 0.1)
		s.SignalsProcessed = baseSignalsProcessed + now.Unix()%10
		s.SignalsPerMinute = round2(baseSignalsPerMinute + v*0.3)
		s.AvgConfidence = round2(baseAvgConfidence + v*5)
		s.AvgUrgency = round2(baseAvgUrgency + v*8)
		s.PatternStrengthAvg = round2(basePatternStrength + v*6)
		s.SpikeCountAvg = round2(baseSpikeCount + v*20)
		s.VolatilityAvg = round2(baseVolatilityAvg + v*0.5)
	}
	return s
}

// Positions synthesizes the open position list. Position IDs are fresh
// UUIDs on every snapshot; nothing downstream correlates them across calls.
func (g *Generator) Positions() []models.PositionMetrics {
	now := g.clock.Now()
	out := make([]models.PositionMetrics, 0, len(positionBaselines))
	for _, pb := range positionBaselines {
		base, _ := baselineFor(pb.Symbol)
		delta := g.uniform(-0.05, 0.05)
		current := round2(base.BasePrice * (1 + delta))
		pnl := (current - pb.EntryPrice) * pb.Size
		pct := (current - pb.EntryPrice) / pb.EntryPrice * 100
		if !pb.IsLong {
			pnl = -pnl
			pct = -pct
		}
		out = append(out, models.PositionMetrics{
			Timestamp:        now,
			Symbol:           pb.Symbol,
			PositionID:       uuid.New().String(),
			Size:             pb.Size,
			EntryPrice:       pb.EntryPrice,
			CurrentPrice:     current,
			UnrealizedPnL:    round2(pnl),
			UnrealizedPnLPct: round2(pct),
			DurationMinutes:  g.uniformInt(30, 480),
			IsLong:           pb.IsLong,
		})
	}
	return out
}

// Market synthesizes per-symbol market telemetry for the watchlist.
func (g *Generator) Market() []models.MarketMetrics {
	now := g.clock.Now()
	out := make([]models.MarketMetrics, 0, len(stockBaselines))
	for _, b := range stockBaselines {
		delta := g.uniform(-0.05, 0.05)
		out = append(out, models.MarketMetrics{
			Timestamp:         now,
			Symbol:            b.Symbol,
			Price:             round2(b.BasePrice * (1 + delta)),
			Volume24h:         float64(g.uniformInt(5_000_000, 25_000_000)),
			PriceChange24h:    round2(b.BasePrice * delta),
			PriceChangePct24h: round2(delta * 100),
			Volatility:        round2(b.Volatility * 100),
			LastUpdate:        now,
		})
	}
	return out
}

// Risk synthesizes portfolio risk measures. The correlated strategy scales
// each field's span by the shared variance so the measures move together.
func (g *Generator) Risk(strategy Strategy) models.RiskMetrics {
	r := models.RiskMetrics{
		Timestamp:          g.clock.Now(),
		PortfolioVaR95:     baseVaR95,
		PortfolioVaR99:     baseVaR99,
		MaxPositionSizePct: baseMaxPositionSize,
		CurrentLeverage:    baseLeverage,
		CorrelationBTC:     baseCorrelationBTC,
		CorrelationETH:     baseCorrelationETH,
		ConcentrationRisk:  baseConcentrationRisk,
		DailyVolatility:    baseDailyVolatility,
	}
	switch strategy {
	case StrategyIndependent:
		r.PortfolioVaR95 = round2(baseVaR95 + g.uniform(-spanVaR95, spanVaR95))
		r.PortfolioVaR99 = round2(baseVaR99 + g.uniform(-spanVaR99, spanVaR99))
		r.CurrentLeverage = round2(baseLeverage + g.uniform(-spanLeverage, spanLeverage))
		r.CorrelationBTC = round2(baseCorrelationBTC + g.uniform(-spanCorrelationBTC, spanCorrelationBTC))
		r.CorrelationETH = round2(baseCorrelationETH + g.uniform(-spanCorrelationETH, spanCorrelationETH))
		r.ConcentrationRisk = round2(baseConcentrationRisk + g.uniform(-spanConcentrationRisk, spanConcentrationRisk))
		r.DailyVolatility = round2(baseDailyVolatility + g.uniform(-spanDailyVolatility, spanDailyVolatility))
	case StrategyCorrelated:
		scale := g.uniform(-0.1, 0.1) / 0.1
		r.PortfolioVaR95 = round2(baseVaR95 + scale*spanVaR95)
		r.PortfolioVaR99 = round2(baseVaR99 + scale*spanVaR99)
		r.CurrentLeverage = round2(baseLeverage + scale*spanLeverage)
		r.CorrelationBTC = round2(baseCorrelationBTC + scale*spanCorrelationBTC)
		r.CorrelationETH = round2(baseCorrelationETH + scale*spanCorrelationETH)
		r.ConcentrationRisk = round2(baseConcentrationRisk + scale*spanConcentrationRisk)
		r.DailyVolatility = round2(baseDailyVolatility + scale*spanDailyVolatility)
	}
	return r
}

// Combined assembles the composite document served by /api/v1/metrics/all.
func (g *Generator) Combined(strategy Strategy) models.CombinedMetrics {
	return models.CombinedMetrics{
		Portfolio:  g.Portfolio(strategy),
		Signals:    g.Signals(strategy),
		Positions:  g.Positions(),
		MarketData: g.Market(),
		Risk:       g.Risk(strategy),
	}
}

// Timeseries answers a Grafana-style query with the current value of one
// tracked metric as a single-point series.
func (g *Generator) Timeseries(metric string, strategy Strategy) ([]models.TimeseriesSeries, error) {
	now := g.clock.Now()
	var value float64
	switch metric {
	case MetricPortfolioPnL:
		value = g.Portfolio(strategy).TotalPnL
	case MetricPortfolioCapital:
		value = g.Portfolio(strategy).TotalCapital
	case MetricSignalsPerMinute:
		value = g.Signals(strategy).SignalsPerMinute
	case MetricSignalConfidence:
		value = g.Signals(strategy).AvgConfidence
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, metric)
	}
	return []models.TimeseriesSeries{{
		Target:     metric,
		Datapoints: [][2]float64{{value, float64(now.UnixMilli())}},
	}}, nil
}

func distributionMap() map[string]int64 {
	title := cases.Title(language.English)
	m := make(map[string]int64, len(signalDistribution))
	for _, lc := range signalDistribution {
		m[title.String(lc.Label)] = lc.Count
	}
	return m
}

func regimeMap() map[string]int64 {
	m := make(map[string]int64, len(marketRegimes))
	for _, lc := range marketRegimes {
		m[lc.Label] = lc.Count
	}
	return m
}
