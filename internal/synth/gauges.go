package synth

// GaugeSnapshot carries the raw, unrounded values behind the Prometheus
// exposition. JSON surfaces round to two decimals; scrapes get full floats.
type GaugeSnapshot struct {
	Capital            float64
	PnL                float64
	ReturnPct          float64
	WinRate            float64
	PositionsTotal     int
	PositionsActive    int
	SharpeRatio        float64
	SignalsProcessed   int64
	ConfidenceAvg      float64
	UrgencyAvg         float64
	PatternStrengthAvg float64
	SpikeCountAvg      float64
	VolatilityAvg      float64
	SignalsPerMinute   float64
	Distribution       []LabelCount
	Regimes            []LabelCount
}

// Gauges synthesizes one scrape's worth of gauge values. Under the
// correlated strategy the processed counter tracks the clock, not the
// random source, so it is monotone within any ten-second window.
func (g *Generator) Gauges(strategy Strategy) GaugeSnapshot {
	now := g.clock.Now()
	snap := GaugeSnapshot{
		Capital:            baseTotalCapital,
		PnL:                baseTotalPnL,
		ReturnPct:          baseTotalReturnPct,
		WinRate:            baseWinRate,
		PositionsTotal:     basePositionsCount,
		PositionsActive:    baseActivePositions,
		SharpeRatio:        baseSharpeRatio,
		SignalsProcessed:   baseSignalsProcessed,
		ConfidenceAvg:      baseAvgConfidence,
		UrgencyAvg:         baseAvgUrgency,
		PatternStrengthAvg: basePatternStrength,
		SpikeCountAvg:      baseSpikeCount,
		VolatilityAvg:      baseVolatilityAvg,
		SignalsPerMinute:   baseSignalsPerMinute,
		Distribution:       signalDistribution,
		Regimes:            marketRegimes,
	}
	switch strategy {
	case StrategyIndependent:
		snap.SignalsProcessed += int64(g.uniformInt(0, 10))
		snap.SignalsPerMinute += g.uniform(-0.5, 0.5)
		snap.ConfidenceAvg += g.uniform(-10, 10)
		snap.UrgencyAvg += g.uniform(-10, 10)
		snap.PatternStrengthAvg += g.uniform(-5, 5)
		snap.SpikeCountAvg += g.uniform(-20, 20)
		snap.VolatilityAvg += g.uniform(-0.5, 0.5)
	case StrategyCorrelated:
		v := g.uniform(-0.1, 0.1)
		snap.Capital += v * 1000
		snap.PnL += v * 500
		snap.ReturnPct += v * 0.5
		snap.WinRate += v * 5
		snap.SharpeRatio += v * 0.2
		snap.SignalsProcessed = baseSignalsProcessed + now.Unix()%10
		snap.ConfidenceAvg += v * 5
		snap.UrgencyAvg += v * 8
		snap.PatternStrengthAvg += v * 6
		snap.SpikeCountAvg += v * 20
		snap.VolatilityAvg += v * 0.5
		snap.SignalsPerMinute += v * 0.3
	}
	return snap
}
