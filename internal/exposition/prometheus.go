// Package exposition renders gauge snapshots in the Prometheus text format
// (version 0.0.4). Block order, HELP text and label order are a
// compatibility contract with existing dashboards, and values are
// synthesized fresh per scrape, so the text is written directly rather than
// through a collector registry.
package exposition

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Delfictus/neuromorphic-demo-feed/internal/synth"
)

// ContentType is served on /metrics responses.
const ContentType = "text/plain; version=0.0.4"

// Render produces one scrape's exposition text.
func Render(snap synth.GaugeSnapshot) string {
	var b strings.Builder
	writeGauge(&b, "neuromorphic_portfolio_capital_total", "Total portfolio capital in USD", fmtFloat(snap.Capital))
	writeGauge(&b, "neuromorphic_portfolio_pnl_total", "Total profit and loss in USD", fmtFloat(snap.PnL))
	writeGauge(&b, "neuromorphic_portfolio_return_pct", "Portfolio return percentage", fmtFloat(snap.ReturnPct))
	writeGauge(&b, "neuromorphic_portfolio_win_rate", "Win rate as percentage", fmtFloat(snap.WinRate))
	writeGauge(&b, "neuromorphic_portfolio_positions_total", "Number of total positions", strconv.Itoa(snap.PositionsTotal))
	writeGauge(&b, "neuromorphic_portfolio_positions_active", "Number of active positions", strconv.Itoa(snap.PositionsActive))
	writeGauge(&b, "neuromorphic_portfolio_sharpe_ratio", "Sharpe ratio of the portfolio", fmtFloat(snap.SharpeRatio))
	writeBlock(&b, "neuromorphic_signals_processed_total", "Total number of signals processed", "counter",
		[]string{"neuromorphic_signals_processed_total " + strconv.FormatInt(snap.SignalsProcessed, 10)})
	writeGauge(&b, "neuromorphic_signals_confidence_avg", "Average confidence of signals (0-100)", fmtFloat(snap.ConfidenceAvg))
	writeGauge(&b, "neuromorphic_signals_urgency_avg", "Average urgency of signals (0-100)", fmtFloat(snap.UrgencyAvg))
	writeGauge(&b, "neuromorphic_signals_pattern_strength_avg", "Average pattern strength (0-100)", fmtFloat(snap.PatternStrengthAvg))
	writeGauge(&b, "neuromorphic_signals_spike_count_avg", "Average spike count in signals", fmtFloat(snap.SpikeCountAvg))
	writeGauge(&b, "neuromorphic_signals_volatility_avg", "Average volatility percentage", fmtFloat(snap.VolatilityAvg))
	writeGauge(&b, "neuromorphic_signals_per_minute", "Rate of signal processing per minute", fmtFloat(snap.SignalsPerMinute))
	writeBlock(&b, "neuromorphic_signal_distribution", "Signal distribution by type", "gauge",
		labeledSamples("neuromorphic_signal_distribution", "type", snap.Distribution))
	writeBlock(&b, "neuromorphic_market_regime", "Market regime detection", "gauge",
		labeledSamples("neuromorphic_market_regime", "regime", snap.Regimes))
	return b.String()
}

func writeGauge(b *strings.Builder, name, help, value string) {
	writeBlock(b, name, help, "gauge", []string{name + " " + value})
}

func writeBlock(b *strings.Builder, name, help, metricType string, samples []string) {
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	b.WriteString("# HELP ")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(help)
	b.WriteByte('\n')
	b.WriteString("# TYPE ")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(metricType)
	b.WriteByte('\n')
	for _, s := range samples {
		b.WriteString(s)
		b.WriteByte('\n')
	}
}

func labeledSamples(name, label string, counts []synth.LabelCount) []string {
	out := make([]string, 0, len(counts))
	for _, lc := range counts {
		out = append(out, fmt.Sprintf("%s{%s=%q} %d", name, label, lc.Label, lc.Count))
	}
	return out
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
