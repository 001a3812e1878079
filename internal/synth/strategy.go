package synth

import "fmt"

// Strategy selects how a snapshot deviates from its baselines.
type Strategy string

const (
	// StrategyNone serves the baselines verbatim; only timestamps move.
	StrategyNone Strategy = "none"
	// StrategyIndependent draws fresh jitter for every animated field.
	StrategyIndependent Strategy = "independent-per-field"
	// StrategyCorrelated draws one variance per snapshot and scales it
	// into every field, so gauges move together between scrapes.
	StrategyCorrelated Strategy = "correlated-variance"
)

// ParseStrategy validates a strategy name from configuration.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyNone, StrategyIndependent, StrategyCorrelated:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown jitter strategy %q", s)
}
