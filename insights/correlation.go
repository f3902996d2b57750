// Package insights holds the derived-insight computations: mood/metric
// correlation, activity anomaly detection, and free-slot suggestions.
// Everything here is a pure function over already-loaded records; the
// callers in services load from the database and map into these types.
package insights

import (
	"math"
	"time"
)

// Point is one daily observation of a metric.
type Point struct {
	Date  time.Time
	Value float64
}

// Series is a chronologically ordered sequence of daily points.
type Series []Point

// NamedSeries pairs a metric label with its series so that callers can
// ask which metric links most strongly to a base series.
type NamedSeries struct {
	Name   string
	Points Series
}

type CorrelationConfig struct {
	MinPairs  int     // minimum date-aligned pairs before computing anything
	Threshold float64 // |r| above this counts as a strong link
}

func DefaultCorrelationConfig() CorrelationConfig {
	return CorrelationConfig{MinPairs: 5, Threshold: 0.5}
}

// CorrelationResult reports the Pearson correlation of two date-aligned
// series. Defined is false when fewer than MinPairs dates align or when
// either joined series has zero variance; Coefficient is meaningless in
// that case and must not be read as zero.
type CorrelationResult struct {
	Pairs       int
	Coefficient float64
	Defined     bool
	Strong      bool
}

func dayKey(t time.Time) string { return t.Format("2006-01-02") }

// Correlate inner-joins the two series on calendar date and computes the
// Pearson correlation coefficient over the aligned pairs.
func Correlate(a, b Series, cfg CorrelationConfig) CorrelationResult {
	if cfg.MinPairs <= 0 {
		cfg.MinPairs = DefaultCorrelationConfig().MinPairs
	}

	byDay := make(map[string]float64, len(b))
	for _, p := range b {
		byDay[dayKey(p.Date)] = p.Value
	}

	var xs, ys []float64
	for _, p := range a {
		if v, ok := byDay[dayKey(p.Date)]; ok {
			xs = append(xs, p.Value)
			ys = append(ys, v)
		}
	}

	res := CorrelationResult{Pairs: len(xs)}
	if len(xs) < cfg.MinPairs {
		return res
	}

	r, ok := pearson(xs, ys)
	if !ok {
		return res
	}
	res.Coefficient = r
	res.Defined = true
	res.Strong = math.Abs(r) > cfg.Threshold
	return res
}

// LinkInsight names the metric whose series correlates most strongly
// with the base series, with the correlation's sign.
type LinkInsight struct {
	Metric      string
	Coefficient float64
	Positive    bool
}

// StrongestLink correlates each candidate against base and returns the
// strongest defined correlation that clears the threshold, or nil when
// no candidate does. Candidates are evaluated in order, so ties resolve
// to the earlier entry and the result is deterministic.
func StrongestLink(base Series, candidates []NamedSeries, cfg CorrelationConfig) *LinkInsight {
	var best *LinkInsight
	for _, cand := range candidates {
		res := Correlate(base, cand.Points, cfg)
		if !res.Defined || !res.Strong {
			continue
		}
		if best == nil || math.Abs(res.Coefficient) > math.Abs(best.Coefficient) {
			best = &LinkInsight{
				Metric:      cand.Name,
				Coefficient: res.Coefficient,
				Positive:    res.Coefficient > 0,
			}
		}
	}
	return best
}

// pearson returns (r, true), or (0, false) when either input has zero
// variance and the coefficient is undefined.
func pearson(xs, ys []float64) (float64, bool) {
	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}
	return cov / math.Sqrt(varX*varY), true
}
