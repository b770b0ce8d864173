package models

import "sort"

// DriftReport is GET /drift. Scores are fractions in [0,1].
type DriftReport struct {
	DriftScore    float64            `json:"drift_score"`
	DriftDetected bool               `json:"drift_detected"`
	Details       map[string]float64 `json:"details"`
}

type FeatureDrift struct {
	Feature string
	Score   float64
}

// Features returns Details sorted by feature name.
func (r DriftReport) Features() []FeatureDrift {
	out := make([]FeatureDrift, 0, len(r.Details))
	for f, s := range r.Details {
		out = append(out, FeatureDrift{Feature: f, Score: s})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Feature < out[j].Feature })
	return out
}

// DriftAnalysis is GET /drift/metrics: Jensen-Shannon divergence and
// population stability index against the baseline.
type DriftAnalysis struct {
	Metrics        DriftMetrics `json:"metrics"`
	Interpretation string       `json:"interpretation"`

	Sample bool `json:"-"`
}

type DriftMetrics struct {
	JSD float64 `json:"jsd"`
	PSI float64 `json:"psi"`
}
