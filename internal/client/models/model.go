package models

import (
	"errors"
	"strings"
)

// Model is one entry of GET /models.
type Model struct {
	ID     ID         `json:"id"`
	Name   string     `json:"name"`
	Labels []string   `json:"labels"`
	Stats  ModelStats `json:"stats"`
}

type ModelStats struct {
	FeatureNames        []string  `json:"feature_names"`
	Coefficients        []float64 `json:"coefficients"`
	FeatureMeans        []float64 `json:"feature_means"`
	CoefficientVariance []float64 `json:"coefficient_variance"`
}

// FeatureStat is one row of the feature statistics table.
type FeatureStat struct {
	Feature     string
	Coefficient *float64
	Mean        *float64
	Variance    *float64
}

// Features zips the parallel stats slices by feature name. A slice that is
// shorter than FeatureNames leaves the cell nil.
func (s ModelStats) Features() []FeatureStat {
	at := func(v []float64, i int) *float64 {
		if i < len(v) {
			return &v[i]
		}
		return nil
	}

	out := make([]FeatureStat, len(s.FeatureNames))
	for i, name := range s.FeatureNames {
		out[i] = FeatureStat{
			Feature:     name,
			Coefficient: at(s.Coefficients, i),
			Mean:        at(s.FeatureMeans, i),
			Variance:    at(s.CoefficientVariance, i),
		}
	}
	return out
}

// ModelRegistration is the model metadata form. Restricted registrations
// only disclose name, version and author to the central service.
type ModelRegistration struct {
	Restricted  bool
	Name        string
	Version     string
	Author      string
	Description string
	Labels      []string
}

// RegisterModelRequest is the body of POST /models.
type RegisterModelRequest struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Author      string   `json:"author,omitempty"`
	Description string   `json:"description,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	Restricted  bool     `json:"restricted,omitempty"`
}

// Request builds the wire body, dropping what a restricted registration
// must not send.
func (r ModelRegistration) Request() RegisterModelRequest {
	req := RegisterModelRequest{
		Name:    strings.TrimSpace(r.Name),
		Version: strings.TrimSpace(r.Version),
		Author:  strings.TrimSpace(r.Author),
	}
	if r.Restricted {
		req.Restricted = true
		return req
	}
	req.Description = strings.TrimSpace(r.Description)
	req.Labels = r.Labels
	return req
}

var ErrIncorrectLabel = errors.New("label must not be empty")

// LabelsFromString splits a comma separated label list. Blank input yields
// no labels; a blank item between commas is an error.
func LabelsFromString(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, ErrIncorrectLabel
		}
		labels = append(labels, p)
	}
	return labels, nil
}
