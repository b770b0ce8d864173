package services

import "github.com/visionai/console/internal/client/models"

// Built-in demo data shown when the corresponding endpoint fails.

func sampleDriftAnalysis() models.DriftAnalysis {
	return models.DriftAnalysis{
		Metrics:        models.DriftMetrics{JSD: 0.12, PSI: 0.08},
		Interpretation: "Low data drift detected; monitoring recommended.",
		Sample:         true,
	}
}

func sampleEvaluationMetrics() models.EvaluationMetrics {
	return models.EvaluationMetrics{
		Labels:    []string{"2025-07-01", "2025-07-08", "2025-07-15", "2025-07-22", "2025-07-29"},
		Precision: []float64{0.91, 0.90, 0.92, 0.89, 0.93},
		Recall:    []float64{0.86, 0.88, 0.85, 0.87, 0.86},
		Sample:    true,
	}
}

func sampleCostMetrics() models.CostMetrics {
	return models.CostMetrics{
		Labels:             []string{"Inference", "Training", "RAG Workflows"},
		APICallCost:        []float64{120, 0, 60},
		InfrastructureCost: []float64{200, 500, 150},
		OperationCost:      []float64{50, 100, 80},
		Sample:             true,
	}
}

func sampleResourceMetrics() models.ResourceMetrics {
	return models.ResourceMetrics{
		Labels:     []string{"Week 1", "Week 2", "Week 3", "Week 4"},
		CPUUsage:   []float64{65, 70, 60, 75},
		GPUUsage:   []float64{80, 85, 78, 90},
		Throughput: []float64{120, 150, 140, 160},
		Sample:     true,
	}
}
