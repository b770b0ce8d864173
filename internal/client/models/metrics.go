package models

// Series is one line of GET /business-metrics.
type Series struct {
	Name       string    `json:"name"`
	Timestamps []string  `json:"timestamps"`
	Values     []float64 `json:"values"`
}

type BusinessMetrics struct {
	Cost                Series `json:"cost"`
	ResourceUtilization Series `json:"resource_utilization"`
	Performance         Series `json:"performance"`
}

// EvaluationMetrics is GET /metrics/monitoring: precision and recall per
// evaluation date.
type EvaluationMetrics struct {
	Labels    []string  `json:"labels"`
	Precision []float64 `json:"precision"`
	Recall    []float64 `json:"recall"`

	// Sample is set when the values are built-in demo data.
	Sample bool `json:"-"`
}

// CostMetrics is GET /metrics/costs, in USD per operation.
type CostMetrics struct {
	Labels             []string  `json:"labels"`
	APICallCost        []float64 `json:"apiCallCost"`
	InfrastructureCost []float64 `json:"infrastructureCost"`
	OperationCost      []float64 `json:"operationCost"`

	Sample bool `json:"-"`
}

// ResourceMetrics is GET /metrics/resources.
type ResourceMetrics struct {
	Labels     []string  `json:"labels"`
	CPUUsage   []float64 `json:"cpuUsage"`
	GPUUsage   []float64 `json:"gpuUsage"`
	Throughput []float64 `json:"throughput"`

	Sample bool `json:"-"`
}
