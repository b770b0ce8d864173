package models

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"

	ConnectorConnected = "connected"
	ConnectorPending   = "pending"
)

// ServiceStatus is one entry of GET /monitoring.
type ServiceStatus struct {
	Service     string `json:"service"`
	Status      string `json:"status"`
	LastChecked string `json:"last_checked"`
}

// Notification is one entry of GET /notifications.
type Notification struct {
	ID        ID     `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Connector is one entry of GET /connectors.
type Connector struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status"`
}
