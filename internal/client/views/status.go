package views

import (
	"github.com/juju/ansiterm"

	"github.com/visionai/console/internal/client/models"
)

// ServiceStatusColor: healthy green, degraded yellow, anything else red.
func ServiceStatusColor(status string) *ansiterm.Context {
	switch status {
	case models.StatusHealthy:
		return colorOK
	case models.StatusDegraded:
		return colorWarn
	default:
		return colorBad
	}
}

// ConnectorStatusColor: connected green, pending yellow, anything else red.
func ConnectorStatusColor(status string) *ansiterm.Context {
	switch status {
	case models.ConnectorConnected:
		return colorOK
	case models.ConnectorPending:
		return colorWarn
	default:
		return colorBad
	}
}
