package services

import (
	"context"
	"fmt"

	"github.com/visionai/console/internal/client/models"
	"github.com/visionai/console/internal/logging"
)

// MsgModelRegistered is shown after a successful POST /models.
const MsgModelRegistered = "Model registered successfully"

// Requester is the JSON surface of *api.Client the dashboard uses.
type Requester interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, in, out any) error
}

// DashboardService loads the data behind each page. Methods that return an
// error leave presentation of the failure to the caller. The Evaluation,
// Cost, Resource and drift analysis calls never fail: they fall back to
// built-in sample data flagged with Sample.
type DashboardService interface {
	Models(ctx context.Context) ([]models.Model, error)
	BusinessMetrics(ctx context.Context) (models.BusinessMetrics, error)
	Drift(ctx context.Context) (models.DriftReport, error)
	RunDriftAnalysis(ctx context.Context) models.DriftAnalysis
	Monitoring(ctx context.Context) ([]models.ServiceStatus, error)
	EvaluationMetrics(ctx context.Context) models.EvaluationMetrics
	CostMetrics(ctx context.Context) models.CostMetrics
	ResourceMetrics(ctx context.Context) models.ResourceMetrics
	Notifications(ctx context.Context) ([]models.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	Connectors(ctx context.Context) ([]models.Connector, error)
	Users(ctx context.Context) ([]string, error)
	AddUser(ctx context.Context, u models.NewUser) (string, error)
	ChangePassword(ctx context.Context, p models.PasswordChange) (string, error)
	RegisterModel(ctx context.Context, r models.ModelRegistration) (string, error)
}

type dashboardService struct {
	api Requester
	log logging.Logger
}

func NewDashboardService(api Requester, log logging.Logger) DashboardService {
	return &dashboardService{api: api, log: log}
}

func get[T any](ctx context.Context, api Requester, path string) (T, error) {
	var v T
	if err := api.Get(ctx, path, &v); err != nil {
		return v, fmt.Errorf("get %s: %w", path, err)
	}
	return v, nil
}

func (d *dashboardService) Models(ctx context.Context) ([]models.Model, error) {
	return get[[]models.Model](ctx, d.api, "/models")
}

func (d *dashboardService) BusinessMetrics(ctx context.Context) (models.BusinessMetrics, error) {
	return get[models.BusinessMetrics](ctx, d.api, "/business-metrics")
}

func (d *dashboardService) Drift(ctx context.Context) (models.DriftReport, error) {
	return get[models.DriftReport](ctx, d.api, "/drift")
}

func (d *dashboardService) RunDriftAnalysis(ctx context.Context) models.DriftAnalysis {
	v, err := get[models.DriftAnalysis](ctx, d.api, "/drift/metrics")
	if err != nil {
		d.log.Warn(ctx, "drift analysis unavailable, using sample", "error", err)
		return sampleDriftAnalysis()
	}
	return v
}

func (d *dashboardService) Monitoring(ctx context.Context) ([]models.ServiceStatus, error) {
	return get[[]models.ServiceStatus](ctx, d.api, "/monitoring")
}

func (d *dashboardService) EvaluationMetrics(ctx context.Context) models.EvaluationMetrics {
	v, err := get[models.EvaluationMetrics](ctx, d.api, "/metrics/monitoring")
	if err != nil {
		d.log.Warn(ctx, "evaluation metrics unavailable, using sample", "error", err)
		return sampleEvaluationMetrics()
	}
	return v
}

func (d *dashboardService) CostMetrics(ctx context.Context) models.CostMetrics {
	v, err := get[models.CostMetrics](ctx, d.api, "/metrics/costs")
	if err != nil {
		d.log.Warn(ctx, "cost metrics unavailable, using sample", "error", err)
		return sampleCostMetrics()
	}
	return v
}

func (d *dashboardService) ResourceMetrics(ctx context.Context) models.ResourceMetrics {
	v, err := get[models.ResourceMetrics](ctx, d.api, "/metrics/resources")
	if err != nil {
		d.log.Warn(ctx, "resource metrics unavailable, using sample", "error", err)
		return sampleResourceMetrics()
	}
	return v
}

func (d *dashboardService) Notifications(ctx context.Context) ([]models.Notification, error) {
	return get[[]models.Notification](ctx, d.api, "/notifications")
}

// UnreadCount is the badge number: every listed notification counts.
func (d *dashboardService) UnreadCount(ctx context.Context) (int, error) {
	n, err := d.Notifications(ctx)
	if err != nil {
		return 0, err
	}
	return len(n), nil
}

func (d *dashboardService) Connectors(ctx context.Context) ([]models.Connector, error) {
	return get[[]models.Connector](ctx, d.api, "/connectors")
}

func (d *dashboardService) Users(ctx context.Context) ([]string, error) {
	return get[[]string](ctx, d.api, "/users")
}

func (d *dashboardService) AddUser(ctx context.Context, u models.NewUser) (string, error) {
	if err := u.Validate(); err != nil {
		return "", err
	}
	var resp models.Message
	if err := d.api.Post(ctx, "/users", u, &resp); err != nil {
		return "", fmt.Errorf("add user: %w", err)
	}
	return resp.Message, nil
}

func (d *dashboardService) ChangePassword(ctx context.Context, p models.PasswordChange) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	var resp models.Message
	if err := d.api.Post(ctx, "/change-password", p, &resp); err != nil {
		return "", fmt.Errorf("change password: %w", err)
	}
	return resp.Message, nil
}

func (d *dashboardService) RegisterModel(ctx context.Context, r models.ModelRegistration) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	if err := d.api.Post(ctx, "/models", r.Request(), nil); err != nil {
		return "", fmt.Errorf("register model: %w", err)
	}
	return MsgModelRegistered, nil
}
