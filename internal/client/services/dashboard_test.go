package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionai/console/internal/client/api"
	"github.com/visionai/console/internal/client/models"
	"github.com/visionai/console/internal/logging"
)

// backend serves fixed JSON per "METHOD path"; anything else is a 500.
type backend struct {
	mu     sync.Mutex
	routes map[string]func(w http.ResponseWriter, r *http.Request)
	bodies map[string]map[string]any
}

func newBackend(t *testing.T) (*backend, DashboardService) {
	t.Helper()
	b := &backend{
		routes: map[string]func(http.ResponseWriter, *http.Request){},
		bodies: map[string]map[string]any{},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		b.mu.Lock()
		if r.Method == http.MethodPost {
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			b.bodies[key] = body
		}
		h, ok := b.routes[key]
		b.mu.Unlock()
		if ok {
			h(w, r)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c, err := api.NewClient(srv.URL, func() string { return "tok" })
	require.NoError(t, err)
	return b, NewDashboardService(c, logging.Discard())
}

func (b *backend) body(key string) map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[key]
}

func (b *backend) json(key string, code int, v any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[key] = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(v)
	}
}

func TestDashboard_Models(t *testing.T) {
	b, svc := newBackend(t)
	b.json("GET /models", 200, []map[string]any{{
		"id": 1, "name": "churn", "labels": []string{"prod"},
		"stats": map[string]any{"feature_names": []string{"age"}, "coefficients": []float64{0.4}},
	}})

	ms, err := svc.Models(context.Background())
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, models.ID("1"), ms[0].ID)
	assert.Equal(t, []string{"age"}, ms[0].Stats.FeatureNames)
}

func TestDashboard_ErrorsPropagate(t *testing.T) {
	b, svc := newBackend(t)
	b.json("GET /drift", http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})
	ctx := context.Background()

	_, err := svc.Drift(ctx)
	assert.ErrorIs(t, err, api.ErrUnauthorized)

	_, err = svc.Models(ctx)
	assert.ErrorIs(t, err, api.ErrUnavailable)
	_, err = svc.Monitoring(ctx)
	assert.Error(t, err)
	_, err = svc.Connectors(ctx)
	assert.Error(t, err)
	_, err = svc.Users(ctx)
	assert.Error(t, err)
	_, err = svc.BusinessMetrics(ctx)
	assert.Error(t, err)
	_, err = svc.UnreadCount(ctx)
	assert.Error(t, err)
}

func TestDashboard_SampleFallbacks(t *testing.T) {
	_, svc := newBackend(t)
	ctx := context.Background()

	da := svc.RunDriftAnalysis(ctx)
	assert.True(t, da.Sample)
	assert.Equal(t, models.DriftMetrics{JSD: 0.12, PSI: 0.08}, da.Metrics)
	assert.Equal(t, "Low data drift detected; monitoring recommended.", da.Interpretation)

	em := svc.EvaluationMetrics(ctx)
	assert.True(t, em.Sample)
	assert.Equal(t, []float64{0.91, 0.90, 0.92, 0.89, 0.93}, em.Precision)
	assert.Len(t, em.Labels, 5)

	cm := svc.CostMetrics(ctx)
	assert.True(t, cm.Sample)
	assert.Equal(t, []string{"Inference", "Training", "RAG Workflows"}, cm.Labels)
	assert.Equal(t, []float64{200, 500, 150}, cm.InfrastructureCost)

	rm := svc.ResourceMetrics(ctx)
	assert.True(t, rm.Sample)
	assert.Equal(t, []float64{80, 85, 78, 90}, rm.GPUUsage)
}

func TestDashboard_LiveDataIsNotSample(t *testing.T) {
	b, svc := newBackend(t)
	b.json("GET /drift/metrics", 200, map[string]any{"metrics": map[string]float64{"jsd": 0.3, "psi": 0.25}, "interpretation": "High drift"})
	b.json("GET /metrics/costs", 200, map[string]any{"labels": []string{"Inference"}, "apiCallCost": []float64{1}})

	da := svc.RunDriftAnalysis(context.Background())
	assert.False(t, da.Sample)
	assert.Equal(t, 0.3, da.Metrics.JSD)

	cm := svc.CostMetrics(context.Background())
	assert.False(t, cm.Sample)
	assert.Equal(t, []float64{1}, cm.APICallCost)
}

func TestDashboard_UnreadCount(t *testing.T) {
	b, svc := newBackend(t)
	b.json("GET /notifications", 200, []map[string]any{
		{"id": 1, "title": "Drift", "message": "m", "timestamp": "2025-07-29T10:00:00Z"},
		{"id": 2, "title": "Cost", "message": "m", "timestamp": "2025-07-29T11:00:00Z"},
	})

	n, err := svc.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDashboard_AddUser(t *testing.T) {
	b, svc := newBackend(t)
	b.json("POST /users", 200, map[string]string{"message": "User bob added"})
	ctx := context.Background()

	msg, err := svc.AddUser(ctx, models.NewUser{Username: "bob", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "User bob added", msg)
	assert.Equal(t, map[string]any{"username": "bob", "password": "pw"}, b.body("POST /users"))

	b.json("POST /users", http.StatusBadRequest, map[string]string{"detail": "User already exists"})
	_, err = svc.AddUser(ctx, models.NewUser{Username: "bob", Password: "pw"})
	require.Error(t, err)
	assert.Equal(t, "User already exists", api.DetailOf(err))

	b.mu.Lock()
	delete(b.bodies, "POST /users")
	b.mu.Unlock()
	_, err = svc.AddUser(ctx, models.NewUser{})
	require.Error(t, err)
	assert.Nil(t, b.body("POST /users"), "invalid input is not sent")
}

func TestDashboard_ChangePassword(t *testing.T) {
	b, svc := newBackend(t)
	b.json("POST /change-password", 200, map[string]string{"message": "Password changed"})

	msg, err := svc.ChangePassword(context.Background(), models.PasswordChange{OldPassword: "a", NewPassword: "b"})
	require.NoError(t, err)
	assert.Equal(t, "Password changed", msg)
	assert.Equal(t, map[string]any{"old_password": "a", "new_password": "b"}, b.body("POST /change-password"))
}

func TestDashboard_RegisterModelPhases(t *testing.T) {
	b, svc := newBackend(t)
	b.json("POST /models", 201, map[string]string{"id": "m-1"})
	ctx := context.Background()

	msg, err := svc.RegisterModel(ctx, models.ModelRegistration{
		Name: "fraud", Version: "2.1", Author: "alice",
		Description: "card fraud", Labels: []string{"finance"},
	})
	require.NoError(t, err)
	assert.Equal(t, MsgModelRegistered, msg)
	assert.Equal(t, map[string]any{
		"name": "fraud", "version": "2.1", "author": "alice",
		"description": "card fraud", "labels": []any{"finance"},
	}, b.body("POST /models"))

	_, err = svc.RegisterModel(ctx, models.ModelRegistration{
		Restricted: true, Name: "aml", Version: "1", Author: "bob",
		Description: "must not leave the enclave",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name": "aml", "version": "1", "author": "bob", "restricted": true,
	}, b.body("POST /models"))

	b.json("POST /models", 500, nil)
	_, err = svc.RegisterModel(ctx, models.ModelRegistration{Name: "x", Version: "1"})
	assert.ErrorIs(t, err, api.ErrUnavailable)
}

func TestDashboard_RegisterModelBlankNameNotSent(t *testing.T) {
	b, svc := newBackend(t)
	b.json("POST /models", 201, map[string]string{"id": "m-1"})

	_, err := svc.RegisterModel(context.Background(), models.ModelRegistration{Name: "   ", Version: "1"})
	require.Error(t, err)
	assert.Nil(t, b.body("POST /models"))
}
