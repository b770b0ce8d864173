package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreadcrumbs(t *testing.T) {
	tests := []struct {
		path string
		want []Crumb
	}{
		{path: "/", want: []Crumb{{"Home", "/"}}},
		{path: "/models", want: []Crumb{{"Home", "/"}, {"Registered Models", "/models"}}},
		{path: "/model-metadata", want: []Crumb{{"Home", "/"}, {"Model Metadata", "/model-metadata"}}},
		{path: "/users/", want: []Crumb{{"Home", "/"}, {"User Management", "/users"}}},
		{path: "/models/fraud-v2", want: []Crumb{{"Home", "/"}, {"Registered Models", "/models"}, {"fraud-v2", "/models/fraud-v2"}}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Breadcrumbs(tt.path), tt.path)
	}
}

func TestTrail(t *testing.T) {
	assert.Equal(t, "Home / Drift Detection", Trail(Breadcrumbs("/drift")))
	assert.Equal(t, "Home", Trail(Breadcrumbs("/")))
}

func TestRoutes(t *testing.T) {
	rs := Routes()
	assert.Len(t, rs, 9)
	assert.Equal(t, HomePath, rs[0].Path)

	rs[0].Name = "mutated"
	assert.Equal(t, "Home", Routes()[0].Name)

	r, ok := ByCommand("model-metadata")
	assert.True(t, ok)
	assert.Equal(t, "/model-metadata", r.Path)

	_, ok = ByCommand("login")
	assert.False(t, ok)
	assert.False(t, IsProtected(LoginPath))
}
