package router

import "strings"

var breadcrumbLabels = map[string]string{
	"":               "Home",
	"models":         "Registered Models",
	"metrics":        "Business Metrics",
	"drift":          "Drift Detection",
	"model-metadata": "Model Metadata",
	"monitoring":     "Monitoring",
	"notifications":  "Notifications",
	"connectors":     "Connectors",
	"users":          "User Management",
}

type Crumb struct {
	Label string
	Path  string
}

// Breadcrumbs returns Home followed by one crumb per path segment. Segments
// without a label keep their raw text.
func Breadcrumbs(p string) []Crumb {
	crumbs := []Crumb{{Label: breadcrumbLabels[""], Path: HomePath}}

	acc := ""
	for _, seg := range strings.Split(Normalize(p), "/") {
		if seg == "" {
			continue
		}
		acc += "/" + seg
		label, ok := breadcrumbLabels[seg]
		if !ok {
			label = seg
		}
		crumbs = append(crumbs, Crumb{Label: label, Path: acc})
	}
	return crumbs
}

// Trail renders crumbs as "Home / Registered Models".
func Trail(crumbs []Crumb) string {
	labels := make([]string, len(crumbs))
	for i, c := range crumbs {
		labels[i] = c.Label
	}
	return strings.Join(labels, " / ")
}
