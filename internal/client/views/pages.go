package views

import (
	"fmt"
	"strings"

	"github.com/visionai/console/internal/client/models"
	"github.com/visionai/console/internal/client/router"
)

// Inline failure texts, one per page.
const (
	MsgInvalidCredentials   = "Invalid username or password"
	MsgModelsFailed         = "Failed to load models"
	MsgBusinessFailed       = "Failed to load business metrics"
	MsgCostSample           = "Failed to load cost metrics, using sample data."
	MsgResourceSample       = "Failed to load resource metrics, using sample data."
	MsgDriftFailed          = "Failed to load drift information"
	MsgDriftSample          = "Failed to fetch drift metrics, using sample result."
	MsgMonitoringFailed     = "Failed to load monitoring status"
	MsgEvaluationSample     = "Failed to load monitoring data, using sample data."
	MsgNotificationsFailed  = "Failed to load notifications"
	MsgConnectorsFailed     = "Failed to load connectors"
	MsgUsersFailed          = "Failed to load users"
	MsgAddUserFailed        = "Failed to add user"
	MsgChangePasswordFailed = "Failed to change password"
	MsgRegisterFailed       = "Failed to register model"
)

// Header is printed above every page: the breadcrumb trail, the signed-in
// user and the notification badge.
func (r *Renderer) Header(path, user string, unread int) {
	fmt.Fprintln(r.w)
	line := router.Trail(router.Breadcrumbs(path))
	if user != "" {
		line += "    [" + user + "]"
	}
	fmt.Fprint(r.w, line)
	if unread > 0 {
		fmt.Fprint(r.w, "  ")
		colorBad.Fprintf(r.w, "(%d)", unread)
	}
	fmt.Fprintln(r.w)
}

func (r *Renderer) Login(devHint string) {
	r.title("JPMC Vision AI")
	fmt.Fprintln(r.w, "You are not signed in.")
	r.Hint("Type `login` to sign in.")
	if devHint != "" {
		r.Hint(devHint)
	}
}

func (r *Renderer) Home(routes []router.Route) {
	r.title("Welcome to Vision AI Dashboard")
	t := newTable("PAGE", "COMMAND", "DESCRIPTION")
	for _, rt := range routes {
		if rt.Path == router.HomePath {
			continue
		}
		t.AddRow(rt.Name, rt.Command, rt.Description)
	}
	r.table(t)
}

// Models lists registered models; those in expanded also show their feature
// statistics.
func (r *Renderer) Models(ms []models.Model, err error, expanded map[models.ID]bool) {
	r.title("Registered Models")
	if err != nil {
		r.Error(MsgModelsFailed)
		return
	}
	if len(ms) == 0 {
		fmt.Fprintln(r.w, "No models registered.")
		return
	}
	for _, m := range ms {
		marker := "+"
		if expanded[m.ID] {
			marker = "-"
		}
		fmt.Fprintf(r.w, "%s %s (id %s)\n", marker, m.Name, m.ID)
		fmt.Fprintf(r.w, "  Labels: %s\n", strings.Join(m.Labels, ", "))
		if !expanded[m.ID] {
			continue
		}
		r.section("Feature Statistics")
		t := newTable("Feature", "Coefficient", "Mean", "Variance")
		for _, c := range []int{1, 2, 3} {
			t.RightAlign(c)
		}
		for _, f := range m.Stats.Features() {
			t.AddRow(f.Feature, numberPtr(f.Coefficient), numberPtr(f.Mean), numberPtr(f.Variance))
		}
		r.table(t)
	}
	r.Hint("Type `expand <id>` to show or hide a model's statistics.")
}

func (r *Renderer) series(title string, s models.Series) {
	r.section(title)
	t := newTable("Timestamp", s.Name)
	t.RightAlign(1)
	for i, ts := range s.Timestamps {
		t.AddRow(ts, at(s.Values, i))
	}
	r.table(t)
}

// Metrics renders the business metrics page. The cost and resource
// breakdowns always have data, sample or live.
func (r *Renderer) Metrics(bm models.BusinessMetrics, err error, cost models.CostMetrics, res models.ResourceMetrics) {
	r.title("Business Metrics")
	if err != nil {
		r.Error(MsgBusinessFailed)
	} else {
		r.series("Cost ($k)", bm.Cost)
		r.series("Resource Utilization (%)", bm.ResourceUtilization)
		r.series("Model Accuracy (%)", bm.Performance)
	}

	r.section("Cost Metrics per Operation (USD)")
	if cost.Sample {
		r.Error(MsgCostSample)
	}
	t := newTable("Operation", "API Call Cost", "Infrastructure Cost", "Operation Cost")
	for _, c := range []int{1, 2, 3} {
		t.RightAlign(c)
	}
	for i, l := range cost.Labels {
		t.AddRow(l, at(cost.APICallCost, i), at(cost.InfrastructureCost, i), at(cost.OperationCost, i))
	}
	r.table(t)

	r.section("Resource Utilisation")
	if res.Sample {
		r.Error(MsgResourceSample)
	}
	t = newTable("Period", "CPU Usage (%)", "GPU Usage (%)", "Throughput")
	for _, c := range []int{1, 2, 3} {
		t.RightAlign(c)
	}
	for i, l := range res.Labels {
		t.AddRow(l, at(res.CPUUsage, i), at(res.GPUUsage, i), at(res.Throughput, i))
	}
	r.table(t)
}

// Drift renders the drift page. analysis is nil until `analyze` has run.
func (r *Renderer) Drift(rep models.DriftReport, err error, analysis *models.DriftAnalysis) {
	r.title("Drift Detection Engine")
	if err != nil {
		r.Error(MsgDriftFailed)
	} else {
		r.section("Drift Score")
		fmt.Fprintln(r.w, percent(rep.DriftScore))
		if rep.DriftDetected {
			colorBad.Fprintf(r.w, "Alert: Drift has been detected.")
		} else {
			colorOK.Fprintf(r.w, "No drift detected.")
		}
		fmt.Fprintln(r.w)

		r.section("Feature Drift Details")
		t := newTable("Feature", "Drift Score")
		t.RightAlign(1)
		for _, f := range rep.Features() {
			t.AddRow(f.Feature, percent(f.Score))
		}
		r.table(t)
	}

	if analysis == nil {
		r.Hint("Type `analyze` to run a drift analysis.")
		return
	}
	r.section("Drift Metrics")
	if analysis.Sample {
		r.Error(MsgDriftSample)
	}
	fmt.Fprintf(r.w, "JSD: %s\n", number(analysis.Metrics.JSD))
	fmt.Fprintf(r.w, "PSI: %s\n", number(analysis.Metrics.PSI))
	fmt.Fprintf(r.w, "Interpretation: %s\n", analysis.Interpretation)
}

func (r *Renderer) Monitoring(st []models.ServiceStatus, err error, eval models.EvaluationMetrics) {
	r.title("Monitoring Service")
	if err != nil {
		r.Error(MsgMonitoringFailed)
	} else {
		t := newTable("Service", "Last checked", "Status")
		for _, s := range st {
			t.AddRow(s.Service, r.timestamp(s.LastChecked), r.paint(ServiceStatusColor(s.Status), s.Status))
		}
		r.table(t)
	}

	r.section("Evaluation Metrics")
	if eval.Sample {
		r.Error(MsgEvaluationSample)
	}
	t := newTable("Date", "Precision", "Recall")
	t.RightAlign(1)
	t.RightAlign(2)
	for i, l := range eval.Labels {
		t.AddRow(l, at(eval.Precision, i), at(eval.Recall, i))
	}
	r.table(t)
}

func (r *Renderer) Notifications(ns []models.Notification, err error) {
	r.title("Notification Service")
	if err != nil {
		r.Error(MsgNotificationsFailed)
		return
	}
	if len(ns) == 0 {
		fmt.Fprintln(r.w, "No notifications.")
		return
	}
	for _, n := range ns {
		fmt.Fprintf(r.w, "* %s\n  %s\n  %s\n", n.Title, n.Message, r.timestamp(n.Timestamp))
	}
}

func (r *Renderer) Connectors(cs []models.Connector, err error) {
	r.title("Connectors")
	if err != nil {
		r.Error(MsgConnectorsFailed)
		return
	}
	t := newTable("Name", "Type", "Status")
	for _, c := range cs {
		t.AddRow(c.Name, c.Type, r.paint(ConnectorStatusColor(c.Status), c.Status))
	}
	r.table(t)
}

func (r *Renderer) Users(users []string, err error) {
	r.title("User Management")
	if err != nil {
		r.Error(MsgUsersFailed)
	} else {
		r.section("Existing Users")
		for _, u := range users {
			fmt.Fprintf(r.w, "  - %s\n", u)
		}
	}
	r.Hint("Type `adduser` to add a user or `passwd` to change your password.")
}

func (r *Renderer) ModelMetadata() {
	r.title("Model Metadata Registration")
	fmt.Fprintln(r.w, "Register new models and manage their metadata. Restricted models only")
	fmt.Fprintln(r.w, "send their name, version and author to the central service.")
	r.Hint("Type `register` to register a model.")
}
