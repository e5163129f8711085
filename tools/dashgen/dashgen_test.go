package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/resellops/resell-sync/tools/dashgen/dashboards"
	"github.com/resellops/resell-sync/tools/dashgen/rules"
	"github.com/resellops/resell-sync/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "resell-sync-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "Resell Sync Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	// Six rows of panels.
	assert.Len(t, dash.Panels, 6)

	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 16, totalPanels)

	// Every query must select metrics the server actually exports.
	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "resell-sync-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "resell-sync-recording", group.Name)
	require.Len(t, group.Rules, 6)

	expectedRecords := []string{
		"resell:http_requests:rate5m",
		"resell:http_errors:rate5m",
		"resell:dispatches:rate5m",
		"resell:adapter_failures:rate5m",
		"resell:queue_errors:rate5m",
		"resell:ebay_api_calls:rate5m",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.NotEmpty(t, rule.Expr)
	}

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "resell-sync-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "resell-sync-alerts", group.Name)
	require.Len(t, group.Rules, 6)

	expectedAlerts := []string{
		"ResellSyncDown",
		"ResellSyncHighErrorRate",
		"ResellSyncAdapterFailures",
		"ResellSyncQueueSweepErrors",
		"ResellSyncEbayLimitReached",
		"ResellSyncNotificationFailures",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Expr)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}
}

func TestRuleExprsValidate(t *testing.T) {
	t.Parallel()

	for name, cr := range map[string]rules.PrometheusRule{
		"recording": rules.RecordingRules(),
		"alerts":    rules.AlertRules(),
	} {
		result := validate.Exprs(ruleExprs(cr), KnownMetrics)
		assert.True(t, result.Ok(), "%s validation errors: %v", name, result.Errors)
	}
}

func TestValidateExpr_UnknownMetric(t *testing.T) {
	t.Parallel()

	err := validate.Expr(`rate(resell_no_such_metric_total[5m])`, KnownMetrics)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resell_no_such_metric_total")
}

func TestValidateExpr_BadPromQL(t *testing.T) {
	t.Parallel()

	err := validate.Expr(`rate(`, KnownMetrics)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestBuildArtifacts(t *testing.T) {
	t.Parallel()

	artifacts, err := build(DefaultConfig())
	require.NoError(t, err)

	require.Contains(t, artifacts, "grafana/data/resell-sync-overview.json")
	require.Contains(t, artifacts, "prometheus/resell-sync-recording-rules.yaml")
	require.Contains(t, artifacts, "prometheus/resell-sync-alerts.yaml")

	for _, name := range []string{
		"prometheus/resell-sync-recording-rules.yaml",
		"prometheus/resell-sync-alerts.yaml",
	} {
		assert.Contains(t, string(artifacts[name]), generatedHeader)
	}
}
