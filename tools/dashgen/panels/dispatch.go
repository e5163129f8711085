package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// DispatchRate returns a timeseries panel showing sale event dispatches
// per second, split by mode.
func DispatchRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Dispatch Rate").
		Description("Sale events dispatched per second, by mode").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(rate(resell_dispatches_total{job="%s"}[5m])) by (mode)`, Job),
			"{{mode}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RejectionRate returns a timeseries panel showing rejected webhook
// events per second, split by reason.
func RejectionRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Rejections").
		Description("Events rejected by the normalizer per second, by reason").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(rate(resell_dispatch_rejections_total{job="%s"}[5m])) by (reason)`, Job),
			"{{reason}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// AdapterOutcomes returns a timeseries panel showing delist attempts per
// second, split by platform and outcome.
func AdapterOutcomes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Adapter Outcomes").
		Description("Delist attempts per second, by platform and outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(rate(resell_adapter_attempts_total{job="%s"}[5m])) by (platform, outcome)`, Job),
			"{{platform}} {{outcome}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// AdapterLatency returns a timeseries panel showing p95 delist duration
// per platform.
func AdapterLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Adapter Latency p95").
		Description("95th percentile delist duration per platform").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(
				`histogram_quantile(0.95, sum(rate(resell_adapter_duration_seconds_bucket{job="%s"}[5m])) by (le, platform))`,
				Job,
			),
			"{{platform}}", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
