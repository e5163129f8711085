package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// QueueThroughput returns a timeseries panel showing CSV queue rows
// processed and skipped per second.
func QueueThroughput() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Queue Throughput").
		Description("CSV queue rows processed and skipped per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`rate(resell_queue_rows_processed_total{job="%s"}[5m])`, Job),
			"processed", "A",
		)).
		WithTarget(PromQuery(
			fmt.Sprintf(`rate(resell_queue_rows_skipped_total{job="%s"}[5m])`, Job),
			"skipped", "B",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// QueueSweepErrors returns a stat panel showing failed queue sweeps in
// the last 24 hours.
func QueueSweepErrors() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Sweep Errors (24h)").
		Description("Failed queue sweeps in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`increase(resell_queue_run_errors_total{job="%s"}[24h])`, Job),
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
