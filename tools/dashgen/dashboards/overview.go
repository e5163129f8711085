// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/resellops/resell-sync/tools/dashgen/panels"
)

// BuildOverview constructs the resell-sync Overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Resell Sync Overview").
		Uid("resell-sync-overview").
		Tags([]string{"resell", "resell-sync"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.ServiceUp()).
		WithPanel(panels.UptimeStat()).
		WithPanel(panels.DraftsToday()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Dispatch.
	b.WithRow(dashboard.NewRowBuilder("Dispatch").
		WithPanel(panels.DispatchRate()).
		WithPanel(panels.RejectionRate()).
		WithPanel(panels.AdapterOutcomes()).
		WithPanel(panels.AdapterLatency()))

	// Row 4: Queue.
	b.WithRow(dashboard.NewRowBuilder("Queue").
		WithPanel(panels.QueueThroughput()).
		WithPanel(panels.QueueSweepErrors()))

	// Row 5: eBay API.
	b.WithRow(dashboard.NewRowBuilder("eBay API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.LimitHits()))

	// Row 6: Notifications.
	b.WithRow(dashboard.NewRowBuilder("Notifications").
		WithPanel(panels.NotificationRate()).
		WithPanel(panels.NotificationLatency()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
