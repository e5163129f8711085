package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// resell-sync operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "resell-sync-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "resell-sync-alerts",
					Rules: []Rule{
						{
							Alert: "ResellSyncDown",
							Expr:  `absent(up{job="resell-sync"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "resell-sync is down",
								"description": "The resell-sync job has been absent for more than 2 minutes. Sale webhooks are not being processed.",
							},
						},
						{
							Alert: "ResellSyncHighErrorRate",
							Expr:  `resell:http_errors:rate5m / resell:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on resell-sync",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "ResellSyncAdapterFailures",
							Expr:  `resell:adapter_failures:rate5m > 0`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Delist attempts are failing",
								"description": "One or more platform adapters have been failing delists for more than 10 minutes. Sold items may still be listed elsewhere.",
							},
						},
						{
							Alert: "ResellSyncQueueSweepErrors",
							Expr:  `resell:queue_errors:rate5m > 0`,
							For:   "15m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "CSV queue sweeps are failing",
								"description": "The periodic queue sweep has been erroring for more than 15 minutes. Queued sales are not being dispatched.",
							},
						},
						{
							Alert: "ResellSyncEbayLimitReached",
							Expr:  `increase(resell_ebay_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "eBay API daily limit has been reached",
								"description": "The eBay Trading API daily call budget is exhausted. Delists and crosslist fetches are blocked until reset.",
							},
						},
						{
							Alert: "ResellSyncNotificationFailures",
							Expr:  `increase(resell_notifications_total{result="error"}[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Operator notification delivery failures",
								"description": "One or more cleanup alerts (Discord webhooks) have failed to send.",
							},
						},
					},
				},
			},
		},
	}
}
