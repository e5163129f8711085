package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "resell-sync-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "resell-sync-recording",
					Rules: []Rule{
						{
							Record: "resell:http_requests:rate5m",
							Expr:   `sum(rate(resell_http_requests_total[5m]))`,
						},
						{
							Record: "resell:http_errors:rate5m",
							Expr:   `sum(rate(resell_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "resell:dispatches:rate5m",
							Expr:   `sum(rate(resell_dispatches_total[5m]))`,
						},
						{
							Record: "resell:adapter_failures:rate5m",
							Expr:   `sum(rate(resell_adapter_attempts_total{outcome="FAILED"}[5m]))`,
						},
						{
							Record: "resell:queue_errors:rate5m",
							Expr:   `rate(resell_queue_run_errors_total[5m])`,
						},
						{
							Record: "resell:ebay_api_calls:rate5m",
							Expr:   `rate(resell_ebay_api_calls_total[5m])`,
						},
					},
				},
			},
		},
	}
}
