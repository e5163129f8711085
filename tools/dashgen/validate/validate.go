// Package validate checks generated PromQL expressions against the set
// of metrics the server actually exports, so a renamed metric breaks the
// build instead of producing an empty panel.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation findings.
type Result struct {
	Errors []string
}

// Ok reports whether validation passed.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Expr parses a PromQL expression and verifies that every metric it
// selects is in the known set. Histogram series suffixes (_bucket, _sum,
// _count) are resolved to their base metric name.
func Expr(expr string, known map[string]bool) error {
	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", expr, err)
	}

	var unknown []string
	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !known[vs.Name] && !known[baseMetric(vs.Name)] {
			unknown = append(unknown, vs.Name)
		}
		return nil
	})

	if len(unknown) > 0 {
		return fmt.Errorf("expression %q selects unknown metrics: %s", expr, strings.Join(unknown, ", "))
	}
	return nil
}

// Exprs validates a batch of labeled expressions.
func Exprs(exprs map[string]string, known map[string]bool) Result {
	var result Result
	for name, expr := range exprs {
		if err := Expr(expr, known); err != nil {
			result.errorf("%s: %v", name, err)
		}
	}
	return result
}

// Dashboard validates every query expression in a built dashboard. The
// dashboard is inspected through its JSON form, which is what Grafana
// consumes anyway.
func Dashboard(dash any, known map[string]bool) Result {
	var result Result

	data, err := json.Marshal(dash)
	if err != nil {
		result.errorf("marshaling dashboard: %v", err)
		return result
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		result.errorf("decoding dashboard JSON: %v", err)
		return result
	}

	for _, expr := range collectExprs(decoded) {
		if err := Expr(expr, known); err != nil {
			result.errorf("%v", err)
		}
	}
	return result
}

func collectExprs(node any) []string {
	var exprs []string
	switch v := node.(type) {
	case map[string]any:
		for key, val := range v {
			if key == "expr" {
				if expr, ok := val.(string); ok && expr != "" {
					exprs = append(exprs, expr)
					continue
				}
			}
			exprs = append(exprs, collectExprs(val)...)
		}
	case []any:
		for _, item := range v {
			exprs = append(exprs, collectExprs(item)...)
		}
	}
	return exprs
}

func baseMetric(name string) string {
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if trimmed, ok := strings.CutSuffix(name, suffix); ok {
			return trimmed
		}
	}
	return name
}
