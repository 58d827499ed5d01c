// Package metrics exposes process-local counters for the customerdesk core.
package metrics

import (
	"fmt"
	"io"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// NotificationsDispatched counts property change notifications, labelled
	// by property name (a small closed set).
	NotificationsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "customerdesk",
		Name:      "notifications_dispatched_total",
		Help:      "Property change notifications dispatched to listeners.",
	}, []string{"property"})

	// ValidationFailures counts field validations that produced an error,
	// labelled by field.
	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "customerdesk",
		Name:      "validation_failures_total",
		Help:      "Field validations that surfaced a user-facing error.",
	}, []string{"field"})

	// CommandsExecuted counts gated command executions by outcome
	// (executed|refused).
	CommandsExecuted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "customerdesk",
		Name:      "commands_total",
		Help:      "Gated command execution attempts by outcome.",
	}, []string{"outcome"})

	// CustomersSaved counts successful saves through a customer view.
	CustomersSaved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "customerdesk",
		Name:      "customers_saved_total",
		Help:      "Customers accepted by the repository via Save.",
	})
)

// WriteCounters dumps every customerdesk counter from the default gatherer to
// the writer, one "name{labels} value" line per series, sorted by name. Used
// by the CLI tools to report a run summary.
func WriteCounters(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			counter := m.GetCounter()
			if counter == nil {
				continue
			}
			labels := ""
			for _, pair := range m.GetLabel() {
				if labels != "" {
					labels += ","
				}
				labels += fmt.Sprintf("%s=%q", pair.GetName(), pair.GetValue())
			}
			if labels != "" {
				labels = "{" + labels + "}"
			}
			lines = append(lines, fmt.Sprintf("%s%s %g", fam.GetName(), labels, counter.GetValue()))
		}
	}
	sort.Strings(lines)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
