package ownership

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

var (
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "filetransfer",
			Subsystem: "ownership",
			Name:      "operations_total",
			Help:      "Ownership changes by action and outcome. Rejections are labelled with their kind.",
		},
		[]string{"action", "outcome"},
	)

	uploadedBytes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "filetransfer",
		Subsystem: "ownership",
		Name:      "uploaded_bytes_total",
		Help:      "Total size of successfully registered uploads.",
	})
)

func observe(action string, err error) {
	outcome := outcomeOK
	if err != nil {
		outcome = outcomeError
		var rule *RuleError
		if errors.As(err, &rule) {
			outcome = string(rule.Kind)
		}
	}
	operationsTotal.WithLabelValues(action, outcome).Inc()
}
