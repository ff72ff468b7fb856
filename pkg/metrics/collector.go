package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-choicelist/pkg/choices"
)

const (
	namespace = "choicelist"
	subsystem = "fetch"
)

// Collector counts fetch requests and their outcomes per question and tracks
// the number of choices applied by the latest successful fetch.
type Collector struct {
	started   *prometheus.CounterVec
	completed *prometheus.CounterVec
	items     *prometheus.GaugeVec
}

var _ choices.FetchObserver = (*Collector)(nil)

// NewCollector creates the metric vectors and registers them with reg. A nil
// registerer leaves them unregistered, which is handy in tests.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		started: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "started_total",
			Help:      "Choices-by-url requests started.",
		}, []string{"question"}),
		completed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "completed_total",
			Help:      "Choices-by-url requests completed, by outcome.",
		}, []string{"question", "outcome"}),
		items: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "items",
			Help:      "Choices applied by the latest successful request.",
		}, []string{"question"}),
	}
	if reg == nil {
		return c, nil
	}
	for _, collector := range []prometheus.Collector{c.started, c.completed, c.items} {
		if err := reg.Register(collector); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				return nil, fmt.Errorf("metrics: collector already registered: %w", err)
			}
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}
	return c, nil
}

// FetchStarted implements choices.FetchObserver.
func (c *Collector) FetchStarted(question string, _ choices.ChoicesByURL) {
	c.started.WithLabelValues(question).Inc()
}

// FetchCompleted implements choices.FetchObserver.
func (c *Collector) FetchCompleted(question string, _ choices.ChoicesByURL, outcome choices.FetchOutcome, items int) {
	c.completed.WithLabelValues(question, string(outcome)).Inc()
	if outcome == choices.FetchApplied {
		c.items.WithLabelValues(question).Set(float64(items))
	}
}

// Started returns the started counter for question.
func (c *Collector) Started(question string) prometheus.Counter {
	return c.started.WithLabelValues(question)
}

// Completed returns the completion counter for question and outcome.
func (c *Collector) Completed(question string, outcome choices.FetchOutcome) prometheus.Counter {
	return c.completed.WithLabelValues(question, string(outcome))
}

// Items returns the applied-items gauge for question.
func (c *Collector) Items(question string) prometheus.Gauge {
	return c.items.WithLabelValues(question)
}
