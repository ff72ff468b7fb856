// Package metrics exports choices-by-url fetch activity as Prometheus metrics.
// A Collector implements choices.FetchObserver and is attached to questions
// with choices.WithFetchObserver.
package metrics
