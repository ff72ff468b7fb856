package metrics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/goliatone/go-choicelist/pkg/choices"
	"github.com/goliatone/go-choicelist/pkg/metrics"
)

func TestCollector_FetchLifecycle(t *testing.T) {
	t.Parallel()

	collector, err := metrics.NewCollector(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("new collector: %v", err)
	}
	q, err := choices.NewQuestion("country", choices.TypeDropdown, choices.Config{}, choices.WithFetchObserver(collector))
	if err != nil {
		t.Fatalf("new question: %v", err)
	}
	q.SetChoicesByURL(choices.ChoicesByURL{URL: "countries.json"})

	ok := choices.FetcherFunc(func(context.Context, choices.ChoicesByURL) ([]byte, error) {
		return []byte(`["ca", "de", "es"]`), nil
	})
	if err := q.Refresh(context.Background(), ok); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	broken := choices.FetcherFunc(func(context.Context, choices.ChoicesByURL) ([]byte, error) {
		return nil, errors.New("offline")
	})
	if err := q.Refresh(context.Background(), broken); err == nil {
		t.Fatalf("expected fetch error")
	}

	garbage := choices.FetcherFunc(func(context.Context, choices.ChoicesByURL) ([]byte, error) {
		return []byte(`{"not": "a list"}`), nil
	})
	if err := q.Refresh(context.Background(), garbage); err == nil {
		t.Fatalf("expected payload error")
	}

	first := q.BeginFetch()
	second := q.BeginFetch()
	if applied, err := q.CompleteFetch(first, []byte(`["late"]`), nil); applied || err != nil {
		t.Fatalf("expected stale result to be ignored, got %v %v", applied, err)
	}
	if _, err := q.CompleteFetch(second, []byte(`["fr", "it"]`), nil); err != nil {
		t.Fatalf("complete: %v", err)
	}

	checks := map[string]float64{
		"started":  testutil.ToFloat64(collector.Started("country")),
		"applied":  testutil.ToFloat64(collector.Completed("country", choices.FetchApplied)),
		"failed":   testutil.ToFloat64(collector.Completed("country", choices.FetchFailed)),
		"rejected": testutil.ToFloat64(collector.Completed("country", choices.FetchRejected)),
		"stale":    testutil.ToFloat64(collector.Completed("country", choices.FetchStale)),
		"items":    testutil.ToFloat64(collector.Items("country")),
	}
	want := map[string]float64{"started": 5, "applied": 2, "failed": 1, "rejected": 1, "stale": 1, "items": 2}
	for name, expected := range want {
		if checks[name] != expected {
			t.Fatalf("%s: expected %v, got %v", name, expected, checks[name])
		}
	}
}

func TestNewCollector_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	if _, err := metrics.NewCollector(reg); err != nil {
		t.Fatalf("first collector: %v", err)
	}
	if _, err := metrics.NewCollector(reg); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestNewCollector_Unregistered(t *testing.T) {
	t.Parallel()

	collector, err := metrics.NewCollector(nil)
	if err != nil {
		t.Fatalf("new collector: %v", err)
	}
	collector.FetchStarted("q", choices.ChoicesByURL{})
	if got := testutil.ToFloat64(collector.Started("q")); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}
