package choices_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-choicelist/pkg/choices"
)

func TestParsePayload_PathAndNames(t *testing.T) {
	t.Parallel()

	payload := []byte(`{"data": {"items": [
		{"id": "us", "label": "United States"},
		{"id": "ca", "label": "Canada"},
		{"label": "missing id"}
	]}}`)
	items, err := choices.ParsePayload(payload, choices.ChoicesByURL{
		Path:      "data;items",
		ValueName: "id",
		TitleName: "label",
	})
	if err != nil {
		t.Fatalf("parse payload: %v", err)
	}
	want := []choices.ItemConfig{
		{Value: "us", Text: choices.LocalizedText{choices.DefaultLocale: "United States"}},
		{Value: "ca", Text: choices.LocalizedText{choices.DefaultLocale: "Canada"}},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePayload_DefaultsAndScalars(t *testing.T) {
	t.Parallel()

	items, err := choices.ParsePayload([]byte(`[{"value": 1, "title": "One"}, "two", null]`), choices.ChoicesByURL{})
	if err != nil {
		t.Fatalf("parse payload: %v", err)
	}
	want := []choices.ItemConfig{
		{Value: float64(1), Text: choices.LocalizedText{choices.DefaultLocale: "One"}},
		{Value: "two"},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePayload_Errors(t *testing.T) {
	t.Parallel()

	if _, err := choices.ParsePayload([]byte(`{"a": []}`), choices.ChoicesByURL{Path: "b"}); !errors.Is(err, choices.ErrPayloadPath) {
		t.Fatalf("expected ErrPayloadPath, got %v", err)
	}
	if _, err := choices.ParsePayload([]byte(`{"a": {}}`), choices.ChoicesByURL{Path: "a"}); !errors.Is(err, choices.ErrPayloadShape) {
		t.Fatalf("expected ErrPayloadShape, got %v", err)
	}
	if _, err := choices.ParsePayload([]byte(`{`), choices.ChoicesByURL{}); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}

func TestQuestion_ChoicesByURLAssignmentIsWholesale(t *testing.T) {
	t.Parallel()

	cfg := choices.Config{ChoicesByURL: &choices.ChoicesByURL{URL: "countries.json", TitleName: "name"}}
	q := newQuestion(t, choices.TypeDropdown, cfg)
	if got := q.ChoicesByURL().TitleName; got != "name" {
		t.Fatalf("expected titleName name, got %q", got)
	}

	q.SetChoicesByURL(choices.ChoicesByURL{URL: "cities.json"})
	want := choices.ChoicesByURL{URL: "cities.json"}
	if diff := cmp.Diff(want, q.ChoicesByURL()); diff != "" {
		t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
	}
}

func TestQuestion_StaleFetchIsIgnored(t *testing.T) {
	t.Parallel()

	cfg := choices.Config{
		Choices:      plainChoices("static"),
		ChoicesByURL: &choices.ChoicesByURL{URL: "list.json"},
	}
	q := newQuestion(t, choices.TypeDropdown, cfg)

	first := q.BeginFetch()
	second := q.BeginFetch()

	applied, err := q.CompleteFetch(first, []byte(`["old"]`), nil)
	if applied || err != nil {
		t.Fatalf("stale result: applied=%v err=%v", applied, err)
	}
	assertValues(t, "after stale", []any{"static"}, q.Choices())

	applied, err = q.CompleteFetch(second, []byte(`["new1", "new2"]`), nil)
	if !applied || err != nil {
		t.Fatalf("latest result: applied=%v err=%v", applied, err)
	}
	assertValues(t, "after latest", []any{"new1", "new2"}, q.VisibleChoices())

	q.SetChoicesByURL(choices.ChoicesByURL{URL: "other.json"})
	assertValues(t, "after descriptor change", []any{"static"}, q.Choices())
}

func TestQuestion_FailedFetchKeepsChoices(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	cfg := choices.Config{
		Choices:      plainChoices("static"),
		ChoicesByURL: &choices.ChoicesByURL{URL: "list.json"},
	}
	q := newQuestion(t, choices.TypeDropdown, cfg, choices.WithLogger(logger))

	boom := errors.New("boom")
	ticket := q.BeginFetch()
	applied, err := q.CompleteFetch(ticket, nil, boom)
	if applied || !errors.Is(err, boom) {
		t.Fatalf("expected wrapped fetch error, got applied=%v err=%v", applied, err)
	}
	assertValues(t, "choices", []any{"static"}, q.Choices())
	if len(logger.warns) != 1 {
		t.Fatalf("expected one warning, got %d", len(logger.warns))
	}
}

func TestQuestion_RefreshUsesFetcher(t *testing.T) {
	t.Parallel()

	cfg := choices.Config{ChoicesByURL: &choices.ChoicesByURL{URL: "list.json", Path: "results"}}
	q := newQuestion(t, choices.TypeCheckbox, cfg)

	var requested choices.ChoicesByURL
	fetcher := choices.FetcherFunc(func(_ context.Context, desc choices.ChoicesByURL) ([]byte, error) {
		requested = desc
		return []byte(`{"results": [{"value": "a", "text": "Alpha"}]}`), nil
	})
	if err := q.Refresh(context.Background(), fetcher); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if requested.URL != "list.json" {
		t.Fatalf("expected fetch for list.json, got %q", requested.URL)
	}
	visible := q.VisibleChoices()
	assertValues(t, "visible", []any{"a"}, visible)
	if got := q.ItemText(visible[0]); got != "Alpha" {
		t.Fatalf("expected text Alpha, got %q", got)
	}
}

func TestQuestion_RefreshWithoutDescriptorIsNoop(t *testing.T) {
	t.Parallel()

	q := newQuestion(t, choices.TypeCheckbox, choices.Config{Choices: plainChoices("a")})
	called := false
	fetcher := choices.FetcherFunc(func(context.Context, choices.ChoicesByURL) ([]byte, error) {
		called = true
		return nil, nil
	})
	if err := q.Refresh(context.Background(), fetcher); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if called {
		t.Fatalf("fetcher should not run without a descriptor")
	}
}

func TestQuestion_ConfigureDropsRemoteSource(t *testing.T) {
	t.Parallel()

	cfg := choices.Config{
		Choices:      plainChoices("static"),
		ChoicesByURL: &choices.ChoicesByURL{URL: "x"},
	}
	q := newQuestion(t, choices.TypeDropdown, cfg)

	inflight := q.BeginFetch()
	ticket := q.BeginFetch()
	if applied, err := q.CompleteFetch(ticket, []byte(`["remote1", "remote2"]`), nil); !applied || err != nil {
		t.Fatalf("fetch: applied=%v err=%v", applied, err)
	}
	assertValues(t, "after fetch", []any{"remote1", "remote2"}, q.Choices())

	q.Configure(func(c *choices.Config) { c.ChoicesByURL = nil })
	assertValues(t, "after clearing descriptor", []any{"static"}, q.Choices())
	if diff := cmp.Diff(choices.ChoicesByURL{}, q.ChoicesByURL()); diff != "" {
		t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
	}

	if applied, _ := q.CompleteFetch(inflight, []byte(`["late"]`), nil); applied {
		t.Fatalf("expected in-flight request to be stale")
	}
	called := false
	fetcher := choices.FetcherFunc(func(context.Context, choices.ChoicesByURL) ([]byte, error) {
		called = true
		return nil, nil
	})
	if err := q.Refresh(context.Background(), fetcher); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if called {
		t.Fatalf("fetcher should not run after the descriptor was cleared")
	}
	assertValues(t, "after refresh", []any{"static"}, q.Choices())
}

func TestQuestion_SetChoicesReplacesFetchedChoices(t *testing.T) {
	t.Parallel()

	q := newQuestion(t, choices.TypeDropdown, choices.Config{ChoicesByURL: &choices.ChoicesByURL{URL: "list.json"}})
	ticket := q.BeginFetch()
	if applied, err := q.CompleteFetch(ticket, []byte(`["remote"]`), nil); !applied || err != nil {
		t.Fatalf("fetch: applied=%v err=%v", applied, err)
	}

	q.SetChoices(plainChoices("a", "b"))
	assertValues(t, "after set", []any{"a", "b"}, q.Choices())

	ticket = q.BeginFetch()
	if applied, err := q.CompleteFetch(ticket, []byte(`["fresh"]`), nil); !applied || err != nil {
		t.Fatalf("refetch: applied=%v err=%v", applied, err)
	}
	assertValues(t, "after refetch", []any{"fresh"}, q.Choices())
}
