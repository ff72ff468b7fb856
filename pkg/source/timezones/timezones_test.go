package timezones_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/mux"

	"github.com/goliatone/go-choicelist/pkg/choices"
	"github.com/goliatone/go-choicelist/pkg/source/timezones"
)

var sampleZones = []string{"America/Chicago", "America/New_York", "Europe/Berlin", "Europe/Paris", "UTC"}

func TestDefaultZones(t *testing.T) {
	t.Parallel()

	zones, err := timezones.DefaultZones()
	if err != nil {
		t.Fatalf("default zones: %v", err)
	}
	if len(zones) < 300 {
		t.Fatalf("expected the embedded list, got %d zones", len(zones))
	}
	for _, want := range []string{"Europe/Paris", "America/New_York", "UTC"} {
		found := false
		for _, zone := range zones {
			if zone == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected %s in default zones", want)
		}
	}
}

func TestLoadZones_SkipsCommentsAndDuplicates(t *testing.T) {
	t.Parallel()

	zones, err := timezones.LoadZones(strings.NewReader("# header\nUTC\n\nEurope/Paris\nUTC\n"))
	if err != nil {
		t.Fatalf("load zones: %v", err)
	}
	if diff := cmp.Diff([]string{"Europe/Paris", "UTC"}, zones); diff != "" {
		t.Fatalf("zones mismatch (-want +got):\n%s", diff)
	}
	if _, err := timezones.LoadZones(nil); err == nil {
		t.Fatalf("expected error for nil reader")
	}
}

func TestAreasAndInArea(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff([]string{"America", "Europe", "UTC"}, timezones.Areas(sampleZones)); diff != "" {
		t.Fatalf("areas mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Europe/Berlin", "Europe/Paris"}, timezones.InArea(sampleZones, "europe/")); diff != "" {
		t.Fatalf("area filter mismatch (-want +got):\n%s", diff)
	}
	if got := timezones.InArea(sampleZones, ""); len(got) != len(sampleZones) {
		t.Fatalf("expected empty area to keep %d zones, got %d", len(sampleZones), len(got))
	}
	if sampleZones[0] != "America/Chicago" {
		t.Fatalf("input slice was modified: %v", sampleZones)
	}
}

func TestSearch_PrefixFirstAndClamped(t *testing.T) {
	t.Parallel()

	opts := timezones.NewOptions(timezones.WithMaxLimit(2))
	got := timezones.Search([]string{"Asia/Tokyo", "America/Chicago", "Europe/Amsterdam", "America/New_York"}, "am", 10, opts)
	if diff := cmp.Diff([]string{"America/Chicago", "America/New_York"}, got); diff != "" {
		t.Fatalf("search mismatch (-want +got):\n%s", diff)
	}

	none := timezones.NewOptions(timezones.WithEmptySearchMode(timezones.EmptySearchNone))
	if got := timezones.Search(sampleZones, " ", 0, none); got != nil {
		t.Fatalf("expected nil for empty query, got %v", got)
	}
	if got := timezones.Search(sampleZones, "", 2, timezones.NewOptions()); len(got) != 2 {
		t.Fatalf("expected top two zones, got %v", got)
	}
	if got := timezones.Search(sampleZones, "utc", -1, timezones.NewOptions()); got != nil {
		t.Fatalf("expected nil for negative limit, got %v", got)
	}
}

func TestItems_Labels(t *testing.T) {
	t.Parallel()

	items := timezones.Items([]string{"America/Port_of_Spain"})
	want := []choices.ItemConfig{{
		Value: "America/Port_of_Spain",
		Text:  choices.LocalizedText{choices.DefaultLocale: "America / Port of Spain"},
	}}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestFetcher_DrivesChoicesByURL(t *testing.T) {
	t.Parallel()

	q, err := choices.NewQuestion("tz", choices.TypeDropdown, choices.Config{
		ChoicesByURL: &choices.ChoicesByURL{URL: "timezones:Europe?q=par", Path: "data"},
	})
	if err != nil {
		t.Fatalf("new question: %v", err)
	}
	fetcher := timezones.NewFetcher(nil, timezones.WithZones(sampleZones))
	if err := q.Refresh(context.Background(), fetcher); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	var got []string
	for _, item := range q.VisibleChoices() {
		got = append(got, q.ItemText(item))
	}
	if diff := cmp.Diff([]string{"Europe / Paris"}, got); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}
}

func TestFetcher_DelegatesOtherSchemes(t *testing.T) {
	t.Parallel()

	var delegated []string
	next := choices.FetcherFunc(func(_ context.Context, desc choices.ChoicesByURL) ([]byte, error) {
		delegated = append(delegated, desc.URL)
		return []byte(`[]`), nil
	})
	fetcher := timezones.NewFetcher(next)
	if _, err := fetcher.Fetch(context.Background(), choices.ChoicesByURL{URL: "countries.json"}); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if diff := cmp.Diff([]string{"countries.json"}, delegated); diff != "" {
		t.Fatalf("delegation mismatch (-want +got):\n%s", diff)
	}

	if _, err := timezones.NewFetcher(nil).Fetch(context.Background(), choices.ChoicesByURL{URL: "countries.json"}); err == nil {
		t.Fatalf("expected error without a next fetcher")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := fetcher.Fetch(ctx, choices.ChoicesByURL{URL: "timezones:"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

type handlerResponse struct {
	Data []struct {
		Value string `json:"value"`
		Text  string `json:"text"`
	} `json:"data"`
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	router := mux.NewRouter()
	timezones.RegisterRoutes(router, "/api/timezones", timezones.WithZones(sampleZones))

	tests := []struct {
		target string
		want   []string
	}{
		{"/api/timezones?q=america", []string{"America/Chicago", "America/New_York"}},
		{"/api/timezones/Europe", []string{"Europe/Berlin", "Europe/Paris"}},
		{"/api/timezones/europe?q=ber&limit=1", []string{"Europe/Berlin"}},
	}
	for _, tc := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.target, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", tc.target, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Fatalf("%s: unexpected content type %q", tc.target, ct)
		}
		var payload handlerResponse
		if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
			t.Fatalf("%s: decode: %v", tc.target, err)
		}
		var got []string
		for _, entry := range payload.Data {
			got = append(got, entry.Value)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", tc.target, diff)
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/timezones", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for POST, got %d", rec.Code)
	}
}

func TestHandler_HeadAndMethod(t *testing.T) {
	t.Parallel()

	h := timezones.Handler(timezones.WithZones(sampleZones))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/?q=utc", nil))
	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("expected empty 200 for HEAD, got %d with %d bytes", rec.Code, rec.Body.Len())
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/", nil))
	if rec.Code != http.StatusMethodNotAllowed || rec.Header().Get("Allow") == "" {
		t.Fatalf("expected 405 with Allow header, got %d", rec.Code)
	}
}
