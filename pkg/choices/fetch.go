package choices

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ChoicesByURL describes a remote choice source. Assigning a descriptor
// replaces every field, so fields absent from the new value are cleared.
type ChoicesByURL struct {
	URL       string `json:"url,omitempty" yaml:"url,omitempty"`
	Path      string `json:"path,omitempty" yaml:"path,omitempty"`
	ValueName string `json:"valueName,omitempty" yaml:"valueName,omitempty"`
	TitleName string `json:"titleName,omitempty" yaml:"titleName,omitempty"`
}

// IsEmpty reports whether the descriptor points nowhere.
func (d ChoicesByURL) IsEmpty() bool {
	return strings.TrimSpace(d.URL) == "" && strings.TrimSpace(d.Path) == ""
}

// Fetcher retrieves the raw payload for a descriptor. Retrying is the
// fetcher's business; the engine calls it once per request.
type Fetcher interface {
	Fetch(ctx context.Context, desc ChoicesByURL) ([]byte, error)
}

// FetcherFunc adapts a function into a Fetcher.
type FetcherFunc func(ctx context.Context, desc ChoicesByURL) ([]byte, error)

// Fetch delegates to the underlying function.
func (fn FetcherFunc) Fetch(ctx context.Context, desc ChoicesByURL) ([]byte, error) {
	return fn(ctx, desc)
}

// FetchOutcome classifies how a request ended.
type FetchOutcome string

const (
	FetchApplied  FetchOutcome = "applied"
	FetchStale    FetchOutcome = "stale"
	FetchFailed   FetchOutcome = "failed"
	FetchRejected FetchOutcome = "rejected"
)

// FetchObserver is notified about the choices-by-url lifecycle. Calls happen
// on the goroutine driving the question.
type FetchObserver interface {
	FetchStarted(question string, desc ChoicesByURL)
	FetchCompleted(question string, desc ChoicesByURL, outcome FetchOutcome, items int)
}

type noopFetchObserver struct{}

func (noopFetchObserver) FetchStarted(string, ChoicesByURL)                      {}
func (noopFetchObserver) FetchCompleted(string, ChoicesByURL, FetchOutcome, int) {}

// FetchTicket identifies one in-flight request. Only the ticket returned by
// the latest BeginFetch is honoured by CompleteFetch.
type FetchTicket struct {
	seq  uint64
	desc ChoicesByURL
}

// Descriptor returns the source the ticket was issued for.
func (t FetchTicket) Descriptor() ChoicesByURL { return t.desc }

// ParsePayload extracts choices from a JSON payload. Path segments are
// separated by ';', '/' or '.'. Object entries read their value from
// ValueName (default "value") and their text from TitleName (default "text",
// then "title"); scalar entries are used as values directly. Entries without a
// value are skipped.
func ParsePayload(data []byte, desc ChoicesByURL) ([]ItemConfig, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("choices: parse payload: %w", err)
	}

	current := root
	for _, segment := range pathSegments(desc.Path) {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrPayloadPath, desc.Path)
		}
		next, ok := obj[segment]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrPayloadPath, desc.Path)
		}
		current = next
	}

	list, ok := current.([]any)
	if !ok {
		return nil, ErrPayloadShape
	}

	valueName := strings.TrimSpace(desc.ValueName)
	if valueName == "" {
		valueName = "value"
	}
	titleNames := []string{"text", "title"}
	if name := strings.TrimSpace(desc.TitleName); name != "" {
		titleNames = []string{name}
	}

	out := make([]ItemConfig, 0, len(list))
	for _, entry := range list {
		obj, ok := entry.(map[string]any)
		if !ok {
			if entry == nil {
				continue
			}
			out = append(out, ItemConfig{Value: entry})
			continue
		}
		value, ok := obj[valueName]
		if !ok || value == nil {
			continue
		}
		cfg := ItemConfig{Value: value}
		for _, name := range titleNames {
			if title, ok := obj[name].(string); ok && strings.TrimSpace(title) != "" {
				cfg.Text = LocalizedText{DefaultLocale: title}
				break
			}
		}
		out = append(out, cfg)
	}
	return out, nil
}

func pathSegments(path string) []string {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == ';' || r == '/' || r == '.'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ChoicesByURL returns the current remote source descriptor.
func (q *Question) ChoicesByURL() ChoicesByURL { return q.choicesByURL }

// SetChoicesByURL replaces the remote source wholesale. Any in-flight request
// is superseded and previously fetched choices are dropped.
func (q *Question) SetChoicesByURL(desc ChoicesByURL) {
	q.choicesByURL = desc
	q.fetchSeq++
	q.fetched = nil
	q.rebuild()
}

// BeginFetch starts a new request for the current descriptor, superseding any
// earlier one.
func (q *Question) BeginFetch() FetchTicket {
	q.fetchSeq++
	q.opts.observer.FetchStarted(q.name, q.choicesByURL)
	return FetchTicket{seq: q.fetchSeq, desc: q.choicesByURL}
}

// CompleteFetch applies the outcome of a request. Results for superseded
// tickets are ignored and report applied == false with a nil error. A failed
// fetch or unparsable payload leaves the ChoiceSet unchanged.
func (q *Question) CompleteFetch(ticket FetchTicket, payload []byte, fetchErr error) (bool, error) {
	if ticket.seq != q.fetchSeq {
		q.opts.logger.Debug("choices: stale fetch result ignored", "question", q.name, "url", ticket.desc.URL)
		q.opts.observer.FetchCompleted(q.name, ticket.desc, FetchStale, 0)
		return false, nil
	}
	if fetchErr != nil {
		q.opts.logger.Warn("choices: fetch failed", "question", q.name, "url", ticket.desc.URL, "error", fetchErr)
		q.opts.observer.FetchCompleted(q.name, ticket.desc, FetchFailed, 0)
		return false, fmt.Errorf("choices: fetch %s: %w", ticket.desc.URL, fetchErr)
	}
	items, err := ParsePayload(payload, ticket.desc)
	if err != nil {
		q.opts.logger.Warn("choices: payload rejected", "question", q.name, "url", ticket.desc.URL, "error", err)
		q.opts.observer.FetchCompleted(q.name, ticket.desc, FetchRejected, 0)
		return false, err
	}
	q.fetched = items
	q.rebuild()
	q.opts.logger.Debug("choices: fetched choices applied", "question", q.name, "count", len(items))
	q.opts.observer.FetchCompleted(q.name, ticket.desc, FetchApplied, len(items))
	return true, nil
}

// Refresh fetches the current descriptor synchronously. It is a no-op when no
// descriptor is configured.
func (q *Question) Refresh(ctx context.Context, fetcher Fetcher) error {
	if q.choicesByURL.IsEmpty() || fetcher == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	ticket := q.BeginFetch()
	payload, err := fetcher.Fetch(ctx, ticket.Descriptor())
	_, err = q.CompleteFetch(ticket, payload, err)
	return err
}
