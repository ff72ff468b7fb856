package timezones

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-choicelist/pkg/choices"
)

// Scheme is the choicesByUrl scheme Fetcher answers.
const Scheme = "timezones"

// Fetcher serves "timezones:" descriptors from the zone list and hands every
// other descriptor to Next. The query string carries the search and limit
// parameters, and an optional opaque part restricts results to an area:
// "timezones:Europe?q=ber".
type Fetcher struct {
	Next choices.Fetcher
	opts Options
}

var _ choices.Fetcher = (*Fetcher)(nil)

// NewFetcher returns a Fetcher delegating unknown schemes to next.
func NewFetcher(next choices.Fetcher, fns ...OptionFn) *Fetcher {
	return &Fetcher{Next: next, opts: NewOptions(fns...)}
}

// Handles reports whether desc targets the zone list.
func Handles(desc choices.ChoicesByURL) bool {
	return strings.HasPrefix(strings.TrimSpace(desc.URL), Scheme+":")
}

// Fetch implements choices.Fetcher.
func (f *Fetcher) Fetch(ctx context.Context, desc choices.ChoicesByURL) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !Handles(desc) {
		if f.Next == nil {
			return nil, fmt.Errorf("timezones: no fetcher for %q", desc.URL)
		}
		return f.Next.Fetch(ctx, desc)
	}

	parsed, err := url.Parse(strings.TrimSpace(desc.URL))
	if err != nil {
		return nil, fmt.Errorf("timezones: parse %q: %w", desc.URL, err)
	}
	query := parsed.Query()
	limit, _ := strconv.Atoi(query.Get(f.opts.LimitParam))
	return f.lookup(parsed.Opaque, query.Get(f.opts.SearchParam), limit)
}

func (f *Fetcher) lookup(area, query string, limit int) ([]byte, error) {
	zones, err := f.opts.zones()
	if err != nil {
		return nil, fmt.Errorf("timezones: load zones: %w", err)
	}
	return encode(Search(InArea(zones, area), query, limit, f.opts))
}
