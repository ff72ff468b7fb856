package timezones

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/goliatone/go-choicelist/pkg/choices"
)

// Search returns zones containing query (case-insensitive), prefix matches
// first, then lexical order, truncated to the clamped limit.
func Search(zones []string, query string, limit int, opts Options) []string {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode != EmptySearchTop {
			return nil
		}
		if len(zones) <= limit {
			return append([]string{}, zones...)
		}
		return append([]string{}, zones[:limit]...)
	}

	q := strings.ToLower(query)
	matches := make([]matchedZone, 0, 32)
	for _, zone := range zones {
		lower := strings.ToLower(zone)
		if !strings.Contains(lower, q) {
			continue
		}
		matches = append(matches, matchedZone{name: zone, isPrefix: strings.HasPrefix(lower, q)})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].name < matches[j].name
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.name)
	}
	return out
}

type matchedZone struct {
	name     string
	isPrefix bool
}

// Items converts zones into choice configs with Label as text.
func Items(zones []string) []choices.ItemConfig {
	out := make([]choices.ItemConfig, 0, len(zones))
	for _, zone := range zones {
		out = append(out, choices.ItemConfig{
			Value: zone,
			Text:  choices.LocalizedText{choices.DefaultLocale: Label(zone)},
		})
	}
	return out
}

type entry struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

type payload struct {
	Data []entry `json:"data"`
}

// encode renders the search result as {"data": [{"value", "text"}]}, the
// shape ParsePayload reads with path "data".
func encode(zones []string) ([]byte, error) {
	body := payload{Data: make([]entry, 0, len(zones))}
	for _, zone := range zones {
		body.Data = append(body.Data, entry{Value: zone, Text: Label(zone)})
	}
	return json.Marshal(body)
}
