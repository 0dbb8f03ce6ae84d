// Package catalog provides the fixed feature catalog behind the debounced
// search demo.
package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// previewSize is how many entries an empty query shows.
const previewSize = 5

var entries = []string{
	"Alpine JS",
	"Anchor Tag",
	"Async UI",
	"Boosted Links",
	"Caching Strategies",
	"CSS Transitions",
	"Debounced Search",
	"Event Hooks",
	"Fragment Navigation",
	"Granular Updates",
	"Header Inspection",
	"Hypermedia",
	"Indicators",
	"Lazy Loading",
	"Out of Band Swaps",
	"Polling",
	"Progressive Enhancement",
	"RESTful Actions",
	"Swap Strategies",
}

// Catalog answers case-insensitive substring queries over a fixed list.
type Catalog struct {
	entries []string
}

func New() *Catalog {
	return &Catalog{entries: entries}
}

// Search returns entries containing the query, ignoring case. An empty or
// whitespace-only query returns the first few entries as a preview.
func (c *Catalog) Search(q string) []string {
	term := strings.ToLower(strings.TrimSpace(q))
	if term == "" {
		out := make([]string, previewSize)
		copy(out, c.entries[:previewSize])
		return out
	}
	var matches []string
	for _, entry := range c.entries {
		if strings.Contains(strings.ToLower(entry), term) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// Suggest ranks catalog entries by edit distance to the query and returns
// the closest max entries. Used when Search comes back empty.
func (c *Catalog) Suggest(q string, max int) []string {
	term := strings.ToLower(strings.TrimSpace(q))
	if term == "" || max <= 0 {
		return nil
	}

	type scored struct {
		entry    string
		distance int
	}
	ranked := make([]scored, 0, len(c.entries))
	for _, entry := range c.entries {
		ranked = append(ranked, scored{
			entry:    entry,
			distance: levenshtein.ComputeDistance(term, strings.ToLower(entry)),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].distance < ranked[j].distance
	})

	if max > len(ranked) {
		max = len(ranked)
	}
	out := make([]string, 0, max)
	for _, s := range ranked[:max] {
		out = append(out, s.entry)
	}
	return out
}
