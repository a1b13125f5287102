package services

import (
	"fmt"
	"strings"

	"maitred/internal/core/domain/model/catalog"
)

// Matcher resolves bilingual, fuzzy user phrasing to canonical catalog
// entries. Matching is tiered and first-match-wins:
//
//  1. exact match on the translated (Korean -> canonical) form of the query
//  2. exact match on the raw query against either locale's name
//  3. exact match after translating the catalog name into the query's locale
//  4. case-insensitive bidirectional substring match
//  5. keyword cluster match from the alias table
//
// No tier matching is a normal outcome: every lookup returns (entry, false)
// rather than an error, and callers phrase "not found" to the user.
type Matcher struct {
	snapshot *catalog.Snapshot
	table    *AliasTable
}

// NewMatcher creates a Matcher over one catalog snapshot. A turn holds a
// single Matcher so a concurrent catalog reload cannot change results
// mid-conversation.
func NewMatcher(snapshot *catalog.Snapshot, table *AliasTable) *Matcher {
	return &Matcher{snapshot: snapshot, table: table}
}

type candidate struct {
	canonical string
	local     string
}

// FindDinner resolves a dinner name.
func (m *Matcher) FindDinner(query string) (*catalog.Dinner, bool) {
	dinners := m.snapshot.Dinners()
	candidates := make([]candidate, len(dinners))
	for i, d := range dinners {
		candidates[i] = candidate{canonical: d.Name(), local: d.LocalName()}
	}

	if idx := m.match(query, candidates, m.table.Keywords.Dinners); idx >= 0 {
		return dinners[idx], true
	}
	return nil, false
}

// FindStyle resolves a serving style name.
func (m *Matcher) FindStyle(query string) (*catalog.Style, bool) {
	styles := m.snapshot.Styles()
	candidates := make([]candidate, len(styles))
	for i, s := range styles {
		candidates[i] = candidate{canonical: s.Name(), local: s.LocalName()}
	}

	if idx := m.match(query, candidates, m.table.Keywords.Styles); idx >= 0 {
		return styles[idx], true
	}
	return nil, false
}

// FindMenuItem resolves a standalone menu item name.
func (m *Matcher) FindMenuItem(query string) (*catalog.MenuItem, bool) {
	menuItems := m.snapshot.MenuItems()
	candidates := make([]candidate, len(menuItems))
	for i, mi := range menuItems {
		candidates[i] = candidate{canonical: mi.Name(), local: mi.LocalName()}
	}

	if idx := m.match(query, candidates, m.table.Keywords.MenuItems); idx >= 0 {
		return menuItems[idx], true
	}
	return nil, false
}

// IsStyleCompatible reports whether the named style may be applied to the
// named dinner. Unresolvable names are treated as compatible; the caller's
// own resolution failure handling covers those.
func (m *Matcher) IsStyleCompatible(dinnerName, styleName string) bool {
	dinner, ok := m.FindDinner(dinnerName)
	if !ok {
		return true
	}

	resolved := styleName
	if style, ok := m.FindStyle(styleName); ok {
		resolved = style.Name()
	}
	return dinner.AllowsStyle(resolved)
}

// AvailableStyles lists the styles the dinner can take.
func (m *Matcher) AvailableStyles(dinner *catalog.Dinner) []*catalog.Style {
	available := make([]*catalog.Style, 0, len(m.snapshot.Styles()))
	for _, style := range m.snapshot.Styles() {
		if !style.Active() {
			continue
		}
		if dinner == nil || dinner.AllowsStyle(style.Name()) {
			available = append(available, style)
		}
	}
	return available
}

// DinnerListing renders the orderable dinners as a numbered prompt list.
func (m *Matcher) DinnerListing() string {
	var b strings.Builder
	n := 0
	for _, dinner := range m.snapshot.Dinners() {
		if !dinner.Active() {
			continue
		}
		n++
		fmt.Fprintf(&b, "%d. %s (%d원)\n", n, displayName(dinner.LocalName(), dinner.Name()), dinner.BasePrice())
	}
	return strings.TrimRight(b.String(), "\n")
}

// StyleListing renders the styles available for a dinner as a prompt list.
func (m *Matcher) StyleListing(dinner *catalog.Dinner) string {
	var b strings.Builder
	for i, style := range m.AvailableStyles(dinner) {
		fmt.Fprintf(&b, "%d. %s (+%d원)\n", i+1, displayName(style.LocalName(), style.Name()), style.ExtraPrice())
	}
	return strings.TrimRight(b.String(), "\n")
}

// ExtrasListing renders the standalone orderable items as a prompt list.
func (m *Matcher) ExtrasListing() string {
	var b strings.Builder
	n := 0
	for _, menuItem := range m.snapshot.MenuItems() {
		if !menuItem.Orderable() {
			continue
		}
		n++
		fmt.Fprintf(&b, "%d. %s (%d원)\n", n, displayName(menuItem.LocalName(), menuItem.Name()), menuItem.UnitPrice())
	}
	return strings.TrimRight(b.String(), "\n")
}

func displayName(local, canonical string) string {
	if local != "" {
		return local
	}
	return canonical
}

// match runs the five tiers over the candidate list and returns the index
// of the first match, or -1.
func (m *Matcher) match(query string, candidates []candidate, clusters []KeywordCluster) int {
	normalized := normalize(query)
	if normalized == "" {
		return -1
	}
	translated := m.table.Translate(normalized)

	// tier 1: exact on the translated query
	for i, c := range candidates {
		if normalize(c.canonical) == translated {
			return i
		}
	}

	// tier 2: exact on the raw query, either locale
	for i, c := range candidates {
		if normalize(c.canonical) == normalized || (c.local != "" && normalize(c.local) == normalized) {
			return i
		}
	}

	// tier 3: exact after localizing the catalog name into the query locale
	for i, c := range candidates {
		if m.table.Localize(normalize(c.canonical)) == normalized {
			return i
		}
	}

	// tier 4: bidirectional substring
	for i, c := range candidates {
		if bidirectionalContains(normalized, normalize(c.canonical)) ||
			(c.local != "" && bidirectionalContains(normalized, normalize(c.local))) {
			return i
		}
	}

	// tier 5: keyword clusters
	for _, cluster := range clusters {
		for _, keyword := range cluster.Keywords {
			if strings.Contains(normalized, normalize(keyword)) {
				for i, c := range candidates {
					if bidirectionalContains(normalize(cluster.Name), normalize(c.canonical)) ||
						(c.local != "" && bidirectionalContains(normalize(cluster.Name), normalize(c.local))) {
						return i
					}
				}
			}
		}
	}

	return -1
}

// CanonicalComponentName translates a component reference from either
// locale into the catalog's English component naming.
func (m *Matcher) CanonicalComponentName(s string) string {
	return m.table.Translate(s)
}

// Translate rewrites known Korean phrases in s to their canonical English
// forms. Longer phrases replace first so compounds are not split.
func (t *AliasTable) Translate(s string) string {
	out := s
	for _, phrase := range t.orderedPhrases {
		out = strings.ReplaceAll(out, phrase, t.Translations[phrase])
	}
	return normalize(out)
}

// Localize rewrites known English words in s back to Korean.
func (t *AliasTable) Localize(s string) string {
	out := s
	for _, word := range t.orderedReverse {
		out = strings.ReplaceAll(out, word, t.reverse[word])
	}
	return normalize(out)
}

// normalize lowercases, trims and collapses internal whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

func bidirectionalContains(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
