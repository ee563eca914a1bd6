package domain

import (
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// LanguageTotals maps a language name to its cumulative byte count.
// It remembers the order in which languages were first added; that order is
// not a ranking, use Ranked for a value-sorted view.
type LanguageTotals struct {
	bytes *orderedmap.OrderedMap[string, int64]
}

// LanguageShare is one entry of the ranked language view.
type LanguageShare struct {
	Language string  `json:"language"`
	Bytes    int64   `json:"bytes"`
	Percent  float64 `json:"percent"`
}

// NewLanguageTotals returns empty totals.
func NewLanguageTotals() *LanguageTotals {
	return &LanguageTotals{bytes: orderedmap.New[string, int64]()}
}

// Add accumulates n bytes for language.
func (t *LanguageTotals) Add(language string, n int64) {
	if t.bytes == nil {
		t.bytes = orderedmap.New[string, int64]()
	}
	current, _ := t.bytes.Get(language)
	t.bytes.Set(language, current+n)
}

// Merge adds every entry of a single repository's language map. Languages
// new to the totals are inserted by bytes descending, name ascending, which
// is the order GitHub reports them in.
func (t *LanguageTotals) Merge(perRepo map[string]int64) {
	names := make([]string, 0, len(perRepo))
	for name := range perRepo {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if perRepo[names[i]] != perRepo[names[j]] {
			return perRepo[names[i]] > perRepo[names[j]]
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		t.Add(name, perRepo[name])
	}
}

// Len returns the number of distinct languages. A nil receiver has none.
func (t *LanguageTotals) Len() int {
	if t == nil || t.bytes == nil {
		return 0
	}
	return t.bytes.Len()
}

// Bytes returns the cumulative byte count of language.
func (t *LanguageTotals) Bytes(language string) int64 {
	if t.Len() == 0 {
		return 0
	}
	n, _ := t.bytes.Get(language)
	return n
}

// First returns the first language ever added, or "" when empty.
func (t *LanguageTotals) First() string {
	if t.Len() == 0 {
		return ""
	}
	return t.bytes.Oldest().Key
}

// Names returns the languages in insertion order.
func (t *LanguageTotals) Names() []string {
	if t.Len() == 0 {
		return nil
	}
	names := make([]string, 0, t.Len())
	for pair := t.bytes.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Map returns a copy of the totals as a plain map.
func (t *LanguageTotals) Map() map[string]int64 {
	m := make(map[string]int64, t.Len())
	if t.Len() == 0 {
		return m
	}
	for pair := t.bytes.Oldest(); pair != nil; pair = pair.Next() {
		m[pair.Key] = pair.Value
	}
	return m
}

// Total returns the sum of all byte counts.
func (t *LanguageTotals) Total() int64 {
	var sum int64
	if t.Len() == 0 {
		return sum
	}
	for pair := t.bytes.Oldest(); pair != nil; pair = pair.Next() {
		sum += pair.Value
	}
	return sum
}

// Ranked returns the languages sorted by bytes descending, ties by name.
// Percent is the share of Total, unrounded.
func (t *LanguageTotals) Ranked() []LanguageShare {
	total := t.Total()
	shares := make([]LanguageShare, 0, t.Len())
	if t.Len() == 0 {
		return shares
	}
	for pair := t.bytes.Oldest(); pair != nil; pair = pair.Next() {
		share := LanguageShare{Language: pair.Key, Bytes: pair.Value}
		if total > 0 {
			share.Percent = float64(share.Bytes) * 100 / float64(total)
		}
		shares = append(shares, share)
	}
	sort.SliceStable(shares, func(i, j int) bool {
		if shares[i].Bytes != shares[j].Bytes {
			return shares[i].Bytes > shares[j].Bytes
		}
		return shares[i].Language < shares[j].Language
	})
	return shares
}

// MarshalJSON encodes the totals as a JSON object in insertion order.
func (t *LanguageTotals) MarshalJSON() ([]byte, error) {
	if t.Len() == 0 {
		return []byte("{}"), nil
	}
	return t.bytes.MarshalJSON()
}
