package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"

	"tepoz_directory/internal/domain"
)

// Selection is everything the UI sends to derive one listing.
type Selection struct {
	Query  string
	Facets Facets
	Sort   SortKey
	Locale domain.Locale
	Limit  int
}

// Select filters records, stable-sorts the matches and applies Limit. The
// result is a new slice; records is left untouched.
func Select(records []domain.Business, s Selection) []domain.Business {
	out := Filter(records, BuildPredicate(s.Query, s.Facets, s.Locale))
	slices.SortStableFunc(out, Comparator(s.Sort, s.Locale))
	if s.Limit > 0 && len(out) > s.Limit {
		out = out[:s.Limit]
	}
	return out
}

// canonicalSelection is the normalized shape hashed into cache keys.
// Fields are JSON-encoded so user values never blend into separators.
type canonicalSelection struct {
	Query    string          `json:"q"`
	Sort     SortKey         `json:"sort"`
	Locale   domain.Locale   `json:"lang"`
	Limit    int             `json:"limit"`
	Category string          `json:"cat,omitempty"`
	Price    string          `json:"price,omitempty"`
	Dietary  []string        `json:"diet,omitempty"`
	Flags    map[string]bool `json:"flags,omitempty"`
	Near     *[3]float64     `json:"near,omitempty"`
}

// CanonicalKey renders s in a normalized form so equal selections share a
// cache entry regardless of facet order or casing.
func (s Selection) CanonicalKey() string {
	c := canonicalSelection{
		Query:  fold(strings.TrimSpace(s.Query)),
		Sort:   ParseSortKey(string(s.Sort)),
		Locale: s.Locale,
		Limit:  s.Limit,
		Flags:  s.Facets.Flags,
	}
	if facetActive(s.Facets.Category) {
		c.Category = fold(strings.TrimSpace(s.Facets.Category))
	}
	if facetActive(s.Facets.PriceRange) {
		c.Price = strings.TrimSpace(s.Facets.PriceRange)
	}
	if tags := normalizeTags(s.Facets.Dietary); len(tags) > 0 {
		slices.Sort(tags)
		c.Dietary = tags
	}
	if n := s.Facets.Near; n != nil {
		c.Near = &[3]float64{round(n.Center.Lon(), 1e5), round(n.Center.Lat(), 1e5), round(n.RadiusKm, 1e3)}
	}
	// encoding/json sorts map keys, which keeps flag order out of the key.
	out, err := json.Marshal(c)
	if err != nil {
		return fmt.Sprintf("%#v", c)
	}
	return string(out)
}

func round(v, scale float64) float64 {
	return math.Round(v*scale) / scale
}
