package catalog

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"golang.org/x/text/cases"

	"tepoz_directory/internal/domain"
)

// All disables the category or price facet.
const All = "all"

type Predicate func(domain.Business) bool

// GeoFilter keeps records within RadiusKm of Center.
type GeoFilter struct {
	Center   orb.Point
	RadiusKm float64
}

// Facets are the discrete filters applied on top of the free-text query.
// Zero values mean "don't filter".
type Facets struct {
	Category   string
	PriceRange string
	Dietary    []string
	// Flags holds tri-state amenity filters: a missing key is ignored, a present
	// key requires the record's flag (false when absent) to equal the value.
	Flags map[string]bool
	Near  *GeoFilter
}

// FlagFilter merges required and excluded amenity names into Facets.Flags.
// Naming one flag on both sides is an error. Nil means no flag filter.
func FlagFilter(with, without []string) (map[string]bool, error) {
	if len(with)+len(without) == 0 {
		return nil, nil
	}
	flags := make(map[string]bool, len(with)+len(without))
	for _, k := range with {
		flags[k] = true
	}
	for _, k := range without {
		if flags[k] {
			return nil, fmt.Errorf("flag %q is both required and excluded", k)
		}
		flags[k] = false
	}
	return flags, nil
}

func (f Facets) empty() bool {
	return !facetActive(f.Category) && !facetActive(f.PriceRange) &&
		len(normalizeTags(f.Dietary)) == 0 && len(f.Flags) == 0 && f.Near == nil
}

func facetActive(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, All)
}

// fold builds a fresh Caser per call; Casers keep state and can't be shared.
func fold(s string) string {
	return cases.Fold().String(s)
}

func normalizeTags(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, t := range in {
		t = fold(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func accept(domain.Business) bool { return true }

func reject(domain.Business) bool { return false }

// BuildPredicate composes the free-text query and facets into one predicate.
// Every condition must hold. The returned predicate holds no reference to the
// caller's Facets and can be used from several goroutines.
func BuildPredicate(query string, f Facets, l domain.Locale) Predicate {
	q := fold(strings.TrimSpace(query))
	if q == "" && f.empty() {
		return accept
	}

	var checks []Predicate
	if q != "" {
		checks = append(checks, matchText(q, l))
	}

	if facetActive(f.Category) {
		want := fold(strings.TrimSpace(f.Category))
		checks = append(checks, func(b domain.Business) bool {
			return fold(b.Category) == want
		})
	}

	if facetActive(f.PriceRange) {
		want := strings.TrimSpace(f.PriceRange)
		if !domain.ValidPrice(want) {
			return reject
		}
		checks = append(checks, func(b domain.Business) bool {
			return b.PriceRange == want
		})
	}

	if tags := normalizeTags(f.Dietary); len(tags) > 0 {
		checks = append(checks, func(b domain.Business) bool {
			for _, t := range tags {
				if !b.HasTag(t) {
					return false
				}
			}
			return true
		})
	}

	if len(f.Flags) > 0 {
		flags := make(map[string]bool, len(f.Flags))
		for k, v := range f.Flags {
			flags[k] = v
		}
		checks = append(checks, func(b domain.Business) bool {
			for k, v := range flags {
				if b.Flag(k) != v {
					return false
				}
			}
			return true
		})
	}

	if f.Near != nil {
		center, radiusM := f.Near.Center, f.Near.RadiusKm*1000
		checks = append(checks, func(b domain.Business) bool {
			if b.Coordinates == (orb.Point{}) {
				return false
			}
			return geo.Distance(center, b.Coordinates) <= radiusM
		})
	}

	return func(b domain.Business) bool {
		for _, c := range checks {
			if !c(b) {
				return false
			}
		}
		return true
	}
}

func matchText(q string, l domain.Locale) Predicate {
	return func(b domain.Business) bool {
		if strings.Contains(fold(DisplayField(b, FieldName, l)), q) ||
			strings.Contains(fold(DisplayField(b, FieldDescription, l)), q) {
			return true
		}
		for _, t := range b.Tags {
			if strings.Contains(fold(t), q) {
				return true
			}
		}
		return false
	}
}

// Filter returns the records accepted by p in their original order. The input
// slice is never modified.
func Filter(records []domain.Business, p Predicate) []domain.Business {
	out := make([]domain.Business, 0, len(records))
	for _, b := range records {
		if p(b) {
			out = append(out, b)
		}
	}
	return out
}
