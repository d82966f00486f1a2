package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tepoz_directory/internal/catalog"
	"tepoz_directory/internal/domain"
)

func TestSelect_FeaturedScenario(t *testing.T) {
	in := []domain.Business{
		{ID: "B", Name: "Café Sol", Rating: 4.5},
		{ID: "C", Name: "Bakery X", Rating: 5.0},
		{ID: "A", Name: "Café Luna", Rating: 4.9, Featured: true},
	}
	out := catalog.Select(in, catalog.Selection{Sort: catalog.SortFeatured, Locale: domain.LocaleES})
	assert.Equal(t, []string{"A", "C", "B"}, ids(out))
	assert.Equal(t, []string{"B", "C", "A"}, ids(in), "input order must be preserved")
}

func TestSelect_FilterSortLimit(t *testing.T) {
	out := catalog.Select(catalog.Default().All(domain.KindCafes), catalog.Selection{
		Facets: catalog.Facets{Dietary: []string{"gluten-free"}},
		Sort:   catalog.SortRating,
		Locale: domain.LocaleEN,
		Limit:  2,
	})
	require.Len(t, out, 2)
	assert.Equal(t, []string{"panaderia-x", "chocolateria-xocolatl"}, ids(out))
}

func TestSelection_CanonicalKey(t *testing.T) {
	a := catalog.Selection{
		Query:  " Café ",
		Facets: catalog.Facets{Dietary: []string{"vegan", "Gluten-Free"}, Flags: map[string]bool{"wifi": true, "petFriendly": false}},
		Sort:   "RATING",
		Locale: domain.LocaleEN,
	}
	b := catalog.Selection{
		Query:  "café",
		Facets: catalog.Facets{Dietary: []string{"gluten-free", "vegan"}, Flags: map[string]bool{"petFriendly": false, "wifi": true}, Category: "all"},
		Sort:   catalog.SortRating,
		Locale: domain.LocaleEN,
	}
	assert.Equal(t, a.CanonicalKey(), b.CanonicalKey())

	b.Locale = domain.LocaleES
	assert.NotEqual(t, a.CanonicalKey(), b.CanonicalKey())
}

func TestSelection_CanonicalKeyKeepsValuesApart(t *testing.T) {
	forged := catalog.Selection{
		Facets: catalog.Facets{Category: "bakery|price=$$"},
		Sort:   catalog.SortFeatured,
		Locale: domain.LocaleES,
	}
	genuine := catalog.Selection{
		Facets: catalog.Facets{Category: "bakery", PriceRange: "$$"},
		Sort:   catalog.SortFeatured,
		Locale: domain.LocaleES,
	}
	assert.NotEqual(t, forged.CanonicalKey(), genuine.CanonicalKey())

	flagged := catalog.Selection{Facets: catalog.Facets{Flags: map[string]bool{"a=true|b": true}}}
	split := catalog.Selection{Facets: catalog.Facets{Flags: map[string]bool{"a": true, "b": true}}}
	assert.NotEqual(t, flagged.CanonicalKey(), split.CanonicalKey())
}
