package catalog_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"tepoz_directory/internal/catalog"
	"tepoz_directory/internal/domain"
)

func sorted(in []domain.Business, key catalog.SortKey, l domain.Locale) []domain.Business {
	out := slices.Clone(in)
	slices.SortStableFunc(out, catalog.Comparator(key, l))
	return out
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, catalog.SortRating, catalog.ParseSortKey(" Rating "))
	assert.Equal(t, catalog.SortName, catalog.ParseSortKey("name"))
	assert.Equal(t, catalog.SortFeatured, catalog.ParseSortKey("distance"))
	assert.Equal(t, catalog.SortFeatured, catalog.ParseSortKey(""))
}

func TestComparator_FeaturedBeforeHigherRating(t *testing.T) {
	in := []domain.Business{
		{ID: "plain-high", Rating: 5.0},
		{ID: "feat-low", Rating: 3.1, Featured: true},
		{ID: "plain-mid", Rating: 4.0},
		{ID: "feat-high", Rating: 4.2, Featured: true},
	}
	assert.Equal(t, []string{"feat-high", "feat-low", "plain-high", "plain-mid"}, ids(sorted(in, catalog.SortFeatured, domain.LocaleES)))
}

func TestComparator_RatingIsStable(t *testing.T) {
	in := []domain.Business{
		{ID: "first", Rating: 4.5},
		{ID: "top", Rating: 4.8},
		{ID: "second", Rating: 4.5},
		{ID: "third", Rating: 4.5},
	}
	assert.Equal(t, []string{"top", "first", "second", "third"}, ids(sorted(in, catalog.SortRating, domain.LocaleES)))
}

func TestComparator_PriceOrdinal(t *testing.T) {
	in := []domain.Business{
		{ID: "3", PriceRange: "$$$"},
		{ID: "1", PriceRange: "$"},
		{ID: "4", PriceRange: "$$$$"},
		{ID: "2", PriceRange: "$$"},
	}
	out := sorted(in, catalog.SortPrice, domain.LocaleES)
	var got []string
	for _, b := range out {
		got = append(got, b.PriceRange)
	}
	assert.Equal(t, []string{"$", "$$", "$$$", "$$$$"}, got)
}

func TestComparator_UnknownPriceRanksZero(t *testing.T) {
	in := []domain.Business{
		{ID: "cheap", PriceRange: "$"},
		{ID: "broken", PriceRange: "€€"},
	}
	assert.Equal(t, []string{"broken", "cheap"}, ids(sorted(in, catalog.SortPrice, domain.LocaleES)))
}

func TestComparator_NameUsesCollation(t *testing.T) {
	in := []domain.Business{
		{ID: "z", Name: "Zócalo"},
		{ID: "n2", Name: "Ñandú"},
		{ID: "e", Name: "Élite"},
		{ID: "n1", Name: "Nube"},
		{ID: "a", Name: "azul"},
	}
	// byte order would put "azul" and the accented names last
	assert.Equal(t, []string{"a", "e", "n1", "n2", "z"}, ids(sorted(in, catalog.SortName, domain.LocaleES)))
}

func TestComparator_NameFollowsLocale(t *testing.T) {
	in := []domain.Business{
		{ID: "amate", Name: "El Amate Café", NameEn: "Amate Tree Café"},
		{ID: "bakery", Name: "Bakery X"},
	}
	assert.Equal(t, []string{"bakery", "amate"}, ids(sorted(in, catalog.SortName, domain.LocaleES)))
	assert.Equal(t, []string{"amate", "bakery"}, ids(sorted(in, catalog.SortName, domain.LocaleEN)))
}

func TestComparator_UnknownKeyFallsBackToFeatured(t *testing.T) {
	in := []domain.Business{
		{ID: "plain", Rating: 5},
		{ID: "feat", Rating: 1, Featured: true},
	}
	assert.Equal(t, []string{"feat", "plain"}, ids(sorted(in, catalog.SortKey("bogus"), domain.LocaleES)))
}
