package catalog

import (
	"cmp"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tepoz_directory/internal/domain"
)

type SortKey string

const (
	SortFeatured SortKey = "featured"
	SortRating   SortKey = "rating"
	SortPrice    SortKey = "price"
	SortName     SortKey = "name"
)

// ParseSortKey falls back to SortFeatured for anything it doesn't recognise.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortFeatured, SortRating, SortPrice, SortName:
		return k
	}
	return SortFeatured
}

type Compare func(a, b domain.Business) int

// Comparator returns the ordering for key. Use it with slices.SortStableFunc so
// ties keep their input order. Name comparators carry their own collator and
// must not be shared between goroutines; call Comparator again instead.
func Comparator(key SortKey, l domain.Locale) Compare {
	switch ParseSortKey(string(key)) {
	case SortRating:
		return byRatingDesc
	case SortPrice:
		return byPriceAsc
	case SortName:
		col := collate.New(collationTag(l))
		return func(a, b domain.Business) int {
			return col.CompareString(DisplayField(a, FieldName, l), DisplayField(b, FieldName, l))
		}
	}
	return byFeatured
}

func collationTag(l domain.Locale) language.Tag {
	if l == domain.LocaleEN {
		return language.English
	}
	return language.Spanish
}

func byFeatured(a, b domain.Business) int {
	if a.Featured != b.Featured {
		if a.Featured {
			return -1
		}
		return 1
	}
	return byRatingDesc(a, b)
}

func byRatingDesc(a, b domain.Business) int {
	return cmp.Compare(b.Rating, a.Rating)
}

// Non-canonical price symbols rank 0 and sort ahead of "$".
func byPriceAsc(a, b domain.Business) int {
	return cmp.Compare(domain.PriceRank(a.PriceRange), domain.PriceRank(b.PriceRange))
}
