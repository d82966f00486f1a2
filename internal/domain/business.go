package domain

import (
	"maps"
	"slices"
	"strings"

	"github.com/paulmach/orb"
)

type Kind string

const (
	KindCafes       Kind = "cafes"
	KindRestaurants Kind = "restaurants"
	KindHotels      Kind = "hotels"
	KindRentals     Kind = "rentals"
	KindStreetFood  Kind = "street-food"
	KindAttractions Kind = "attractions"
)

// Kinds lists every directory section in display order.
var Kinds = []Kind{KindCafes, KindRestaurants, KindHotels, KindRentals, KindStreetFood, KindAttractions}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", ErrUnknownKind
}

type Locale string

const (
	LocaleES Locale = "es"
	LocaleEN Locale = "en"

	DefaultLocale = LocaleES
)

// ParseLocale accepts tags like "en", "EN", "en-US" or "es_MX". Anything that is
// not English resolves to the default locale.
func ParseLocale(s string) Locale {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "en") {
		return LocaleEN
	}
	return DefaultLocale
}

// Pick applies the locale fallback chain: English text is used only when the
// locale is English and the translation is non-empty.
func Pick(l Locale, es, en string) string {
	if l == LocaleEN && strings.TrimSpace(en) != "" {
		return en
	}
	return es
}

// Price symbols in ordinal order.
const (
	PriceBudget   = "$"
	PriceModerate = "$$"
	PriceUpscale  = "$$$"
	PriceLuxury   = "$$$$"
)

var priceRank = map[string]int{
	PriceBudget:   1,
	PriceModerate: 2,
	PriceUpscale:  3,
	PriceLuxury:   4,
}

// PriceRank returns 1..4 for canonical symbols and 0 for anything else.
func PriceRank(symbol string) int {
	return priceRank[symbol]
}

func ValidPrice(symbol string) bool {
	_, ok := priceRank[symbol]
	return ok
}

// Business is one directory listing. Records are static and treated as
// immutable once loaded.
type Business struct {
	ID            string          `json:"id" yaml:"id" validate:"required"`
	Kind          Kind            `json:"kind" yaml:"kind" validate:"required"`
	Name          string          `json:"name" yaml:"name" validate:"required"`
	NameEn        string          `json:"nameEn,omitempty" yaml:"nameEn"`
	Description   string          `json:"description,omitempty" yaml:"description"`
	DescriptionEn string          `json:"descriptionEn,omitempty" yaml:"descriptionEn"`
	Address       string          `json:"address,omitempty" yaml:"address"`
	AddressEn     string          `json:"addressEn,omitempty" yaml:"addressEn"`
	Hours         string          `json:"hours,omitempty" yaml:"hours"`
	HoursEn       string          `json:"hoursEn,omitempty" yaml:"hoursEn"`
	Specialties   string          `json:"specialties,omitempty" yaml:"specialties"`
	SpecialtiesEn string          `json:"specialtiesEn,omitempty" yaml:"specialtiesEn"`
	Category      string          `json:"category" yaml:"category" validate:"required"`
	PriceRange    string          `json:"priceRange" yaml:"priceRange" validate:"required,oneof=$ $$ $$$ $$$$"`
	Rating        float64         `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	Featured      bool            `json:"featured" yaml:"featured"`
	Coordinates   orb.Point       `json:"coordinates" yaml:"coordinates"`
	Flags         map[string]bool `json:"flags,omitempty" yaml:"flags"`
	Tags          []string        `json:"tags,omitempty" yaml:"tags"`
	Phone         string          `json:"phone,omitempty" yaml:"phone"`
	Website       string          `json:"website,omitempty" yaml:"website" validate:"omitempty,url"`
}

// Clone returns a copy of b that shares no map or slice with it.
func (b Business) Clone() Business {
	b.Flags = maps.Clone(b.Flags)
	b.Tags = slices.Clone(b.Tags)
	return b
}

// Flag reports a boolean amenity; absent flags read as false.
func (b Business) Flag(name string) bool {
	return b.Flags[name]
}

func (b Business) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// BusinessView is a Business with every bilingual field resolved for one locale.
type BusinessView struct {
	ID          string          `json:"id"`
	Kind        Kind            `json:"kind"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Address     string          `json:"address,omitempty"`
	Hours       string          `json:"hours,omitempty"`
	Specialties string          `json:"specialties,omitempty"`
	Category    string          `json:"category"`
	PriceRange  string          `json:"priceRange"`
	Rating      float64         `json:"rating"`
	Featured    bool            `json:"featured"`
	Coordinates [2]float64      `json:"coordinates"`
	Flags       map[string]bool `json:"flags,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	Website     string          `json:"website,omitempty"`
	Locale      Locale          `json:"locale"`
}

type ListingPage struct {
	Items  []BusinessView `json:"items"`
	Total  int            `json:"total"`
	Locale Locale         `json:"locale"`
	Sort   string         `json:"sort"`
}
