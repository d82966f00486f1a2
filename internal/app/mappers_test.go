package app

import (
	"testing"

	"tepoz_directory/internal/domain"
)

func TestMapBusiness_Aliases(t *testing.T) {
	raw := map[string]any{
		"slug":   "cafe-x",
		"nombre": "Café X",
		"translations": map[string]any{
			"en": map[string]any{"name": "X Coffee", "description": "Good coffee"},
		},
		"descripcion":    "Buen café",
		"especialidades": []any{"Café de olla", "Pan dulce"},
		"precio":         2.0,
		"calificacion":   "4,6",
		"destacado":      "true",
		"lat":            18.98,
		"lng":            -99.09,
		"amenities":      []any{"wifi", "terrace"},
		"dietas":         []any{"vegan"},
	}

	b := MapBusiness(domain.KindCafes, raw)

	if b.ID != "cafe-x" || b.Name != "Café X" || b.NameEn != "X Coffee" {
		t.Fatalf("unexpected identity: %+v", b)
	}
	if b.DescriptionEn != "Good coffee" || b.Description != "Buen café" {
		t.Fatalf("unexpected descriptions: %q / %q", b.Description, b.DescriptionEn)
	}
	if b.Specialties != "Café de olla, Pan dulce" {
		t.Fatalf("specialties not joined: %q", b.Specialties)
	}
	if b.PriceRange != "$$" || b.Rating != 4.6 || !b.Featured {
		t.Fatalf("unexpected price/rating/featured: %q %v %v", b.PriceRange, b.Rating, b.Featured)
	}
	if b.Coordinates.Lon() != -99.09 || b.Coordinates.Lat() != 18.98 {
		t.Fatalf("unexpected coordinates: %v", b.Coordinates)
	}
	if !b.Flag("wifi") || !b.Flag("terrace") || b.Flag("pool") {
		t.Fatalf("unexpected flags: %v", b.Flags)
	}
	if !b.HasTag("vegan") {
		t.Fatalf("missing tag: %v", b.Tags)
	}
}

func TestMapBusiness_CoordinatePairAndFlagObject(t *testing.T) {
	b := MapBusiness(domain.KindHotels, map[string]any{
		"id":          "h1",
		"name":        "Hotel",
		"priceRange":  "$$$",
		"coordinates": []any{-99.1, 18.99},
		"flags":       map[string]any{"pool": true, "petFriendly": false},
	})
	if b.Coordinates.Lon() != -99.1 || b.Coordinates.Lat() != 18.99 {
		t.Fatalf("unexpected coordinates: %v", b.Coordinates)
	}
	if !b.Flag("pool") || b.Flag("petFriendly") {
		t.Fatalf("unexpected flags: %v", b.Flags)
	}
	if _, ok := b.Flags["petFriendly"]; !ok {
		t.Fatal("explicit false flag should be kept")
	}
}

func TestMapBusiness_SynthesizesStableID(t *testing.T) {
	raw := map[string]any{"name": "Tacos", "address": "Centro"}
	a := MapBusiness(domain.KindStreetFood, raw)
	b := MapBusiness(domain.KindStreetFood, raw)
	if a.ID == "" || a.ID != b.ID || len(a.ID) != 12 {
		t.Fatalf("expected stable 12-char id, got %q and %q", a.ID, b.ID)
	}
	if c := MapBusiness(domain.KindCafes, raw); c.ID == a.ID {
		t.Fatal("id should depend on kind")
	}
}

func TestNormalizePrice(t *testing.T) {
	cases := map[string]struct {
		in   map[string]any
		want string
	}{
		"symbol":    {map[string]any{"priceRange": " $$ "}, "$$"},
		"int":       {map[string]any{"price": 3}, "$$$"},
		"numeric":   {map[string]any{"precio": "1"}, "$"},
		"out range": {map[string]any{"price": 7.0}, ""},
		"verbatim":  {map[string]any{"price": "cheap"}, "cheap"},
	}
	for name, tc := range cases {
		if got := normalizePrice(tc.in); got != tc.want {
			t.Errorf("%s: got %q want %q", name, got, tc.want)
		}
	}
}
