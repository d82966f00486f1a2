package app

import (
	"crypto/sha1"
	"encoding/hex"
	"github.com/rs/zerolog/log"
	"strconv"
	"strings"

	"tepoz_directory/internal/domain"

	"github.com/paulmach/orb"
)

/********** alias registries (single source of truth) **********/

var businessAliases = map[string][]string{
	"id":            {"id", "slug", "uid"},
	"name":          {"name", "nombre", "title", "titulo"},
	"nameEn":        {"nameEn", "name_en", "translations.en.name", "english.name"},
	"description":   {"description", "descripcion", "summary"},
	"descriptionEn": {"descriptionEn", "description_en", "translations.en.description"},
	"address":       {"address", "direccion", "location.address", "address.line"},
	"addressEn":     {"addressEn", "address_en", "translations.en.address"},
	"hours":         {"hours", "horario", "schedule"},
	"hoursEn":       {"hoursEn", "hours_en", "translations.en.hours"},
	"specialties":   {"specialties", "especialidades"},
	"specialtiesEn": {"specialtiesEn", "specialties_en", "translations.en.specialties"},
	"category":      {"category", "categoria", "type", "tipo"},
	"price":         {"priceRange", "price_range", "price", "precio"},
	"phone":         {"phone", "telefono", "contact.phone"},
	"website":       {"website", "url", "contact.website"},
}

var (
	latPaths = []string{"lat", "latitude", "location.lat", "coordinates.lat"}
	lonPaths = []string{"lng", "lon", "longitude", "location.lng", "location.lon", "coordinates.lng"}
)

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// firstNonEmptyAlias: first non-empty string for a named alias set. Lists of
// strings are joined with ", " so specialties can arrive either way.
func firstNonEmptyAlias(m map[string]any, key string) string {
	for _, p := range businessAliases[key] {
		if s := lookupStr(m, p); s != "" {
			return s
		}
		if list := firstSliceStrings(m, p); len(list) > 0 {
			return strings.Join(list, ", ")
		}
	}
	return ""
}

// number accepts the numeric shapes JSON and YAML decoders produce.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// getFloatFlexible: number from several paths (float64/int/string like "4,5").
func getFloatFlexible(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		v := lookupAny(m, k)
		if f, ok := number(v); ok {
			return &f
		}
		if s, ok := v.(string); ok {
			s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

func getBoolFlexible(m map[string]any, paths ...string) bool {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case bool:
			return v
		case string:
			if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
				return b
			}
			if strings.EqualFold(strings.TrimSpace(v), "si") || strings.EqualFold(strings.TrimSpace(v), "sí") {
				return true
			}
		}
	}
	return false
}

// firstSliceStrings: accept []any with either strings or {name/value}.
func firstSliceStrings(m map[string]any, paths ...string) []string {
	for _, k := range paths {
		var raw []any
		switch t := lookupAny(m, k).(type) {
		case []any:
			raw = t
		case []string:
			for _, s := range t {
				raw = append(raw, s)
			}
		default:
			continue
		}
		out := make([]string, 0, len(raw))
		for _, it := range raw {
			switch t := it.(type) {
			case string:
				if s := strings.TrimSpace(t); s != "" {
					out = append(out, s)
				}
			case map[string]any:
				if n, ok := t["name"].(string); ok && n != "" {
					out = append(out, n)
					continue
				}
				if n, ok := t["value"].(string); ok && n != "" {
					out = append(out, n)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// normalizePrice turns 1..4 or "$$"-like input into a canonical symbol.
// Unrecognised input is kept verbatim so validation can report it.
func normalizePrice(m map[string]any) string {
	for _, p := range businessAliases["price"] {
		v := lookupAny(m, p)
		if f, ok := number(v); ok {
			if n := int(f); n >= 1 && n <= 4 && float64(n) == f {
				return strings.Repeat("$", n)
			}
			continue
		}
		if s, ok := v.(string); ok {
			s = strings.TrimSpace(s)
			if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 4 {
				return strings.Repeat("$", n)
			}
			if s != "" {
				return s
			}
		}
	}
	return ""
}

// mapCoordinates reads "coordinates": [lon, lat] first, then lat/lng pairs.
func mapCoordinates(m map[string]any) orb.Point {
	if raw, ok := lookupAny(m, "coordinates").([]any); ok && len(raw) == 2 {
		lon, lok := number(raw[0])
		lat, aok := number(raw[1])
		if lok && aok {
			return orb.Point{lon, lat}
		}
	}
	lat, lon := getFloatFlexible(m, latPaths...), getFloatFlexible(m, lonPaths...)
	if lat != nil && lon != nil {
		return orb.Point{*lon, *lat}
	}
	return orb.Point{}
}

// mapFlags accepts {"wifi": true} objects or ["wifi", "pool"] lists.
func mapFlags(m map[string]any) map[string]bool {
	for _, p := range []string{"flags", "amenities", "servicios"} {
		switch v := lookupAny(m, p).(type) {
		case map[string]any:
			out := make(map[string]bool, len(v))
			for k, raw := range v {
				if b, ok := raw.(bool); ok {
					out[k] = b
				}
			}
			if len(out) > 0 {
				return out
			}
		case []any:
			if names := firstSliceStrings(m, p); len(names) > 0 {
				out := make(map[string]bool, len(names))
				for _, n := range names {
					out[n] = true
				}
				return out
			}
		}
	}
	return nil
}

/********** business mapper **********/

// MapBusiness converts one loosely shaped source record into a Business of the
// given kind. Missing ids get a stable hash of kind, name and address.
func MapBusiness(kind domain.Kind, m map[string]any) domain.Business {
	b := domain.Business{
		ID:            firstNonEmptyAlias(m, "id"),
		Kind:          kind,
		Name:          firstNonEmptyAlias(m, "name"),
		NameEn:        firstNonEmptyAlias(m, "nameEn"),
		Description:   firstNonEmptyAlias(m, "description"),
		DescriptionEn: firstNonEmptyAlias(m, "descriptionEn"),
		Address:       firstNonEmptyAlias(m, "address"),
		AddressEn:     firstNonEmptyAlias(m, "addressEn"),
		Hours:         firstNonEmptyAlias(m, "hours"),
		HoursEn:       firstNonEmptyAlias(m, "hoursEn"),
		Specialties:   firstNonEmptyAlias(m, "specialties"),
		SpecialtiesEn: firstNonEmptyAlias(m, "specialtiesEn"),
		Category:      firstNonEmptyAlias(m, "category"),
		PriceRange:    normalizePrice(m),
		Featured:      getBoolFlexible(m, "featured", "destacado"),
		Coordinates:   mapCoordinates(m),
		Flags:         mapFlags(m),
		Tags:          firstSliceStrings(m, "tags", "dietary", "dietas"),
		Phone:         firstNonEmptyAlias(m, "phone"),
		Website:       firstNonEmptyAlias(m, "website"),
	}
	if f := getFloatFlexible(m, "rating", "calificacion", "score", "rating.value"); f != nil {
		b.Rating = *f
	}

	if b.ID == "" {
		sig := strings.Join([]string{string(kind), b.Name, b.Address}, "|")
		sum := sha1.Sum([]byte(sig))
		b.ID = hex.EncodeToString(sum[:])[:12]
		log.Debug().Str("context", "MapBusiness").Str("kind", string(kind)).
			Str("id", b.ID).Msg("synthesized id for record without one")
	}
	return b
}

// MapBusinesses maps a whole feed page.
func MapBusinesses(kind domain.Kind, in []map[string]any) []domain.Business {
	out := make([]domain.Business, 0, len(in))
	for _, m := range in {
		out = append(out, MapBusiness(kind, m))
	}
	return out
}
