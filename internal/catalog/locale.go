package catalog

import (
	"maps"
	"slices"

	"tepoz_directory/internal/domain"
)

// Field names a bilingual attribute of a Business.
type Field string

const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldAddress     Field = "address"
	FieldHours       Field = "hours"
	FieldSpecialties Field = "specialties"
)

// DisplayField returns the text shown for field in locale l. English values
// fall back to the Spanish base value when empty; unknown fields yield "".
func DisplayField(b domain.Business, field Field, l domain.Locale) string {
	switch field {
	case FieldName:
		return domain.Pick(l, b.Name, b.NameEn)
	case FieldDescription:
		return domain.Pick(l, b.Description, b.DescriptionEn)
	case FieldAddress:
		return domain.Pick(l, b.Address, b.AddressEn)
	case FieldHours:
		return domain.Pick(l, b.Hours, b.HoursEn)
	case FieldSpecialties:
		return domain.Pick(l, b.Specialties, b.SpecialtiesEn)
	}
	return ""
}

// View projects b into its localized read model.
func View(b domain.Business, l domain.Locale) domain.BusinessView {
	return domain.BusinessView{
		ID:          b.ID,
		Kind:        b.Kind,
		Name:        DisplayField(b, FieldName, l),
		Description: DisplayField(b, FieldDescription, l),
		Address:     DisplayField(b, FieldAddress, l),
		Hours:       DisplayField(b, FieldHours, l),
		Specialties: DisplayField(b, FieldSpecialties, l),
		Category:    b.Category,
		PriceRange:  b.PriceRange,
		Rating:      b.Rating,
		Featured:    b.Featured,
		Coordinates: [2]float64{b.Coordinates.Lon(), b.Coordinates.Lat()},
		Flags:       maps.Clone(b.Flags),
		Tags:        slices.Clone(b.Tags),
		Phone:       b.Phone,
		Website:     b.Website,
		Locale:      l,
	}
}
