package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tepoz_directory/internal/catalog"
	"tepoz_directory/internal/domain"
)

func TestDisplayField_LocaleFallback(t *testing.T) {
	b := domain.Business{
		Name: "Café Luna", NameEn: "Luna Café",
		Description: "Café de especialidad", DescriptionEn: "   ",
		Address: "Centro", Hours: "8:00 - 20:00", HoursEn: "8am - 8pm",
		Specialties: "Café de olla",
	}

	tests := []struct {
		field catalog.Field
		l     domain.Locale
		want  string
	}{
		{catalog.FieldName, domain.LocaleES, "Café Luna"},
		{catalog.FieldName, domain.LocaleEN, "Luna Café"},
		{catalog.FieldDescription, domain.LocaleEN, "Café de especialidad"},
		{catalog.FieldAddress, domain.LocaleEN, "Centro"},
		{catalog.FieldHours, domain.LocaleEN, "8am - 8pm"},
		{catalog.FieldHours, domain.LocaleES, "8:00 - 20:00"},
		{catalog.FieldSpecialties, domain.LocaleEN, "Café de olla"},
		{catalog.Field("phone"), domain.LocaleEN, ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.field)+"/"+string(tt.l), func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.DisplayField(b, tt.field, tt.l))
		})
	}
}

func TestDisplayField_EmptyEntity(t *testing.T) {
	assert.Equal(t, "", catalog.DisplayField(domain.Business{}, catalog.FieldName, domain.LocaleEN))
}

func TestView_ResolvesEveryField(t *testing.T) {
	b, err := catalog.Default().Get(domain.KindAttractions, "piramide-tepozteco")
	assert.NoError(t, err)

	v := catalog.View(b, domain.LocaleEN)
	assert.Equal(t, "Tepozteco Pyramid", v.Name)
	assert.Equal(t, "Tepozteco hill", v.Address)
	assert.Equal(t, domain.LocaleEN, v.Locale)
	assert.Equal(t, [2]float64{-99.0923, 18.9953}, v.Coordinates)
}
