package catalog

import (
	"github.com/paulmach/orb"

	"tepoz_directory/internal/domain"
)

var attractions = []domain.Business{
	{
		ID: "piramide-tepozteco", Kind: domain.KindAttractions,
		Name: "Pirámide del Tepozteco", NameEn: "Tepozteco Pyramid",
		Description:   "Templo mexica en la cima del cerro, subida de una hora y media.",
		DescriptionEn: "Aztec temple on the mountaintop, a ninety-minute climb.",
		Address:       "Cerro del Tepozteco", AddressEn: "Tepozteco hill",
		Hours: "Mar a Dom 9:00 - 16:30", HoursEn: "Tue to Sun 9am - 4:30pm",
		Category: "archaeological", PriceRange: domain.PriceBudget, Rating: 4.9, Featured: true,
		Coordinates: orb.Point{-99.0923, 18.9953},
		Flags:       map[string]bool{"requiresTicket": true},
	},
	{
		ID: "ex-convento-natividad", Kind: domain.KindAttractions,
		Name: "Ex Convento de la Natividad", NameEn: "Former Convent of the Nativity",
		Description:   "Convento dominico del siglo XVI, Patrimonio de la Humanidad.",
		DescriptionEn: "Sixteenth-century Dominican convent, a UNESCO World Heritage Site.",
		Address:       "Av. Revolución 1910 s/n, Centro",
		Category:      "historic", PriceRange: domain.PriceBudget, Rating: 4.7,
		Coordinates: orb.Point{-99.0978, 18.9849},
		Flags:       map[string]bool{"familyFriendly": true},
	},
	{
		ID: "mercado-tepoztlan", Kind: domain.KindAttractions,
		Name: "Mercado de Tepoztlán", NameEn: "Tepoztlán Market",
		Description:   "Mercado de fin de semana con artesanías y comida típica.",
		DescriptionEn: "Weekend market with crafts and local food.",
		Address:       "Zócalo, Centro",
		Category:      "market", PriceRange: domain.PriceBudget, Rating: 4.5,
		Coordinates: orb.Point{-99.0994, 18.9854},
		Flags:       map[string]bool{"familyFriendly": true},
	},
	{
		ID: "museo-carlos-pellicer", Kind: domain.KindAttractions,
		Name: "Museo Arqueológico Carlos Pellicer", NameEn: "Carlos Pellicer Archaeological Museum",
		Description:   "Colección de piezas prehispánicas donada por el poeta.",
		DescriptionEn: "Pre-Hispanic collection donated by the poet.",
		Address:       "Calle Pablo González 2, Centro",
		Category:      "museum", PriceRange: domain.PriceBudget, Rating: 4.4,
		Coordinates: orb.Point{-99.0971, 18.9845},
		Flags:       map[string]bool{"requiresTicket": true, "familyFriendly": true},
	},
}
