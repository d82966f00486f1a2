package catalog

import (
	"github.com/paulmach/orb"

	"tepoz_directory/internal/domain"
)

var hotels = []domain.Business{
	{
		ID: "posada-del-tepozteco", Kind: domain.KindHotels,
		Name: "Posada del Tepozteco",
		Description:   "Hotel histórico con alberca y vista a la sierra.",
		DescriptionEn: "Historic hotel with a pool and mountain views.",
		Address:       "Calle del Paraíso 3, Barrio de San Miguel",
		Category:      "boutique", PriceRange: domain.PriceLuxury, Rating: 4.7, Featured: true,
		Coordinates: orb.Point{-99.0958, 18.9872},
		Flags:       map[string]bool{"pool": true, "spa": true, "wifi": true},
	},
	{
		ID: "casa-fernanda", Kind: domain.KindHotels,
		Name:          "Casa Fernanda",
		Description:   "Hotel boutique de pocas habitaciones con temazcal.",
		DescriptionEn: "Small boutique hotel with a temazcal sweat lodge.",
		Address:       "Niños Héroes 6, Barrio de San José",
		Category:      "spa", PriceRange: domain.PriceUpscale, Rating: 4.8,
		Coordinates: orb.Point{-99.1021, 18.9827},
		Flags:       map[string]bool{"pool": true, "spa": true, "petFriendly": false},
	},
	{
		ID: "eco-hotel-amatlan", Kind: domain.KindHotels,
		Name: "Eco Hotel Amatlán", NameEn: "Amatlán Eco Lodge",
		Description:   "Cabañas solares entre cerros, a 15 minutos del centro.",
		DescriptionEn: "Solar-powered cabins among the hills, 15 minutes from town.",
		Address:       "Carretera Tepoztlán - Amatlán km 4",
		Category:      "eco", PriceRange: domain.PriceModerate, Rating: 4.5,
		Coordinates: orb.Point{-99.0448, 18.9756},
		Flags:       map[string]bool{"petFriendly": true},
	},
}

var rentals = []domain.Business{
	{
		ID: "cabana-valle-atongo", Kind: domain.KindRentals,
		Name: "Cabaña Valle de Atongo", NameEn: "Atongo Valley Cabin",
		Description:   "Cabaña de madera para cuatro personas con chimenea.",
		DescriptionEn: "Wooden cabin for four with a fireplace.",
		Address:       "Valle de Atongo, lote 12",
		Category:      "cabin", PriceRange: domain.PriceModerate, Rating: 4.6, Featured: true,
		Coordinates: orb.Point{-99.1105, 18.9701},
		Flags:       map[string]bool{"instantBook": true, "petFriendly": true, "kitchen": true},
	},
	{
		ID: "casa-jardin-santo-domingo", Kind: domain.KindRentals,
		Name:          "Casa Jardín Santo Domingo",
		Description:   "Casa con jardín y alberca para grupos grandes.",
		DescriptionEn: "House with garden and pool for large groups.",
		Address:       "Barrio de Santo Domingo",
		Category:      "house", PriceRange: domain.PriceLuxury, Rating: 4.9,
		Coordinates: orb.Point{-99.1012, 18.9818},
		Flags:       map[string]bool{"pool": true, "kitchen": true},
	},
	{
		ID: "depa-centro", Kind: domain.KindRentals,
		Name: "Departamento Centro", NameEn: "Downtown Apartment",
		Description:   "Departamento a dos cuadras del mercado.",
		DescriptionEn: "Apartment two blocks from the market.",
		Address:       "Av. 5 de Mayo 18, Centro",
		Category:      "apartment", PriceRange: domain.PriceBudget, Rating: 4.3,
		Coordinates: orb.Point{-99.0996, 18.9843},
		Flags:       map[string]bool{"instantBook": true, "kitchen": true, "wifi": true},
	},
}
