package catalog

import (
	"github.com/paulmach/orb"

	"tepoz_directory/internal/domain"
)

var cafes = []domain.Business{
	{
		ID: "cafe-luna", Kind: domain.KindCafes,
		Name: "Café Luna", NameEn: "Luna Café",
		Description:   "Café de especialidad con granos de Veracruz y Chiapas, tostados en casa.",
		DescriptionEn: "Specialty coffee with Veracruz and Chiapas beans, roasted in-house.",
		Address:       "Av. Revolución 1910 #12, Centro", AddressEn: "12 Revolución 1910 Ave, Downtown",
		Hours: "Lun a Dom 8:00 - 20:00", HoursEn: "Mon to Sun 8am - 8pm",
		Specialties: "Café de olla, pour over, pan de elote", SpecialtiesEn: "Café de olla, pour over, corn bread",
		Category: "specialty", PriceRange: domain.PriceModerate, Rating: 4.9, Featured: true,
		Coordinates: orb.Point{-99.0985, 18.9852},
		Flags:       map[string]bool{"wifi": true, "studyFriendly": true, "petFriendly": true, "outdoorSeating": true},
		Tags:        []string{"vegetarian", "vegan"},
	},
	{
		ID: "cafe-sol", Kind: domain.KindCafes,
		Name:          "Café Sol",
		Description:   "Terraza con vista al Tepozteco y desayunos caseros.",
		DescriptionEn: "Terrace with views of the Tepozteco and homemade breakfasts.",
		Address:       "Calle Del Tepozteco 8, Barrio de San Miguel",
		Hours:         "Mié a Lun 9:00 - 18:00", HoursEn: "Wed to Mon 9am - 6pm",
		Category: "traditional", PriceRange: domain.PriceBudget, Rating: 4.5,
		Coordinates: orb.Point{-99.0968, 18.9878},
		Flags:       map[string]bool{"outdoorSeating": true},
		Tags:        []string{"vegetarian"},
	},
	{
		ID: "panaderia-x", Kind: domain.KindCafes,
		Name: "Bakery X", NameEn: "Bakery X",
		Description:   "Panadería de masa madre con opciones sin gluten.",
		DescriptionEn: "Sourdough bakery with gluten-free options.",
		Address:       "Av. 5 de Mayo 30, Centro",
		Hours:         "Mar a Dom 7:30 - 15:00", HoursEn: "Tue to Sun 7:30am - 3pm",
		Specialties: "Conchas de masa madre, pan de muerto en temporada", SpecialtiesEn: "Sourdough conchas, seasonal pan de muerto",
		Category: "bakery", PriceRange: domain.PriceModerate, Rating: 5.0,
		Coordinates: orb.Point{-99.0991, 18.9846},
		Flags:       map[string]bool{"wifi": true},
		Tags:        []string{"vegetarian", "vegan", "gluten-free"},
	},
	{
		ID: "cafe-amate", Kind: domain.KindCafes,
		Name: "El Amate Café", NameEn: "Amate Tree Café",
		Description:   "Espacio tranquilo para trabajar, enchufes en cada mesa.",
		DescriptionEn: "Quiet place to work with outlets at every table.",
		Address:       "Calle Zaragoza 4, Barrio de Santo Domingo",
		Hours:         "Lun a Sáb 8:00 - 21:00", HoursEn: "Mon to Sat 8am - 9pm",
		Category: "specialty", PriceRange: domain.PriceModerate, Rating: 4.6,
		Coordinates: orb.Point{-99.1003, 18.9839},
		Flags:       map[string]bool{"wifi": true, "studyFriendly": true},
		Tags:        []string{"vegetarian", "gluten-free"},
	},
	{
		ID: "chocolateria-xocolatl", Kind: domain.KindCafes,
		Name: "Xocolatl Chocolatería",
		Description:   "Chocolate de metate y bebidas prehispánicas.",
		DescriptionEn: "Stone-ground chocolate and pre-Hispanic drinks.",
		Address:       "Av. Revolución 1910 #40, Centro",
		Category:      "traditional", PriceRange: domain.PriceBudget, Rating: 4.7, Featured: true,
		Coordinates: orb.Point{-99.0979, 18.9857},
		Flags:       map[string]bool{"petFriendly": true},
		Tags:        []string{"vegan", "gluten-free"},
	},
}

var restaurants = []domain.Business{
	{
		ID: "la-sombra-del-sabino", Kind: domain.KindRestaurants,
		Name: "La Sombra del Sabino", NameEn: "Under the Cypress",
		Description:   "Cocina de temporada en un jardín con librería.",
		DescriptionEn: "Seasonal cooking in a garden bookshop.",
		Address:       "Av. Revolución 1910 #2, Centro",
		Hours:         "Mié a Dom 9:00 - 18:00", HoursEn: "Wed to Sun 9am - 6pm",
		Category: "international", PriceRange: domain.PriceUpscale, Rating: 4.7, Featured: true,
		Coordinates: orb.Point{-99.0989, 18.9861},
		Flags:       map[string]bool{"petFriendly": true, "outdoorSeating": true, "cardsAccepted": true},
		Tags:        []string{"vegetarian"},
	},
	{
		ID: "cocina-dona-lupe", Kind: domain.KindRestaurants,
		Name:          "Cocina Doña Lupe",
		Description:   "Cecina de Yecapixtla, mole y tortillas hechas a mano.",
		DescriptionEn: "Yecapixtla cecina, mole and handmade tortillas.",
		Address:       "Calle Ignacio Aldama 15, Barrio de La Santísima",
		Hours:         "Todos los días 8:00 - 17:00", HoursEn: "Daily 8am - 5pm",
		Specialties: "Cecina, mole rojo, sopa de hongos", SpecialtiesEn: "Cecina, red mole, mushroom soup",
		Category: "mexican", PriceRange: domain.PriceBudget, Rating: 4.8,
		Coordinates: orb.Point{-99.0947, 18.9849},
	},
	{
		ID: "verde-tepoz", Kind: domain.KindRestaurants,
		Name: "Verde Tepoz",
		Description:   "Restaurante vegetal con ingredientes de huertos locales.",
		DescriptionEn: "Plant-based restaurant sourcing from local gardens.",
		Address:       "Camino al Tepozteco 3",
		Category:      "vegetarian", PriceRange: domain.PriceModerate, Rating: 4.4,
		Coordinates: orb.Point{-99.0961, 18.9884},
		Flags:       map[string]bool{"outdoorSeating": true, "cardsAccepted": true},
		Tags:        []string{"vegetarian", "vegan", "gluten-free"},
	},
	{
		ID: "axitla", Kind: domain.KindRestaurants,
		Name:          "Axitla",
		Description:   "Restaurante en el bosque rumbo a la pirámide.",
		DescriptionEn: "Forest restaurant on the path to the pyramid.",
		Address:       "Av. del Tepozteco s/n",
		Category:      "mexican", PriceRange: domain.PriceLuxury, Rating: 4.3,
		Coordinates: orb.Point{-99.0957, 18.9893},
		Flags:       map[string]bool{"cardsAccepted": true},
	},
}

var streetFood = []domain.Business{
	{
		ID: "quesadillas-mercado", Kind: domain.KindStreetFood,
		Name: "Quesadillas del Mercado", NameEn: "Market Quesadillas",
		Description:   "Quesadillas de maíz azul con flor de calabaza y huitlacoche.",
		DescriptionEn: "Blue corn quesadillas with squash blossom and huitlacoche.",
		Address:       "Mercado Municipal, pasillo central", AddressEn: "Municipal market, central aisle",
		Hours:         "Todos los días 8:00 - 16:00", HoursEn: "Daily 8am - 4pm",
		Category: "quesadillas", PriceRange: domain.PriceBudget, Rating: 4.8, Featured: true,
		Coordinates: orb.Point{-99.0993, 18.9855},
		Tags:        []string{"vegetarian"},
	},
	{
		ID: "tlacoyos-dona-mari", Kind: domain.KindStreetFood,
		Name:          "Tlacoyos Doña Mari",
		Description:   "Tlacoyos de frijol y haba en comal de barro.",
		DescriptionEn: "Bean and fava tlacoyos on a clay griddle.",
		Address:       "Esquina 5 de Mayo y Envila",
		Category:      "tlacoyos", PriceRange: domain.PriceBudget, Rating: 4.6,
		Coordinates: orb.Point{-99.0988, 18.9849},
		Tags:        []string{"vegetarian", "vegan"},
	},
	{
		ID: "elotes-el-zocalo", Kind: domain.KindStreetFood,
		Name:          "Elotes del Zócalo",
		Description:   "Elotes y esquites con chile piquín.",
		DescriptionEn: "Corn on the cob and esquites with piquín chili.",
		Address:       "Zócalo de Tepoztlán",
		Category:      "elotes", PriceRange: domain.PriceBudget, Rating: 4.2,
		Coordinates: orb.Point{-99.0990, 18.9853},
		Tags:        []string{"vegetarian", "gluten-free"},
	},
	{
		ID: "tepoznieves", Kind: domain.KindStreetFood,
		Name:          "Tepoznieves",
		Description:   "Nieves artesanales de sabores exóticos.",
		DescriptionEn: "Artisanal sorbets in unusual flavours.",
		Address:       "Av. Revolución 1910 #21, Centro",
		Category:      "nieves", PriceRange: domain.PriceBudget, Rating: 4.6, Featured: true,
		Coordinates: orb.Point{-99.0982, 18.9858},
		Flags:       map[string]bool{"cardsAccepted": true},
		Tags:        []string{"vegan", "gluten-free"},
	},
}
