package content

import (
	"slices"
	"strings"

	"tepoz_directory/internal/domain"
)

type text struct{ es, en string }

func (t text) in(l domain.Locale) string { return domain.Pick(l, t.es, t.en) }

type page struct {
	title    text
	sections []section
}

type section struct {
	heading text
	body    text
}

type Section struct {
	Heading string `json:"heading,omitempty"`
	Body    string `json:"body"`
}

type Page struct {
	Slug     string        `json:"slug"`
	Title    string        `json:"title"`
	Sections []Section     `json:"sections"`
	Locale   domain.Locale `json:"locale"`
}

var pages = map[string]page{
	"faq": {
		title: text{"Preguntas frecuentes", "Frequently asked questions"},
		sections: []section{
			{
				heading: text{"¿Cómo llego a Tepoztlán?", "How do I get to Tepoztlán?"},
				body: text{
					"Desde la Ciudad de México hay autobuses cada 30 minutos desde la Terminal Tasqueña; el viaje dura alrededor de hora y media.",
					"Buses leave Mexico City's Tasqueña terminal every 30 minutes; the trip takes about an hour and a half.",
				},
			},
			{
				heading: text{"¿Cuándo abre la pirámide?", "When is the pyramid open?"},
				body: text{
					"El sendero al Tepozteco abre de martes a domingo de 9:00 a 16:30. Lleva agua y calzado cómodo.",
					"The Tepozteco trail is open Tuesday to Sunday from 9am to 4:30pm. Bring water and good shoes.",
				},
			},
			{
				heading: text{"¿Aceptan tarjeta los negocios?", "Do businesses take cards?"},
				body: text{
					"Muchos puestos del mercado solo aceptan efectivo; busca el filtro \"acepta tarjeta\" en el directorio.",
					"Many market stalls are cash only; use the \"cards accepted\" filter in the directory.",
				},
			},
		},
	},
	"privacy": {
		title: text{"Aviso de privacidad", "Privacy policy"},
		sections: []section{
			{
				body: text{
					"Este sitio no requiere registro ni guarda datos personales. Usamos métricas agregadas y anónimas para mejorar el servicio.",
					"This site requires no sign-up and stores no personal data. We use aggregate, anonymous metrics to improve the service.",
				},
			},
			{
				heading: text{"Mapas", "Maps"},
				body: text{
					"Los mapas se cargan desde proveedores externos de teselas, que pueden registrar tu dirección IP según sus propias políticas.",
					"Maps load from third-party tile providers, which may log your IP address under their own policies.",
				},
			},
		},
	},
	"contact": {
		title: text{"Contacto", "Contact"},
		sections: []section{
			{
				body: text{
					"¿Tienes un negocio en Tepoztlán o encontraste un dato incorrecto? Escríbenos a hola@tepoz.mx.",
					"Do you run a business in Tepoztlán or spotted a mistake? Write to hola@tepoz.mx.",
				},
			},
		},
	},
	"travel-info": {
		title: text{"Información de viaje", "Travel information"},
		sections: []section{
			{
				heading: text{"Clima", "Weather"},
				body: text{
					"Templado todo el año; la temporada de lluvias va de junio a octubre, normalmente por las tardes.",
					"Mild all year; the rainy season runs June to October, usually in the afternoons.",
				},
			},
			{
				heading: text{"Fines de semana", "Weekends"},
				body: text{
					"El mercado de artesanías se instala sábados y domingos y el centro se llena; llega temprano.",
					"The craft market sets up on Saturdays and Sundays and downtown gets busy; arrive early.",
				},
			},
		},
	},
}

// Slugs lists the available pages in a stable order.
func Slugs() []string {
	out := make([]string, 0, len(pages))
	for s := range pages {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// Get renders page slug in locale l with the usual English-to-Spanish fallback.
func Get(slug string, l domain.Locale) (Page, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	p, ok := pages[slug]
	if !ok {
		return Page{}, domain.ErrNotFound
	}
	out := Page{Slug: slug, Title: p.title.in(l), Locale: l, Sections: make([]Section, 0, len(p.sections))}
	for _, s := range p.sections {
		out.Sections = append(out.Sections, Section{Heading: s.heading.in(l), Body: s.body.in(l)})
	}
	return out, nil
}
