// Package mapview builds the marker payload consumed by the Mapbox GL and
// MapLibre GL front ends.
package mapview

import (
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/maptile"

	"tepoz_directory/internal/catalog"
	"tepoz_directory/internal/domain"
)

// Adapter is the marker lifecycle shared by every map SDK.
type Adapter interface {
	AddMarker(b domain.Business)
	RemoveMarker(id string)
	FlyTo(center orb.Point, zoom float64)
	SetFilter(p catalog.Predicate)
}

type Style string

const (
	StyleMapbox   Style = "mapbox"
	StyleMapLibre Style = "maplibre"
)

var styleURLs = map[Style]string{
	StyleMapbox:   "mapbox://styles/mapbox/outdoors-v12",
	StyleMapLibre: "https://tiles.openfreemap.org/styles/liberty",
}

func ParseStyle(s string) Style {
	if Style(s) == StyleMapLibre {
		return StyleMapLibre
	}
	return StyleMapbox
}

const (
	MaxZoom     = 17
	DefaultZoom = 14
)

// TownCenter is the zócalo, used when there is nothing to frame.
var TownCenter = orb.Point{-99.0990, 18.9853}

// Focus pins the camera instead of fitting it to the markers.
type Focus struct {
	Center orb.Point
	Zoom   float64
}

type Viewport struct {
	Center [2]float64 `json:"center"`
	Zoom   float64    `json:"zoom"`
}

type Rendered struct {
	Style    string                     `json:"style"`
	Viewport Viewport                   `json:"viewport"`
	Features *geojson.FeatureCollection `json:"features"`
}

// Layer is a GeoJSON-backed Adapter. It is built per request and is not safe
// for concurrent use.
type Layer struct {
	style   Style
	markers []domain.Business
	filter  catalog.Predicate
	view    *Viewport
}

var _ Adapter = (*Layer)(nil)

func NewLayer(style Style) *Layer {
	return &Layer{style: style}
}

// AddMarker places b on the layer, replacing any marker with the same id.
func (l *Layer) AddMarker(b domain.Business) {
	if i := l.index(b.ID); i >= 0 {
		l.markers[i] = b
		return
	}
	l.markers = append(l.markers, b)
}

func (l *Layer) RemoveMarker(id string) {
	if i := l.index(id); i >= 0 {
		l.markers = slices.Delete(l.markers, i, i+1)
	}
}

func (l *Layer) FlyTo(center orb.Point, zoom float64) {
	l.view = &Viewport{Center: [2]float64{center.Lon(), center.Lat()}, Zoom: zoom}
}

// SetFilter hides markers rejected by p; nil shows everything.
func (l *Layer) SetFilter(p catalog.Predicate) {
	l.filter = p
}

func (l *Layer) index(id string) int {
	return slices.IndexFunc(l.markers, func(b domain.Business) bool { return b.ID == id })
}

// Visible returns markers that pass the filter and have coordinates.
func (l *Layer) Visible() []domain.Business {
	out := make([]domain.Business, 0, len(l.markers))
	for _, b := range l.markers {
		if b.Coordinates == (orb.Point{}) {
			continue
		}
		if l.filter != nil && !l.filter(b) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// FitBounds frames the visible markers: the center of their bounding box at
// the deepest zoom where the whole box still falls inside one tile.
func (l *Layer) FitBounds() Viewport {
	visible := l.Visible()
	if len(visible) == 0 {
		return Viewport{Center: [2]float64{TownCenter.Lon(), TownCenter.Lat()}, Zoom: DefaultZoom}
	}
	mp := make(orb.MultiPoint, 0, len(visible))
	for _, b := range visible {
		mp = append(mp, b.Coordinates)
	}
	bound := mp.Bound()
	center := bound.Center()

	zoom := maptile.Zoom(MaxZoom)
	for zoom > 0 && maptile.At(bound.Min, zoom) != maptile.At(bound.Max, zoom) {
		zoom--
	}
	return Viewport{Center: [2]float64{center.Lon(), center.Lat()}, Zoom: float64(zoom)}
}

// Render produces the payload for locale loc. Without an explicit FlyTo the
// viewport is fitted to the visible markers.
func (l *Layer) Render(loc domain.Locale) Rendered {
	vp := l.FitBounds()
	if l.view != nil {
		vp = *l.view
	}

	fc := geojson.NewFeatureCollection()
	for _, b := range l.Visible() {
		f := geojson.NewFeature(b.Coordinates)
		f.ID = b.ID
		f.Properties["id"] = b.ID
		f.Properties["kind"] = string(b.Kind)
		f.Properties["name"] = catalog.DisplayField(b, catalog.FieldName, loc)
		f.Properties["category"] = b.Category
		f.Properties["priceRange"] = b.PriceRange
		f.Properties["rating"] = b.Rating
		f.Properties["featured"] = b.Featured
		fc.Append(f)
	}

	return Rendered{Style: styleURLs[l.style], Viewport: vp, Features: fc}
}
