// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"tepoz_directory/internal/app"
	"tepoz_directory/internal/catalog"
	"tepoz_directory/internal/content"
	"tepoz_directory/internal/domain"
	"tepoz_directory/internal/mapview"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/schema"
	"github.com/paulmach/orb"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

type Handlers struct {
	Q             *app.QueryService
	MapStyle      mapview.Style
	DefaultLocale domain.Locale
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

const (
	maxLimit        = 200
	defaultRadiusKm = 2.0
)

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/kinds", h.listKinds)
	s.mux.Get("/v1/pages/{slug}", h.getPage)
	s.mux.Get("/v1/{kind}", h.listBusinesses)
	s.mux.Get("/v1/{kind}/map", h.getMap)
	s.mux.Get("/v1/{kind}/{id}", h.getBusiness)
}

// listingQuery is the wire form of catalog.Selection.
type listingQuery struct {
	Q        string   `schema:"q"`
	Category string   `schema:"category"`
	Price    string   `schema:"price"`
	Dietary  []string `schema:"dietary"`
	With     []string `schema:"with"`
	Without  []string `schema:"without"`
	Near     string   `schema:"near"`
	RadiusKm float64  `schema:"radius_km"`
	Sort     string   `schema:"sort"`
	Lang     string   `schema:"lang"`
	Limit    int      `schema:"limit"`
}

var decoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

var (
	langMatcher = language.NewMatcher([]language.Tag{language.Spanish, language.English})
	langTags    = []domain.Locale{domain.LocaleES, domain.LocaleEN}
)

// selectLang resolves the response locale: ?lang first, then Accept-Language,
// then def.
func selectLang(r *http.Request, def domain.Locale) domain.Locale {
	if q := r.URL.Query().Get("lang"); q != "" {
		return domain.ParseLocale(q)
	}
	al := r.Header.Get("Accept-Language")
	if al == "" {
		return def
	}
	tags := parseAcceptLanguage(al)
	if len(tags) == 0 {
		return def
	}
	_, idx, conf := langMatcher.Match(tags...)
	if conf == language.No {
		return def
	}
	return langTags[idx]
}

func parseAcceptLanguage(al string) []language.Tag {
	tags, _, err := language.ParseAcceptLanguage(al)
	if err != nil {
		return nil
	}
	return tags
}

// splitCSV flattens repeated and comma separated values.
func splitCSV(in []string) []string {
	var out []string
	for _, v := range in {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func parsePoint(name, v string) (orb.Point, error) {
	parts := strings.Split(v, ",")
	if len(parts) != 2 {
		return orb.Point{}, errors.New(name + " must be lon,lat")
	}
	lon, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lat, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil || lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		return orb.Point{}, errors.New(name + " must be lon,lat in degrees")
	}
	return orb.Point{lon, lat}, nil
}

func parseNear(near string, radius float64) (*catalog.GeoFilter, error) {
	if near == "" {
		return nil, nil
	}
	center, err := parsePoint("near", near)
	if err != nil {
		return nil, err
	}
	if radius == 0 {
		radius = defaultRadiusKm
	}
	if radius < 0 {
		return nil, errors.New("radius_km must be positive")
	}
	return &catalog.GeoFilter{Center: center, RadiusKm: radius}, nil
}

// mapQuery holds the camera and marker options of the map route.
type mapQuery struct {
	Style   string   `schema:"style"`
	Center  string   `schema:"center"`
	Zoom    *float64 `schema:"zoom"`
	Exclude []string `schema:"exclude"`
}

func (h *Handlers) mapOptions(r *http.Request) (app.MapOptions, error) {
	var mq mapQuery
	if err := decoder.Decode(&mq, r.URL.Query()); err != nil {
		return app.MapOptions{}, err
	}
	opts := app.MapOptions{Style: h.MapStyle, Exclude: splitCSV(mq.Exclude)}
	if mq.Style != "" {
		opts.Style = mapview.ParseStyle(mq.Style)
	}
	if mq.Center == "" {
		if mq.Zoom != nil {
			return app.MapOptions{}, errors.New("zoom needs center")
		}
		return opts, nil
	}
	center, err := parsePoint("center", mq.Center)
	if err != nil {
		return app.MapOptions{}, err
	}
	zoom := float64(mapview.DefaultZoom)
	if mq.Zoom != nil {
		zoom = *mq.Zoom
	}
	if zoom < 0 || zoom > mapview.MaxZoom {
		return app.MapOptions{}, errors.New("zoom must be between 0 and 17")
	}
	opts.Focus = &mapview.Focus{Center: center, Zoom: zoom}
	return opts, nil
}

// parseSelection decodes the listing query string. The returned string is the
// problem title when err is non-nil.
func (h *Handlers) parseSelection(r *http.Request) (catalog.Selection, string, error) {
	var lq listingQuery
	if err := decoder.Decode(&lq, r.URL.Query()); err != nil {
		return catalog.Selection{}, "Invalid query", err
	}
	if lq.Limit < 0 || lq.Limit > maxLimit {
		return catalog.Selection{}, "Invalid limit", errors.New("limit must be an integer between 0 and 200")
	}
	near, err := parseNear(lq.Near, lq.RadiusKm)
	if err != nil {
		return catalog.Selection{}, "Invalid near", err
	}

	flags, err := catalog.FlagFilter(splitCSV(lq.With), splitCSV(lq.Without))
	if err != nil {
		return catalog.Selection{}, "Invalid flags", err
	}

	return catalog.Selection{
		Query: lq.Q,
		Facets: catalog.Facets{
			Category:   lq.Category,
			PriceRange: lq.Price,
			Dietary:    splitCSV(lq.Dietary),
			Flags:      flags,
			Near:       near,
		},
		Sort:   catalog.ParseSortKey(lq.Sort),
		Locale: selectLang(r, h.DefaultLocale),
		Limit:  lq.Limit,
	}, "", nil
}

func (h *Handlers) kindParam(w http.ResponseWriter, r *http.Request) (domain.Kind, bool) {
	kind, err := domain.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Unknown kind", "no directory section named "+chi.URLParam(r, "kind"))
		return "", false
	}
	return kind, true
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeError(w http.ResponseWriter, err error, what string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", what+" not found")
	case errors.Is(err, domain.ErrUnknownKind):
		writeProblem(w, http.StatusNotFound, "Unknown kind", err.Error())
	default:
		log.Error().Err(err).Str("what", what).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		// Log but don't fail the whole response; return empty ETag and best-effort body.
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCached writes v as JSON with a weak ETag, answering 304 when the client
// already holds this version.
func writeCached(w http.ResponseWriter, r *http.Request, v any, l domain.Locale, what string) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	if l != "" {
		w.Header().Set("Content-Language", string(l))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msgf("failed to write %s body", what)
	}
}

func (h *Handlers) listKinds(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, map[string]any{"kinds": domain.Kinds}, "", "kinds")
}

func (h *Handlers) listBusinesses(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kindParam(w, r)
	if !ok {
		return
	}
	sel, title, err := h.parseSelection(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, title, err.Error())
		return
	}
	out, err := h.Q.ListBusinesses(r.Context(), kind, sel)
	if err != nil {
		writeError(w, err, "listing")
		return
	}
	writeCached(w, r, out, out.Locale, "listBusinesses")
}

func (h *Handlers) getMap(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kindParam(w, r)
	if !ok {
		return
	}
	sel, title, err := h.parseSelection(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, title, err.Error())
		return
	}
	opts, err := h.mapOptions(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid map view", err.Error())
		return
	}
	out, err := h.Q.MapLayer(r.Context(), kind, sel, opts)
	if err != nil {
		writeError(w, err, "map")
		return
	}
	writeCached(w, r, out, sel.Locale, "getMap")
}

func (h *Handlers) getBusiness(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kindParam(w, r)
	if !ok {
		return
	}
	l := selectLang(r, h.DefaultLocale)
	resp, err := h.Q.GetBusiness(r.Context(), kind, chi.URLParam(r, "id"), l)
	if err != nil {
		writeError(w, err, "business")
		return
	}
	writeCached(w, r, resp, resp.Locale, "getBusiness")
}

func (h *Handlers) getPage(w http.ResponseWriter, r *http.Request) {
	l := selectLang(r, h.DefaultLocale)
	p, err := content.Get(chi.URLParam(r, "slug"), l)
	if err != nil {
		writeError(w, err, "page")
		return
	}
	writeCached(w, r, p, p.Locale, "getPage")
}
