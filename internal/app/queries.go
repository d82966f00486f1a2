package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"tepoz_directory/internal/adapters/observability"
	"tepoz_directory/internal/catalog"
	"tepoz_directory/internal/domain"
	"tepoz_directory/internal/mapview"
)

type QueryService struct {
	repo     domain.BusinessReader
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewQueryService wires the read path. c may be nil to disable caching.
func NewQueryService(r domain.BusinessReader, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func listingKey(kind domain.Kind, sel catalog.Selection) string {
	sum := sha1.Sum([]byte(sel.CanonicalKey()))
	return fmt.Sprintf("listing:%s:%s", kind, hex.EncodeToString(sum[:]))
}

func businessKey(kind domain.Kind, id string, l domain.Locale) string {
	return fmt.Sprintf("business:%s:%s:%s", kind, id, l)
}

// ListBusinesses derives the filtered, sorted listing for kind. Total counts
// every match; Items is capped by sel.Limit.
func (s *QueryService) ListBusinesses(ctx context.Context, kind domain.Kind, sel catalog.Selection) (domain.ListingPage, error) {
	key := listingKey(kind, sel)
	var out domain.ListingPage
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &out); ok {
			return out, nil
		}
	}

	records, err := s.repo.ListBusinesses(ctx, kind)
	if err != nil {
		return domain.ListingPage{}, err
	}

	limit := sel.Limit
	sel.Limit = 0
	matches := catalog.Select(records, sel)
	sortKey := string(catalog.ParseSortKey(string(sel.Sort)))
	observability.ObserveSelection(string(kind), sortKey, len(matches))

	out = domain.ListingPage{Total: len(matches), Locale: sel.Locale, Sort: sortKey}
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out.Items = make([]domain.BusinessView, 0, len(matches))
	for _, b := range matches {
		out.Items = append(out.Items, catalog.View(b, sel.Locale))
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

func (s *QueryService) GetBusiness(ctx context.Context, kind domain.Kind, id string, l domain.Locale) (domain.BusinessView, error) {
	key := businessKey(kind, id, l)
	var v domain.BusinessView
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &v); ok {
			return v, nil
		}
	}
	b, err := s.repo.GetBusiness(ctx, kind, id)
	if err != nil {
		return domain.BusinessView{}, err
	}
	v = catalog.View(b, l)
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds()))
	}
	return v, nil
}

// MapOptions tune one map render. Exclude drops markers by id, e.g. the
// business whose detail card is already open; Focus overrides fitting.
type MapOptions struct {
	Style   mapview.Style
	Focus   *mapview.Focus
	Exclude []string
}

// MapLayer places every record of kind on a marker layer and hides the ones
// the selection rejects. Sort and limit don't apply to maps.
func (s *QueryService) MapLayer(ctx context.Context, kind domain.Kind, sel catalog.Selection, opts MapOptions) (mapview.Rendered, error) {
	records, err := s.repo.ListBusinesses(ctx, kind)
	if err != nil {
		return mapview.Rendered{}, err
	}
	layer := mapview.NewLayer(opts.Style)
	for _, b := range records {
		layer.AddMarker(b)
	}
	for _, id := range opts.Exclude {
		layer.RemoveMarker(id)
	}
	layer.SetFilter(catalog.BuildPredicate(sel.Query, sel.Facets, sel.Locale))
	if f := opts.Focus; f != nil {
		layer.FlyTo(f.Center, f.Zoom)
	}
	return layer.Render(sel.Locale), nil
}
