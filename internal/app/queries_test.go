package app_test

import (
	"context"
	"testing"
	"time"

	"tepoz_directory/internal/app"
	"tepoz_directory/internal/catalog"
	"tepoz_directory/internal/domain"
	"tepoz_directory/internal/mapview"

	"github.com/paulmach/orb"
)

// ---- fakes ----

type fakeRepo struct {
	records  []domain.Business
	upserted []domain.Business
	lists    int
}

func (f *fakeRepo) ListBusinesses(ctx context.Context, kind domain.Kind) ([]domain.Business, error) {
	f.lists++
	var out []domain.Business
	for _, b := range f.records {
		if b.Kind == kind {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetBusiness(ctx context.Context, kind domain.Kind, id string) (domain.Business, error) {
	for _, b := range f.records {
		if b.Kind == kind && b.ID == id {
			return b, nil
		}
	}
	return domain.Business{}, domain.ErrNotFound
}

func (f *fakeRepo) UpsertBusiness(ctx context.Context, b domain.Business) error {
	f.upserted = append(f.upserted, b)
	return nil
}

type fakeCache struct {
	store    map[string]any
	deleted  []string
	patterns []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.BusinessView:
		*d = v.(domain.BusinessView)
	case *domain.ListingPage:
		*d = v.(domain.ListingPage)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.deleted = append(c.deleted, key)
	delete(c.store, key)
	return nil
}

func (c *fakeCache) DelPattern(ctx context.Context, pattern string) error {
	c.patterns = append(c.patterns, pattern)
	return nil
}

func cafes() []domain.Business {
	return []domain.Business{
		{ID: "a", Kind: domain.KindCafes, Name: "Café A", NameEn: "A Coffee", Category: "cafe", PriceRange: "$$", Rating: 4.5, Coordinates: orb.Point{-99.0967, 18.9847}},
		{ID: "b", Kind: domain.KindCafes, Name: "Café B", Category: "bakery", PriceRange: "$", Rating: 4.9, Coordinates: orb.Point{-99.0990, 18.9860}},
		{ID: "c", Kind: domain.KindCafes, Name: "Café C", Category: "cafe", PriceRange: "$$$", Rating: 4.2, Featured: true, Coordinates: orb.Point{-99.0950, 18.9830}},
		{ID: "r", Kind: domain.KindRestaurants, Name: "Restaurante", Category: "mexican", PriceRange: "$$", Rating: 4.0},
	}
}

// ---- tests ----

func TestListBusinesses_SelectsSortsAndCaches(t *testing.T) {
	repo := &fakeRepo{records: cafes()}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, 10*time.Minute)

	sel := catalog.Selection{Sort: catalog.SortFeatured, Locale: domain.LocaleEN, Limit: 2}
	page, err := q.ListBusinesses(context.Background(), domain.KindCafes, sel)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if page.Total != 3 || len(page.Items) != 2 {
		t.Fatalf("want total 3 with 2 items, got %d/%d", page.Total, len(page.Items))
	}
	if page.Items[0].ID != "c" || page.Items[1].ID != "b" {
		t.Fatalf("unexpected order: %s, %s", page.Items[0].ID, page.Items[1].ID)
	}
	if page.Sort != "featured" || page.Locale != domain.LocaleEN {
		t.Fatalf("unexpected page meta: %+v", page)
	}

	// Second call is served from cache.
	repo.records = nil
	again, err := q.ListBusinesses(context.Background(), domain.KindCafes, sel)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if again.Total != 3 || repo.lists != 1 {
		t.Fatalf("expected cached page, lists=%d total=%d", repo.lists, again.Total)
	}
}

func TestListBusinesses_FacetsAndLocale(t *testing.T) {
	q := app.NewQueryService(&fakeRepo{records: cafes()}, nil, time.Minute)

	page, err := q.ListBusinesses(context.Background(), domain.KindCafes, catalog.Selection{
		Facets: catalog.Facets{Category: "cafe"},
		Sort:   catalog.SortRating,
		Locale: domain.LocaleEN,
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(page.Items) != 2 || page.Items[0].Name != "A Coffee" || page.Items[1].Name != "Café C" {
		t.Fatalf("unexpected items: %+v", page.Items)
	}
}

func TestGetBusiness_CacheMissThenHit(t *testing.T) {
	repo := &fakeRepo{records: cafes()}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, 10*time.Minute)

	v, err := q.GetBusiness(context.Background(), domain.KindCafes, "a", domain.LocaleEN)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if v.Name != "A Coffee" || v.Locale != domain.LocaleEN {
		t.Fatalf("unexpected view: %+v", v)
	}

	// Mutate repo to ensure second read indeed comes from cache
	repo.records[0].NameEn = "SHOULD NOT SEE THIS"
	v2, err := q.GetBusiness(context.Background(), domain.KindCafes, "a", domain.LocaleEN)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if v2.Name != "A Coffee" {
		t.Fatalf("expected cached name, got %s", v2.Name)
	}
}

func TestGetBusiness_NotFound(t *testing.T) {
	q := app.NewQueryService(&fakeRepo{records: cafes()}, &fakeCache{}, time.Minute)
	if _, err := q.GetBusiness(context.Background(), domain.KindCafes, "zzz", domain.LocaleES); err != domain.ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestMapLayer_HidesRejectedMarkers(t *testing.T) {
	q := app.NewQueryService(&fakeRepo{records: cafes()}, nil, time.Minute)

	r, err := q.MapLayer(context.Background(), domain.KindCafes, catalog.Selection{
		Facets: catalog.Facets{PriceRange: "$"},
		Locale: domain.LocaleES,
	}, app.MapOptions{Style: mapview.StyleMapLibre})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(r.Features.Features) != 1 {
		t.Fatalf("want 1 visible marker, got %d", len(r.Features.Features))
	}
	if id := r.Features.Features[0].ID; id != "b" {
		t.Fatalf("unexpected marker %v", id)
	}
}

func TestMapLayer_ExcludeAndFocus(t *testing.T) {
	q := app.NewQueryService(&fakeRepo{records: cafes()}, nil, time.Minute)

	r, err := q.MapLayer(context.Background(), domain.KindCafes, catalog.Selection{Locale: domain.LocaleEN}, app.MapOptions{
		Style:   mapview.StyleMapbox,
		Focus:   &mapview.Focus{Center: orb.Point{-99.1, 18.99}, Zoom: 16},
		Exclude: []string{"a", "missing"},
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(r.Features.Features) != 2 {
		t.Fatalf("want 2 markers after exclusion, got %d", len(r.Features.Features))
	}
	for _, f := range r.Features.Features {
		if f.ID == "a" {
			t.Fatalf("excluded marker a still rendered")
		}
	}
	if r.Viewport.Zoom != 16 || r.Viewport.Center != [2]float64{-99.1, 18.99} {
		t.Fatalf("focus not applied: %+v", r.Viewport)
	}
}

func TestSeedRecord_ValidatesUpsertsAndInvalidates(t *testing.T) {
	repo := &fakeRepo{}
	cache := &fakeCache{}
	s := app.NewSeedService(repo, cache)

	good := cafes()[0]
	if err := s.SeedRecord(context.Background(), good); err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(repo.upserted) != 1 {
		t.Fatalf("expected one upsert, got %d", len(repo.upserted))
	}
	if len(cache.deleted) != 2 || cache.deleted[0] != "business:cafes:a:es" {
		t.Fatalf("unexpected deletions: %v", cache.deleted)
	}

	bad := good
	bad.PriceRange = "cheap"
	if err := s.SeedRecord(context.Background(), bad); err == nil {
		t.Fatal("expected validation error")
	}
	if len(repo.upserted) != 1 {
		t.Fatalf("invalid record must not be stored")
	}

	if err := s.InvalidateListings(context.Background(), domain.KindCafes); err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(cache.patterns) != 1 || cache.patterns[0] != "listing:cafes:*" {
		t.Fatalf("unexpected patterns: %v", cache.patterns)
	}
}

func TestListBusinesses_ForgedCategoryDoesNotShadowListing(t *testing.T) {
	repo := &fakeRepo{records: cafes()}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, 10*time.Minute)
	ctx := context.Background()

	forged := catalog.Selection{Facets: catalog.Facets{Category: "bakery|price=$"}, Sort: catalog.SortFeatured, Locale: domain.LocaleES}
	page, err := q.ListBusinesses(ctx, domain.KindCafes, forged)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if page.Total != 0 {
		t.Fatalf("forged selection should match nothing, got %d", page.Total)
	}

	legit := catalog.Selection{Facets: catalog.Facets{Category: "bakery", PriceRange: "$"}, Sort: catalog.SortFeatured, Locale: domain.LocaleES}
	page, err = q.ListBusinesses(ctx, domain.KindCafes, legit)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if page.Total != 1 || page.Items[0].ID != "b" {
		t.Fatalf("want bakery b, got %+v", page)
	}
	if len(cache.store) != 2 {
		t.Fatalf("want two distinct cache entries, got %d", len(cache.store))
	}
}
