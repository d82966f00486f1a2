//go:build integration || !unit

package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	server "tepoz_directory/internal/adapters/http_server"
	redisad "tepoz_directory/internal/adapters/redis"
	"tepoz_directory/internal/app"
	"tepoz_directory/internal/catalog"
	"tepoz_directory/internal/domain"
	"tepoz_directory/internal/mapview"
	mysqlrepo "tepoz_directory/internal/storage/mysql"
)

// ---------- helpers ----------
func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/sql)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=tepoz",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "tepoz")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	res, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusOK && out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return res
}

// ---------- the test ----------
func TestHTTP_EndToEnd_SeedThenBrowse(t *testing.T) {
	db := startMySQL(t)
	applyMigrations(t, db)

	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = cache.Close() })

	repo := mysqlrepo.New(db)
	seed := app.NewSeedService(repo, cache)
	ctx := context.Background()

	for _, b := range catalog.Default().All(domain.KindRestaurants) {
		if err := seed.SeedRecord(ctx, b); err != nil {
			t.Fatalf("SeedRecord %s: %v", b.ID, err)
		}
	}

	q := app.NewQueryService(repo, cache, 10*time.Minute)
	srv := server.New()
	srv.MountHandlers(&server.Handlers{Q: q, MapStyle: mapview.StyleMapbox, DefaultLocale: domain.LocaleES})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	var page domain.ListingPage
	res := getJSON(t, ts.URL+"/v1/restaurants?sort=price&lang=en", &page)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	if page.Total != 4 || page.Items[0].ID != "cocina-dona-lupe" || page.Items[3].ID != "axitla" {
		t.Fatalf("unexpected page: %+v", page)
	}
	if len(mr.Keys()) == 0 {
		t.Fatal("listing was not cached")
	}

	// A reseed drops cached listings for the kind.
	updated := page.Items[0]
	b, err := repo.GetBusiness(ctx, domain.KindRestaurants, updated.ID)
	if err != nil {
		t.Fatalf("GetBusiness: %v", err)
	}
	b.PriceRange = domain.PriceLuxury
	if err := seed.SeedRecord(ctx, b); err != nil {
		t.Fatalf("SeedRecord: %v", err)
	}
	if err := seed.InvalidateListings(ctx, domain.KindRestaurants); err != nil {
		t.Fatalf("InvalidateListings: %v", err)
	}

	page = domain.ListingPage{}
	getJSON(t, ts.URL+"/v1/restaurants?sort=price&lang=en", &page)
	if page.Items[0].ID == "cocina-dona-lupe" {
		t.Fatalf("stale listing served after reseed: %+v", page.Items)
	}

	var view domain.BusinessView
	res = getJSON(t, ts.URL+"/v1/restaurants/la-sombra-del-sabino?lang=en", &view)
	if res.StatusCode != http.StatusOK || view.Name != "Under the Cypress" {
		t.Fatalf("unexpected detail %d: %+v", res.StatusCode, view)
	}
}
