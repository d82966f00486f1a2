// Package seed loads directory records from the built-in catalog, a YAML file
// or a remote feed, and writes them through app.SeedService.
package seed

import (
	"context"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"tepoz_directory/internal/adapters/feed"
	"tepoz_directory/internal/app"
	"tepoz_directory/internal/catalog"
	"tepoz_directory/internal/domain"
)

type Source interface {
	Name() string
	Load(ctx context.Context) ([]domain.Business, error)
}

// Open picks a source from a SEED_SOURCE value: "builtin" (or empty), an
// http(s) feed URL, or a path to a YAML file.
func Open(source, feedKey string, rps int) (Source, error) {
	switch {
	case source == "" || source == "builtin":
		return Builtin{Store: catalog.Default()}, nil
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		c, err := feed.New(source, feedKey, rps)
		if err != nil {
			return nil, errors.Wrap(err, "open feed source")
		}
		return Feed{Client: c, Kinds: domain.Kinds}, nil
	default:
		return YAMLFile{Path: source}, nil
	}
}

type Builtin struct{ Store *catalog.Store }

func (Builtin) Name() string { return "builtin" }

func (b Builtin) Load(context.Context) ([]domain.Business, error) {
	return b.Store.Records(), nil
}

// YAMLFile reads either per-kind lists:
//
//	cafes:
//	  - id: cafe-luna
//	    nombre: Café Luna
//
// or one "businesses" list whose items carry their own kind.
type YAMLFile struct{ Path string }

func (y YAMLFile) Name() string { return "yaml:" + y.Path }

func (y YAMLFile) Load(context.Context) ([]domain.Business, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(y.Path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "load seed file %s", y.Path)
	}
	return fromRaw(k.Raw())
}

func fromRaw(raw map[string]any) ([]domain.Business, error) {
	var out []domain.Business
	for _, kind := range domain.Kinds {
		items, ok := raw[string(kind)].([]any)
		if !ok {
			continue
		}
		for _, it := range items {
			if m, ok := it.(map[string]any); ok {
				out = append(out, app.MapBusiness(kind, m))
			}
		}
	}
	if list, ok := raw["businesses"].([]any); ok {
		for i, it := range list {
			m, ok := it.(map[string]any)
			if !ok {
				continue
			}
			ks, _ := m["kind"].(string)
			kind, err := domain.ParseKind(ks)
			if err != nil {
				return nil, errors.Wrapf(err, "businesses[%d] kind %q", i, ks)
			}
			out = append(out, app.MapBusiness(kind, m))
		}
	}
	if len(out) == 0 {
		return nil, errors.New("seed file holds no records")
	}
	return out, nil
}

// Feed pulls every kind from a remote catalog export. Kinds the feed does
// not publish are skipped.
type Feed struct {
	Client domain.FeedClient
	Kinds  []domain.Kind
}

func (Feed) Name() string { return "feed" }

func (f Feed) Load(ctx context.Context) ([]domain.Business, error) {
	var out []domain.Business
	for _, kind := range f.Kinds {
		raw, err := f.Client.GetListings(ctx, kind)
		if errors.Is(err, domain.ErrNotFound) {
			log.Warn().Str("kind", string(kind)).Msg("feed has no listings for kind")
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "feed listings %s", kind)
		}
		out = append(out, app.MapBusinesses(kind, raw)...)
	}
	return out, nil
}
