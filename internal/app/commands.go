package app

import (
	"context"
	"fmt"

	"tepoz_directory/internal/catalog"
	"tepoz_directory/internal/domain"
)

type SeedService struct {
	repo  domain.BusinessWriter
	cache domain.Cache
}

func NewSeedService(r domain.BusinessWriter, cache domain.Cache) *SeedService {
	return &SeedService{repo: r, cache: cache}
}

// SeedRecord validates and stores one record, then drops its cached detail
// views. Listing caches are dropped per kind with InvalidateListings once a
// batch is done.
func (s *SeedService) SeedRecord(ctx context.Context, b domain.Business) error {
	if err := catalog.Validate(b); err != nil {
		return err
	}
	if err := s.repo.UpsertBusiness(ctx, b); err != nil {
		return fmt.Errorf("upsert %s/%s: %w", b.Kind, b.ID, err)
	}
	if s.cache != nil {
		// the row is written; drop its detail views even if ctx just ended
		cctx := context.WithoutCancel(ctx)
		for _, l := range []domain.Locale{domain.LocaleES, domain.LocaleEN} {
			_ = s.cache.Del(cctx, businessKey(b.Kind, b.ID, l))
		}
	}
	return nil
}

func (s *SeedService) InvalidateListings(ctx context.Context, kind domain.Kind) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.DelPattern(ctx, fmt.Sprintf("listing:%s:*", kind))
}
