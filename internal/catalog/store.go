package catalog

import (
	"context"
	"slices"

	"tepoz_directory/internal/domain"
)

// Store is the in-memory record store. It is built once and only read
// afterwards, so it needs no locking.
type Store struct {
	byKind map[domain.Kind][]domain.Business
	order  []domain.Business
}

// NewStore groups records by kind keeping their relative order.
func NewStore(records []domain.Business) *Store {
	s := &Store{
		byKind: make(map[domain.Kind][]domain.Business, len(domain.Kinds)),
		order:  cloneAll(records),
	}
	for _, b := range s.order {
		s.byKind[b.Kind] = append(s.byKind[b.Kind], b.Clone())
	}
	return s
}

func cloneAll(in []domain.Business) []domain.Business {
	if in == nil {
		return nil
	}
	out := make([]domain.Business, len(in))
	for i, b := range in {
		out[i] = b.Clone()
	}
	return out
}

var builtin = NewStore(slices.Concat(cafes, restaurants, streetFood, hotels, rentals, attractions))

// Default returns the store holding the built-in Tepoztlán directory.
func Default() *Store { return builtin }

// All returns a deep copy of the records for kind.
func (s *Store) All(kind domain.Kind) []domain.Business {
	return cloneAll(s.byKind[kind])
}

// Records returns every record across kinds.
func (s *Store) Records() []domain.Business {
	return cloneAll(s.order)
}

func (s *Store) Get(kind domain.Kind, id string) (domain.Business, error) {
	for _, b := range s.byKind[kind] {
		if b.ID == id {
			return b.Clone(), nil
		}
	}
	return domain.Business{}, domain.ErrNotFound
}

func (s *Store) ListBusinesses(_ context.Context, kind domain.Kind) ([]domain.Business, error) {
	if _, err := domain.ParseKind(string(kind)); err != nil {
		return nil, err
	}
	return s.All(kind), nil
}

func (s *Store) GetBusiness(_ context.Context, kind domain.Kind, id string) (domain.Business, error) {
	if _, err := domain.ParseKind(string(kind)); err != nil {
		return domain.Business{}, err
	}
	return s.Get(kind, id)
}
