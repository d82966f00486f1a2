package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"tepoz_directory/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a single record against the catalog rules: required
// fields, a canonical price symbol, a rating within [0,5] and a known kind.
func Validate(b domain.Business) error {
	if err := validate.Struct(b); err != nil {
		return fmt.Errorf("business %s/%s: %w", b.Kind, b.ID, err)
	}
	if _, err := domain.ParseKind(string(b.Kind)); err != nil {
		return fmt.Errorf("business %s/%s: %w", b.Kind, b.ID, err)
	}
	return nil
}

// ValidateAll validates every record and additionally requires ids to be
// unique within a kind. All problems are reported together.
func ValidateAll(records []domain.Business) error {
	var errs []error
	seen := make(map[domain.Kind]map[string]struct{})
	for _, b := range records {
		if err := Validate(b); err != nil {
			errs = append(errs, err)
		}
		ids := seen[b.Kind]
		if ids == nil {
			ids = make(map[string]struct{})
			seen[b.Kind] = ids
		}
		if _, dup := ids[b.ID]; dup {
			errs = append(errs, fmt.Errorf("business %s/%s: duplicate id", b.Kind, b.ID))
		}
		ids[b.ID] = struct{}{}
	}
	return errors.Join(errs...)
}
