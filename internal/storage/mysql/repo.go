package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"tepoz_directory/internal/domain"
)

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func valJSON(v any, empty bool) (any, error) {
	if empty {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

type Repo struct{ db *sql.DB }

var _ domain.BusinessRepository = (*Repo)(nil)

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertBusiness(ctx context.Context, b domain.Business) error {
	flags, err := valJSON(b.Flags, len(b.Flags) == 0)
	if err != nil {
		return errors.Wrapf(err, "marshal flags %s/%s", b.Kind, b.ID)
	}
	tags, err := valJSON(b.Tags, len(b.Tags) == 0)
	if err != nil {
		return errors.Wrapf(err, "marshal tags %s/%s", b.Kind, b.ID)
	}
	var lon, lat any
	if b.Coordinates != (orb.Point{}) {
		lon, lat = b.Coordinates.Lon(), b.Coordinates.Lat()
	}

	_, err = r.db.ExecContext(ctx, upsertBusinessSQL,
		string(b.Kind),
		b.ID,
		b.Name,
		valStr(b.NameEn),
		valStr(b.Description),
		valStr(b.DescriptionEn),
		valStr(b.Address),
		valStr(b.AddressEn),
		valStr(b.Hours),
		valStr(b.HoursEn),
		valStr(b.Specialties),
		valStr(b.SpecialtiesEn),
		b.Category,
		b.PriceRange,
		b.Rating,
		b.Featured,
		lon, lat,
		flags,
		tags,
		valStr(b.Phone),
		valStr(b.Website),
	)
	return errors.Wrapf(err, "upsert business %s/%s", b.Kind, b.ID)
}

func (r *Repo) ListBusinesses(ctx context.Context, kind domain.Kind) ([]domain.Business, error) {
	if _, err := domain.ParseKind(string(kind)); err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, listBusinessesSQL, string(kind))
	if err != nil {
		return nil, errors.Wrapf(err, "list businesses %s", kind)
	}
	defer rows.Close()

	var out []domain.Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, errors.Wrapf(err, "scan business %s", kind)
		}
		out = append(out, b)
	}
	return out, errors.Wrap(rows.Err(), "iterate businesses")
}

func (r *Repo) GetBusiness(ctx context.Context, kind domain.Kind, id string) (domain.Business, error) {
	b, err := scanBusiness(r.db.QueryRowContext(ctx, getBusinessSQL, string(kind), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Business{}, domain.ErrNotFound
		}
		return domain.Business{}, errors.Wrapf(err, "get business %s/%s", kind, id)
	}
	return b, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBusiness(s rowScanner) (domain.Business, error) {
	var b domain.Business
	var kind string
	var nameEn, desc, descEn, addr, addrEn, hours, hoursEn, spcl, spclEn, phone, website sql.NullString
	var lon, lat sql.NullFloat64
	var flagsJSON, tagsJSON []byte

	if err := s.Scan(
		&kind, &b.ID, &b.Name, &nameEn,
		&desc, &descEn,
		&addr, &addrEn,
		&hours, &hoursEn,
		&spcl, &spclEn,
		&b.Category, &b.PriceRange, &b.Rating, &b.Featured,
		&lon, &lat,
		&flagsJSON, &tagsJSON,
		&phone, &website,
	); err != nil {
		return domain.Business{}, err
	}

	b.Kind = domain.Kind(kind)
	b.NameEn = nameEn.String
	b.Description, b.DescriptionEn = desc.String, descEn.String
	b.Address, b.AddressEn = addr.String, addrEn.String
	b.Hours, b.HoursEn = hours.String, hoursEn.String
	b.Specialties, b.SpecialtiesEn = spcl.String, spclEn.String
	b.Phone, b.Website = phone.String, website.String
	if lon.Valid && lat.Valid {
		b.Coordinates = orb.Point{lon.Float64, lat.Float64}
	}
	if len(flagsJSON) > 0 {
		if err := json.Unmarshal(flagsJSON, &b.Flags); err != nil {
			return domain.Business{}, errors.Wrap(err, "decode flags")
		}
	}
	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &b.Tags); err != nil {
			return domain.Business{}, errors.Wrap(err, "decode tags")
		}
	}
	return b, nil
}
