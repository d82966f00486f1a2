package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	"tepoz_directory/internal/catalog"
	"tepoz_directory/internal/domain"
)

type listFlags struct {
	query    string
	category string
	price    string
	dietary  []string
	with     []string
	without  []string
	near     string
	radius   float64
	sort     string
	limit    int
}

func newListCmd(o *options) *cobra.Command {
	f := &listFlags{}
	c := &cobra.Command{
		Use:   "list <kind>",
		Short: "List records of one kind",
		Long:  "Filter and sort the records of one directory section, the same way the API does.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return fmt.Errorf("%w: %s", err, args[0])
			}
			sel, err := f.selection(o.locale())
			if err != nil {
				return err
			}
			page, err := o.queries.ListBusinesses(cmd.Context(), kind, sel)
			if err != nil {
				return err
			}
			if o.asJSON {
				return writeJSON(cmd.OutOrStdout(), page)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderListing(page))
			return nil
		},
	}
	c.Flags().StringVar(&f.query, "q", "", "free text search")
	c.Flags().StringVar(&f.category, "category", "", "category or \"all\"")
	c.Flags().StringVar(&f.price, "price", "", "price symbol ($..$$$$) or \"all\"")
	c.Flags().StringSliceVar(&f.dietary, "dietary", nil, "required dietary tags")
	c.Flags().StringSliceVar(&f.with, "with", nil, "flags that must be set")
	c.Flags().StringSliceVar(&f.without, "without", nil, "flags that must be unset")
	c.Flags().StringVar(&f.near, "near", "", "lon,lat center for a radius search")
	c.Flags().Float64Var(&f.radius, "radius", 2, "radius in km for --near")
	c.Flags().StringVar(&f.sort, "sort", string(catalog.SortFeatured), "featured|rating|price|name")
	c.Flags().IntVar(&f.limit, "limit", 0, "maximum rows (0 for all)")
	return c
}

func (f *listFlags) selection(l domain.Locale) (catalog.Selection, error) {
	flags, err := catalog.FlagFilter(f.with, f.without)
	if err != nil {
		return catalog.Selection{}, err
	}
	var near *catalog.GeoFilter
	if f.near != "" {
		parts := strings.Split(f.near, ",")
		if len(parts) != 2 {
			return catalog.Selection{}, fmt.Errorf("--near must be lon,lat")
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err1 != nil || err2 != nil {
			return catalog.Selection{}, fmt.Errorf("--near must be lon,lat")
		}
		near = &catalog.GeoFilter{Center: orb.Point{lon, lat}, RadiusKm: f.radius}
	}
	if f.limit < 0 {
		return catalog.Selection{}, fmt.Errorf("--limit must not be negative")
	}
	return catalog.Selection{
		Query: f.query,
		Facets: catalog.Facets{
			Category:   f.category,
			PriceRange: f.price,
			Dietary:    f.dietary,
			Flags:      flags,
			Near:       near,
		},
		Sort:   catalog.ParseSortKey(f.sort),
		Locale: l,
		Limit:  f.limit,
	}, nil
}
