package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsabonet/milagre-car-site-sub000/catalog"
)

type browseOptions struct {
	search       string
	category     string
	brand        string
	transmission string
	fuel         string
	color        string
	location     string
	minPrice     float64
	maxPrice     float64
	minYear      int
	maxYear      int
	minMileage   float64
	maxMileage   float64
	featured     bool
	sortBy       string
	order        string
	page         int
	pageSize     int
}

func newBrowseCommand(g *globalOptions) *cobra.Command {
	o := &browseOptions{}
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Filter, sort and page through the inventory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), g.timeout)
			defer cancel()

			vehicles, err := g.client(nil).ListInventory(ctx)
			if err != nil {
				return fmt.Errorf("fetch inventory: %w", err)
			}

			b := catalog.NewBrowser(vehicles)
			b.SetFilter(o.filter(cmd.Flags().Changed))
			b.SetPageSize(o.pageSize)
			b.SetPage(o.page)

			page := b.Current()
			if g.json {
				return writeJSON(cmd.OutOrStdout(), page)
			}
			return renderPage(cmd.OutOrStdout(), page)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.search, "query", "q", "", "Case-insensitive search over brand and model")
	f.StringVar(&o.category, "category", "", `Category name ("all" or "Todos" for any)`)
	f.StringVar(&o.brand, "brand", "", "Brand")
	f.StringVar(&o.transmission, "transmission", "", "Transmission")
	f.StringVar(&o.fuel, "fuel", "", "Fuel type")
	f.StringVar(&o.color, "color", "", "Color")
	f.StringVar(&o.location, "location", "", "Location")
	f.Float64Var(&o.minPrice, "min-price", 0, "Minimum price")
	f.Float64Var(&o.maxPrice, "max-price", 0, "Maximum price")
	f.IntVar(&o.minYear, "min-year", 0, "Oldest model year")
	f.IntVar(&o.maxYear, "max-year", 0, "Newest model year")
	f.Float64Var(&o.minMileage, "min-mileage", 0, "Minimum mileage in km (unknown mileage counts as 0, so any minimum above 0 hides it)")
	f.Float64Var(&o.maxMileage, "max-mileage", 0, "Maximum mileage in km (unknown mileage counts as 0)")
	f.BoolVar(&o.featured, "featured", false, "Featured cars only (use --featured=false for non-featured only)")
	f.StringVar(&o.sortBy, "sort", string(catalog.SortByName), "name, brand, price, year or mileage")
	f.StringVar(&o.order, "order", string(catalog.Ascending), "asc or desc")
	f.IntVar(&o.page, "page", 1, "Page number")
	f.IntVar(&o.pageSize, "page-size", catalog.DefaultPageSize, "Cars per page (0 for everything)")
	return cmd
}

// filter builds the filter state; ranges and the featured flag only apply
// when their flags were given.
func (o *browseOptions) filter(changed func(string) bool) catalog.FilterState {
	f := catalog.NewFilterState()
	f.Search = o.search
	f.Category = o.category
	f.Brand = o.brand
	f.Transmission = o.transmission
	f.FuelType = o.fuel
	f.Color = o.color
	f.Location = o.location
	f.SortBy = catalog.SortKey(strings.ToLower(o.sortBy))
	f.SortOrder = catalog.ParseSortOrder(o.order)

	if changed("min-price") || changed("max-price") {
		f.PriceRange = bounds(changed("min-price"), o.minPrice, changed("max-price"), o.maxPrice)
	}
	if changed("min-year") || changed("max-year") {
		f.YearRange = bounds(changed("min-year"), float64(o.minYear), changed("max-year"), float64(o.maxYear))
	}
	if changed("min-mileage") || changed("max-mileage") {
		f.MileageRange = bounds(changed("min-mileage"), o.minMileage, changed("max-mileage"), o.maxMileage)
	}
	if changed("featured") {
		f.Featured = catalog.Bool(o.featured)
	}
	return f
}

func bounds(hasMin bool, lo float64, hasMax bool, hi float64) *catalog.Range {
	if !hasMin {
		lo = math.Inf(-1)
	}
	if !hasMax {
		hi = math.Inf(1)
	}
	r := catalog.Range{Min: lo, Max: hi}.Normalized()
	return &r
}

func renderPage(w io.Writer, p catalog.Page) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CAR\tYEAR\tCATEGORY\tPRICE\tKM\tLOCATION\t")
	for _, v := range p.Items {
		km := "-"
		if v.Mileage != nil {
			km = fmt.Sprintf("%.0f", *v.Mileage)
		}
		title := v.Title()
		if v.Featured {
			title += " ★"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.2f\t%s\t%s\t\n", title, v.Year, v.Category.Name, v.Price, km, v.Location)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\npage %d of %d (%d cars)\n", p.Page, p.TotalPages, p.TotalItems)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
