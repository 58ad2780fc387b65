package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsabonet/milagre-car-site-sub000/catalog"
)

func newFacetsCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "facets",
		Short: "Show the filter values present in the inventory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), g.timeout)
			defer cancel()

			vehicles, err := g.client(nil).ListInventory(ctx)
			if err != nil {
				return fmt.Errorf("fetch inventory: %w", err)
			}

			facets := catalog.Facets(vehicles)
			if g.json {
				return writeJSON(cmd.OutOrStdout(), facets)
			}
			return renderFacets(cmd.OutOrStdout(), facets)
		},
	}
}

func renderFacets(w io.Writer, f catalog.FacetSet) error {
	lines := []struct {
		label  string
		values []string
	}{
		{"Brands", f.Brands},
		{"Categories", f.Categories},
		{"Transmissions", f.Transmissions},
		{"Fuel types", f.FuelTypes},
		{"Colors", f.Colors},
		{"Locations", f.Locations},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%-14s %s\n", l.label+":", strings.Join(l.values, ", ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%-14s %.0f - %.0f\n%-14s %.0f - %.0f\n%-14s %.0f - %.0f km\n%-14s %d (%d featured)\n",
		"Price:", f.PriceRange.Min, f.PriceRange.Max,
		"Years:", f.YearRange.Min, f.YearRange.Max,
		"Mileage:", f.MileageRange.Min, f.MileageRange.Max,
		"Cars:", f.Total, f.Featured,
	)
	return err
}
