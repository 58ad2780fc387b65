package models

import "github.com/jsabonet/milagre-car-site-sub000/catalog"

// FilterMetadata represents all filter data for the storefront
type FilterMetadata struct {
	catalog.FacetSet
	Categories []CategoryData `json:"category_options"`
}

// CategoryData is a selectable category with the number of cars in it
type CategoryData struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Cars int    `json:"cars"`
}
