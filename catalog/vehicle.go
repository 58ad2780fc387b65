// Package catalog holds the inventory browsing pipeline: predicate
// evaluation, filtering, sorting and pagination over an in-memory list of
// vehicles. Everything here is pure and synchronous; callers hand in a
// snapshot and get a new slice back.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FallbackImageURL is shown when a vehicle has no images at all.
const FallbackImageURL = "/images/car-placeholder.jpg"

// Category is the single representation of a vehicle category once data
// has crossed the ingestion boundary.
type Category struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// UnmarshalJSON accepts either a bare category name ("SUV") or an object
// ({"id": "...", "name": "SUV"}).
func (c *Category) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = Category{}
		return nil
	}

	if data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*c = Category{Name: name}
		return nil
	}

	var obj struct {
		ID   ID     `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("category: %w", err)
	}
	*c = Category{ID: string(obj.ID), Name: obj.Name}
	return nil
}

// ID is an opaque identifier. JSON numbers and strings both decode into it.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Image is one picture of a vehicle.
type Image struct {
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	IsPrimary bool   `json:"is_primary"`
}

// Vehicle is the record the pipeline operates on.
type Vehicle struct {
	ID           ID       `json:"id"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Category     Category `json:"category"`
	Year         int      `json:"year"`
	Color        string   `json:"color,omitempty"`
	Transmission string   `json:"transmission,omitempty"`
	FuelType     string   `json:"fuel_type,omitempty"`
	Location     string   `json:"location,omitempty"`
	Price        float64  `json:"price"`
	Mileage      *float64 `json:"mileage,omitempty"`
	Featured     bool     `json:"featured"`
	Images       []Image  `json:"images"`
}

// MileageOrZero returns the mileage, with an unknown mileage counted as 0.
func (v Vehicle) MileageOrZero() float64 {
	if v.Mileage == nil {
		return 0
	}
	return *v.Mileage
}

// Title is "Brand Model", used for display and image alt fallbacks.
func (v Vehicle) Title() string {
	switch {
	case v.Brand == "":
		return v.Model
	case v.Model == "":
		return v.Brand
	}
	return v.Brand + " " + v.Model
}

// PrimaryImage picks the first image flagged primary, then the first
// image, then the fallback placeholder.
func PrimaryImage(v Vehicle) Image {
	for _, img := range v.Images {
		if img.IsPrimary {
			return img
		}
	}
	if len(v.Images) > 0 {
		return v.Images[0]
	}
	return Image{URL: FallbackImageURL, Alt: v.Title(), IsPrimary: true}
}

// Mileage is a small helper for building records in code and tests.
func Mileage(km float64) *float64 {
	return &km
}

// IntID formats an integer identifier.
func IntID(n int64) ID {
	return ID(strconv.FormatInt(n, 10))
}
