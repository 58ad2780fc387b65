package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jsabonet/milagre-car-site-sub000/catalog"
)

// Car statuses. Only Available cars are shown on the storefront.
const (
	CarStatusAvailable = "Available"
	CarStatusReserved  = "Reserved"
	CarStatusSold      = "Sold"
	CarStatusDraft     = "Draft"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

type CarImage struct {
	URL       string `json:"url" binding:"required"`
	Alt       string `json:"alt,omitempty"`
	IsPrimary bool   `json:"is_primary"`
	PublicID  string `json:"public_id,omitempty"`
}

type CarImageList []CarImage

// ═══════════════════════════════════════════════════════════
// Main Car Model (GORM)
// ═══════════════════════════════════════════════════════════

type Car struct {
	ID           uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	Brand        string       `json:"brand" gorm:"not null;index"`
	Model        string       `json:"model" gorm:"not null;index"`
	Description  string       `json:"description" gorm:"not null;default:''"`
	CategoryID   uuid.UUID    `json:"category_id" gorm:"type:uuid;not null;index:idx_cars_category"`
	Category     *Category    `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Year         int          `json:"year" gorm:"not null;index"`
	Color        string       `json:"color"`
	Transmission string       `json:"transmission" gorm:"index"`
	FuelType     string       `json:"fuel_type" gorm:"index"`
	Location     string       `json:"location" gorm:"index"`
	Price        float64      `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Mileage      *float64     `json:"mileage" gorm:"type:numeric(12,0)"`
	Featured     bool         `json:"featured" gorm:"not null;default:false;index"`
	Status       string       `json:"status" gorm:"not null;default:'Draft';check:status IN ('Available', 'Reserved', 'Sold', 'Draft');index"`
	Images       CarImageList `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	Views        int          `json:"views" gorm:"default:0;index:idx_cars_views,sort:desc"`
	CreatedAt    time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Car) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	if c.Images == nil {
		c.Images = CarImageList{}
	}
	return nil
}

func (Car) TableName() string {
	return "cars"
}

// ToVehicle converts a stored car into the record the catalog pipeline
// works on. Category must be preloaded for category filtering to work.
func (c Car) ToVehicle() catalog.Vehicle {
	v := catalog.Vehicle{
		ID:           catalog.ID(c.ID.String()),
		Brand:        c.Brand,
		Model:        c.Model,
		Year:         c.Year,
		Color:        c.Color,
		Transmission: c.Transmission,
		FuelType:     c.FuelType,
		Location:     c.Location,
		Price:        c.Price,
		Mileage:      c.Mileage,
		Featured:     c.Featured,
		Images:       make([]catalog.Image, 0, len(c.Images)),
	}
	if c.Category != nil {
		v.Category = catalog.Category{ID: c.Category.ID.String(), Name: c.Category.Name}
	}
	for _, img := range c.Images {
		v.Images = append(v.Images, catalog.Image{URL: img.URL, Alt: img.Alt, IsPrimary: img.IsPrimary})
	}
	return v
}

// Vehicles converts a slice of cars, keeping order.
func Vehicles(cars []Car) []catalog.Vehicle {
	out := make([]catalog.Vehicle, len(cars))
	for i, c := range cars {
		out[i] = c.ToVehicle()
	}
	return out
}

// SetPrimary marks the image at index as primary and clears the flag on
// every other image. It reports false when index is out of range.
func (l CarImageList) SetPrimary(index int) bool {
	if index < 0 || index >= len(l) {
		return false
	}
	for i := range l {
		l[i].IsPrimary = i == index
	}
	return true
}

// EnsurePrimary leaves exactly one primary image: the first flagged one,
// or the first image when none is flagged.
func (l CarImageList) EnsurePrimary() {
	primary := -1
	for i := range l {
		if l[i].IsPrimary && primary < 0 {
			primary = i
		}
	}
	if primary < 0 {
		primary = 0
	}
	l.SetPrimary(primary)
}

// Remove drops the image at index and returns it. When the primary image
// is removed the first remaining image takes its place.
func (l CarImageList) Remove(index int) (CarImageList, CarImage, bool) {
	if index < 0 || index >= len(l) {
		return l, CarImage{}, false
	}
	removed := l[index]
	out := make(CarImageList, 0, len(l)-1)
	out = append(out, l[:index]...)
	out = append(out, l[index+1:]...)
	if removed.IsPrimary {
		out.EnsurePrimary()
	}
	return out, removed, true
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type CarRequest struct {
	Brand        string     `json:"brand" binding:"required" example:"Toyota"`
	Model        string     `json:"model" binding:"required" example:"Hilux"`
	Description  string     `json:"description" example:"Single owner, full service history"`
	CategoryID   uuid.UUID  `json:"category_id" binding:"required" example:"018d1234-5678-7abc-def0-123456789abc"`
	Year         int        `json:"year" binding:"required,min=1950,max=2100" example:"2021"`
	Color        string     `json:"color" example:"White"`
	Transmission string     `json:"transmission" example:"Manual"`
	FuelType     string     `json:"fuel_type" example:"Diesel"`
	Location     string     `json:"location" example:"Maputo"`
	Price        float64    `json:"price" binding:"required,min=0" example:"32000"`
	Mileage      *float64   `json:"mileage" binding:"omitempty,min=0" example:"18000"`
	Featured     bool       `json:"featured"`
	Status       string     `json:"status" binding:"required,oneof=Available Reserved Sold Draft" example:"Draft"`
	Images       []CarImage `json:"images" binding:"omitempty,dive"`
}

type UpdateCarRequest struct {
	Brand        *string     `json:"brand"`
	Model        *string     `json:"model"`
	Description  *string     `json:"description"`
	CategoryID   *uuid.UUID  `json:"category_id"`
	Year         *int        `json:"year" binding:"omitempty,min=1950,max=2100"`
	Color        *string     `json:"color"`
	Transmission *string     `json:"transmission"`
	FuelType     *string     `json:"fuel_type"`
	Location     *string     `json:"location"`
	Price        *float64    `json:"price" binding:"omitempty,min=0"`
	Mileage      *float64    `json:"mileage" binding:"omitempty,min=0"`
	Featured     *bool       `json:"featured"`
	Status       *string     `json:"status" binding:"omitempty,oneof=Available Reserved Sold Draft"`
	Images       *[]CarImage `json:"images" binding:"omitempty,dive"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type CarStatsResponse struct {
	TotalCars         int     `json:"total_cars"`
	AvailableCars     int     `json:"available_cars"`
	ReservedCars      int     `json:"reserved_cars"`
	SoldCars          int     `json:"sold_cars"`
	DraftCars         int     `json:"draft_cars"`
	FeaturedCars      int     `json:"featured_cars"`
	PercentageSold    float64 `json:"percentage_sold"`
	AveragePrice      float64 `json:"average_price"`
	TotalViews        int     `json:"total_views"`
	CarsWithoutImages int     `json:"cars_without_images"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM
// ═══════════════════════════════════════════════════════════

func (l *CarImageList) Scan(value interface{}) error {
	if value == nil {
		*l = make(CarImageList, 0)
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan CarImageList")
	}
	return json.Unmarshal(bytes, l)
}

func (l CarImageList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]CarImage{})
	}
	return json.Marshal(l)
}
