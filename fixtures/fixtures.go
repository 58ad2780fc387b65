// Package fixtures loads demo inventory from YAML into the database.
package fixtures

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/jsabonet/milagre-car-site-sub000/models"
)

//go:embed inventory.yaml
var defaultInventory []byte

// Inventory is the fixtures file layout.
type Inventory struct {
	Categories []Category `yaml:"categories"`
	Cars       []Car      `yaml:"cars"`
}

type Category struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type Car struct {
	Brand        string   `yaml:"brand"`
	Model        string   `yaml:"model"`
	Description  string   `yaml:"description"`
	Category     string   `yaml:"category"`
	Year         int      `yaml:"year"`
	Color        string   `yaml:"color"`
	Transmission string   `yaml:"transmission"`
	FuelType     string   `yaml:"fuel_type"`
	Location     string   `yaml:"location"`
	Price        float64  `yaml:"price"`
	Mileage      *float64 `yaml:"mileage"`
	Featured     bool     `yaml:"featured"`
	Status       string   `yaml:"status"`
	Images       []string `yaml:"images"`
}

// Default returns the inventory bundled with the binary.
func Default() (Inventory, error) {
	return Parse(defaultInventory)
}

// Parse decodes and validates a fixtures file. Every car must name a
// category declared in the same file.
func Parse(data []byte) (Inventory, error) {
	var inv Inventory
	if err := yaml.Unmarshal(data, &inv); err != nil {
		return inv, fmt.Errorf("parse fixtures: %w", err)
	}

	known := make(map[string]bool, len(inv.Categories))
	for _, c := range inv.Categories {
		if strings.TrimSpace(c.Name) == "" {
			return inv, errors.New("fixtures: category without a name")
		}
		known[strings.ToLower(c.Name)] = true
	}
	for i, car := range inv.Cars {
		if car.Brand == "" || car.Model == "" {
			return inv, fmt.Errorf("fixtures: car %d needs brand and model", i)
		}
		if !known[strings.ToLower(car.Category)] {
			return inv, fmt.Errorf("fixtures: car %d (%s %s) uses unknown category %q", i, car.Brand, car.Model, car.Category)
		}
		if inv.Cars[i].Status == "" {
			inv.Cars[i].Status = models.CarStatusAvailable
		}
	}
	return inv, nil
}

// ToModel builds the stored car. The first image is primary.
func (c Car) ToModel(categoryID uuid.UUID) models.Car {
	images := make(models.CarImageList, 0, len(c.Images))
	for i, url := range c.Images {
		images = append(images, models.CarImage{URL: url, Alt: c.Brand + " " + c.Model, IsPrimary: i == 0})
	}
	return models.Car{
		Brand:        c.Brand,
		Model:        c.Model,
		Description:  c.Description,
		CategoryID:   categoryID,
		Year:         c.Year,
		Color:        c.Color,
		Transmission: c.Transmission,
		FuelType:     c.FuelType,
		Location:     c.Location,
		Price:        c.Price,
		Mileage:      c.Mileage,
		Featured:     c.Featured,
		Status:       c.Status,
		Images:       images,
	}
}

// Apply inserts the inventory in one transaction. Categories are matched
// by name so the file can be applied repeatedly; cars are always added.
func Apply(ctx context.Context, db *gorm.DB, inv Inventory) (cars int, err error) {
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := make(map[string]models.Category, len(inv.Categories))
		for _, c := range inv.Categories {
			category := models.Category{Name: c.Name, Description: c.Description}
			if err := tx.Where("LOWER(name) = LOWER(?)", c.Name).FirstOrCreate(&category).Error; err != nil {
				return fmt.Errorf("category %s: %w", c.Name, err)
			}
			ids[strings.ToLower(c.Name)] = category
		}

		for _, c := range inv.Cars {
			car := c.ToModel(ids[strings.ToLower(c.Category)].ID)
			if err := tx.Create(&car).Error; err != nil {
				return fmt.Errorf("car %s %s: %w", c.Brand, c.Model, err)
			}
			cars++
		}
		return nil
	})
	return cars, err
}
