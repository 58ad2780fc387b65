package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups cars by body type (SUV, Pickup, Sedan...).
type Category struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey" db:"id"`
	Name        string    `json:"name" gorm:"not null;uniqueIndex" db:"name"`
	Description string    `json:"description" gorm:"not null;default:''" db:"description"`
	Status      string    `json:"status" gorm:"type:varchar(20);default:'Active';check:status IN ('Active', 'Inactive')" db:"status"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime" db:"updated_at"`
}

// CategoryWithCars extends Category with the number of cars on sale in it
type CategoryWithCars struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Cars        int       `json:"cars"`
}

// BeforeCreate hook - runs automatically before creating a record
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	if c.Status == "" {
		c.Status = "Active"
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}

// CategoryRequest is used when creating a category
type CategoryRequest struct {
	Name        string `json:"name" binding:"required" example:"SUV"`
	Description string `json:"description" example:"Sport utility vehicles"`
	Status      string `json:"status" binding:"omitempty,oneof=Active Inactive" example:"Active"`
}

// UpdateCategoryRequest is used when updating a category
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

// UpdateCategoryStatusRequest toggles whether a category is offered on the storefront
type UpdateCategoryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Active Inactive" example:"Inactive"`
}

// CategoryStatsResponse is the back-office summary of categories
type CategoryStatsResponse struct {
	TotalCategories            int     `json:"total_categories"`
	ActiveCategories           int     `json:"active_categories"`
	EmptyCategories            int     `json:"empty_categories"`
	PercentageActiveCategories float64 `json:"percentage_active_categories"`
}
