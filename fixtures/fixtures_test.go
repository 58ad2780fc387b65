package fixtures

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsabonet/milagre-car-site-sub000/models"
)

func TestDefaultInventoryIsValid(t *testing.T) {
	inv, err := Default()
	require.NoError(t, err)
	assert.Len(t, inv.Categories, 4)
	assert.Len(t, inv.Cars, 6)

	statuses := map[string]int{}
	for _, c := range inv.Cars {
		statuses[c.Status]++
	}
	assert.Equal(t, 5, statuses[models.CarStatusAvailable])
	assert.Equal(t, 1, statuses[models.CarStatusReserved])
}

func TestParseRejectsUnknownCategory(t *testing.T) {
	_, err := Parse([]byte(`
categories:
  - name: SUV
cars:
  - brand: Toyota
    model: Hilux
    category: Pickup
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown category "Pickup"`)
}

func TestParseMatchesCategoriesCaseInsensitively(t *testing.T) {
	inv, err := Parse([]byte(`
categories:
  - name: SUV
cars:
  - brand: Mazda
    model: CX-5
    category: suv
`))
	require.NoError(t, err)
	assert.Equal(t, models.CarStatusAvailable, inv.Cars[0].Status)
}

func TestParseRequiresBrandAndModel(t *testing.T) {
	_, err := Parse([]byte(`
categories:
  - name: SUV
cars:
  - model: CX-5
    category: SUV
`))
	assert.Error(t, err)

	_, err = Parse([]byte("categories: [{name: ''}]"))
	assert.Error(t, err)

	_, err = Parse([]byte("cars: {"))
	assert.Error(t, err)
}

func TestCarToModel(t *testing.T) {
	km := 18000.0
	categoryID := uuid.Must(uuid.NewV7())
	car := Car{
		Brand:    "Toyota",
		Model:    "Hilux",
		Year:     2021,
		Price:    32000,
		Mileage:  &km,
		Featured: true,
		Status:   models.CarStatusAvailable,
		Images:   []string{"a.jpg", "b.jpg"},
	}.ToModel(categoryID)

	assert.Equal(t, categoryID, car.CategoryID)
	assert.Equal(t, 18000.0, *car.Mileage)
	require.Len(t, car.Images, 2)
	assert.True(t, car.Images[0].IsPrimary)
	assert.False(t, car.Images[1].IsPrimary)
	assert.Equal(t, "Toyota Hilux", car.Images[1].Alt)
}
