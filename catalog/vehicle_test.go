package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryAcceptsStringOrObject(t *testing.T) {
	var fromString, fromObject, fromNull Category
	require.NoError(t, json.Unmarshal([]byte(`"SUV"`), &fromString))
	require.NoError(t, json.Unmarshal([]byte(`{"id": 7, "name": "SUV"}`), &fromObject))
	require.NoError(t, json.Unmarshal([]byte(`null`), &fromNull))

	assert.Equal(t, Category{Name: "SUV"}, fromString)
	assert.Equal(t, Category{ID: "7", Name: "SUV"}, fromObject)
	assert.Equal(t, Category{}, fromNull)

	// Both shapes filter the same way once decoded.
	f := FilterState{Category: "SUV"}
	assert.True(t, Matches(Vehicle{Category: fromString}, f))
	assert.True(t, Matches(Vehicle{Category: fromObject}, f))
}

func TestCategoryAlwaysMarshalsAsObject(t *testing.T) {
	b, err := json.Marshal(Category{Name: "Sedan"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Sedan"}`, string(b))
}

func TestVehicleDecodesNumericIDsAndMixedCategories(t *testing.T) {
	payload := `[
		{"id": 12, "brand": "Toyota", "model": "Hilux", "category": "Pickup", "year": 2021, "price": 32000},
		{"id": "0190f0a4-7c1e-7bd4-9b1a-3f5b2a1c9d00", "brand": "BMW", "model": "X5",
		 "category": {"id": "c3", "name": "SUV"}, "year": 2022, "price": 61000, "mileage": 9000, "featured": true}
	]`

	var vs []Vehicle
	require.NoError(t, json.Unmarshal([]byte(payload), &vs))
	require.Len(t, vs, 2)

	assert.Equal(t, ID("12"), vs[0].ID)
	assert.Equal(t, "Pickup", vs[0].Category.Name)
	assert.Nil(t, vs[0].Mileage)
	assert.Equal(t, float64(0), vs[0].MileageOrZero())

	assert.Equal(t, "SUV", vs[1].Category.Name)
	require.NotNil(t, vs[1].Mileage)
	assert.Equal(t, float64(9000), *vs[1].Mileage)
	assert.True(t, vs[1].Featured)
}

func TestPrimaryImage(t *testing.T) {
	v := Vehicle{Brand: "Ford", Model: "Ranger"}
	assert.Equal(t, FallbackImageURL, PrimaryImage(v).URL)
	assert.Equal(t, "Ford Ranger", PrimaryImage(v).Alt)

	v.Images = []Image{{URL: "a.jpg"}, {URL: "b.jpg"}}
	assert.Equal(t, "a.jpg", PrimaryImage(v).URL, "first image when none is primary")

	v.Images = []Image{{URL: "a.jpg"}, {URL: "b.jpg", IsPrimary: true}, {URL: "c.jpg", IsPrimary: true}}
	assert.Equal(t, "b.jpg", PrimaryImage(v).URL, "first primary wins")
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Ford Ranger", Vehicle{Brand: "Ford", Model: "Ranger"}.Title())
	assert.Equal(t, "Ranger", Vehicle{Model: "Ranger"}.Title())
	assert.Equal(t, "Ford", Vehicle{Brand: "Ford"}.Title())
}
