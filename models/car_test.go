package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsabonet/milagre-car-site-sub000/catalog"
)

func images(urls ...string) CarImageList {
	out := make(CarImageList, len(urls))
	for i, u := range urls {
		out[i] = CarImage{URL: u}
	}
	return out
}

func primaries(l CarImageList) []string {
	var out []string
	for _, img := range l {
		if img.IsPrimary {
			out = append(out, img.URL)
		}
	}
	return out
}

func TestEnsurePrimary(t *testing.T) {
	l := images("a", "b", "c")
	l.EnsurePrimary()
	assert.Equal(t, []string{"a"}, primaries(l))

	l = images("a", "b", "c")
	l[1].IsPrimary = true
	l[2].IsPrimary = true
	l.EnsurePrimary()
	assert.Equal(t, []string{"b"}, primaries(l))

	var empty CarImageList
	empty.EnsurePrimary()
	assert.Empty(t, empty)
}

func TestSetPrimary(t *testing.T) {
	l := images("a", "b")
	assert.True(t, l.SetPrimary(1))
	assert.Equal(t, []string{"b"}, primaries(l))
	assert.False(t, l.SetPrimary(2))
	assert.False(t, l.SetPrimary(-1))
}

func TestRemoveImage(t *testing.T) {
	l := images("a", "b", "c")
	l.SetPrimary(0)

	out, removed, ok := l.Remove(0)
	require.True(t, ok)
	assert.Equal(t, "a", removed.URL)
	assert.Equal(t, []string{"b"}, primaries(out))
	assert.Len(t, out, 2)

	out, removed, ok = out.Remove(1)
	require.True(t, ok)
	assert.Equal(t, "c", removed.URL)
	assert.Equal(t, []string{"b"}, primaries(out))

	_, _, ok = out.Remove(5)
	assert.False(t, ok)
}

func TestCarImageListScanAndValue(t *testing.T) {
	var l CarImageList
	require.NoError(t, l.Scan(nil))
	assert.NotNil(t, l)
	assert.Empty(t, l)

	require.NoError(t, l.Scan([]byte(`[{"url":"x.jpg","is_primary":true}]`)))
	assert.Equal(t, []string{"x.jpg"}, primaries(l))

	assert.Error(t, l.Scan(42))

	v, err := CarImageList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)
}

func TestToVehicle(t *testing.T) {
	cat := &Category{ID: uuid.Must(uuid.NewV7()), Name: "Pickup"}
	car := Car{
		ID:       uuid.Must(uuid.NewV7()),
		Brand:    "Toyota",
		Model:    "Hilux",
		Category: cat,
		Year:     2021,
		Price:    32000,
		Mileage:  catalog.Mileage(18000),
		Featured: true,
		Images:   CarImageList{{URL: "h.jpg", Alt: "front", IsPrimary: true, PublicID: "cars/h"}},
	}

	v := car.ToVehicle()
	assert.Equal(t, catalog.ID(car.ID.String()), v.ID)
	assert.Equal(t, "Pickup", v.Category.Name)
	assert.Equal(t, cat.ID.String(), v.Category.ID)
	assert.Equal(t, 18000.0, v.MileageOrZero())
	assert.Equal(t, []catalog.Image{{URL: "h.jpg", Alt: "front", IsPrimary: true}}, v.Images)

	car.Category = nil
	assert.Empty(t, car.ToVehicle().Category.Name)
}
