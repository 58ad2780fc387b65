// Package cache keeps short-lived in-process copies of data every storefront
// request needs: the category list and the available-inventory snapshot.
package cache

import (
	"sync"
	"time"

	"github.com/jsabonet/milagre-car-site-sub000/models"
)

const TTL = 5 * time.Minute

// ── Category list cache ──────────────────────────────────────────────────────
// Active categories with their available-car counts.

type categoryEntry struct {
	data      []models.CategoryWithCars
	fetchedAt time.Time
}

var (
	categoryMu    sync.RWMutex
	categoryCache *categoryEntry
)

func GetCategories() ([]models.CategoryWithCars, bool) {
	categoryMu.RLock()
	defer categoryMu.RUnlock()
	if categoryCache != nil && time.Since(categoryCache.fetchedAt) < TTL {
		return categoryCache.data, true
	}
	return nil, false
}

func SetCategories(data []models.CategoryWithCars) {
	categoryMu.Lock()
	defer categoryMu.Unlock()
	categoryCache = &categoryEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate (call on any category or car write) ─────────────────────────

func InvalidateCategories() {
	categoryMu.Lock()
	categoryCache = nil
	categoryMu.Unlock()
}
