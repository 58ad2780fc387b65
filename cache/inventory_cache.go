package cache

import (
	"sync"
	"time"

	"github.com/jsabonet/milagre-car-site-sub000/catalog"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// Snapshot is one immutable load of the available inventory. Version grows
// with every load so pipeline results can be memoized against it.
type Snapshot struct {
	Version       uint64
	RemoteVersion int64
	Cars          []models.Car
	Vehicles      []catalog.Vehicle
	FetchedAt     time.Time
}

// ByID finds a car in the snapshot.
func (s *Snapshot) ByID(id string) (models.Car, bool) {
	for _, c := range s.Cars {
		if c.ID.String() == id {
			return c, true
		}
	}
	return models.Car{}, false
}

var (
	inventoryMu      sync.RWMutex
	inventoryCache   *Snapshot
	inventoryVersion uint64
)

// GetInventory returns the cached snapshot while it is younger than TTL.
func GetInventory() (*Snapshot, bool) {
	inventoryMu.RLock()
	defer inventoryMu.RUnlock()
	if inventoryCache != nil && time.Since(inventoryCache.FetchedAt) < TTL {
		return inventoryCache, true
	}
	return nil, false
}

// SetInventory stores cars as the new snapshot under a fresh version.
// remoteVersion is the shared invalidation counter observed at load time.
func SetInventory(cars []models.Car, remoteVersion int64) *Snapshot {
	inventoryMu.Lock()
	defer inventoryMu.Unlock()
	inventoryVersion++
	inventoryCache = &Snapshot{
		Version:       inventoryVersion,
		RemoteVersion: remoteVersion,
		Cars:          cars,
		Vehicles:      models.Vehicles(cars),
		FetchedAt:     time.Now(),
	}
	return inventoryCache
}

// InvalidateInventory drops the snapshot (call on any car write).
func InvalidateInventory() {
	inventoryMu.Lock()
	inventoryCache = nil
	inventoryMu.Unlock()
}
