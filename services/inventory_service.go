package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/jsabonet/milagre-car-site-sub000/cache"
	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/metrics"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// InventoryVersionKey is the Redis counter bumped on every car write so
// that all instances drop their snapshot, not just the one that wrote.
const InventoryVersionKey = "inventory:version"

// InventoryService owns the in-process snapshot of available cars.
type InventoryService struct {
	// load serialises database reloads so a cold cache triggers one query.
	load sync.Mutex
}

func NewInventoryService() *InventoryService {
	return &InventoryService{}
}

// Snapshot returns the current inventory, reloading it from PostgreSQL when
// the local copy expired or another instance bumped the shared version.
func (s *InventoryService) Snapshot(ctx context.Context) (*cache.Snapshot, error) {
	remote := remoteInventoryVersion(ctx)
	if snap, ok := cache.GetInventory(); ok && snap.RemoteVersion == remote {
		return snap, nil
	}

	s.load.Lock()
	defer s.load.Unlock()

	if snap, ok := cache.GetInventory(); ok && snap.RemoteVersion == remote {
		return snap, nil
	}

	cars := make([]models.Car, 0)
	if err := config.Gorm.WithContext(ctx).
		Preload("Category").
		Where("status = ?", models.CarStatusAvailable).
		Order("created_at DESC").
		Find(&cars).Error; err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	snap := cache.SetInventory(cars, remote)
	metrics.InventoryReloads.Inc()
	metrics.InventorySize.Set(float64(len(cars)))
	log.Printf("[inventory] loaded %d available cars (snapshot v%d, remote v%d)", len(cars), snap.Version, remote)
	return snap, nil
}

// Invalidate drops the local snapshot and bumps the shared version.
func (s *InventoryService) Invalidate(ctx context.Context) {
	cache.InvalidateInventory()
	if config.RedisClient == nil {
		return
	}
	if err := config.RedisClient.Incr(ctx, InventoryVersionKey).Err(); err != nil {
		log.Printf("[inventory] ⚠️  failed to bump version: %v", err)
	}
}

// remoteInventoryVersion reads the shared counter. Without Redis, or when
// the key was never written, it is 0.
func remoteInventoryVersion(ctx context.Context) int64 {
	if config.RedisClient == nil {
		return 0
	}
	v, err := config.RedisClient.Get(ctx, InventoryVersionKey).Int64()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[inventory] ⚠️  failed to read version: %v", err)
		}
		return 0
	}
	return v
}

var (
	inventoryService     *InventoryService
	inventoryServiceOnce sync.Once
)

func GetInventoryService() *InventoryService {
	inventoryServiceOnce.Do(func() {
		inventoryService = NewInventoryService()
	})
	return inventoryService
}
