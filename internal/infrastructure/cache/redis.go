package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ObjectCache cache de objetos JSON sobre Redis para consultas de solo lectura
// (reportes). Nil-safe: sin cliente configurado, Get devuelve miss y Set es no-op,
// así los casos de uso no dependen de que Redis esté disponible.
type ObjectCache struct {
	rdb *redis.Client
}

// New construye el cache. addr vacío deja el cache deshabilitado.
func New(addr, password string, db int) *ObjectCache {
	if addr == "" {
		return &ObjectCache{}
	}
	return &ObjectCache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Get deserializa el valor de key en dest. Devuelve false en miss (o cache deshabilitado).
func (c *ObjectCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c.rdb == nil {
		return false, nil
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set serializa obj como JSON bajo key con expiración exp.
func (c *ObjectCache) Set(ctx context.Context, key string, obj any, exp time.Duration) error {
	if c.rdb == nil {
		return nil
	}
	raw, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, exp).Err()
}

// Close cierra la conexión si el cache está habilitado.
func (c *ObjectCache) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
