// Package storage provides the durable key/value backends the wishlist is
// persisted to.
package storage

import (
	"context"
	"errors"
)

// Drivers accepted by STORAGE_DRIVER.
const (
	DriverMemory = "memory"
	DriverMySQL  = "mysql"
	DriverRedis  = "redis"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

// KV is a string key/value store. Get reports false for a missing key.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
