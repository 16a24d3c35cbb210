// Package cache mirrors the last successfully saved portfolio record per
// student. The surrounding application uses it as a fast-path; the
// document store stays the source of truth.
package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/ommivivekanandsai/EduFolio/internal/models"
)

// ErrCacheMiss is returned when no entry exists for the student.
var ErrCacheMiss = errors.New("cache miss")

// RecordCache holds one serialized record per student id.
type RecordCache interface {
	// Put stores the record under its student id, replacing any
	// previous entry
	Put(ctx context.Context, record *models.PortfolioRecord) error

	// Get returns the mirrored record, or ErrCacheMiss
	Get(ctx context.Context, studentID string) (*models.PortfolioRecord, error)

	// Delete drops the entry for the student, if any
	Delete(ctx context.Context, studentID string) error
}

// Config holds cache configuration
type Config struct {
	Type     string // memory, redis
	Addr     string // For redis
	Password string // For redis
	DB       int    // For redis
}

// NewRecordCache creates a cache backend based on configuration.
func NewRecordCache(cfg Config) (RecordCache, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryCache(), nil
	case "redis":
		return NewRedisCache(cfg)
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Type)
	}
}
